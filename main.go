package main

import "github.com/twiced-technology-gmbh/choremate/cmd"

func main() {
	cmd.Execute()
}
