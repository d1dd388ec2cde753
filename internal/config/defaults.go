// Package config handles choremate configuration.
package config

const (
	// DefaultDirName is the data directory name under the user config directory.
	DefaultDirName = "choremate"
	// HomeEnv overrides the data directory.
	HomeEnv = "CHOREMATEHOME"
	// DefaultDatabase is the default database file name within the data directory.
	DefaultDatabase = "choremate.db"
	// DefaultDayResolution classifies urgency against the start of the local day.
	DefaultDayResolution = true
	// DefaultNameWidth is the default maximum width of the name column.
	DefaultNameWidth = 30

	// ConfigFileName is the name of the config file within the data directory.
	ConfigFileName = "config.yml"
	// LogFileName is the name of the activity log within the data directory.
	LogFileName = "activity.jsonl"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 2

	minNameWidth = 8
	maxNameWidth = 200
)

// DefaultColors maps urgency buckets to row colours. Bucket -1 is for
// chores that were never completed.
var DefaultColors = map[int]string{
	-1: "#bababa",
	0:  "#87cefa",
	1:  "#32cd32",
	2:  "#adff2f",
	3:  "#ffff00",
	4:  "#ffff00",
	5:  "#ffb920",
	6:  "#ff8438",
	7:  "#ff5050",
}

func defaultColors() map[int]string {
	out := make(map[int]string, len(DefaultColors))
	for k, v := range DefaultColors {
		out[k] = v
	}
	return out
}
