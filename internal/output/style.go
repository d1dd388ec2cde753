package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	bucketStyles = map[forecast.Bucket]lipgloss.Style{}
)

// SetPalette installs the row colour for each urgency bucket.
func SetPalette(colors map[int]string) {
	styles := make(map[forecast.Bucket]lipgloss.Style, len(colors))
	for b, c := range colors {
		styles[forecast.Bucket(b)] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	bucketStyles = styles
}

// BucketStyle returns the row style for an urgency bucket.
func BucketStyle(b forecast.Bucket) lipgloss.Style {
	if st, ok := bucketStyles[b]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// DisableColor strips all styling from output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	titleStyle = lipgloss.NewStyle()
	labelStyle = lipgloss.NewStyle()
	valueStyle = lipgloss.NewStyle()
	bucketStyles = map[forecast.Bucket]lipgloss.Style{}
}
