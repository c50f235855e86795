package chart

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

var markerColors = map[Color]lipgloss.Color{
	Default: lipgloss.Color("#ffffff"),
	Blue:    lipgloss.Color("#1f77b4"),
	Orange:  lipgloss.Color("#ff7f0e"),
	Red:     lipgloss.Color("#d62728"),
	Black:   lipgloss.Color("#444444"),
}

func markerStyle(c Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(markerColors[c])
}
