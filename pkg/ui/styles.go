package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for scan output.
var (
	alertColor   = lipgloss.Color("#FF3838") // red - exposed endpoint header
	successColor = lipgloss.Color("#00D26A") // green - confirmed URLs
	mutedColor   = lipgloss.Color("#6B7280") // gray - progress line
)

// Pre-configured styles.
var (
	// AlertStyle highlights the header of a domain with findings.
	AlertStyle = lipgloss.NewStyle().
			Foreground(alertColor).
			Bold(true)

	// EndpointStyle renders each confirmed URL.
	EndpointStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ProgressStyle renders the overwriting progress line.
	ProgressStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// DoneStyle renders the completion banner.
	DoneStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)
)
