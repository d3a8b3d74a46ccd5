package cli

import "github.com/charmbracelet/lipgloss"

// Ink colour palette
// Shared colours for consistent branding across CLI and TUI
var (
	// Core ink colours (dark to bright)
	InkIndigo = lipgloss.Color("#4B0082") // Deep indigo
	InkViolet = lipgloss.Color("#8A2BE2") // Blue violet
	InkTeal   = lipgloss.Color("#20B2AA") // Light sea green
	InkMint   = lipgloss.Color("#98FB98") // Pale green

	// Accent colours
	InkRose   = lipgloss.Color("#E0457B") // Failure accent
	SlateGray = lipgloss.Color("#708090") // Subtle text
)
