package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Application identity shared by the banner, help and version output
const (
	AppTitle       = "Glyphforge ✦"
	AppDescription = "Forge an alphabet of unique invented symbols and type with them on a QWERTY keyboard."
)

// Color palette
var (
	primaryColor   = InkViolet
	successColor   = lipgloss.Color("#00AA00") // Green
	errorColor     = InkRose
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = lipgloss.Color("#FFFF00") // Yellow
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	// Title style - bold violet
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintBanner prints the application banner
func PrintBanner() {
	fmt.Println(TitleStyle.Render(AppTitle))
	fmt.Println(SubtitleStyle.Render(AppDescription))
	fmt.Println()
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render(AppTitle))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational message
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSymbolProgress prints one plain progress line for non-interactive runs
func PrintSymbolProgress(index, total int) {
	fmt.Printf("Generated unique symbol %d/%d\n", index, total)
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Println(BoxStyle.Render(content))
}

// PrintGenerateSummary prints the plain-mode batch summary in a box
func PrintGenerateSummary(outputDir string, count, attempts, rejected int, duration time.Duration) {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Alphabet Complete!"))
	b.WriteString("\n\n")

	b.WriteString(KeyStyle.Render("Output:     "))
	b.WriteString(ValueStyle.Render(outputDir))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Symbols:    "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", count)))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Candidates: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d (%d duplicates rejected)", attempts, rejected)))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Time:       "))
	b.WriteString(ValueStyle.Render(FormatDuration(duration)))

	PrintBox(b.String())
}
