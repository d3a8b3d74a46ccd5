package ui

import (
	"fmt"
	"image"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/glyphforge/internal/cli"
)

// SymbolProgress reports one accepted and written symbol
type SymbolProgress struct {
	Index      int
	Total      int
	Path       string
	Family     string
	Decoration string
	Attempts   int // Candidates drawn for this symbol, including the accepted one
	Elapsed    time.Duration
	Image      *image.RGBA
}

// BatchComplete signals that every symbol was written
type BatchComplete struct {
	OutputDir string
	Count     int
	Attempts  int
	Rejected  int
	Duration  time.Duration
}

// BatchFailed signals that generation stopped early
type BatchFailed struct {
	Index   int // 1-based index of the symbol that could not be produced
	Written int
	Err     error
}

// progressQuitMsg is sent when it's time to quit after showing completion
type progressQuitMsg struct{}

// BatchModel is the bubbletea model for symbol generation progress
type BatchModel struct {
	progressBar progress.Model
	total       int

	state    SymbolProgress
	families map[string]int
	complete *BatchComplete
	failed   *BatchFailed

	startTime time.Time

	// UI state
	width           int
	noPreview       bool
	cachedPreview   string
	cachedIndex     int
	completionDelay time.Duration
	quitting        bool
	interrupted     bool
}

// NewBatchModel creates a progress model for a batch of total symbols
func NewBatchModel(total int, noPreview bool) *BatchModel {
	p := progress.New(
		progress.WithGradient(string(cli.InkIndigo), string(cli.InkTeal)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return &BatchModel{
		progressBar:     p,
		total:           total,
		families:        make(map[string]int),
		startTime:       time.Now(),
		completionDelay: time.Second,
		noPreview:       noPreview,
	}
}

// Init initializes the model
func (m *BatchModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressBar.Width = min(msg.Width-30, 50)
		return m, nil

	case SymbolProgress:
		m.state = msg
		if msg.Family != "" {
			m.families[msg.Family]++
		}
		return m, nil

	case BatchComplete:
		m.complete = &msg
		return m, m.finish()

	case BatchFailed:
		m.failed = &msg
		return m, m.finish()

	case progressQuitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.quitting {
			return m, tea.Quit
		}
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *BatchModel) finish() tea.Cmd {
	m.quitting = true
	return tea.Tick(m.completionDelay, func(time.Time) tea.Msg {
		return progressQuitMsg{}
	})
}

// Interrupted reports whether the user quit with ctrl+c before the batch
// finished.
func (m *BatchModel) Interrupted() bool {
	return m.interrupted
}

// View renders the UI
func (m *BatchModel) View() string {
	if m.complete != nil || m.failed != nil {
		return m.CompletionSummary()
	}
	return m.renderProgress()
}

// CompletionSummary returns the final summary for printing after the
// program exits. Returns empty string if the batch has not finished.
func (m *BatchModel) CompletionSummary() string {
	switch {
	case m.complete != nil:
		return m.renderComplete()
	case m.failed != nil:
		return m.renderFailed()
	}
	return ""
}

func title() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.InkTeal).
		Render("Glyphforge ✦")
}

func (m *BatchModel) renderProgress() string {
	var s strings.Builder

	s.WriteString(title())
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(cli.InkViolet).Render("Generating symbols"))
	s.WriteString("\n\n")

	if m.state.Index == 0 {
		s.WriteString(lipgloss.NewStyle().Faint(true).Render("Starting generation..."))
		s.WriteString("\n")
	} else {
		m.renderSymbolProgress(&s)
	}

	if !m.noPreview && m.state.Image != nil {
		if m.state.Index != m.cachedIndex {
			m.cachedPreview = SymbolPreview(m.state.Image, DefaultPreviewConfig())
			m.cachedIndex = m.state.Index
		}

		s.WriteString("\n")
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.cachedPreview,
			"  ",
			m.renderLastSymbol()))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cli.InkViolet).
		Padding(1, 2).
		Render(s.String())
}

func (m *BatchModel) renderSymbolProgress(s *strings.Builder) {
	total := m.state.Total
	if total == 0 {
		total = m.total
	}
	percent := float64(m.state.Index) / float64(total)

	s.WriteString("Progress: ")
	s.WriteString(m.progressBar.ViewAs(percent))
	s.WriteString(fmt.Sprintf("  %d%%", int(percent*100)))
	s.WriteString("\n\n")

	elapsed := m.state.Elapsed
	if elapsed == 0 {
		elapsed = time.Since(m.startTime)
	}

	var eta time.Duration
	if percent > 0 {
		eta = time.Duration(float64(elapsed)/percent) - elapsed
	}

	timingInfo := fmt.Sprintf("Time: %s  │  ETA: %s", formatDuration(elapsed), formatDuration(eta))
	s.WriteString(lipgloss.NewStyle().Faint(true).Render(timingInfo))
	s.WriteString("\n")

	phaseStyle := lipgloss.NewStyle().Faint(true).Italic(true)
	s.WriteString(phaseStyle.Render(fmt.Sprintf("Symbol %d of %d", m.state.Index, total)))
	s.WriteString("\n")
}

func (m *BatchModel) renderLastSymbol() string {
	labelStyle := lipgloss.NewStyle().Foreground(cli.SlateGray)
	valueStyle := lipgloss.NewStyle().Bold(true)

	var s strings.Builder
	s.WriteString(labelStyle.Render("Family:     "))
	s.WriteString(valueStyle.Render(m.state.Family))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Decoration: "))
	s.WriteString(valueStyle.Render(m.state.Decoration))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("Attempts:   "))
	s.WriteString(valueStyle.Render(fmt.Sprintf("%d", m.state.Attempts)))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("File:       "))
	s.WriteString(m.state.Path)
	return s.String()
}

func (m *BatchModel) renderComplete() string {
	var s strings.Builder

	s.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.InkMint).
		Render("✓ Alphabet Complete!"))
	s.WriteString("\n\n")

	dimLabel := lipgloss.NewStyle().Faint(true)
	c := m.complete

	s.WriteString(fmt.Sprintf("%s%s\n", dimLabel.Render("Output:    "), c.OutputDir))
	s.WriteString(fmt.Sprintf("%s%d unique\n", dimLabel.Render("Symbols:   "), c.Count))
	s.WriteString(fmt.Sprintf("%s%d drawn, %d duplicates rejected\n", dimLabel.Render("Candidates:"), c.Attempts, c.Rejected))
	s.WriteString(fmt.Sprintf("%s%s\n", dimLabel.Render("Time:      "), formatDuration(c.Duration)))

	if len(m.families) > 0 {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(cli.InkViolet).Render("Families"))
		s.WriteString("\n")
		s.WriteString(m.renderFamilyCounts(c.Count))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cli.InkTeal).
		Padding(1, 1).
		Render(s.String()) + "\n"
}

// renderFamilyCounts lists how many accepted symbols each family produced
func (m *BatchModel) renderFamilyCounts(total int) string {
	names := make([]string, 0, len(m.families))
	for name := range m.families {
		names = append(names, name)
	}
	sort.Strings(names)

	labelStyle := lipgloss.NewStyle().Faint(true)
	var s strings.Builder
	for _, name := range names {
		n := m.families[name]
		s.WriteString(fmt.Sprintf("  %s%2d  %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", name+":")),
			n,
			makeGradientBar(float64(n)/float64(max(total, 1)), 20)))
	}
	return s.String()
}

func (m *BatchModel) renderFailed() string {
	var s strings.Builder

	s.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.InkRose).
		Render(fmt.Sprintf("✗ Stopped at symbol %d", m.failed.Index)))
	s.WriteString("\n\n")

	dimLabel := lipgloss.NewStyle().Faint(true)
	s.WriteString(fmt.Sprintf("%s%d kept on disk\n", dimLabel.Render("Written: "), m.failed.Written))
	if m.failed.Err != nil {
		s.WriteString(fmt.Sprintf("%s%v\n", dimLabel.Render("Reason:  "), m.failed.Err))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cli.InkRose).
		Padding(1, 1).
		Render(s.String()) + "\n"
}

// Helper functions

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// makeGradientBar creates a small ink gradient bar
func makeGradientBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	gradientColors := []lipgloss.Color{cli.InkIndigo, cli.InkViolet, cli.InkTeal, cli.InkMint}

	var result strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			colorIdx := i * len(gradientColors) / width
			result.WriteString(lipgloss.NewStyle().Foreground(gradientColors[colorIdx]).Render("█"))
		} else {
			result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#2A2A2A")).Render("░"))
		}
	}

	return result.String()
}
