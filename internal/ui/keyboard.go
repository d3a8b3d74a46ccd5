package ui

import (
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/linuxmatters/glyphforge/internal/cli"
	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/keyboard"
)

// Terminals report key presses but not releases, so a key stays lit for
// pressDuration after its last press.
const (
	pressDuration = 150 * time.Millisecond
	maxTextLines  = 3
	spaceWidth    = 30 // Space bar width in cells
)

// releaseKeyMsg clears a key highlight unless it was pressed again since
type releaseKeyMsg struct {
	key rune
	seq int
}

// KeyboardModel is the interactive symbol keyboard: typed letters appear
// as their symbols above a QWERTY layout of key caps.
type KeyboardModel struct {
	mapping *keyboard.Mapping
	glyphs  map[int]string
	blank   string

	text    []rune
	pressed map[rune]int
	seq     int

	width int
}

// NewKeyboardModel renders each loaded symbol once as a key-sized preview.
func NewKeyboardModel(symbols keyboard.Symbols, m *keyboard.Mapping) *KeyboardModel {
	cfg := KeyPreviewConfig()
	glyphs := make(map[int]string, len(symbols))
	for i, img := range symbols {
		glyphs[i] = SymbolPreview(img, cfg)
	}

	blankRow := strings.Repeat(" ", cfg.Width)
	blank := strings.TrimSuffix(strings.Repeat(blankRow+"\n", cfg.Height), "\n")

	return &KeyboardModel{
		mapping: m,
		glyphs:  glyphs,
		blank:   blank,
		pressed: make(map[rune]int),
	}
}

// Init initializes the model
func (m *KeyboardModel) Init() tea.Cmd {
	return nil
}

// Text returns everything typed so far.
func (m *KeyboardModel) Text() string {
	return string(m.text)
}

// Pressed reports whether key is currently highlighted. Letters are
// matched case-insensitively; the space bar is ' '.
func (m *KeyboardModel) Pressed(key rune) bool {
	_, ok := m.pressed[unicode.ToUpper(key)]
	return ok
}

// Update handles messages
func (m *KeyboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case releaseKeyMsg:
		if m.pressed[msg.key] == msg.seq {
			delete(m.pressed, msg.key)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyBackspace:
			if len(m.text) > 0 {
				m.text = m.text[:len(m.text)-1]
			}
			return m, nil
		case tea.KeySpace:
			m.text = append(m.text, ' ')
			return m, m.press(' ')
		case tea.KeyRunes:
			var cmds []tea.Cmd
			for _, r := range msg.Runes {
				if r == ' ' {
					m.text = append(m.text, ' ')
					cmds = append(cmds, m.press(' '))
					continue
				}
				if _, ok := m.mapping.Index(r); ok {
					m.text = append(m.text, r)
					cmds = append(cmds, m.press(unicode.ToUpper(r)))
				}
			}
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

// press lights key and schedules its release
func (m *KeyboardModel) press(key rune) tea.Cmd {
	m.seq++
	seq := m.seq
	m.pressed[key] = seq
	return tea.Tick(pressDuration, func(time.Time) tea.Msg {
		return releaseKeyMsg{key: key, seq: seq}
	})
}

// View renders the UI
func (m *KeyboardModel) View() string {
	var s strings.Builder

	s.WriteString(title())
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Faint(true).Render("Type letters to write in symbols · backspace deletes · esc quits"))
	s.WriteString("\n\n")
	s.WriteString(m.renderText())
	s.WriteString("\n\n")
	s.WriteString(m.renderKeys())

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cli.InkViolet).
		Padding(1, 2).
		Render(s.String())
}

// glyphsPerLine is how many typed symbols fit across the input box
func (m *KeyboardModel) glyphsPerLine() int {
	n := config.TextWrapWidth
	if m.width > 0 {
		perGlyph := KeyPreviewConfig().Width + 1
		n = min(n, max((m.width-10)/perGlyph, 1))
	}
	return n
}

// renderText draws the most recent lines of typed text as symbols
func (m *KeyboardModel) renderText() string {
	cfg := KeyPreviewConfig()
	boxWidth := m.glyphsPerLine()*(cfg.Width+1) + 1
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.SlateGray).
		Width(boxWidth)

	lines := keyboard.WrapText(string(m.text), m.glyphsPerLine())
	if len(lines) > maxTextLines {
		lines = lines[len(lines)-maxTextLines:]
	}
	if len(lines) == 0 {
		return box.Render(lipgloss.NewStyle().Faint(true).Italic(true).Render("Start typing..."))
	}

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		cells := []string{" "}
		for _, r := range line {
			cells = append(cells, m.glyphFor(r), " ")
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rendered...))
}

func (m *KeyboardModel) glyphFor(r rune) string {
	if i, ok := m.mapping.Index(r); ok {
		if g, ok := m.glyphs[i]; ok {
			return g
		}
	}
	return m.blank
}

// renderKeys draws the key rows centred above the space bar
func (m *KeyboardModel) renderKeys() string {
	var rows []string
	for _, row := range m.mapping.Rows() {
		caps := make([]string, 0, len(row))
		for _, key := range row {
			caps = append(caps, m.renderKey(key))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, caps...))
	}

	space := m.keyStyle(' ').
		Width(spaceWidth).
		Align(lipgloss.Center).
		Render("SPACE")
	rows = append(rows, space)

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *KeyboardModel) renderKey(key rune) string {
	letter := lipgloss.NewStyle().Bold(true).Render(string(key))
	return m.keyStyle(key).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, m.glyphFor(key), letter))
}

func (m *KeyboardModel) keyStyle(key rune) lipgloss.Style {
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cli.SlateGray)
	if m.Pressed(key) {
		style = style.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(cli.InkTeal).
			Foreground(cli.InkTeal)
	}
	return style
}
