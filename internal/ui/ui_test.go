package ui

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/glyphforge/internal/keyboard"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestDownsampleSymbol(t *testing.T) {
	img := solidImage(50, 50, color.RGBA{R: 255, A: 255})
	// Paint the bottom half blue
	draw.Draw(img, image.Rect(0, 25, 50, 50), image.NewUniform(color.RGBA{B: 255, A: 255}), image.Point{}, draw.Src)

	cfg := PreviewConfig{Width: 4, Height: 2}
	grid := DownsampleSymbol(img, cfg)

	if len(grid) != 4 || len(grid[0]) != 4 {
		t.Fatalf("grid is %dx%d, want 4 rows of 4", len(grid), len(grid[0]))
	}
	if got := grid[0][0]; got.R != 255 || got.B != 0 {
		t.Errorf("top-left = %v, want red", got)
	}
	if got := grid[3][3]; got.B != 255 || got.R != 0 {
		t.Errorf("bottom-right = %v, want blue", got)
	}
}

func TestDownsampleSymbol_SmallerThanGrid(t *testing.T) {
	img := solidImage(3, 3, color.RGBA{G: 200, A: 255})
	grid := DownsampleSymbol(img, DefaultPreviewConfig())
	for _, row := range grid {
		for _, c := range row {
			if c.G != 200 || c.A != 255 {
				t.Fatalf("cell = %v, want solid green", c)
			}
		}
	}
}

func TestRenderPreview(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	out := SymbolPreview(img, PreviewConfig{Width: 5, Height: 2})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("preview has %d lines, want 2", len(lines))
	}
	if strings.Count(lines[0], "▀") != 5 {
		t.Errorf("line has %d cells, want 5", strings.Count(lines[0], "▀"))
	}
	if !strings.Contains(out, "\x1b[38;2;1;2;3m") || !strings.Contains(out, "\x1b[48;2;1;2;3m") {
		t.Error("preview is missing the 24-bit colour escapes")
	}

	if RenderPreview(nil) != "" {
		t.Error("empty grid rendered output")
	}
}

func TestBatchModel_Progress(t *testing.T) {
	m := NewBatchModel(28, false)

	if !strings.Contains(m.View(), "Starting generation") {
		t.Error("initial view does not show the starting state")
	}

	m.Update(SymbolProgress{
		Index:      3,
		Total:      28,
		Path:       "out/symbol_3.png",
		Family:     "spiral",
		Decoration: "dots",
		Attempts:   2,
		Elapsed:    300 * time.Millisecond,
		Image:      solidImage(50, 50, color.RGBA{A: 255}),
	})

	view := m.View()
	for _, want := range []string{"Symbol 3 of 28", "spiral", "dots", "symbol_3.png"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.CompletionSummary() != "" {
		t.Error("summary present before completion")
	}
}

func TestBatchModel_Complete(t *testing.T) {
	m := NewBatchModel(2, true)
	m.Update(SymbolProgress{Index: 1, Total: 2, Family: "star"})
	m.Update(SymbolProgress{Index: 2, Total: 2, Family: "star"})

	_, cmd := m.Update(BatchComplete{OutputDir: "generated_symbols", Count: 2, Attempts: 3, Rejected: 1})
	if cmd == nil {
		t.Fatal("completion did not schedule a quit")
	}

	summary := m.CompletionSummary()
	for _, want := range []string{"generated_symbols", "2 unique", "1 duplicates rejected", "star"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	_, cmd = m.Update(progressQuitMsg{})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit message did not quit")
	}
}

func TestBatchModel_Failed(t *testing.T) {
	m := NewBatchModel(5, true)
	m.Update(BatchFailed{Index: 3, Written: 2, Err: errors.New("exhausted 100 attempts")})

	summary := m.CompletionSummary()
	for _, want := range []string{"Stopped at symbol 3", "2 kept on disk", "exhausted 100 attempts"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestBatchModel_Interrupt(t *testing.T) {
	m := NewBatchModel(5, true)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.Interrupted() {
		t.Error("ctrl+c did not interrupt")
	}
}

func newTestKeyboard(t *testing.T) *KeyboardModel {
	t.Helper()
	m := keyboard.DefaultMapping()
	symbols := make(keyboard.Symbols)
	for i := 1; i <= m.Len(); i++ {
		symbols[i] = solidImage(50, 50, color.RGBA{R: uint8(i * 9), A: 255})
	}
	return NewKeyboardModel(symbols, m)
}

func typeRunes(m *KeyboardModel, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func TestKeyboardModel_Typing(t *testing.T) {
	m := newTestKeyboard(t)

	typeRunes(m, "hi")
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	typeRunes(m, "Q1?")

	if got := m.Text(); got != "hi Q" {
		t.Errorf("Text() = %q, want %q", got, "hi Q")
	}
	for _, key := range []rune{'H', 'i', ' ', 'q'} {
		if !m.Pressed(key) {
			t.Errorf("key %q not highlighted", key)
		}
	}
	if m.Pressed('Z') {
		t.Error("untyped key highlighted")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Text(); got != "hi " {
		t.Errorf("after backspace Text() = %q", got)
	}

	empty := newTestKeyboard(t)
	empty.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if empty.Text() != "" {
		t.Error("backspace on empty text changed it")
	}
}

func TestKeyboardModel_Release(t *testing.T) {
	m := newTestKeyboard(t)

	typeRunes(m, "a")
	first := m.pressed['A']
	typeRunes(m, "a")

	// The release scheduled by the first press must not clear the second
	m.Update(releaseKeyMsg{key: 'A', seq: first})
	if !m.Pressed('A') {
		t.Fatal("stale release cleared a fresh press")
	}

	m.Update(releaseKeyMsg{key: 'A', seq: m.pressed['A']})
	if m.Pressed('A') {
		t.Error("key still highlighted after release")
	}
}

func TestKeyboardModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestKeyboard(t)
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v returned no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v did not quit", key)
		}
	}
}

func TestKeyboardModel_View(t *testing.T) {
	m := newTestKeyboard(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	for _, want := range []string{"SPACE", "Q", "M", "Start typing"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	typeRunes(m, "q")
	if strings.Contains(m.View(), "Start typing") {
		t.Error("placeholder shown after typing")
	}
}
