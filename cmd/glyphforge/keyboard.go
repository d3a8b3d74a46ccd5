package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/glyphforge/internal/cli"
	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/keyboard"
	"github.com/linuxmatters/glyphforge/internal/ui"
)

type KeyboardCmd struct {
	Dir   string `help:"Directory holding symbol_N.png files" default:"generated_symbols" type:"path"`
	Count int    `help:"Number of symbols to load" default:"28"`
}

func (c *KeyboardCmd) Run() error {
	m := keyboard.DefaultMapping()
	symbols, err := loadSymbols(c.Dir, c.Count, m)
	if err != nil {
		return err
	}

	model := ui.NewKeyboardModel(symbols, m)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}

	if text := model.Text(); text != "" {
		cli.PrintInfo("Typed", text)
	}
	return nil
}

type SheetCmd struct {
	Dir     string `help:"Directory holding symbol_N.png files" default:"generated_symbols" type:"path"`
	Count   int    `help:"Number of symbols to load" default:"28"`
	Out     string `help:"Output PNG file" default:"keyboard.png" type:"path"`
	Text    string `help:"Text to show in the input box"`
	Pressed string `help:"Letters to draw as pressed keys"`
}

func (c *SheetCmd) Run() error {
	m := keyboard.DefaultMapping()
	symbols, err := loadSymbols(c.Dir, c.Count, m)
	if err != nil {
		return err
	}

	sheet, err := keyboard.NewSheet(symbols, m)
	if err != nil {
		return err
	}
	defer sheet.Close()

	pressed := make(map[rune]bool)
	for _, r := range strings.ToUpper(c.Pressed) {
		pressed[r] = true
	}

	if err := keyboard.SaveSheet(sheet.Render(c.Text, pressed), c.Out); err != nil {
		return fmt.Errorf("failed to save sheet: %w", err)
	}

	cli.PrintSuccess("Keyboard sheet written to " + c.Out)
	return nil
}

// loadSymbols loads key-sized symbols, pointing at the generate command
// when they are missing
func loadSymbols(dir string, count int, m *keyboard.Mapping) (keyboard.Symbols, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid count: %d (must be at least 1)", count)
	}

	symbols, err := keyboard.LoadSymbols(dir, count, m, config.KeySize)
	if errors.Is(err, keyboard.ErrAssetsMissing) {
		return nil, fmt.Errorf("%w (generate them with: glyphforge generate --output-dir %s)", err, dir)
	}
	return symbols, err
}
