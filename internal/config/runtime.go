package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RuntimeConfig holds user overrides for the compile-time defaults.
// Nil or zero fields fall back to the constants in this package.
type RuntimeConfig struct {
	InkColorR *uint8
	InkColorG *uint8
	InkColorB *uint8

	BackgroundColorR *uint8
	BackgroundColorG *uint8
	BackgroundColorB *uint8

	Size        int
	HashSize    int
	MaxAttempts int
}

// ParseHexColor parses "RRGGBB" or "#RRGGBB" into its components.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// SetInkColor applies a hex colour override for strokes.
func (c *RuntimeConfig) SetInkColor(hex string) error {
	r, g, b, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	c.InkColorR, c.InkColorG, c.InkColorB = &r, &g, &b
	return nil
}

// SetBackgroundColor applies a hex colour override for the canvas fill.
func (c *RuntimeConfig) SetBackgroundColor(hex string) error {
	r, g, b, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	c.BackgroundColorR, c.BackgroundColorG, c.BackgroundColorB = &r, &g, &b
	return nil
}

// GetInkColor returns the ink override, or the default unless all three
// components are set.
func (c *RuntimeConfig) GetInkColor() (r, g, b uint8) {
	if c.InkColorR != nil && c.InkColorG != nil && c.InkColorB != nil {
		return *c.InkColorR, *c.InkColorG, *c.InkColorB
	}
	return InkColorR, InkColorG, InkColorB
}

// GetBackgroundColor returns the background override, or the default unless
// all three components are set.
func (c *RuntimeConfig) GetBackgroundColor() (r, g, b uint8) {
	if c.BackgroundColorR != nil && c.BackgroundColorG != nil && c.BackgroundColorB != nil {
		return *c.BackgroundColorR, *c.BackgroundColorG, *c.BackgroundColorB
	}
	return BackgroundColorR, BackgroundColorG, BackgroundColorB
}

// Ink returns the ink colour as an opaque RGBA value.
func (c *RuntimeConfig) Ink() color.RGBA {
	r, g, b := c.GetInkColor()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Background returns the background colour as an opaque RGBA value.
func (c *RuntimeConfig) Background() color.RGBA {
	r, g, b := c.GetBackgroundColor()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// GetSize returns the canvas size override or Size.
func (c *RuntimeConfig) GetSize() int {
	if c.Size > 0 {
		return c.Size
	}
	return Size
}

// GetHashSize returns the hash resolution override or HashSize.
func (c *RuntimeConfig) GetHashSize() int {
	if c.HashSize > 0 {
		return c.HashSize
	}
	return HashSize
}

// GetMaxAttempts returns the retry cap override or MaxAttempts.
func (c *RuntimeConfig) GetMaxAttempts() int {
	if c.MaxAttempts > 0 {
		return c.MaxAttempts
	}
	return MaxAttempts
}
