package keyboard

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/linuxmatters/glyphforge/internal/config"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Input area geometry on the sheet
const (
	inputMargin = 50  // Box inset from the top and sides
	inputHeight = 300 // Box height
	textOrigin  = 60  // First symbol position inside the box
	glyphGap    = 5   // Horizontal gap between typed symbols
	borderWidth = 2
)

var (
	sheetBackground = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	keyColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pressedColor    = color.RGBA{R: 200, G: 220, B: 255, A: 255}
	lineColor       = color.RGBA{A: 255}
)

// Sheet draws the keyboard window as a still image: the text input box with
// typed symbols above the key rows and the space bar.
type Sheet struct {
	symbols Symbols
	mapping *Mapping
	face    font.Face
}

// NewSheet prepares a sheet using the Go Regular font for key labels.
func NewSheet(symbols Symbols, m *Mapping) (*Sheet, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    config.SheetFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return &Sheet{symbols: symbols, mapping: m, face: face}, nil
}

// Close releases the font face.
func (s *Sheet) Close() error {
	return s.face.Close()
}

// Render draws text into the input box and highlights the pressed keys.
// A pressed space bar is keyed by ' '.
func (s *Sheet) Render(text string, pressed map[rune]bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, config.SheetWidth, config.SheetHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	box := InputRect()
	fillRect(img, box, keyColor)
	strokeRect(img, box, lineColor)
	s.drawText(img.SubImage(box.Inset(borderWidth)).(*image.RGBA), text)

	rows := s.mapping.Rows()
	for row, keys := range rows {
		for col, key := range keys {
			r := KeyRect(row, col, len(keys))
			s.drawKey(img, r, pressed[key])

			if i, ok := s.mapping.Index(key); ok {
				if sym, ok := s.symbols[i]; ok {
					drawCentered(img, r, sym)
				}
			}
			s.drawLabel(img, r, string(key), r.Max.Y-4)
		}
	}

	space := SpaceBarRect(len(rows))
	s.drawKey(img, space, pressed[' '])
	ascent := s.face.Metrics().Ascent.Ceil()
	s.drawLabel(img, space, "SPACE", space.Min.Y+(space.Dy()+ascent)/2)

	return img
}

// drawText lays out typed symbols line by line, wrapping again when a line
// overflows the box. Unmapped characters are skipped.
func (s *Sheet) drawText(dst *image.RGBA, text string) {
	maxX := config.SheetWidth - 2*textOrigin
	y := textOrigin

	for _, line := range WrapText(text, config.TextWrapWidth) {
		x := textOrigin
		for _, r := range line {
			if r == ' ' {
				x += config.KeySize / 2
				continue
			}
			i, ok := s.mapping.Index(r)
			if !ok {
				continue
			}
			sym, ok := s.symbols[i]
			if !ok {
				continue
			}

			w, h := sym.Bounds().Dx(), sym.Bounds().Dy()
			if x+w > maxX {
				x = textOrigin
				y += config.KeySize
			}
			draw.Draw(dst, image.Rect(x, y, x+w, y+h), sym, sym.Bounds().Min, draw.Over)
			x += w + glyphGap
		}
		y += config.KeySize
	}
}

func (s *Sheet) drawKey(img *image.RGBA, r image.Rectangle, pressed bool) {
	c := keyColor
	if pressed {
		c = pressedColor
	}
	fillRect(img, r, c)
	strokeRect(img, r, lineColor)
}

// drawLabel centres text horizontally in r with its baseline at baseline
func (s *Sheet) drawLabel(img *image.RGBA, r image.Rectangle, text string, baseline int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(lineColor),
		Face: s.face,
	}
	bounds, _ := d.BoundString(text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()

	d.Dot = freetype.Pt(r.Min.X+(r.Dx()-textWidth)/2, baseline)
	d.DrawString(text)
}

// InputRect is the text input box.
func InputRect() image.Rectangle {
	return image.Rect(inputMargin, inputMargin, config.SheetWidth-inputMargin, inputMargin+inputHeight)
}

// KeyRect is the square for key col of a row holding rowLen keys. Rows are
// centred horizontally.
func KeyRect(row, col, rowLen int) image.Rectangle {
	pitch := config.KeySize + config.KeySpacing
	x := (config.SheetWidth-rowLen*pitch)/2 + col*pitch
	y := config.SheetKeysTop + row*pitch
	return image.Rect(x, y, x+config.KeySize, y+config.KeySize)
}

// SpaceBarRect is the centred space bar below the given number of rows.
func SpaceBarRect(row int) image.Rectangle {
	x := (config.SheetWidth - config.SpaceBarWidth) / 2
	y := config.SheetKeysTop + row*(config.KeySize+config.KeySpacing)
	return image.Rect(x, y, x+config.SpaceBarWidth, y+config.KeySize)
}

// WrapText breaks text into lines of at most width characters, preferring
// word boundaries and splitting words longer than a line.
func WrapText(text string, width int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lines := strings.Split(ansi.Wrap(text, width, ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func drawCentered(img *image.RGBA, r image.Rectangle, src *image.RGBA) {
	b := src.Bounds()
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2
	draw.Draw(img, image.Rect(x, y, x+b.Dx(), y+b.Dy()), src, b.Min, draw.Over)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+borderWidth), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-borderWidth, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+borderWidth, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-borderWidth, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// SaveSheet writes the sheet image to a PNG file.
func SaveSheet(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode sheet: %w", err)
	}
	return f.Close()
}
