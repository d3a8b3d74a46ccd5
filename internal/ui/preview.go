package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// PreviewConfig holds the size of a terminal symbol preview
type PreviewConfig struct {
	Width  int // Width in terminal cells
	Height int // Height in terminal cells; each cell shows two pixel rows
}

// DefaultPreviewConfig returns a square preview: 24 cells of 2 pixel rows
// each match 24 columns on a typical 1:2 terminal cell.
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Width:  24,
		Height: 12,
	}
}

// KeyPreviewConfig is the small preview drawn inside a key cap.
func KeyPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Width:  6,
		Height: 3,
	}
}

// DownsampleSymbol averages img into a grid of Width columns and 2*Height
// rows, one colour per half cell.
func DownsampleSymbol(img image.Image, config PreviewConfig) [][]color.RGBA {
	bounds := img.Bounds()
	rows := config.Height * 2
	cols := config.Width

	grid := make([][]color.RGBA, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]color.RGBA, cols)

		y0, y1 := span(bounds.Min.Y, bounds.Dy(), row, rows)
		for col := 0; col < cols; col++ {
			x0, x1 := span(bounds.Min.X, bounds.Dx(), col, cols)

			// Average all pixels in this cell region
			var sumR, sumG, sumB uint32
			pixelCount := 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					sumR += r >> 8
					sumG += g >> 8
					sumB += b >> 8
					pixelCount++
				}
			}

			if pixelCount > 0 {
				grid[row][col] = color.RGBA{
					R: uint8(sumR / uint32(pixelCount)),
					G: uint8(sumG / uint32(pixelCount)),
					B: uint8(sumB / uint32(pixelCount)),
					A: 255,
				}
			}
		}
	}

	return grid
}

// span returns the source pixel range for cell i of n along an axis,
// never empty even when the image is smaller than the grid.
func span(origin, length, i, n int) (int, int) {
	lo := origin + i*length/n
	hi := origin + (i+1)*length/n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// RenderPreview draws a grid from DownsampleSymbol with upper half blocks:
// the foreground carries the top pixel and the background the bottom one,
// both as ANSI 24-bit colours.
func RenderPreview(grid [][]color.RGBA) string {
	if len(grid) == 0 {
		return ""
	}

	var s strings.Builder
	for row := 0; row+1 < len(grid); row += 2 {
		if row > 0 {
			s.WriteString("\n")
		}
		top, bottom := grid[row], grid[row+1]
		for col := range top {
			t, b := top[col], bottom[col]
			fmt.Fprintf(&s, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m", t.R, t.G, t.B, b.R, b.G, b.B)
		}
	}
	return s.String()
}

// SymbolPreview is DownsampleSymbol followed by RenderPreview.
func SymbolPreview(img image.Image, config PreviewConfig) string {
	return RenderPreview(DownsampleSymbol(img, config))
}
