package symbol

import (
	"image"
	"image/color"

	"github.com/rivo/duplo"
)

const (
	// inkGrid is the side of the ink mask in cells.
	inkGrid = 32
	// inkCellPixels is the side of one mask cell in the image handed to duplo.
	inkCellPixels = 4
	// inkThreshold is the smallest per-channel difference from the background
	// that counts as ink. Faint antialiasing stays below it.
	inkThreshold = 64
	// maskTolerance bounds how many cells two near duplicates may disagree
	// on: at most 1/maskTolerance of the cells inked in either mask.
	maskTolerance = 8
)

// WithNearDuplicates makes the guard also reject candidates whose ink lands
// on almost the same cells as an accepted symbol. Symbols are thin ink on a
// flat background, so both duplo's difference hash and the final comparison
// run on a coarse ink mask rather than the raw pixels. A candidate is a near
// duplicate when the difference hashes of the masks are within maxDistance
// bits and the masks themselves differ on at most one cell in maskTolerance.
func WithNearDuplicates(maxDistance int) GuardOption {
	return func(g *Guard) {
		g.similar = &similarity{
			store:       duplo.New(),
			masks:       make(map[Hash]*inkMask),
			maxDistance: maxDistance,
		}
	}
}

type fingerprint struct {
	hash duplo.Hash
	mask *inkMask
}

// similarity indexes accepted symbols by the wavelet signature of their ink
// mask. Guard serialises access.
type similarity struct {
	store       *duplo.Store
	masks       map[Hash]*inkMask
	maxDistance int
}

func (s *similarity) fingerprint(img image.Image) fingerprint {
	mask := newInkMask(img)
	h, _ := duplo.CreateHash(mask.image())
	return fingerprint{hash: h, mask: mask}
}

func (s *similarity) near(fp fingerprint) bool {
	for _, m := range s.store.Query(fp.hash) {
		if m.DHashDistance > s.maxDistance {
			continue
		}
		id, ok := m.ID.(Hash)
		if !ok {
			continue
		}
		if other := s.masks[id]; other != nil && fp.mask.similar(other) {
			return true
		}
	}
	return false
}

func (s *similarity) add(h Hash, fp fingerprint) {
	s.store.Add(h, fp.hash)
	s.masks[h] = fp.mask
}

// inkMask marks the grid cells that hold any ink.
type inkMask [inkGrid * inkGrid]bool

// newInkMask reads the background from the top-left pixel, which always
// lies in the blank margin, and marks every cell containing a pixel that
// differs from it by at least inkThreshold on some channel.
func newInkMask(img image.Image) *inkMask {
	var m inkMask
	b := img.Bounds()
	if b.Empty() {
		return &m
	}
	bg := color.RGBAModel.Convert(img.At(b.Min.X, b.Min.Y)).(color.RGBA)
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		row := y * inkGrid / h * inkGrid
		for x := 0; x < w; x++ {
			cell := row + x*inkGrid/w
			if m[cell] {
				continue
			}
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			if channelDiff(c.R, bg.R) >= inkThreshold ||
				channelDiff(c.G, bg.G) >= inkThreshold ||
				channelDiff(c.B, bg.B) >= inkThreshold {
				m[cell] = true
			}
		}
	}
	return &m
}

func channelDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// image draws the mask as white blocks on black.
func (m *inkMask) image() *image.Gray {
	side := inkGrid * inkCellPixels
	img := image.NewGray(image.Rect(0, 0, side, side))
	for cell, inked := range m {
		if !inked {
			continue
		}
		cx, cy := cell%inkGrid*inkCellPixels, cell/inkGrid*inkCellPixels
		for y := cy; y < cy+inkCellPixels; y++ {
			for x := cx; x < cx+inkCellPixels; x++ {
				img.Pix[y*img.Stride+x] = 0xff
			}
		}
	}
	return img
}

// similar reports whether the masks disagree on at most one in
// maskTolerance of the cells inked in either of them.
func (m *inkMask) similar(other *inkMask) bool {
	var union, diff int
	for i := range m {
		if m[i] || other[i] {
			union++
		}
		if m[i] != other[i] {
			diff++
		}
	}
	if union == 0 {
		return true
	}
	return diff*maskTolerance <= union
}
