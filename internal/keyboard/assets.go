package keyboard

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/symbol"
	"golang.org/x/image/draw"
)

// ErrAssetsMissing is matched by every *AssetsMissingError.
var ErrAssetsMissing = errors.New("symbol assets missing")

// AssetsMissingError reports an absent symbol directory (Index 0) or the
// first symbol index without a file.
type AssetsMissingError struct {
	Dir   string
	Index int
}

func (e *AssetsMissingError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("symbol directory %s not found", e.Dir)
	}
	return fmt.Sprintf("%s missing from %s", symbol.SymbolFilename(e.Index), e.Dir)
}

func (e *AssetsMissingError) Is(target error) bool {
	return target == ErrAssetsMissing
}

// Symbols holds key-sized symbol images by index.
type Symbols map[int]*image.RGBA

// LoadSymbols reads symbol_1..symbol_count from dir plus any index the
// mapping refers to beyond count, resizing each to keySize-KeyInset
// pixels square. Files that do not follow the naming scheme are ignored.
func LoadSymbols(dir string, count int, m *Mapping, keySize int) (Symbols, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &AssetsMissingError{Dir: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol directory: %w", err)
	}
	present := make(map[int]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if i, ok := symbol.ParseSymbolFilename(e.Name()); ok {
			present[i] = filepath.Join(dir, e.Name())
		}
	}

	need := count
	if m != nil && m.Len() > need {
		need = m.Len()
	}

	side := symbolSide(keySize)
	symbols := make(Symbols, need)
	for i := 1; i <= need; i++ {
		path, ok := present[i]
		if !ok {
			return nil, &AssetsMissingError{Dir: dir, Index: i}
		}
		img, err := loadSymbol(path, side)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		symbols[i] = img
	}
	return symbols, nil
}

func symbolSide(keySize int) int {
	side := keySize - config.KeyInset
	if side < 1 {
		side = 1
	}
	return side
}

// loadSymbol decodes a PNG and scales it to side x side
func loadSymbol(path string, side int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
