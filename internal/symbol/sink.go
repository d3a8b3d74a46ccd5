package symbol

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/linuxmatters/glyphforge/internal/config"
)

// Sink stores accepted symbols under their 1-based index.
type Sink interface {
	Write(index int, img image.Image) (string, error)
}

// SymbolFilename returns the file name for symbol index i.
func SymbolFilename(i int) string {
	return config.SymbolPrefix + strconv.Itoa(i) + config.SymbolExt
}

// ParseSymbolFilename recovers the index from a name produced by
// SymbolFilename.
func ParseSymbolFilename(name string) (int, bool) {
	if !strings.HasPrefix(name, config.SymbolPrefix) || !strings.HasSuffix(name, config.SymbolExt) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, config.SymbolPrefix), config.SymbolExt)
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, false
	}
	i, err := strconv.Atoi(digits)
	if err != nil || i < 1 {
		return 0, false
	}
	return i, true
}

// DirSink writes symbols as PNG files into a directory.
type DirSink struct {
	Dir string
}

// NewDirSink creates dir if it does not exist.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &DirSink{Dir: dir}, nil
}

// Write encodes img to <Dir>/symbol_<index>.png and returns the path.
func (s *DirSink) Write(index int, img image.Image) (string, error) {
	path := filepath.Join(s.Dir, SymbolFilename(index))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
