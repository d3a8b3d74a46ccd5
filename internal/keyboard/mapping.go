// Package keyboard maps QWERTY letter keys to generated symbols and draws
// them as an on-screen keyboard.
package keyboard

import (
	"fmt"
	"unicode"

	"github.com/linuxmatters/glyphforge/internal/config"
)

// Mapping associates each letter key with a 1-based symbol index, assigned
// in row order. It is built once and never mutated.
type Mapping struct {
	rows    []string
	letters []rune
	index   map[rune]int
}

// NewMapping numbers the letters of rows from 1 upwards, top row first.
// Every key must be a distinct letter.
func NewMapping(rows []string) (*Mapping, error) {
	m := &Mapping{index: make(map[rune]int)}
	for _, row := range rows {
		var upper []rune
		for _, r := range row {
			if !unicode.IsLetter(r) {
				return nil, fmt.Errorf("key %q in row %q is not a letter", r, row)
			}
			r = unicode.ToUpper(r)
			if _, dup := m.index[r]; dup {
				return nil, fmt.Errorf("key %q appears more than once", r)
			}
			m.letters = append(m.letters, r)
			m.index[r] = len(m.letters)
			upper = append(upper, r)
		}
		m.rows = append(m.rows, string(upper))
	}
	if len(m.letters) == 0 {
		return nil, fmt.Errorf("keyboard layout has no keys")
	}
	return m, nil
}

// DefaultMapping returns the mapping for config.KeyRows.
func DefaultMapping() *Mapping {
	m, err := NewMapping(config.KeyRows)
	if err != nil {
		panic(err)
	}
	return m
}

// Index returns the symbol index for a key, ignoring case. The space key
// and anything outside the layout report false.
func (m *Mapping) Index(r rune) (int, bool) {
	i, ok := m.index[unicode.ToUpper(r)]
	return i, ok
}

// Letters returns the keys in index order.
func (m *Mapping) Letters() []rune {
	out := make([]rune, len(m.letters))
	copy(out, m.letters)
	return out
}

// Rows returns the upper-cased layout rows.
func (m *Mapping) Rows() []string {
	out := make([]string, len(m.rows))
	copy(out, m.rows)
	return out
}

// Len is the number of mapped keys, which is also the highest index.
func (m *Mapping) Len() int {
	return len(m.letters)
}
