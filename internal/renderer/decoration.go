package renderer

import (
	"fmt"
	"math/rand/v2"
)

// Decoration is the single ornament added on top of a shape's strokes.
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationDots
	DecorationRadiating
	DecorationCircle
	DecorationCrosses
	DecorationInnerShape
	DecorationSerifs
	DecorationStrokes
)

var decorationNames = map[Decoration]string{
	DecorationNone:       "none",
	DecorationDots:       "dots",
	DecorationRadiating:  "radiating",
	DecorationCircle:     "circle",
	DecorationCrosses:    "crosses",
	DecorationInnerShape: "inner-shape",
	DecorationSerifs:     "serifs",
	DecorationStrokes:    "strokes",
}

func (d Decoration) String() string {
	if name, ok := decorationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Decoration(%d)", int(d))
}

// WeightedDecoration is one row of a decoration policy.
type WeightedDecoration struct {
	Decoration Decoration
	Weight     int
}

// Policy is a weighted table the renderer draws one decoration from.
type Policy []WeightedDecoration

// DefaultPolicy favours plain and lightly ornamented symbols.
func DefaultPolicy() Policy {
	return Policy{
		{DecorationNone, 4},
		{DecorationDots, 2},
		{DecorationSerifs, 2},
		{DecorationStrokes, 1},
		{DecorationRadiating, 1},
		{DecorationCircle, 1},
		{DecorationCrosses, 1},
		{DecorationInnerShape, 1},
	}
}

// Validate checks that every weight is non-negative, every decoration is
// known, and that "none" can be drawn.
func (p Policy) Validate() error {
	noneWeight := 0
	for _, row := range p {
		if _, ok := decorationNames[row.Decoration]; !ok {
			return fmt.Errorf("unknown decoration %d", int(row.Decoration))
		}
		if row.Weight < 0 {
			return fmt.Errorf("negative weight %d for decoration %s", row.Weight, row.Decoration)
		}
		if row.Decoration == DecorationNone {
			noneWeight += row.Weight
		}
	}
	if noneWeight == 0 {
		return fmt.Errorf("decoration policy must give %q a nonzero weight", DecorationNone)
	}
	return nil
}

// Pick draws a decoration with probability proportional to its weight.
func (p Policy) Pick(rng *rand.Rand) Decoration {
	total := 0
	for _, row := range p {
		total += row.Weight
	}
	if total <= 0 {
		return DecorationNone
	}

	n := rng.IntN(total)
	for _, row := range p {
		if n < row.Weight {
			return row.Decoration
		}
		n -= row.Weight
	}
	return DecorationNone
}
