package symbol

import (
	"errors"
	"fmt"

	"github.com/linuxmatters/glyphforge/internal/renderer"
	"github.com/linuxmatters/glyphforge/internal/shape"
)

// ErrExhaustedAttempts is matched by errors.Is when every candidate of one
// symbol collided with an accepted hash.
var ErrExhaustedAttempts = errors.New("exhausted attempts")

// ExhaustedAttemptsError reports how many candidates were rejected.
type ExhaustedAttemptsError struct {
	Attempts int
}

func (e *ExhaustedAttemptsError) Error() string {
	return fmt.Sprintf("failed to generate a unique symbol after %d attempts", e.Attempts)
}

func (e *ExhaustedAttemptsError) Is(target error) bool {
	return target == ErrExhaustedAttempts
}

// Source produces fresh candidates.
type Source interface {
	Candidate() renderer.Candidate
}

// ShapeSource renders a random shape per candidate.
type ShapeSource struct {
	Shapes   *shape.Generator
	Renderer *renderer.Renderer
}

// Candidate generates and renders one shape.
func (s *ShapeSource) Candidate() renderer.Candidate {
	return s.Renderer.Render(s.Shapes.Random())
}

// Generator runs candidates from a source through a guard until one is
// unique.
type Generator struct {
	source Source
	guard  *Guard
}

// NewGenerator wires a candidate source to a uniqueness guard.
func NewGenerator(source Source, guard *Guard) *Generator {
	return &Generator{source: source, guard: guard}
}

// Guard returns the generator's uniqueness guard.
func (g *Generator) Guard() *Guard {
	return g.guard
}

// Symbol is an accepted candidate.
type Symbol struct {
	renderer.Candidate
	Hash     Hash
	Attempts int // Candidates drawn, including the accepted one
}

// GenerateUnique draws up to maxAttempts candidates and returns the first
// one the guard accepts. After maxAttempts rejections it returns an
// *ExhaustedAttemptsError.
func (g *Generator) GenerateUnique(maxAttempts int) (Symbol, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		c := g.source.Candidate()
		if h, ok := g.guard.Admit(c.Image); ok {
			return Symbol{Candidate: c, Hash: h, Attempts: attempt}, nil
		}
	}
	return Symbol{}, &ExhaustedAttemptsError{Attempts: maxAttempts}
}
