package shape

import (
	"fmt"
	"math/rand/v2"
)

// Generator produces random shapes from a fixed set of families.
type Generator struct {
	rng      *rand.Rand
	canvas   Canvas
	families []Family
}

// NewGenerator creates a generator drawing from families. An empty family
// list enables every registered family.
func NewGenerator(rng *rand.Rand, canvas Canvas, families ...Family) (*Generator, error) {
	if len(families) == 0 {
		families = Families()
	}
	for _, f := range families {
		if _, ok := registry[f]; !ok {
			return nil, fmt.Errorf("unregistered shape family %d", int(f))
		}
	}

	return &Generator{
		rng:      rng,
		canvas:   canvas,
		families: append([]Family(nil), families...),
	}, nil
}

// Canvas returns the canvas geometry shapes are generated for.
func (g *Generator) Canvas() Canvas {
	return g.canvas
}

// Families returns the families the generator draws from.
func (g *Generator) Families() []Family {
	return append([]Family(nil), g.families...)
}

// Random generates a shape from a family chosen uniformly at random.
func (g *Generator) Random() Shape {
	return g.Generate(g.families[g.rng.IntN(len(g.families))])
}

// Generate produces a fresh shape from family f.
func (g *Generator) Generate(f Family) Shape {
	entry, ok := registry[f]
	if !ok {
		panic(fmt.Sprintf("shape: unregistered family %d", int(f)))
	}

	points, closed := entry.fn(g.rng, g.canvas)
	if len(points) < 2 {
		panic(fmt.Sprintf("shape: family %s produced %d points", entry.name, len(points)))
	}
	return Shape{Family: f, Points: points, Closed: closed}
}
