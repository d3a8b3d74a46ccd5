package renderer

import (
	"math"

	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/shape"
)

// Line is a round-capped stroke.
type Line struct {
	From, To shape.Point
	Width    float64
}

// Dot is a filled disc.
type Dot struct {
	Center shape.Point
	Radius float64
}

// Plan is everything that will be drawn for one candidate. All randomness is
// resolved while planning so painting the same plan twice gives identical
// pixels.
type Plan struct {
	Shape      shape.Shape
	Decoration Decoration
	Lines      []Line
	Dots       []Dot
}

const (
	ornamentWidth = 2
	circleSteps   = 48
)

// Plan draws stroke widths and a decoration for s.
func (r *Renderer) Plan(s shape.Shape) Plan {
	p := Plan{Shape: s}
	for _, e := range s.Edges() {
		p.Lines = append(p.Lines, Line{From: e[0], To: e[1], Width: r.strokeWidth()})
	}

	p.Decoration = r.policy.Pick(r.rng)
	switch p.Decoration {
	case DecorationDots:
		r.planDots(&p)
	case DecorationRadiating:
		r.planRadiating(&p)
	case DecorationCircle:
		r.planCircle(&p)
	case DecorationCrosses:
		r.planCrosses(&p)
	case DecorationInnerShape:
		r.planInnerShape(&p)
	case DecorationSerifs:
		r.planSerifs(&p)
	case DecorationStrokes:
		r.planStrokes(&p)
	}
	return p
}

func (r *Renderer) strokeWidth() float64 {
	return float64(config.MinStrokeWidth + r.rng.IntN(config.MaxStrokeWidth-config.MinStrokeWidth+1))
}

// sample returns k distinct points of pts in random order, at least one.
func (r *Renderer) sample(pts []shape.Point, k int) []shape.Point {
	if k < 1 {
		k = 1
	}
	if k > len(pts) {
		k = len(pts)
	}
	out := make([]shape.Point, k)
	for i, j := range r.rng.Perm(len(pts))[:k] {
		out[i] = pts[j]
	}
	return out
}

func (r *Renderer) uniform(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// planDots: a third of the vertices get a dot of radius 3-6.
func (r *Renderer) planDots(p *Plan) {
	for _, v := range r.sample(p.Shape.Points, len(p.Shape.Points)/3) {
		p.Dots = append(p.Dots, Dot{Center: v, Radius: float64(3 + r.rng.IntN(4))})
	}
}

// planRadiating: 4-12 evenly spaced rays from the canvas center, 0.08-0.2 of
// the effective size long.
func (r *Renderer) planRadiating(p *Plan) {
	rays := 4 + r.rng.IntN(9)
	length := r.canvas.Effective * r.uniform(0.08, 0.2)
	rot := r.uniform(0, 2*math.Pi)
	center := shape.Point{X: r.canvas.Center, Y: r.canvas.Center}

	for i := 0; i < rays; i++ {
		angle := rot + float64(i)*2*math.Pi/float64(rays)
		p.Lines = append(p.Lines, Line{
			From:  center,
			To:    shape.Point{X: center.X + math.Cos(angle)*length, Y: center.Y + math.Sin(angle)*length},
			Width: ornamentWidth,
		})
	}
}

// planCircle: a circle of 0.15-0.35 of Half around the canvas center.
func (r *Renderer) planCircle(p *Plan) {
	radius := r.canvas.Half() * r.uniform(0.15, 0.35)
	width := float64(2 + r.rng.IntN(3))
	c := r.canvas.Center

	prev := shape.Point{X: c + radius, Y: c}
	for i := 1; i <= circleSteps; i++ {
		angle := float64(i) * 2 * math.Pi / circleSteps
		next := shape.Point{X: c + math.Cos(angle)*radius, Y: c + math.Sin(angle)*radius}
		p.Lines = append(p.Lines, Line{From: prev, To: next, Width: width})
		prev = next
	}
}

// planCrosses: half of the vertices get a small cross, arm 6-12, turned
// 0-π/2.
func (r *Renderer) planCrosses(p *Plan) {
	for _, v := range r.sample(p.Shape.Points, len(p.Shape.Points)/2) {
		arm := float64(6 + r.rng.IntN(7))
		rot := r.uniform(0, math.Pi/2)
		for _, angle := range []float64{rot, rot + math.Pi/2} {
			dx, dy := math.Cos(angle)*arm, math.Sin(angle)*arm
			p.Lines = append(p.Lines, Line{
				From:  shape.Point{X: v.X - dx, Y: v.Y - dy},
				To:    shape.Point{X: v.X + dx, Y: v.Y + dy},
				Width: ornamentWidth,
			})
		}
	}
}

// planInnerShape: the shape again, scaled 0.3-0.6 about its centroid.
func (r *Renderer) planInnerShape(p *Plan) {
	inner := p.Shape.Scale(r.uniform(0.3, 0.6))
	for _, e := range inner.Edges() {
		p.Lines = append(p.Lines, Line{From: e[0], To: e[1], Width: ornamentWidth})
	}
}

// planSerifs: half of the edge midpoints get a short bar of half-length
// 5-15 at a random angle.
func (r *Renderer) planSerifs(p *Plan) {
	edges := p.Shape.Edges()
	mids := make([]shape.Point, len(edges))
	for i, e := range edges {
		mids[i] = shape.Point{X: (e[0].X + e[1].X) / 2, Y: (e[0].Y + e[1].Y) / 2}
	}

	half := float64(5 + r.rng.IntN(11))
	for _, m := range r.sample(mids, len(mids)/2) {
		angle := r.uniform(0, math.Pi)
		dx, dy := math.Cos(angle)*half, math.Sin(angle)*half
		p.Lines = append(p.Lines, Line{
			From:  shape.Point{X: m.X - dx, Y: m.Y - dy},
			To:    shape.Point{X: m.X + dx, Y: m.Y + dy},
			Width: ornamentWidth,
		})
	}
}

// planStrokes: a third of the vertices sprout a flick of length up to 10-20
// in a random direction.
func (r *Renderer) planStrokes(p *Plan) {
	length := float64(10 + r.rng.IntN(11))
	for _, v := range r.sample(p.Shape.Points, len(p.Shape.Points)/3) {
		p.Lines = append(p.Lines, Line{
			From:  v,
			To:    shape.Point{X: v.X + r.uniform(-1, 1)*length, Y: v.Y + r.uniform(-1, 1)*length},
			Width: ornamentWidth,
		})
	}
}
