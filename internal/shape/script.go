package shape

import (
	"math"
	"math/rand/v2"
)

// Script families imitate strokes of writing systems. Ranges are fractions
// of the effective drawing size E; every family stays within E/2 of the
// center on both axes.

const bezierSamples = 20

// genCalligraphic: one cubic Bézier stroke sampled at 21 points. The start
// sits 0.3-0.4 E left and 0.2-0.3 E below the center; the control points
// climb right and fall back. Open.
func genCalligraphic(rng *rand.Rand, c Canvas) ([]Point, bool) {
	e := c.Effective
	sx := c.Center - e*uniform(rng, 0.3, 0.4)
	sy := c.Center + e*uniform(rng, 0.2, 0.3)

	ctrl := [4]Point{
		{sx, sy},
		{sx + e*uniform(rng, 0.125, 0.25), sy - e*uniform(rng, 0.125, 0.25)},
		{sx + e*uniform(rng, 0.375, 0.5), sy - e*uniform(rng, 0.375, 0.5)},
		{sx + e*uniform(rng, 0.625, 0.75), sy - e*uniform(rng, 0.125, 0.25)},
	}

	points := make([]Point, 0, bezierSamples+1)
	for i := 0; i <= bezierSamples; i++ {
		t := float64(i) / bezierSamples
		var x, y float64
		for k, p := range ctrl {
			w := bernstein(k, 3, t)
			x += p.X * w
			y += p.Y * w
		}
		points = append(points, Point{x, y})
	}
	return points, false
}

// bernstein returns the Bernstein basis polynomial b(i, n) at t.
func bernstein(i, n int, t float64) float64 {
	return float64(binomial(n, i)) * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}

// genRadical: 2-4 strokes of 0.2-0.35 E at angles within ±π/4, each starting
// 0.06-0.1 E right and 0.05-0.08 E above the previous. Open.
func genRadical(rng *rand.Rand, c Canvas) ([]Point, bool) {
	e := c.Effective
	strokes := intRange(rng, 2, 4)
	bx := c.Center - e*0.3
	by := c.Center + e*0.25

	points := make([]Point, 0, strokes*2)
	for i := 0; i < strokes; i++ {
		length := e * uniform(rng, 0.2, 0.35)
		angle := uniform(rng, -math.Pi/4, math.Pi/4)
		points = append(points,
			Point{bx, by},
			Point{bx + math.Cos(angle)*length, by - math.Sin(angle)*length},
		)
		bx += e * uniform(rng, 0.06, 0.1)
		by -= e * uniform(rng, 0.05, 0.08)
	}
	return points, false
}

// genFlowing: 8-12 points along a sine of 1-2 half periods with amplitude
// 0.1-0.2 E, spanning 0.6 E horizontally. Open.
func genFlowing(rng *rand.Rand, c Canvas) ([]Point, bool) {
	e := c.Effective
	n := intRange(rng, 8, 12)
	amp := e * uniform(rng, 0.1, 0.2)
	freq := uniform(rng, 1, 2)

	points := make([]Point, n)
	for i := range points {
		t := float64(i) / float64(n-1)
		points[i] = Point{
			X: c.Center - e*0.3 + t*e*0.6,
			Y: c.Center + amp*math.Sin(freq*math.Pi*t),
		}
	}
	return points, false
}

// genGlyph: 2-4 quadrilateral components of radius 0.15-0.25 E offset by up
// to ±0.2 E, vertex angles jittered by ±0.2 rad. Open.
func genGlyph(rng *rand.Rand, c Canvas) ([]Point, bool) {
	e := c.Effective
	components := intRange(rng, 2, 4)

	points := make([]Point, 0, components*4)
	for i := 0; i < components; i++ {
		size := e * uniform(rng, 0.15, 0.25)
		xo := e * uniform(rng, -0.2, 0.2)
		yo := e * uniform(rng, -0.2, 0.2)
		for k := 0; k < 4; k++ {
			angle := float64(k)*math.Pi/2 + uniform(rng, -0.2, 0.2)
			points = append(points, Point{
				X: c.Center + math.Cos(angle)*size + xo,
				Y: c.Center + math.Sin(angle)*size + yo,
			})
		}
	}
	return points, false
}

// genLogographic: 3-5 strokes of 0.3 E, each horizontal, vertical or at a
// random diagonal, offset by up to ±0.2 E. Open.
func genLogographic(rng *rand.Rand, c Canvas) ([]Point, bool) {
	e := c.Effective
	strokes := intRange(rng, 3, 5)
	half := e * 0.3 / 2

	points := make([]Point, 0, strokes*2)
	for i := 0; i < strokes; i++ {
		xo := e * uniform(rng, -0.2, 0.2)
		yo := e * uniform(rng, -0.2, 0.2)
		cx, cy := c.Center+xo, c.Center+yo

		var angle float64
		switch rng.IntN(3) {
		case 0: // horizontal
			angle = 0
		case 1: // vertical
			angle = math.Pi / 2
		default:
			angle = uniform(rng, 0, math.Pi)
		}
		dx, dy := math.Cos(angle)*half, math.Sin(angle)*half
		points = append(points, Point{cx - dx, cy - dy}, Point{cx + dx, cy + dy})
	}
	return points, false
}

// genPictographic: 3-6 elements around a ring of 0.25 E (scaled 0.8-1.2),
// angles jittered by ±0.2 rad; each element has an even chance of an inner
// connecting point at 0.7 of its radius. Closed.
func genPictographic(rng *rand.Rand, c Canvas) ([]Point, bool) {
	e := c.Effective
	elements := intRange(rng, 3, 6)
	radius := e * 0.25

	points := make([]Point, 0, elements*2)
	for i := 0; i < elements; i++ {
		angle := float64(i)*2*math.Pi/float64(elements) + uniform(rng, -0.2, 0.2)
		r := radius * uniform(rng, 0.8, 1.2)
		points = append(points, polar(c, r, angle))

		if rng.Float64() < 0.5 {
			points = append(points, polar(c, r*0.7, angle+math.Pi/float64(elements)))
		}
	}
	return points, true
}
