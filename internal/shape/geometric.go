package shape

import (
	"math"
	"math/rand/v2"
)

// Geometric families. Every point is placed at most Half() from the center,
// which keeps it inside the margin box.

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intRange returns an integer in [lo, hi].
func intRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func polar(c Canvas, r, angle float64) Point {
	return Point{
		X: c.Center + math.Cos(angle)*r,
		Y: c.Center + math.Sin(angle)*r,
	}
}

// rotate turns the offset (dx, dy) by angle and anchors it at the center.
func rotate(c Canvas, dx, dy, angle float64) Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point{
		X: c.Center + dx*cos - dy*sin,
		Y: c.Center + dx*sin + dy*cos,
	}
}

// genStar: 5-8 tips, outer radius 0.7-1.0 of Half, inner radius 0.35-0.6 of
// outer, random rotation. Closed.
func genStar(rng *rand.Rand, c Canvas) ([]Point, bool) {
	tips := intRange(rng, 5, 8)
	outer := c.Half() * uniform(rng, 0.7, 1.0)
	inner := outer * uniform(rng, 0.35, 0.6)
	rot := uniform(rng, 0, 2*math.Pi)

	points := make([]Point, 0, tips*2)
	step := math.Pi / float64(tips)
	for i := 0; i < tips*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		points = append(points, polar(c, r, rot+float64(i)*step))
	}
	return points, true
}

// genPolygon: 3-8 sides, radius 0.6-1.0 of Half, each vertex jittered
// radially by 0.85-1.0. Closed.
func genPolygon(rng *rand.Rand, c Canvas) ([]Point, bool) {
	sides := intRange(rng, 3, 8)
	radius := c.Half() * uniform(rng, 0.6, 1.0)
	rot := uniform(rng, 0, 2*math.Pi)

	points := make([]Point, sides)
	for i := range points {
		angle := rot + float64(i)*2*math.Pi/float64(sides)
		points[i] = polar(c, radius*uniform(rng, 0.85, 1.0), angle)
	}
	return points, true
}

// genSpiral: 30-40 points over 1.5-3 turns, radius growing from 0.05-0.15 to
// 0.7-1.0 of Half, either winding direction. Open.
func genSpiral(rng *rand.Rand, c Canvas) ([]Point, bool) {
	n := intRange(rng, 30, 40)
	turns := uniform(rng, 1.5, 3)
	r0 := c.Half() * uniform(rng, 0.05, 0.15)
	r1 := c.Half() * uniform(rng, 0.7, 1.0)
	rot := uniform(rng, 0, 2*math.Pi)
	dir := 1.0
	if rng.IntN(2) == 0 {
		dir = -1
	}

	points := make([]Point, n)
	for i := range points {
		t := float64(i) / float64(n-1)
		points[i] = polar(c, r0+(r1-r0)*t, rot+dir*turns*2*math.Pi*t)
	}
	return points, false
}

// genCross: four arms of 0.5-1.0 of Half each, rotated 0-π/2, traced as
// tip, center, tip, center, ... Open.
func genCross(rng *rand.Rand, c Canvas) ([]Point, bool) {
	rot := uniform(rng, 0, math.Pi/2)
	center := Point{X: c.Center, Y: c.Center}

	points := make([]Point, 0, 7)
	for arm := 0; arm < 4; arm++ {
		if arm > 0 {
			points = append(points, center)
		}
		length := c.Half() * uniform(rng, 0.5, 1.0)
		points = append(points, polar(c, length, rot+float64(arm)*math.Pi/2))
	}
	return points, false
}

// genWaveCircle: 36-40 points on a circle of 0.5-0.75 of Half modulated by a
// sine of 3-8 lobes with amplitude 0.1-0.3 of the radius. Closed.
func genWaveCircle(rng *rand.Rand, c Canvas) ([]Point, bool) {
	n := intRange(rng, 36, 40)
	radius := c.Half() * uniform(rng, 0.5, 0.75)
	amp := radius * uniform(rng, 0.1, 0.3)
	lobes := float64(intRange(rng, 3, 8))
	phase := uniform(rng, 0, 2*math.Pi)

	points := make([]Point, n)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / float64(n)
		r := radius + amp*math.Sin(lobes*angle+phase)
		points[i] = polar(c, r, angle)
	}
	return points, true
}

// genDiamond: half-width 0.4-0.8 and half-height 0.7-1.0 of Half, tilted by
// up to ±π/8. Closed.
func genDiamond(rng *rand.Rand, c Canvas) ([]Point, bool) {
	a := c.Half() * uniform(rng, 0.4, 0.8)
	b := c.Half() * uniform(rng, 0.7, 1.0)
	tilt := uniform(rng, -math.Pi/8, math.Pi/8)

	return []Point{
		rotate(c, 0, -b, tilt),
		rotate(c, a, 0, tilt),
		rotate(c, 0, b, tilt),
		rotate(c, -a, 0, tilt),
	}, true
}

// genZigzag: 4-9 segments across a half-width of 0.5-0.8 of Half with
// amplitude 0.15-0.55 of Half, rotated 0-π. Open.
func genZigzag(rng *rand.Rand, c Canvas) ([]Point, bool) {
	segments := intRange(rng, 4, 9)
	w := c.Half() * uniform(rng, 0.5, 0.8)
	amp := c.Half() * uniform(rng, 0.15, 0.55)
	rot := uniform(rng, 0, math.Pi)

	points := make([]Point, segments+1)
	for i := range points {
		dx := -w + 2*w*float64(i)/float64(segments)
		dy := amp
		if i%2 == 1 {
			dy = -amp
		}
		points[i] = rotate(c, dx, dy, rot)
	}
	return points, false
}
