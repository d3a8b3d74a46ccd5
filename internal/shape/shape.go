// Package shape generates randomised point sequences from a registry of
// parametrised shape families.
package shape

import "github.com/linuxmatters/glyphforge/internal/config"

// Point is a position on the canvas in pixels.
type Point struct {
	X, Y float64
}

// Shape is an ordered sequence of points. Closed shapes are stroked with an
// extra edge from the last point back to the first.
type Shape struct {
	Family Family
	Points []Point
	Closed bool
}

// Edges returns the stroke segments of the shape in drawing order.
func (s Shape) Edges() [][2]Point {
	n := len(s.Points)
	if n < 2 {
		return nil
	}

	edges := make([][2]Point, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]Point{s.Points[i], s.Points[i+1]})
	}
	if s.Closed && n > 2 {
		edges = append(edges, [2]Point{s.Points[n-1], s.Points[0]})
	}
	return edges
}

// Canvas describes the drawing area shared by every family.
type Canvas struct {
	Size      float64 // Side of the square canvas
	Margin    float64 // Blank border on every edge
	Center    float64 // Center coordinate on both axes
	Effective float64 // Size - 2*Margin
}

// NewCanvas derives the canvas geometry for a square of the given side.
func NewCanvas(size int) Canvas {
	margin := size / config.MarginDivisor
	effective := float64(size - 2*margin)
	return Canvas{
		Size:      float64(size),
		Margin:    float64(margin),
		Center:    float64(margin) + effective/2,
		Effective: effective,
	}
}

// Half is the largest distance from the center a family may place a point
// on either axis.
func (c Canvas) Half() float64 {
	return c.Effective / 2
}

// Contains reports whether p lies on the canvas.
func (c Canvas) Contains(p Point) bool {
	return p.X >= 0 && p.X <= c.Size && p.Y >= 0 && p.Y <= c.Size
}

// InMargin reports whether p lies inside the margin box.
func (c Canvas) InMargin(p Point) bool {
	const eps = 1e-9
	lo, hi := c.Margin-eps, c.Size-c.Margin+eps
	return p.X >= lo && p.X <= hi && p.Y >= lo && p.Y <= hi
}

// Scale returns the shape scaled by factor about its centroid.
func (s Shape) Scale(factor float64) Shape {
	cx, cy := s.Centroid()
	points := make([]Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = Point{
			X: cx + (p.X-cx)*factor,
			Y: cy + (p.Y-cy)*factor,
		}
	}
	return Shape{Family: s.Family, Points: points, Closed: s.Closed}
}

// Centroid returns the mean of the shape's points.
func (s Shape) Centroid() (float64, float64) {
	if len(s.Points) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, p := range s.Points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(s.Points))
	return sx / n, sy / n
}
