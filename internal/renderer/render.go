// Package renderer rasterises shapes and their decorations onto symbol
// canvases.
package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand/v2"

	"github.com/golang/freetype/raster"
	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/shape"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Candidate is one rendered symbol awaiting the uniqueness check.
type Candidate struct {
	Image      *image.RGBA
	Family     shape.Family
	Decoration Decoration
}

// Renderer turns shapes into candidate images
type Renderer struct {
	rng        *rand.Rand
	canvas     shape.Canvas
	size       int
	ink        color.RGBA
	background color.RGBA
	policy     Policy
}

// NewRenderer creates a renderer for canvas using the colours in cfg and the
// default decoration policy.
func NewRenderer(rng *rand.Rand, canvas shape.Canvas, cfg *config.RuntimeConfig) *Renderer {
	if cfg == nil {
		cfg = &config.RuntimeConfig{}
	}
	return &Renderer{
		rng:        rng,
		canvas:     canvas,
		size:       int(canvas.Size),
		ink:        cfg.Ink(),
		background: cfg.Background(),
		policy:     DefaultPolicy(),
	}
}

// SetPolicy replaces the decoration policy.
func (r *Renderer) SetPolicy(p Policy) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.policy = append(Policy(nil), p...)
	return nil
}

// Render plans and paints s.
func (r *Renderer) Render(s shape.Shape) Candidate {
	plan := r.Plan(s)
	return Candidate{
		Image:      r.Paint(plan),
		Family:     s.Family,
		Decoration: plan.Decoration,
	}
}

// minStrokeLength is the shortest line the stroker is given; shorter lines
// are drawn as dots.
const minStrokeLength = 0.5

// Paint rasterises plan onto a fresh canvas. It has no randomness.
func (r *Renderer) Paint(plan Plan) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	ras := raster.NewRasterizer(r.size, r.size)
	ras.UseNonZeroWinding = true
	painter := raster.NewRGBAPainter(img)
	painter.SetColor(r.ink)

	dots := append([]Dot(nil), plan.Dots...)
	for _, l := range plan.Lines {
		if math.Hypot(l.To.X-l.From.X, l.To.Y-l.From.Y) < minStrokeLength {
			dots = append(dots, Dot{Center: l.From, Radius: l.Width / 2})
			continue
		}

		ras.Clear()
		var path raster.Path
		path.Start(toFixed(l.From))
		path.Add1(toFixed(l.To))
		ras.AddStroke(path, fixed.Int26_6(l.Width*64), raster.RoundCapper, raster.RoundJoiner)
		ras.Rasterize(painter)
	}

	if len(dots) > 0 {
		r.fillDots(img, dots)
	}
	return img
}

func (r *Renderer) fillDots(img *image.RGBA, dots []Dot) {
	z := vector.NewRasterizer(r.size, r.size)
	src := image.NewUniform(r.ink)

	const steps = 32
	for _, d := range dots {
		z.Reset(r.size, r.size)
		z.MoveTo(float32(d.Center.X+d.Radius), float32(d.Center.Y))
		for i := 1; i < steps; i++ {
			angle := float64(i) * 2 * math.Pi / steps
			z.LineTo(
				float32(d.Center.X+math.Cos(angle)*d.Radius),
				float32(d.Center.Y+math.Sin(angle)*d.Radius),
			)
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), src, image.Point{})
	}
}

func toFixed(p shape.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}
