package renderer

import (
	"bytes"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/linuxmatters/glyphforge/internal/config"
	"github.com/linuxmatters/glyphforge/internal/shape"
)

func newTestRenderer(seed uint64) *Renderer {
	return NewRenderer(rand.New(rand.NewPCG(seed, 1)), shape.NewCanvas(config.Size), &config.RuntimeConfig{})
}

func testShape() shape.Shape {
	return shape.Shape{
		Family: shape.Polygon,
		Points: []shape.Point{{X: 150, Y: 150}, {X: 350, Y: 150}, {X: 350, Y: 350}, {X: 150, Y: 350}},
		Closed: true,
	}
}

func TestPaint_Deterministic(t *testing.T) {
	r := newTestRenderer(1)
	for i := 0; i < 20; i++ {
		plan := r.Plan(testShape())
		a := r.Paint(plan)
		b := r.Paint(plan)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Fatalf("plan %d (%s): painting twice gave different pixels", i, plan.Decoration)
		}
	}
}

func TestRender_SameSeedSameImage(t *testing.T) {
	a := newTestRenderer(99).Render(testShape())
	b := newTestRenderer(99).Render(testShape())
	if a.Decoration != b.Decoration {
		t.Fatalf("decorations differ: %s vs %s", a.Decoration, b.Decoration)
	}
	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Error("renderers with the same seed produced different images")
	}
}

func TestPaint_BackgroundOnly(t *testing.T) {
	cfg := &config.RuntimeConfig{}
	if err := cfg.SetBackgroundColor("#102030"); err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(rand.New(rand.NewPCG(1, 1)), shape.NewCanvas(64), cfg)

	img := r.Paint(Plan{})
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("canvas bounds = %v, want 64x64", img.Bounds())
	}
	want := color.RGBA{0x10, 0x20, 0x30, 255}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPaint_StrokesAndDotsUseInk(t *testing.T) {
	r := newTestRenderer(1)
	img := r.Paint(Plan{
		Lines: []Line{{From: shape.Point{X: 100, Y: 250}, To: shape.Point{X: 400, Y: 250}, Width: 6}},
		Dots:  []Dot{{Center: shape.Point{X: 250, Y: 100}, Radius: 6}},
	})

	if got := img.RGBAAt(250, 250); got.R > 40 {
		t.Errorf("stroke centre pixel = %v, want near black", got)
	}
	if got := img.RGBAAt(250, 100); got.R > 40 {
		t.Errorf("dot centre pixel = %v, want near black", got)
	}
	if got := img.RGBAAt(250, 400); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("untouched pixel = %v, want white", got)
	}
}

func TestPaint_ZeroLengthLine(t *testing.T) {
	r := newTestRenderer(1)
	p := shape.Point{X: 200, Y: 200}
	img := r.Paint(Plan{Lines: []Line{{From: p, To: p, Width: 6}}})
	if got := img.RGBAAt(200, 200); got.R > 60 {
		t.Errorf("zero-length line pixel = %v, want an ink dot", got)
	}
}

func TestPlan_StrokeWidths(t *testing.T) {
	r := newTestRenderer(5)
	r.policy = Policy{{DecorationNone, 1}}

	s := testShape()
	for i := 0; i < 100; i++ {
		plan := r.Plan(s)
		if len(plan.Lines) != len(s.Edges()) {
			t.Fatalf("plan lines = %d, want %d", len(plan.Lines), len(s.Edges()))
		}
		for _, l := range plan.Lines {
			if l.Width < config.MinStrokeWidth || l.Width > config.MaxStrokeWidth {
				t.Fatalf("stroke width %v outside [%d, %d]", l.Width, config.MinStrokeWidth, config.MaxStrokeWidth)
			}
		}
	}
}

func TestPlan_Decorations(t *testing.T) {
	s := testShape()
	edges := len(s.Edges())

	testCases := []struct {
		decoration Decoration
		check      func(t *testing.T, p Plan)
	}{
		{DecorationNone, func(t *testing.T, p Plan) {
			if len(p.Lines) != edges || len(p.Dots) != 0 {
				t.Errorf("none: %d lines, %d dots", len(p.Lines), len(p.Dots))
			}
		}},
		{DecorationDots, func(t *testing.T, p Plan) {
			if len(p.Dots) != 1 {
				t.Errorf("dots: %d dots, want 1 for 4 vertices", len(p.Dots))
			}
		}},
		{DecorationRadiating, func(t *testing.T, p Plan) {
			if rays := len(p.Lines) - edges; rays < 4 || rays > 12 {
				t.Errorf("radiating: %d rays, want 4..12", rays)
			}
		}},
		{DecorationCircle, func(t *testing.T, p Plan) {
			if got := len(p.Lines) - edges; got != circleSteps {
				t.Errorf("circle: %d segments, want %d", got, circleSteps)
			}
		}},
		{DecorationCrosses, func(t *testing.T, p Plan) {
			if got := len(p.Lines) - edges; got != 4 {
				t.Errorf("crosses: %d bars, want 4 (two crosses)", got)
			}
		}},
		{DecorationInnerShape, func(t *testing.T, p Plan) {
			if got := len(p.Lines) - edges; got != edges {
				t.Errorf("inner shape: %d lines, want %d", got, edges)
			}
		}},
		{DecorationSerifs, func(t *testing.T, p Plan) {
			if got := len(p.Lines) - edges; got != 2 {
				t.Errorf("serifs: %d serifs, want 2", got)
			}
		}},
		{DecorationStrokes, func(t *testing.T, p Plan) {
			if got := len(p.Lines) - edges; got != 1 {
				t.Errorf("strokes: %d flicks, want 1", got)
			}
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.decoration.String(), func(t *testing.T) {
			r := newTestRenderer(11)
			r.policy = Policy{{tc.decoration, 1}}
			p := r.Plan(s)
			if p.Decoration != tc.decoration {
				t.Fatalf("plan decoration = %s, want %s", p.Decoration, tc.decoration)
			}
			tc.check(t, p)
		})
	}
}

func TestDefaultPolicy_AllOutcomesReachable(t *testing.T) {
	p := DefaultPolicy()
	if err := p.Validate(); err != nil {
		t.Fatalf("DefaultPolicy invalid: %v", err)
	}

	rng := rand.New(rand.NewPCG(3, 4))
	counts := map[Decoration]int{}
	for i := 0; i < 20000; i++ {
		counts[p.Pick(rng)]++
	}
	for d := range decorationNames {
		if counts[d] == 0 {
			t.Errorf("decoration %s never picked", d)
		}
	}
}

func TestPolicy_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{"default", DefaultPolicy(), false},
		{"none only", Policy{{DecorationNone, 1}}, false},
		{"no none", Policy{{DecorationDots, 1}}, true},
		{"zero none", Policy{{DecorationNone, 0}, {DecorationDots, 3}}, true},
		{"negative", Policy{{DecorationNone, 1}, {DecorationDots, -1}}, true},
		{"unknown", Policy{{DecorationNone, 1}, {Decoration(42), 1}}, true},
		{"empty", Policy{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRenderer_SetPolicy(t *testing.T) {
	r := newTestRenderer(1)
	if err := r.SetPolicy(Policy{{DecorationDots, 1}}); err == nil {
		t.Error("SetPolicy without none: expected error")
	}
	if err := r.SetPolicy(Policy{{DecorationNone, 1}}); err != nil {
		t.Fatalf("SetPolicy: %v", err)
	}
	if got := r.Render(testShape()).Decoration; got != DecorationNone {
		t.Errorf("decoration = %s, want none", got)
	}
}
