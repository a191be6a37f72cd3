package render

import (
	"testing"

	"github.com/matzehuels/damagedcard/pkg/card"
)

// recordingSurface records the drawing calls it receives.
type recordingSurface struct {
	ops   []string
	paths []card.Path
	dots  int
}

func (s *recordingSurface) Clear() { s.ops = append(s.ops, "clear") }
func (s *recordingSurface) FillPath(p card.Path, g Gradient) {
	s.ops = append(s.ops, "fill")
	s.paths = append(s.paths, p)
}
func (s *recordingSurface) Clip(p card.Path) { s.ops = append(s.ops, "clip") }
func (s *recordingSurface) FillDot(d card.Dot) {
	if s.dots == 0 {
		s.ops = append(s.ops, "dots")
	}
	s.dots++
}
func (s *recordingSurface) ResetClip() { s.ops = append(s.ops, "reset") }

func countingRenderer(opts Options) (*Renderer, *int) {
	r := NewRenderer(opts)
	builds := 0
	inner := r.build
	r.build = func(g *card.Geometry, w, h float64) card.Path {
		builds++
		return inner(g, w, h)
	}
	return r, &builds
}

func TestRendererDrawOrder(t *testing.T) {
	r := NewRenderer(Options{Rand: card.NewRand(7)})
	s := &recordingSurface{}
	r.Draw(s, 320, 180)

	want := []string{"clear", "fill", "clip", "dots", "reset"}
	if len(s.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", s.ops, want)
	}
	for i := range want {
		if s.ops[i] != want[i] {
			t.Errorf("ops[%d] = %s, want %s", i, s.ops[i], want[i])
		}
	}
	if s.dots < 384 {
		t.Errorf("dots = %d, want at least the uniform pass of 384", s.dots)
	}
}

func TestRendererPathCache(t *testing.T) {
	r, builds := countingRenderer(Options{Rand: card.NewRand(1)})
	s := &recordingSurface{}

	r.Draw(s, 320, 180)
	r.Draw(s, 320, 180)
	if *builds != 1 {
		t.Fatalf("builds after two same-size draws = %d, want 1", *builds)
	}

	r.Draw(s, 400, 200)
	if *builds != 2 {
		t.Fatalf("builds after resize = %d, want 2", *builds)
	}
	r.Draw(s, 400, 200)
	if *builds != 2 {
		t.Errorf("builds after repeat at new size = %d, want 2", *builds)
	}
	if s.paths[0].SVG() != s.paths[1].SVG() {
		t.Error("cached path should be reused for the same size")
	}
}

func TestRendererNilSurface(t *testing.T) {
	r, builds := countingRenderer(Options{})
	r.Draw(nil, 320, 180)
	if *builds != 0 {
		t.Errorf("nil surface should not build a path, got %d builds", *builds)
	}
	if r.Geometry() != nil {
		t.Error("nil surface should not generate geometry")
	}
}

func TestRendererZeroArea(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 180},
		{"zero height", 320, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, builds := countingRenderer(Options{})
			s := &recordingSurface{}
			r.Draw(s, tt.w, tt.h)
			if len(s.ops) != 0 || *builds != 0 {
				t.Errorf("draw at %vx%v: ops %v, builds %d; want nothing", tt.w, tt.h, s.ops, *builds)
			}
			if r.Geometry() != nil {
				t.Error("geometry should wait for a positive size")
			}

			r.Draw(s, 320, 180)
			if r.Geometry() == nil || r.Geometry().Width != 320 {
				t.Error("geometry should be generated at the first positive size")
			}
		})
	}
}

func TestRendererUsesGivenGeometry(t *testing.T) {
	g := &card.Geometry{Width: 100, Height: 50}
	r := NewRenderer(Options{Geometry: g})
	r.Draw(&recordingSurface{}, 200, 100)
	if r.Geometry() != g {
		t.Error("renderer should keep the supplied geometry")
	}
}

func TestRendererNoRipWithEmptyCorners(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		r := NewRenderer(Options{Rand: card.NewRand(seed), Corners: []card.Corner{}, RipChance: 1})
		r.Path(320, 180)
		if r.Geometry().Rip != nil {
			t.Fatalf("seed %d: rip generated with no allowed corners", seed)
		}
	}
}

func TestParseGradient(t *testing.T) {
	g, err := ParseGradient("#386666", "#2E4F4F")
	if err != nil {
		t.Fatalf("ParseGradient: %v", err)
	}
	top, bottom := g.Hex()
	if top != "#386666" || bottom != "#2e4f4f" {
		t.Errorf("Hex() = %s, %s", top, bottom)
	}

	if _, err := ParseGradient("teal", "#2E4F4F"); err == nil {
		t.Error("invalid top color should fail")
	}
	if _, err := ParseGradient("#386666", "#12"); err == nil {
		t.Error("invalid bottom color should fail")
	}

	if DefaultGradient() != g {
		t.Error("DefaultGradient should match the default stops")
	}
}
