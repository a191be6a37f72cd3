package card

import (
	"math"
	"slices"
	"strings"
	"testing"
)

func notch(e Edge, pos float64) Blemish {
	return Blemish{Edge: e, Position: pos, Depth: 4, Width: 20, Skew: 0.5}
}

func TestBuildPath_TopNotchesInOrder(t *testing.T) {
	b := Blemishes{Top: []Blemish{notch(Top, 0.2), notch(Top, 0.5), notch(Top, 0.8)}}
	p := BuildPath(320, 180, b, nil)

	if c := p.Commands[0]; c.Op != MoveTo || c.X != 12 || c.Y != 0 {
		t.Fatalf("first command = %+v, want M12 0", c)
	}

	want := []Point{
		{54, 0}, {64, 4}, {74, 0},
		{150, 0}, {160, 4}, {170, 0},
		{246, 0}, {256, 4}, {266, 0},
	}
	for i, pt := range want {
		c := p.Commands[1+i]
		if c.Op != LineTo {
			t.Fatalf("command %d = %s, want L", 1+i, c.Op)
		}
		if math.Abs(c.X-pt.X) > 1e-9 || math.Abs(c.Y-pt.Y) > 1e-9 {
			t.Errorf("command %d = (%f, %f), want %v", 1+i, c.X, c.Y, pt)
		}
	}
	if c := p.Commands[10]; c.Op != LineTo || c.X != 308 || c.Y != 0 {
		t.Errorf("top edge should end at (308, 0), got %+v", c)
	}
	if c := p.Commands[11]; c.Op != ArcTo || c.X != 320 || c.Y != 12 {
		t.Errorf("expected top-right arc ending at (320, 12), got %+v", c)
	}
}

func TestBuildPath_ReversedEdges(t *testing.T) {
	b := Blemishes{
		Bottom: []Blemish{notch(Bottom, 0.2), notch(Bottom, 0.8)},
		Left:   []Blemish{notch(Left, 0.25), notch(Left, 0.75)},
	}
	p := BuildPath(200, 200, b, nil)

	var bottomX, leftY []float64
	for _, c := range p.Commands {
		if c.Op != LineTo {
			continue
		}
		switch {
		case c.Y == 196: // bottom apex
			bottomX = append(bottomX, c.X)
		case c.X == 4: // left apex
			leftY = append(leftY, c.Y)
		}
	}
	if len(bottomX) != 2 || bottomX[0] < bottomX[1] {
		t.Errorf("bottom apexes %v should run right to left", bottomX)
	}
	if len(leftY) != 2 || leftY[0] < leftY[1] {
		t.Errorf("left apexes %v should run bottom to top", leftY)
	}
}

func TestBuildPath_Deterministic(t *testing.T) {
	g := Generate(NewRand(11), 320, 180, AllCorners, 1)
	a := g.Path(320, 180)
	b := g.Path(320, 180)
	if !slices.Equal(a.Commands, b.Commands) {
		t.Error("BuildPath should be deterministic")
	}
	if a.SVG() != b.SVG() {
		t.Error("SVG output should be deterministic")
	}
}

func TestBuildPath_Bounds(t *testing.T) {
	sizes := [][2]float64{{320, 180}, {300, 200}, {80, 60}, {900, 120}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		for seed := uint64(1); seed <= 100; seed++ {
			g := Generate(NewRand(seed), w, h, AllCorners, 0.5)
			minX, minY, maxX, maxY := g.Path(w, h).Bounds()
			const slack = MaxBlemishDepth + 1e-9
			if minX < -slack || minY < -slack || maxX > w+slack || maxY > h+slack {
				t.Fatalf("seed %d %vx%v: bounds (%f,%f)-(%f,%f) escape the card", seed, w, h, minX, minY, maxX, maxY)
			}
		}
	}
}

func TestBuildPath_Closed(t *testing.T) {
	p := BuildPath(100, 100, Blemishes{}, nil)
	if p.Commands[len(p.Commands)-1].Op != Close {
		t.Error("path should end with Close")
	}
	arcs := 0
	for _, c := range p.Commands {
		if c.Op == ArcTo {
			arcs++
		}
	}
	if arcs != 4 {
		t.Errorf("intact card has %d arcs, want 4", arcs)
	}
	svg := p.SVG()
	if !strings.HasPrefix(svg, "M") || !strings.HasSuffix(svg, "Z") {
		t.Errorf("SVG() = %q, want M...Z", svg)
	}
}

func TestBuildPath_RipDropsOverlappingBlemishes(t *testing.T) {
	rip := &Rip{Corner: TopRight, Points: []Point{{200, 0}, {250, 25}, {300, 50}}}
	b := Blemishes{
		Top:   []Blemish{notch(Top, 0.3), notch(Top, 0.65), notch(Top, 0.9)},
		Right: []Blemish{notch(Right, 0.2), notch(Right, 0.6)},
	}
	p := BuildPath(300, 200, b, rip)

	arcs := 0
	var topApex, rightApex []float64
	for _, c := range p.Commands {
		switch {
		case c.Op == ArcTo:
			arcs++
		case c.Op == LineTo && c.Y == 4:
			topApex = append(topApex, c.X)
		case c.Op == LineTo && c.X == 296:
			rightApex = append(rightApex, c.Y)
		}
	}
	if arcs != 3 {
		t.Errorf("ripped card has %d arcs, want 3", arcs)
	}
	// 0.65 spans 185..205 and crosses the anchor at 200; 0.9 lies past it.
	if !slices.Equal(topApex, []float64{90}) {
		t.Errorf("top apexes = %v, want [90]", topApex)
	}
	// 0.2 spans 30..50 and starts before the anchor at 50.
	if !slices.Equal(rightApex, []float64{120}) {
		t.Errorf("right apexes = %v, want [120]", rightApex)
	}

	var traced []Point
	for _, c := range p.Commands {
		if c.Op == LineTo {
			traced = append(traced, Point{c.X, c.Y})
		}
	}
	for _, pt := range rip.Points {
		if !slices.Contains(traced, pt) {
			t.Errorf("rip point %v missing from outline", pt)
		}
	}
}

func TestDrawnBlemishes(t *testing.T) {
	rip := &Rip{Corner: TopRight, Points: []Point{{200, 0}, {250, 25}, {300, 50}}}
	b := Blemishes{
		Top:    []Blemish{notch(Top, 0.3), notch(Top, 0.65), notch(Top, 0.9)},
		Right:  []Blemish{notch(Right, 0.2), notch(Right, 0.6)},
		Bottom: []Blemish{notch(Bottom, 0.01)},
	}
	got := DrawnBlemishes(300, 200, b, rip)

	if len(got.Top) != 1 || got.Top[0].Position != 0.3 {
		t.Errorf("top = %v, want only 0.3", got.Top)
	}
	if len(got.Right) != 1 || got.Right[0].Position != 0.6 {
		t.Errorf("right = %v, want only 0.6", got.Right)
	}
	// 0.01 on the bottom runs past the bottom-left end of the edge.
	if len(got.Bottom) != 0 {
		t.Errorf("bottom = %v, want none", got.Bottom)
	}
	if b.Count() != 6 {
		t.Error("DrawnBlemishes should not modify its input")
	}
}

func TestDrawnBlemishes_IntactEdgesKeepArcNotches(t *testing.T) {
	tests := []struct {
		name string
		bl   Blemish
		rip  *Rip
		want bool
	}{
		// Footprint 6..26 reaches into the top-left arc (radius 12).
		{"top into arc", notch(Top, 0.05), nil, true},
		// Footprint 294..314 reaches into the top-right arc.
		{"top into far arc", notch(Top, 0.95), nil, true},
		// Footprint -3.6..16.4 leaves the edge.
		{"top off edge", notch(Top, 0.02), nil, false},
		// Traversed bottom to top: t = 190, footprint 180..200.
		{"left into arc", notch(Left, 0.05), nil, true},
		{"left off edge", notch(Left, 0.99), nil, false},
		// The right edge follows a top-right rip; its far end is intact.
		{"rip edge far arc", notch(Right, 0.95), &Rip{Corner: TopRight, Points: []Point{{280, 0}, {320, 20}}}, true},
		{"rip edge anchor", notch(Right, 0.1), &Rip{Corner: TopRight, Points: []Point{{280, 0}, {320, 20}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Blemishes
			b.add(tt.bl)
			got := DrawnBlemishes(320, 200, b, tt.rip).Count() == 1
			if got != tt.want {
				t.Errorf("drawn = %v, want %v", got, tt.want)
			}

			p := BuildPath(320, 200, b, tt.rip)
			apexes := 0
			for _, c := range p.Commands {
				if c.Op != LineTo {
					continue
				}
				if (tt.bl.Edge == Top && c.Y == 4) || (tt.bl.Edge == Left && c.X == 4) || (tt.bl.Edge == Right && c.X == 316) {
					apexes++
				}
			}
			if (apexes == 1) != tt.want {
				t.Errorf("outline has %d apexes, want drawn = %v", apexes, tt.want)
			}
		})
	}
}

func TestBuildPath_TopLeftRipSeam(t *testing.T) {
	rip := &Rip{Corner: TopLeft, Points: []Point{{0, 40}, {20, 20}, {60, 0}}}
	p := BuildPath(300, 200, Blemishes{}, rip)

	if c := p.Commands[0]; c.X != 60 || c.Y != 0 {
		t.Errorf("path should start at the rip's top anchor, got (%f, %f)", c.X, c.Y)
	}
	last := p.Commands[len(p.Commands)-2]
	if last.X != 60 || last.Y != 0 {
		t.Errorf("path should return to the seam before closing, got (%f, %f)", last.X, last.Y)
	}
}

func TestGeometry_RipScalesWithSize(t *testing.T) {
	g := Generate(NewRand(5), 300, 200, []Corner{TopRight}, 1)
	r := g.RipAt(600, 100)
	if r.End().X != 600 {
		t.Errorf("scaled end anchor x = %f, want 600", r.End().X)
	}
	if r.Start().Y != 0 {
		t.Errorf("scaled start anchor y = %f, want 0", r.Start().Y)
	}
	if g.RipAt(300, 200) != g.Rip {
		t.Error("RipAt at generation size should return the stored rip")
	}
}

type recordingTracer struct{ ops []string }

func (r *recordingTracer) MoveTo(x, y float64)               { r.ops = append(r.ops, "M") }
func (r *recordingTracer) LineTo(x, y float64)               { r.ops = append(r.ops, "L") }
func (r *recordingTracer) DrawArc(x, y, rad, a1, a2 float64) { r.ops = append(r.ops, "A") }
func (r *recordingTracer) ClosePath()                        { r.ops = append(r.ops, "Z") }

func TestPath_Trace(t *testing.T) {
	p := BuildPath(100, 80, Blemishes{}, nil)
	var rt recordingTracer
	p.Trace(&rt)
	if got := strings.Join(rt.ops, ""); got != "MLALALALAZ" {
		t.Errorf("trace = %s, want MLALALALAZ", got)
	}
}
