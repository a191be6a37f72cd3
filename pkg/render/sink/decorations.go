package sink

import "github.com/matzehuels/damagedcard/pkg/interaction"

// Staple and hole glyph sizes in card pixels.
const (
	stapleWidth  = 24.0
	stapleHeight = 9.0
	holeRadius   = 2.0
	holeAlpha    = 0.4
)

// glyphRect is one filled rectangle of the staple glyph, in glyph
// coordinates with the origin at the top-left of the 24x9 box.
type glyphRect struct {
	X, Y, W, H float64
	Color      string
	Alpha      float64
}

// stapleGlyph is a U seen from above: a crown along the top, two legs going
// down, a highlight on the crown and shadows inside the legs.
var stapleGlyph = []glyphRect{
	{X: 0, Y: 0, W: 24, H: 2.2, Color: "#888888", Alpha: 1},
	{X: 0, Y: 0, W: 2.2, H: 9, Color: "#888888", Alpha: 1},
	{X: 21.8, Y: 0, W: 2.2, H: 9, Color: "#888888", Alpha: 1},
	{X: 0.6, Y: 0.4, W: 22.8, H: 1, Color: "#ffffff", Alpha: 0.3},
	{X: 0.6, Y: 2.2, W: 1.2, H: 6.2, Color: "#000000", Alpha: 0.2},
	{X: 22.2, Y: 2.2, W: 1.2, H: 6.2, Color: "#000000", Alpha: 0.2},
}

// placedStaple is a staple in card pixels.
type placedStaple struct {
	X, Y, Rotation float64
}

// placedHole is a hole in card pixels.
type placedHole struct {
	X, Y float64
}

// placeDecorations converts percent coordinates to pixels. Staples are
// returned only when visible.
func placeDecorations(s *interaction.Snapshot, width, height float64) ([]placedStaple, []placedHole) {
	if s == nil {
		return nil, nil
	}
	var staples []placedStaple
	if s.StaplesVisible {
		for _, st := range s.Staples {
			staples = append(staples, placedStaple{
				X:        st.X / 100 * width,
				Y:        st.Y / 100 * height,
				Rotation: st.Rotation,
			})
		}
	}
	holes := make([]placedHole, 0, len(s.Holes))
	for _, h := range s.Holes {
		holes = append(holes, placedHole{X: h.X / 100 * width, Y: h.Y / 100 * height})
	}
	return staples, holes
}
