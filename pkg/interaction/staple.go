package interaction

import (
	"math"

	"github.com/matzehuels/damagedcard/pkg/card"
)

// Staple placement, in percent of the panel size.
const (
	stapleLeftMinX  = 15.0
	stapleLeftSpanX = 5.0
	stapleRightMinX = 60.0
	stapleRightSpan = 25.0
	stapleMinY      = 15.0
	stapleSpanY     = 10.0

	// StapleLegSpacing is the distance between a staple's two legs, in percent.
	StapleLegSpacing = 6.0
)

// Staple is a decorative staple. X and Y are percentages of the panel size;
// Rotation is in degrees.
type Staple struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// Hole is a puncture left by a staple leg, in percent of the panel size.
type Hole struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// newStaplePair draws one left-biased and one right-biased staple.
func newStaplePair(rng card.Rand) []Staple {
	left := Staple{
		X:        stapleLeftMinX + rng.Float64()*stapleLeftSpanX,
		Y:        stapleMinY + rng.Float64()*stapleSpanY,
		Rotation: rng.Float64() * 360,
	}
	right := Staple{
		X:        stapleRightMinX + rng.Float64()*stapleRightSpan,
		Y:        stapleMinY + rng.Float64()*stapleSpanY,
		Rotation: rng.Float64() * 360,
	}
	return []Staple{left, right}
}

// Holes returns the two leg punctures of s.
func (s Staple) Holes() [2]Hole {
	rad := s.Rotation * math.Pi / 180
	dx := StapleLegSpacing / 2 * math.Cos(rad)
	dy := StapleLegSpacing / 2 * math.Sin(rad)
	return [2]Hole{
		{X: s.X - dx, Y: s.Y - dy},
		{X: s.X + dx, Y: s.Y + dy},
	}
}
