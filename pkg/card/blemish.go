package card

import (
	"cmp"
	"math"
	"slices"
)

const (
	blemishSpacing  = 150.0 // perimeter pixels per guaranteed blemish
	blemishExtraMax = 2     // extra blemishes drawn uniformly from [0, blemishExtraMax]

	minBlemishDepth = 2.0
	maxBlemishDepth = 6.0
	minBlemishWidth = 10.0
	maxBlemishWidth = 50.0
	minBlemishSkew  = 0.2
	maxBlemishSkew  = 0.8
)

// MaxBlemishDepth is the deepest notch GenerateBlemishes produces.
const MaxBlemishDepth = maxBlemishDepth

// GenerateBlemishes scatters notches over the four edges of a width x height card.
// The number of notches grows with the perimeter. Each edge's list is sorted by
// position and never reordered afterwards.
func GenerateBlemishes(rng Rand, width, height float64) Blemishes {
	var b Blemishes
	if width <= 0 || height <= 0 {
		return b
	}

	perimeter := 2 * (width + height)
	count := int(math.Floor(perimeter/blemishSpacing)) + rng.IntN(blemishExtraMax+1)

	for range count {
		b.add(Blemish{
			Edge:     Edges[rng.IntN(len(Edges))],
			Position: rng.Float64(),
			Depth:    uniform(rng, minBlemishDepth, maxBlemishDepth),
			Width:    uniform(rng, minBlemishWidth, maxBlemishWidth),
			Skew:     uniform(rng, minBlemishSkew, maxBlemishSkew),
		})
	}

	for _, list := range [][]Blemish{b.Top, b.Right, b.Bottom, b.Left} {
		slices.SortStableFunc(list, func(x, y Blemish) int {
			return cmp.Compare(x.Position, y.Position)
		})
	}
	return b
}
