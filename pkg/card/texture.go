package card

import "math"

const (
	speckleArea     = 150.0 // card pixels per uniform speckle
	clusterSize     = 15    // speckles around each blemish
	clusterSpread   = 40.0  // side of the square a cluster scatters over
	minSpeckleAlpha = 0.03
	maxSpeckleAlpha = 0.09
	minClusterAlpha = 0.05
	maxClusterAlpha = 0.13
)

// Dot is a single texture speckle, drawn black at Alpha.
type Dot struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

// GenerateTexture scatters speckles for a width x height card.
//
// The first pass covers the whole bounding box; the second clusters speckles
// around every blemish, including blemishes the outline dropped next to a rip.
// Callers clip the result to the outline.
func GenerateTexture(rng Rand, width, height float64, b Blemishes) []Dot {
	if width <= 0 || height <= 0 {
		return nil
	}
	n := int(math.Ceil(width * height / speckleArea))
	dots := make([]Dot, 0, n+clusterSize*b.Count())

	for range n {
		dots = append(dots, Dot{
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			Radius: uniform(rng, 0.5, 2),
			Alpha:  uniform(rng, minSpeckleAlpha, maxSpeckleAlpha),
		})
	}

	for _, e := range Edges {
		for _, bl := range b.On(e) {
			at := blemishAnchor(bl, width, height)
			for range clusterSize {
				dots = append(dots, Dot{
					X:      at.X + (rng.Float64()-0.5)*clusterSpread,
					Y:      at.Y + (rng.Float64()-0.5)*clusterSpread,
					Radius: uniform(rng, 0.5, 2.5),
					Alpha:  uniform(rng, minClusterAlpha, maxClusterAlpha),
				})
			}
		}
	}
	return dots
}

// blemishAnchor is the blemish's center on its edge line.
func blemishAnchor(bl Blemish, width, height float64) Point {
	switch bl.Edge {
	case Top:
		return Point{bl.Position * width, 0}
	case Right:
		return Point{width, bl.Position * height}
	case Bottom:
		return Point{bl.Position * width, height}
	default:
		return Point{0, bl.Position * height}
	}
}
