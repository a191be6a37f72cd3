package card

import "math"

const (
	ripSegments     = 20
	minRipAmplitude = 4.0
	maxRipAmplitude = 12.0
	minRipReach     = 0.15 // anchor distance from the corner, as a fraction of the edge length
	maxRipReach     = 0.40
)

// GenerateRip rolls for a corner tear.
//
// With probability chance (and at least one allowed corner) it returns a rip at
// a corner chosen uniformly from corners; otherwise it returns nil. The tear
// runs between two anchors placed 15-40% of the adjacent edges' lengths away
// from the corner and wanders perpendicular to the straight line between them.
func GenerateRip(rng Rand, width, height float64, corners []Corner, chance float64) *Rip {
	roll := rng.Float64()
	if roll >= chance || len(corners) == 0 {
		return nil
	}
	corner := corners[rng.IntN(len(corners))]

	amplitude := uniform(rng, minRipAmplitude, maxRipAmplitude)
	reachX := width * uniform(rng, minRipReach, maxRipReach)
	reachY := height * uniform(rng, minRipReach, maxRipReach)

	start, end := ripAnchors(corner, width, height, reachX, reachY)

	dx, dy := end.X-start.X, end.Y-start.Y
	dist := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)
	nx, ny := math.Cos(angle+math.Pi/2), math.Sin(angle+math.Pi/2)

	points := make([]Point, 0, ripSegments+1)
	points = append(points, start)
	for i := 1; i < ripSegments; i++ {
		along := float64(i) / ripSegments * dist
		perp := (rng.Float64() - 0.5) * amplitude
		points = append(points, Point{
			X: start.X + along*math.Cos(angle) + perp*nx,
			Y: start.Y + along*math.Sin(angle) + perp*ny,
		})
	}
	points = append(points, end)

	return &Rip{Corner: corner, Points: points}
}

// ripAnchors returns the anchors on the edges before and after corner, in
// traversal order.
func ripAnchors(corner Corner, width, height, reachX, reachY float64) (start, end Point) {
	switch corner {
	case TopRight:
		return Point{X: width - reachX, Y: 0}, Point{X: width, Y: reachY}
	case BottomRight:
		return Point{X: width, Y: height - reachY}, Point{X: width - reachX, Y: height}
	case BottomLeft:
		return Point{X: reachX, Y: height}, Point{X: 0, Y: height - reachY}
	default:
		return Point{X: 0, Y: reachY}, Point{X: reachX, Y: 0}
	}
}
