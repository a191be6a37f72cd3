package card

import (
	"fmt"
	"slices"
)

// CornerRadius is the radius of every intact corner, in pixels.
const CornerRadius = 12.0

// Edge identifies one side of the card.
type Edge string

const (
	Top    Edge = "top"
	Right  Edge = "right"
	Bottom Edge = "bottom"
	Left   Edge = "left"
)

// Edges lists the four edges in traversal order.
var Edges = []Edge{Top, Right, Bottom, Left}

// Corner identifies one corner of the card.
type Corner string

const (
	TopLeft     Corner = "top-left"
	TopRight    Corner = "top-right"
	BottomRight Corner = "bottom-right"
	BottomLeft  Corner = "bottom-left"
)

// AllCorners lists every corner, clockwise from the top-left.
var AllCorners = []Corner{TopLeft, TopRight, BottomRight, BottomLeft}

// ParseCorner validates a corner name.
func ParseCorner(s string) (Corner, error) {
	c := Corner(s)
	if !slices.Contains(AllCorners, c) {
		return "", fmt.Errorf("unknown corner %q (want top-left, top-right, bottom-right or bottom-left)", s)
	}
	return c, nil
}

// cornerAfter maps each edge to the corner reached at the end of its traversal.
var cornerAfter = map[Edge]Corner{
	Top:    TopRight,
	Right:  BottomRight,
	Bottom: BottomLeft,
	Left:   TopLeft,
}

// edgesAround returns the edge traversed before and after c.
func edgesAround(c Corner) (before, after Edge) {
	switch c {
	case TopRight:
		return Top, Right
	case BottomRight:
		return Right, Bottom
	case BottomLeft:
		return Bottom, Left
	default:
		return Left, Top
	}
}

// Point is a position in panel-local pixels, origin top-left, y down.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Blemish is a triangular notch cut into an edge.
type Blemish struct {
	Edge     Edge    `json:"edge"`
	Position float64 `json:"position"` // fraction of the edge length along its x or y axis
	Depth    float64 `json:"depth"`
	Width    float64 `json:"width"`
	Skew     float64 `json:"skew"` // apex offset as a fraction of Width
}

// Blemishes holds the notches of every edge, each list sorted by Position.
type Blemishes struct {
	Top    []Blemish `json:"top"`
	Right  []Blemish `json:"right"`
	Bottom []Blemish `json:"bottom"`
	Left   []Blemish `json:"left"`
}

// On returns the blemishes of edge e.
func (b Blemishes) On(e Edge) []Blemish {
	switch e {
	case Top:
		return b.Top
	case Right:
		return b.Right
	case Bottom:
		return b.Bottom
	default:
		return b.Left
	}
}

func (b *Blemishes) add(bl Blemish) {
	switch bl.Edge {
	case Top:
		b.Top = append(b.Top, bl)
	case Right:
		b.Right = append(b.Right, bl)
	case Bottom:
		b.Bottom = append(b.Bottom, bl)
	default:
		b.Left = append(b.Left, bl)
	}
}

// Count returns the total number of blemishes.
func (b Blemishes) Count() int {
	return len(b.Top) + len(b.Right) + len(b.Bottom) + len(b.Left)
}

// Rip is a jagged tear replacing one corner.
// Points run from the anchor on the edge traversed before Corner to the anchor
// on the edge traversed after it.
type Rip struct {
	Corner Corner  `json:"corner"`
	Points []Point `json:"points"`
}

// Start returns the first anchor.
func (r *Rip) Start() Point { return r.Points[0] }

// End returns the last anchor.
func (r *Rip) End() Point { return r.Points[len(r.Points)-1] }

// scaled returns a copy of r with every point scaled by (sx, sy).
func (r *Rip) scaled(sx, sy float64) *Rip {
	out := &Rip{Corner: r.Corner, Points: make([]Point, len(r.Points))}
	for i, p := range r.Points {
		out.Points[i] = Point{X: p.X * sx, Y: p.Y * sy}
	}
	return out
}
