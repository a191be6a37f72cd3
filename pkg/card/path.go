package card

import (
	"fmt"
	"math"
	"strings"
)

// Op is a path command kind.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	ArcTo
	Close
)

func (o Op) String() string {
	switch o {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case ArcTo:
		return "A"
	default:
		return "Z"
	}
}

// Command is one step of a Path.
// X, Y is the end point for MoveTo, LineTo and ArcTo. Arcs are clockwise on
// screen around (CX, CY) from Angle1 to Angle2 radians.
type Command struct {
	Op             Op
	X, Y           float64
	CX, CY, Radius float64
	Angle1, Angle2 float64
}

// Path is a compiled, closed card outline.
type Path struct {
	Commands []Command
}

// Tracer receives a path as drawing calls. *gg.Context satisfies it.
type Tracer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawArc(x, y, r, angle1, angle2 float64)
	ClosePath()
}

// Trace replays p onto t.
func (p Path) Trace(t Tracer) {
	for _, c := range p.Commands {
		switch c.Op {
		case MoveTo:
			t.MoveTo(c.X, c.Y)
		case LineTo:
			t.LineTo(c.X, c.Y)
		case ArcTo:
			t.DrawArc(c.CX, c.CY, c.Radius, c.Angle1, c.Angle2)
		case Close:
			t.ClosePath()
		}
	}
}

// Len returns the number of commands.
func (p Path) Len() int { return len(p.Commands) }

// arcSamples is the number of points Points emits per arc.
const arcSamples = 8

// Points flattens the outline into vertices. Arcs are sampled.
func (p Path) Points() []Point {
	var pts []Point
	for _, c := range p.Commands {
		switch c.Op {
		case MoveTo, LineTo:
			pts = append(pts, Point{c.X, c.Y})
		case ArcTo:
			for i := 1; i <= arcSamples; i++ {
				a := c.Angle1 + (c.Angle2-c.Angle1)*float64(i)/arcSamples
				pts = append(pts, Point{c.CX + c.Radius*math.Cos(a), c.CY + c.Radius*math.Sin(a)})
			}
		}
	}
	return pts
}

// Bounds returns the bounding box of the outline.
func (p Path) Bounds() (minX, minY, maxX, maxY float64) {
	pts := p.Points()
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = minX, minY
	for _, pt := range pts[1:] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}

// SVG returns the outline as SVG path data.
func (p Path) SVG() string {
	var b strings.Builder
	for _, c := range p.Commands {
		switch c.Op {
		case MoveTo, LineTo:
			fmt.Fprintf(&b, "%s%.2f %.2f ", c.Op, c.X, c.Y)
		case ArcTo:
			fmt.Fprintf(&b, "A%.2f %.2f 0 0 1 %.2f %.2f ", c.Radius, c.Radius, c.X, c.Y)
		case Close:
			b.WriteString("Z")
		}
	}
	return strings.TrimSpace(b.String())
}

// BuildPath compiles the outline of a width x height card.
//
// The path starts just after the top-left corner and runs clockwise. Each edge
// emits its notches in traversal order and ends where its corner begins; intact
// corners are quarter arcs, a ripped corner is replaced by the rip polyline. A
// notch is dropped when its footprint leaves the edge or, on an edge next to
// the rip, crosses the rip anchor. Notches that reach into a corner arc on an
// intact edge are kept.
func BuildPath(width, height float64, b Blemishes, rip *Rip) Path {
	pb := pathBuilder{
		w: width,
		h: height,
		r: min(CornerRadius, width/2, height/2),
	}
	pb.spans(rip)

	pb.move(pb.edgePoint(Top, pb.span[Top].start))
	for _, e := range Edges {
		pb.edge(e, b.On(e), rip)
		if c := cornerAfter[e]; rip != nil && rip.Corner == c {
			for _, pt := range rip.Points {
				pb.line(pt)
			}
		} else {
			pb.arc(c)
		}
	}
	pb.cmds = append(pb.cmds, Command{Op: Close})
	return Path{Commands: pb.cmds}
}

// DrawnBlemishes returns the blemishes BuildPath keeps for the same inputs.
func DrawnBlemishes(width, height float64, b Blemishes, rip *Rip) Blemishes {
	pb := pathBuilder{
		w: width,
		h: height,
		r: min(CornerRadius, width/2, height/2),
	}
	pb.spans(rip)

	var out Blemishes
	for _, e := range Edges {
		for _, bl := range b.On(e) {
			if pb.fits(e, bl) {
				out.add(bl)
			}
		}
	}
	return out
}

type span struct{ start, end float64 }

type pathBuilder struct {
	w, h, r float64
	span    map[Edge]span // straight part between arcs or rip anchors
	limit   map[Edge]span // where a notch footprint may lie
	cmds    []Command
}

func (pb *pathBuilder) length(e Edge) float64 {
	if e == Top || e == Bottom {
		return pb.w
	}
	return pb.h
}

// spans computes, as traversal distances, the straight part of every edge and
// the range its notches must stay within.
func (pb *pathBuilder) spans(rip *Rip) {
	pb.span = make(map[Edge]span, len(Edges))
	pb.limit = make(map[Edge]span, len(Edges))
	for _, e := range Edges {
		pb.span[e] = span{start: pb.r, end: pb.length(e) - pb.r}
		pb.limit[e] = span{start: 0, end: pb.length(e)}
	}
	if rip == nil {
		return
	}
	before, after := edgesAround(rip.Corner)
	start := pb.traversal(before, rip.Start())
	end := pb.traversal(after, rip.End())
	for _, m := range []map[Edge]span{pb.span, pb.limit} {
		s := m[before]
		s.end = start
		m[before] = s
		s = m[after]
		s.start = end
		m[after] = s
	}
}

// traversal converts a point on edge e to its distance from the edge's start.
func (pb *pathBuilder) traversal(e Edge, p Point) float64 {
	switch e {
	case Top:
		return p.X
	case Right:
		return p.Y
	case Bottom:
		return pb.w - p.X
	default:
		return pb.h - p.Y
	}
}

// edgePoint returns the point at traversal distance t along e.
func (pb *pathBuilder) edgePoint(e Edge, t float64) Point {
	switch e {
	case Top:
		return Point{t, 0}
	case Right:
		return Point{pb.w, t}
	case Bottom:
		return Point{pb.w - t, pb.h}
	default:
		return Point{0, pb.h - t}
	}
}

// axisPoint returns the point at stored axis coordinate s on e, inset toward
// the card's interior by depth.
func (pb *pathBuilder) axisPoint(e Edge, s, depth float64) Point {
	switch e {
	case Top:
		return Point{s, depth}
	case Right:
		return Point{pb.w - depth, s}
	case Bottom:
		return Point{s, pb.h - depth}
	default:
		return Point{depth, s}
	}
}

// fits reports whether the notch footprint of bl lies inside e's limit.
func (pb *pathBuilder) fits(e Edge, bl Blemish) bool {
	sp := pb.limit[e]
	l := pb.length(e)
	t := bl.Position * l
	if e == Bottom || e == Left {
		t = l - t
	}
	return t-bl.Width/2 >= sp.start && t+bl.Width/2 <= sp.end
}

func (pb *pathBuilder) edge(e Edge, blemishes []Blemish, rip *Rip) {
	sp := pb.span[e]
	l := pb.length(e)
	reversed := e == Bottom || e == Left

	emit := func(bl Blemish) {
		if !pb.fits(e, bl) {
			return
		}
		center := bl.Position * l
		entry, exit := center-bl.Width/2, center+bl.Width/2
		if reversed {
			entry, exit = exit, entry
		}
		apex := center - bl.Width/2 + bl.Width*bl.Skew
		pb.line(pb.axisPoint(e, entry, 0))
		pb.line(pb.axisPoint(e, apex, bl.Depth))
		pb.line(pb.axisPoint(e, exit, 0))
	}

	if reversed {
		for i := len(blemishes) - 1; i >= 0; i-- {
			emit(blemishes[i])
		}
	} else {
		for _, bl := range blemishes {
			emit(bl)
		}
	}

	if rip != nil && cornerAfter[e] == rip.Corner {
		return
	}
	pb.line(pb.edgePoint(e, sp.end))
}

func (pb *pathBuilder) arc(c Corner) {
	w, h, r := pb.w, pb.h, pb.r
	var cmd Command
	switch c {
	case TopRight:
		cmd = Command{CX: w - r, CY: r, Angle1: -math.Pi / 2, Angle2: 0, X: w, Y: r}
	case BottomRight:
		cmd = Command{CX: w - r, CY: h - r, Angle1: 0, Angle2: math.Pi / 2, X: w - r, Y: h}
	case BottomLeft:
		cmd = Command{CX: r, CY: h - r, Angle1: math.Pi / 2, Angle2: math.Pi, X: 0, Y: h - r}
	default:
		cmd = Command{CX: r, CY: r, Angle1: math.Pi, Angle2: 3 * math.Pi / 2, X: r, Y: 0}
	}
	cmd.Op = ArcTo
	cmd.Radius = r
	pb.cmds = append(pb.cmds, cmd)
}

func (pb *pathBuilder) move(p Point) {
	pb.cmds = append(pb.cmds, Command{Op: MoveTo, X: p.X, Y: p.Y})
}

func (pb *pathBuilder) line(p Point) {
	pb.cmds = append(pb.cmds, Command{Op: LineTo, X: p.X, Y: p.Y})
}
