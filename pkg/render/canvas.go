package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/damagedcard/pkg/card"
)

// Canvas is a raster Surface backed by a gg context.
// Drawing happens in card pixels; the backing image is scale times larger.
type Canvas struct {
	dc            *gg.Context
	width, height float64
	scale         float64
}

// NewCanvas creates a transparent canvas of width x height card pixels.
// A scale below or equal to zero is treated as 1.
func NewCanvas(width, height, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{scale: scale}
	c.Resize(width, height)
	return c
}

// Resize reallocates the backing image when the size changes.
func (c *Canvas) Resize(width, height float64) {
	if c.dc != nil && width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	w := int(math.Ceil(math.Max(width, 1) * c.scale))
	h := int(math.Ceil(math.Max(height, 1) * c.scale))
	c.dc = gg.NewContext(w, h)
	c.dc.Scale(c.scale, c.scale)
}

// Size returns the canvas size in card pixels.
func (c *Canvas) Size() (width, height float64) { return c.width, c.height }

// Clear erases the canvas to transparent.
func (c *Canvas) Clear() {
	c.dc.SetRGBA(0, 0, 0, 0)
	c.dc.Clear()
}

// FillPath fills p with g. Gradient stops are placed in device space so the
// gradient spans the full image height.
func (c *Canvas) FillPath(p card.Path, g Gradient) {
	grad := gg.NewLinearGradient(0, 0, 0, float64(c.dc.Height()))
	grad.AddColorStop(0, g.Top)
	grad.AddColorStop(1, g.Bottom)

	c.dc.NewSubPath()
	p.Trace(c.dc)
	c.dc.SetFillStyle(grad)
	c.dc.Fill()
}

// Clip restricts drawing to the inside of p.
func (c *Canvas) Clip(p card.Path) {
	c.dc.NewSubPath()
	p.Trace(c.dc)
	c.dc.Clip()
}

// FillDot draws a black dot.
func (c *Canvas) FillDot(d card.Dot) {
	c.dc.DrawCircle(d.X, d.Y, d.Radius)
	c.dc.SetRGBA(0, 0, 0, d.Alpha)
	c.dc.Fill()
}

// ResetClip removes the clip.
func (c *Canvas) ResetClip() {
	c.dc.ResetClip()
}

// Context exposes the gg context for callers that draw decorations on top.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Image returns the backing image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

var (
	_ Surface = (*Canvas)(nil)
	_ Resizer = (*Canvas)(nil)
)
