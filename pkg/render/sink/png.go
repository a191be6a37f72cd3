package sink

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/interaction"
	"github.com/matzehuels/damagedcard/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	width, height float64
	scale         float64
	gradient      render.Gradient
	texture       card.Rand
	decorations   *interaction.Snapshot
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGGradient sets the fill gradient.
func WithPNGGradient(g render.Gradient) PNGOption {
	return func(r *pngRenderer) { r.gradient = g }
}

// WithPNGTexture sets the source for texture dots.
func WithPNGTexture(rng card.Rand) PNGOption {
	return func(r *pngRenderer) { r.texture = rng }
}

// WithPNGDecorations draws the staples and holes of s.
func WithPNGDecorations(s interaction.Snapshot) PNGOption {
	return func(r *pngRenderer) { r.decorations = &s }
}

// RenderPNG rasterizes g.
func RenderPNG(g *card.Geometry, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{width: g.Width, height: g.Height, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 || r.height <= 0 {
		return nil, fmt.Errorf("cannot rasterize a %vx%v card", r.width, r.height)
	}

	canvas := render.NewCanvas(r.width, r.height, r.scale)
	renderer := render.NewRenderer(render.Options{
		Geometry: g,
		Gradient: r.gradient,
		Rand:     r.texture,
	})
	renderer.Draw(canvas, r.width, r.height)
	drawPNGDecorations(canvas.Context(), r.decorations, r.width, r.height)

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPNGDecorations(dc *gg.Context, s *interaction.Snapshot, width, height float64) {
	staples, holes := placeDecorations(s, width, height)
	for _, h := range holes {
		dc.DrawCircle(h.X, h.Y, holeRadius)
		dc.SetRGBA(0, 0, 0, holeAlpha)
		dc.Fill()
	}
	for _, st := range staples {
		dc.Push()
		dc.RotateAbout(gg.Radians(st.Rotation), st.X, st.Y)
		dc.Translate(st.X-stapleWidth/2, st.Y-stapleHeight/2)
		for _, r := range stapleGlyph {
			c, _ := colorful.Hex(r.Color)
			dc.DrawRectangle(r.X, r.Y, r.W, r.H)
			dc.SetRGBA(c.R, c.G, c.B, r.Alpha)
			dc.Fill()
		}
		dc.Pop()
	}
}
