package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/interaction"
	"github.com/matzehuels/damagedcard/pkg/render"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	gradient      render.Gradient
	texture       card.Rand
	decorations   *interaction.Snapshot
}

// WithSVGGradient sets the fill gradient.
func WithSVGGradient(g render.Gradient) SVGOption {
	return func(r *svgRenderer) { r.gradient = g }
}

// WithSVGTexture adds noise dots drawn from rng.
func WithSVGTexture(rng card.Rand) SVGOption {
	return func(r *svgRenderer) { r.texture = rng }
}

// WithSVGDecorations draws the staples and holes of s.
func WithSVGDecorations(s interaction.Snapshot) SVGOption {
	return func(r *svgRenderer) { r.decorations = &s }
}

// RenderSVG renders g as an SVG document.
func RenderSVG(g *card.Geometry, opts ...SVGOption) []byte {
	r := svgRenderer{width: g.Width, height: g.Height, gradient: render.DefaultGradient()}
	for _, opt := range opts {
		opt(&r)
	}

	p := g.Path(r.width, r.height)
	d := p.SVG()
	top, bottom := r.gradient.Hex()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)

	buf.WriteString("  <defs>\n")
	fmt.Fprintf(&buf, `    <linearGradient id="card-fill" x1="0" y1="0" x2="0" y2="1">`+"\n")
	fmt.Fprintf(&buf, `      <stop offset="0" stop-color="%s"/>`+"\n", top)
	fmt.Fprintf(&buf, `      <stop offset="1" stop-color="%s"/>`+"\n", bottom)
	buf.WriteString("    </linearGradient>\n")
	fmt.Fprintf(&buf, `    <clipPath id="card-clip"><path d="%s"/></clipPath>`+"\n", d)
	buf.WriteString("  </defs>\n")

	fmt.Fprintf(&buf, `  <path class="card" d="%s" fill="url(#card-fill)"/>`+"\n", d)

	if r.texture != nil {
		buf.WriteString(`  <g class="texture" clip-path="url(#card-clip)" fill="#000">` + "\n")
		for _, dot := range card.GenerateTexture(r.texture, r.width, r.height, g.Blemishes) {
			fmt.Fprintf(&buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" fill-opacity="%.3f"/>`+"\n",
				dot.X, dot.Y, dot.Radius, dot.Alpha)
		}
		buf.WriteString("  </g>\n")
	}

	renderSVGDecorations(&buf, r.decorations, r.width, r.height)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGDecorations(buf *bytes.Buffer, s *interaction.Snapshot, width, height float64) {
	staples, holes := placeDecorations(s, width, height)
	if len(holes) > 0 {
		fmt.Fprintf(buf, `  <g class="holes" fill="#000" fill-opacity="%.1f">`+"\n", holeAlpha)
		for _, h := range holes {
			fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.1f"/>`+"\n", h.X, h.Y, holeRadius)
		}
		buf.WriteString("  </g>\n")
	}
	for _, st := range staples {
		fmt.Fprintf(buf, `  <g class="staple" transform="rotate(%.2f %.2f %.2f) translate(%.2f %.2f)">`+"\n",
			st.Rotation, st.X, st.Y, st.X-stapleWidth/2, st.Y-stapleHeight/2)
		for _, r := range stapleGlyph {
			fmt.Fprintf(buf, `    <rect x="%g" y="%g" width="%g" height="%g" fill="%s"`, r.X, r.Y, r.W, r.H, r.Color)
			if r.Alpha < 1 {
				fmt.Fprintf(buf, ` fill-opacity="%g"`, r.Alpha)
			}
			buf.WriteString("/>\n")
		}
		buf.WriteString("  </g>\n")
	}
}
