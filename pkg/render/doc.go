// Package render draws card outlines onto drawing surfaces.
//
// # Overview
//
// A [Renderer] owns one card's [card.Geometry] and the compiled outline for
// the most recent size it was drawn at. Each [Renderer.Draw] clears the
// surface, fills the outline with a vertical two-stop [Gradient], clips to
// it, sprinkles the noise texture and resets the clip:
//
//	r := render.NewRenderer(render.Options{Rand: card.NewRand(42)})
//	c := render.NewCanvas(320, 180, 2)
//	r.Draw(c, 320, 180)
//	err := c.EncodePNG(w)
//
// The outline is rebuilt only when the requested size changes. Geometry is
// generated lazily on the first draw with a positive size, so a panel that
// mounts at zero size picks up its real size on the next resize.
//
// # Surfaces
//
// [Surface] is the minimal drawing contract the renderer needs. [Canvas]
// implements it on a fogleman/gg raster context; tests use fakes.
//
// # Frames
//
// [Panel] ties a Renderer to a Surface and a [FrameScheduler]. Mount and
// Resize never draw synchronously: they record the latest size and request
// at most one frame, so a burst of resizes costs a single draw at the final
// size. [FrameQueue] is a single-threaded scheduler flushed by the host loop.
//
// Output encoders for whole artifacts (PNG, SVG, JSON) live in [sink].
//
// [sink]: github.com/matzehuels/damagedcard/pkg/render/sink
package render
