// Package sink encodes a card geometry into output artifacts.
//
// # Overview
//
// A "sink" turns a [card.Geometry] into bytes:
//
//   - PNG: raster output drawn by [render.Canvas] (fogleman/gg)
//   - SVG: a self-contained vector document
//   - JSON: the geometry plus its compiled outline, for external tools
//
// All sinks draw at the geometry's generation size unless a size option
// overrides it. Texture dots are random; pass the same seeded source to get
// byte-identical output across runs.
//
//	svg := sink.RenderSVG(g,
//	    sink.WithSVGTexture(card.NewRand(seed)),
//	    sink.WithSVGDecorations(ctrl.Snapshot()),
//	)
//	png, err := sink.RenderPNG(g, sink.WithScale(2))
//
// Decorations (staples and holes) come from an [interaction.Snapshot] and are
// placed in percent of the card size.
//
// [card.Geometry]: github.com/matzehuels/damagedcard/pkg/card#Geometry
// [render.Canvas]: github.com/matzehuels/damagedcard/pkg/render#Canvas
// [interaction.Snapshot]: github.com/matzehuels/damagedcard/pkg/interaction#Snapshot
package sink
