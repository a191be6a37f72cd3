// Package pkg provides the core libraries for damagedcard.
//
// # Overview
//
// damagedcard draws a content panel as a worn piece of cardboard: triangular
// notches along the edges, an optional torn corner, speckle texture and a
// top-to-bottom gradient fill. A hover controller adds the interaction layer
// (panel tilt, logo wobble, staples that are pulled out and leave holes).
//
// # Architecture
//
// The typical data flow:
//
//	seed + size + rip settings
//	         ↓
//	    [card] package (blemishes, rip, texture, outline path)
//	         ↓
//	    [render] package (renderer, panel lifecycle, raster canvas)
//	         ↓
//	    [render/sink] package (SVG, PNG, JSON)
//
// [interaction] runs independently of drawing and only moves transforms and
// decorations around. [pipeline] ties generation and the sinks together behind
// a cache for the CLI.
//
// # Quick Start
//
// Generate a card and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/damagedcard/pkg/card"
//	    "github.com/matzehuels/damagedcard/pkg/render/sink"
//	)
//
//	g := card.Generate(card.NewRand(42), 320, 180, card.AllCorners, 0.25)
//	svg := sink.RenderSVG(g, sink.WithSVGTexture(card.NewRand(7)))
//
// # Main Packages
//
// [card] - Geometry generation. All randomness flows through [card.Rand], so a
// seed fully determines a card.
//
// [render] - The renderer that compiles and caches the outline per size, the
// panel that schedules draws on mount and resize, and a gg-backed canvas.
//
// [render/sink] - Output formats (SVG, PNG, JSON) with optional staple and
// hole decorations.
//
// [interaction] - Hover state machine with tilt, wobble and staples, driven by
// an injectable clock.
//
// [pipeline] - Options validation, generation and rendering, with geometry and
// artifact caching through [cache].
//
// [cache] - Cache interface, file and null backends, and key derivation.
//
// [config] - TOML defaults for the CLI.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hook interfaces for metrics and tracing.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/card/...            # Specific package
//
// [card]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/card
// [render]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/render/sink
// [interaction]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/interaction
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/damagedcard/pkg/observability
package pkg
