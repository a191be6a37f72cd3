package pipeline

import (
	"fmt"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/interaction"
	"github.com/matzehuels/damagedcard/pkg/render/sink"
)

// textureSalt separates the texture stream from the geometry stream.
const textureSalt = 0x9e3779b97f4a7c15

// Generate draws the card geometry for opts. Options must be validated.
func Generate(opts Options) *card.Geometry {
	rng := card.NewRand(opts.Seed)
	return card.Generate(rng, opts.Width, opts.Height, opts.corners, opts.EffectiveRipChance())
}

// TextureRand returns the texture noise source for a seed. It is derived
// from, but independent of, the geometry stream.
func TextureRand(seed uint64) card.Rand {
	return card.NewRand(seed ^ textureSalt)
}

// Decorations returns the staple pair and holes of a fresh controller
// seeded from opts, or nil when staples are disabled.
func Decorations(opts Options) *interaction.Snapshot {
	if !opts.Staples {
		return nil
	}
	ctrl := interaction.New(interaction.Options{
		Staples: true,
		Rand:    card.NewRand(opts.Seed),
		Clock:   interaction.NewManualClock(),
		Logger:  opts.Logger,
	})
	defer ctrl.Close()
	s := ctrl.Snapshot()
	return &s
}

// Render generates output artifacts in the requested formats.
func Render(g *card.Geometry, opts Options) (map[string][]byte, error) {
	deco := Decorations(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			svgOpts := []sink.SVGOption{
				sink.WithSVGGradient(opts.gradient),
				sink.WithSVGTexture(TextureRand(opts.Seed)),
			}
			if deco != nil {
				svgOpts = append(svgOpts, sink.WithSVGDecorations(*deco))
			}
			data = sink.RenderSVG(g, svgOpts...)
		case FormatPNG:
			pngOpts := []sink.PNGOption{
				sink.WithScale(opts.Scale),
				sink.WithPNGGradient(opts.gradient),
				sink.WithPNGTexture(TextureRand(opts.Seed)),
			}
			if deco != nil {
				pngOpts = append(pngOpts, sink.WithPNGDecorations(*deco))
			}
			data, err = sink.RenderPNG(g, pngOpts...)
		case FormatJSON:
			jsonOpts := []sink.JSONOption{sink.WithJSONSeed(opts.Seed)}
			if deco != nil {
				jsonOpts = append(jsonOpts, sink.WithJSONDecorations(*deco))
			}
			data, err = sink.RenderJSON(g, jsonOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
