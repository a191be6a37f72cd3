// Package pipeline provides the generate → render pipeline for damaged cards.
//
// This package implements the path from a handful of options (size, seed,
// rip settings, colors) to finished artifacts. The CLI uses it for every
// command that writes files, so validation, defaults and caching live in
// one place.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Draw the card geometry (blemishes and rip) from the seed
//  2. Render: Encode the geometry as SVG, PNG and/or JSON
//
// Both stages are cached through [cache.Cache]: the geometry by its inputs,
// the artifacts by the geometry hash and the render options.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Width:   320,
//	    Height:  180,
//	    Seed:    7,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/damagedcard/pkg/cache"
	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/errors"
	"github.com/matzehuels/damagedcard/pkg/interaction"
	"github.com/matzehuels/damagedcard/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and config
// =============================================================================

const (
	// DefaultWidth is the default card width in pixels.
	DefaultWidth = 320.0

	// DefaultHeight is the default card height in pixels.
	DefaultHeight = 180.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultRipChance is the default probability of a corner rip.
	DefaultRipChance = render.DefaultRipChance

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the card pipeline.
type Options struct {
	// Generate options
	Width     float64  `json:"width,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Seed      uint64   `json:"seed,omitempty"`
	SeedSet   bool     `json:"seed_set,omitempty"` // Seed is explicit, even when zero
	RipChance float64  `json:"rip_chance,omitempty"`
	NoRip     bool     `json:"no_rip,omitempty"` // Disable rips; a zero RipChance means "default"
	Corners   []string `json:"corners,omitempty"`

	// Render options
	Formats        []string `json:"formats,omitempty"`
	Scale          float64  `json:"scale,omitempty"`
	GradientTop    string   `json:"gradient_top,omitempty"`
	GradientBottom string   `json:"gradient_bottom,omitempty"`
	Staples        bool     `json:"staples,omitempty"`
	Refresh        bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	corners   []card.Corner
	gradient  render.Gradient
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Geometry is the generated card.
	Geometry *card.Geometry

	// GeometryHash is the content hash of the geometry.
	GeometryHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Decorations holds the staples and holes drawn, when staples are enabled.
	Decorations *interaction.Snapshot

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Blemishes    int
	Ripped       bool
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GeometryHit bool // Whether the geometry came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseCorners converts corner names. Nil or empty input means every corner.
func ParseCorners(names []string) ([]card.Corner, error) {
	if len(names) == 0 {
		return card.AllCorners, nil
	}
	out := make([]card.Corner, 0, len(names))
	for _, n := range names {
		c, err := card.ParseCorner(n)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCorner, err, "invalid corner")
		}
		out = append(out, c)
	}
	return out, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateProbability("rip chance", o.RipChance); err != nil {
		return err
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	corners, err := ParseCorners(o.Corners)
	if err != nil {
		return err
	}
	o.corners = corners

	g, err := render.ParseGradient(o.GradientTop, o.GradientBottom)
	if err != nil {
		return err
	}
	o.gradient = g

	o.validated = true
	return nil
}

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 && !o.SeedSet {
		o.Seed = DefaultSeed
	}
	if o.RipChance == 0 {
		o.RipChance = DefaultRipChance
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.GradientTop == "" {
		o.GradientTop = render.DefaultGradientTop
	}
	if o.GradientBottom == "" {
		o.GradientBottom = render.DefaultGradientBottom
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// EffectiveRipChance is the rip probability actually used for generation.
func (o *Options) EffectiveRipChance() float64 {
	if o.NoRip {
		return 0
	}
	return o.RipChance
}

// GeometryKeyOpts returns cache key options for geometry generation.
func (o *Options) GeometryKeyOpts() cache.GeometryKeyOpts {
	corners := make([]string, len(o.corners))
	for i, c := range o.corners {
		corners[i] = string(c)
	}
	return cache.GeometryKeyOpts{
		Width:     o.Width,
		Height:    o.Height,
		Seed:      o.Seed,
		Corners:   corners,
		RipChance: o.EffectiveRipChance(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	top, bottom := o.gradient.Hex()
	opts := cache.ArtifactKeyOpts{
		Format:      format,
		Seed:        o.Seed,
		GradientTop: top,
		GradientBot: bottom,
		Staples:     o.Staples,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
