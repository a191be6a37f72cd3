package render

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/observability"
)

// DefaultRipChance is the probability that a new card gets a corner rip.
const DefaultRipChance = 0.25

// Options configures a Renderer.
type Options struct {
	// Corners a rip may be placed at. Nil means all four; an empty non-nil
	// slice disables rips.
	Corners []card.Corner
	// RipChance is the rip probability. Zero disables rips.
	RipChance float64
	// Gradient fills the outline. The zero value selects DefaultGradient.
	Gradient Gradient
	// Rand drives geometry and texture. Nil uses a source seeded with 1.
	Rand card.Rand
	// Geometry, when set, is drawn instead of generating a new one.
	Geometry *card.Geometry
	// Logger receives debug output. Nil uses log.Default().
	Logger *log.Logger
}

// cachedPath is the outline compiled for one size.
type cachedPath struct {
	width, height float64
	path          card.Path
}

// Renderer draws one card. It is not safe for concurrent use.
type Renderer struct {
	corners   []card.Corner
	ripChance float64
	gradient  Gradient
	rng       card.Rand
	logger    *log.Logger

	geometry *card.Geometry
	cached   *cachedPath

	// build compiles an outline; replaced in tests to count rebuilds.
	build func(g *card.Geometry, width, height float64) card.Path
}

// NewRenderer creates a renderer. The geometry is generated on the first
// draw with a positive size unless opts.Geometry is set.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		corners:   opts.Corners,
		ripChance: opts.RipChance,
		gradient:  opts.Gradient,
		rng:       opts.Rand,
		logger:    opts.Logger,
		geometry:  opts.Geometry,
		build: func(g *card.Geometry, width, height float64) card.Path {
			return g.Path(width, height)
		},
	}
	if r.corners == nil {
		r.corners = card.AllCorners
	}
	if r.gradient.IsZero() {
		r.gradient = DefaultGradient()
	}
	if r.rng == nil {
		r.rng = card.NewRand(1)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// Geometry returns the card geometry, or nil before the first real draw.
func (r *Renderer) Geometry() *card.Geometry {
	return r.geometry
}

// Gradient returns the fill gradient.
func (r *Renderer) Gradient() Gradient {
	return r.gradient
}

// Path returns the outline for width x height, reusing the cached outline
// when the size is unchanged. It generates the geometry if needed.
func (r *Renderer) Path(width, height float64) card.Path {
	if r.geometry == nil {
		r.geometry = card.Generate(r.rng, width, height, r.corners, r.ripChance)
		r.logger.Debug("generated card geometry",
			"width", width,
			"height", height,
			"blemishes", r.geometry.Blemishes.Count(),
			"ripped", r.geometry.Rip != nil)
	}

	if r.cached != nil && r.cached.width == width && r.cached.height == height {
		observability.Render().OnPathReuse(width, height)
		return r.cached.path
	}

	start := time.Now()
	p := r.build(r.geometry, width, height)
	r.cached = &cachedPath{width: width, height: height, path: p}
	observability.Render().OnPathBuild(width, height, time.Since(start))
	r.logger.Debug("built card outline", "width", width, "height", height, "commands", p.Len())
	return p
}

// Draw renders the card at width x height onto s.
// A nil surface or a non-positive size is skipped without error.
func (r *Renderer) Draw(s Surface, width, height float64) {
	if s == nil {
		observability.Render().OnDrawSkipped("no surface")
		return
	}
	if width <= 0 || height <= 0 {
		observability.Render().OnDrawSkipped("zero area")
		r.logger.Debug("skipping draw", "width", width, "height", height)
		return
	}

	p := r.Path(width, height)

	s.Clear()
	s.FillPath(p, r.gradient)
	s.Clip(p)
	for _, d := range card.GenerateTexture(r.rng, width, height, r.geometry.Blemishes) {
		s.FillDot(d)
	}
	s.ResetClip()
}
