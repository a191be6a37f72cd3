package card

// Geometry is the randomized part of a card, fixed for the card's lifetime.
// Blemishes are stored as fractions of the edge lengths; the rip is stored in
// pixels of the size the card was generated at (Width x Height).
type Geometry struct {
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Blemishes Blemishes `json:"blemishes"`
	Rip       *Rip      `json:"rip,omitempty"`
}

// Generate draws a new card geometry: blemishes first, then the rip roll.
func Generate(rng Rand, width, height float64, corners []Corner, ripChance float64) *Geometry {
	return &Geometry{
		Width:     width,
		Height:    height,
		Blemishes: GenerateBlemishes(rng, width, height),
		Rip:       GenerateRip(rng, width, height, corners, ripChance),
	}
}

// RipAt returns the rip scaled to a width x height card.
func (g *Geometry) RipAt(width, height float64) *Rip {
	if g.Rip == nil {
		return nil
	}
	if width == g.Width && height == g.Height {
		return g.Rip
	}
	return g.Rip.scaled(width/g.Width, height/g.Height)
}

// Path compiles the outline for a width x height card.
func (g *Geometry) Path(width, height float64) Path {
	return BuildPath(width, height, g.Blemishes, g.RipAt(width, height))
}

// Drawn returns the blemishes that survive on a width x height outline.
func (g *Geometry) Drawn(width, height float64) Blemishes {
	return DrawnBlemishes(width, height, g.Blemishes, g.RipAt(width, height))
}
