package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/errors"
)

// Default gradient stops.
const (
	DefaultGradientTop    = "#386666"
	DefaultGradientBottom = "#2E4F4F"
)

// Surface is a drawing target for a card.
type Surface interface {
	// Clear erases the whole surface to transparent.
	Clear()
	// FillPath fills p with a vertical gradient spanning the surface height.
	FillPath(p card.Path, g Gradient)
	// Clip restricts later drawing to the inside of p.
	Clip(p card.Path)
	// FillDot draws one texture dot in black at the dot's alpha.
	FillDot(d card.Dot)
	// ResetClip removes any clip.
	ResetClip()
}

// Resizer is implemented by surfaces whose backing store follows the host size.
type Resizer interface {
	Resize(width, height float64)
}

// Gradient is a two-stop fill running from Top at y=0 to Bottom at the
// surface's bottom edge.
type Gradient struct {
	Top    colorful.Color
	Bottom colorful.Color
}

// DefaultGradient returns the teal card gradient.
func DefaultGradient() Gradient {
	g, _ := ParseGradient(DefaultGradientTop, DefaultGradientBottom)
	return g
}

// ParseGradient builds a gradient from two hex colors such as "#386666".
func ParseGradient(top, bottom string) (Gradient, error) {
	t, err := colorful.Hex(top)
	if err != nil {
		return Gradient{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid gradient top color %q", top)
	}
	b, err := colorful.Hex(bottom)
	if err != nil {
		return Gradient{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid gradient bottom color %q", bottom)
	}
	return Gradient{Top: t, Bottom: b}, nil
}

// Hex returns the two stops as lowercase hex strings.
func (g Gradient) Hex() (top, bottom string) {
	return g.Top.Hex(), g.Bottom.Hex()
}

// IsZero reports whether neither stop has been set.
func (g Gradient) IsZero() bool {
	return g == Gradient{}
}
