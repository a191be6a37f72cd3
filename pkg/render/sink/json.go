package sink

import (
	"encoding/json"
	"errors"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/interaction"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed        uint64
	hasSeed     bool
	decorations *interaction.Snapshot
}

// WithJSONSeed records the seed the geometry was generated from, enabling
// reproducible re-rendering.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.hasSeed = true }
}

// WithJSONDecorations includes the staples and holes of s.
func WithJSONDecorations(s interaction.Snapshot) JSONOption {
	return func(r *jsonRenderer) { r.decorations = &s }
}

var errMissingGeometry = errors.New("document has no geometry")

type jsonOutput struct {
	Seed        *uint64               `json:"seed,omitempty"`
	Geometry    *card.Geometry        `json:"geometry"`
	Path        string                `json:"path"`
	Bounds      [4]float64            `json:"bounds"`
	Commands    int                   `json:"commands"`
	Decorations *interaction.Snapshot `json:"decorations,omitempty"`
}

// RenderJSON exports g with its compiled outline.
func RenderJSON(g *card.Geometry, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	p := g.Path(g.Width, g.Height)
	minX, minY, maxX, maxY := p.Bounds()
	out := jsonOutput{
		Geometry:    g,
		Path:        p.SVG(),
		Bounds:      [4]float64{minX, minY, maxX, maxY},
		Commands:    p.Len(),
		Decorations: r.decorations,
	}
	if r.hasSeed {
		out.Seed = &r.seed
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadGeometry decodes the geometry from a document written by RenderJSON.
func ReadGeometry(data []byte) (*card.Geometry, error) {
	var doc struct {
		Geometry *card.Geometry `json:"geometry"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Geometry == nil {
		return nil, errMissingGeometry
	}
	return doc.Geometry, nil
}
