package cache

// GeometryKeyOpts are the inputs that determine a generated geometry.
type GeometryKeyOpts struct {
	Width     float64  `json:"w"`
	Height    float64  `json:"h"`
	Seed      uint64   `json:"seed"`
	Corners   []string `json:"corners"`
	RipChance float64  `json:"rip"`
}

// ArtifactKeyOpts are the render inputs on top of a geometry.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Seed        uint64  `json:"seed"` // texture and decoration seed
	GradientTop string  `json:"top"`
	GradientBot string  `json:"bottom"`
	Staples     bool    `json:"staples"`
	Scale       float64 `json:"scale"`
}

// Keyer generates cache keys.
type Keyer interface {
	// GeometryKey generates a key for a generated card geometry.
	GeometryKey(opts GeometryKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact of a geometry.
	ArtifactKey(geometryHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GeometryKey generates a key for a generated card geometry.
func (DefaultKeyer) GeometryKey(opts GeometryKeyOpts) string {
	return hashKey("geometry", opts)
}

// ArtifactKey generates a key for a rendered artifact of a geometry.
func (DefaultKeyer) ArtifactKey(geometryHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", geometryHash, opts)
}
