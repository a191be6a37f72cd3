// Package config loads the damagedcard configuration file.
//
// The file is TOML and every key is optional:
//
//	width = 320
//	height = 180
//	seed = 42
//	rip_chance = 0.25
//	corners = ["top-right", "bottom-left"]
//	staples = true
//	formats = ["svg", "png"]
//	scale = 2.0
//
//	[gradient]
//	top = "#386666"
//	bottom = "#2E4F4F"
//
// Command-line flags override values from the file.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/damagedcard/pkg/errors"
	"github.com/matzehuels/damagedcard/pkg/pipeline"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config mirrors config.toml.
type Config struct {
	Width     float64  `toml:"width"`
	Height    float64  `toml:"height"`
	Seed      *uint64  `toml:"seed"`       // nil keeps the default; 0 is a valid seed
	RipChance *float64 `toml:"rip_chance"` // nil keeps the default; 0 disables rips
	Corners   []string `toml:"corners"`
	Staples   bool     `toml:"staples"`
	Formats   []string `toml:"formats"`
	Scale     float64  `toml:"scale"`
	Gradient  Gradient `toml:"gradient"`
}

// Gradient is the [gradient] table.
type Gradient struct {
	Top    string `toml:"top"`
	Bottom string `toml:"bottom"`
}

// DefaultPath returns $XDG_CONFIG_HOME/<app>/config.toml, falling back to
// ~/.config/<app>/config.toml.
func DefaultPath(app string) (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, app, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", app, FileName), nil
}

// Load reads the config at path. A missing file yields an empty Config
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if required {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return &Config{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data))
}

// Parse decodes config text. Unknown keys are rejected.
func Parse(text string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// Options converts the config into pipeline options. Unset values stay zero
// so pipeline defaults apply.
func (c *Config) Options() pipeline.Options {
	opts := pipeline.Options{
		Width:          c.Width,
		Height:         c.Height,
		Corners:        slices.Clone(c.Corners),
		Staples:        c.Staples,
		Formats:        slices.Clone(c.Formats),
		Scale:          c.Scale,
		GradientTop:    c.Gradient.Top,
		GradientBottom: c.Gradient.Bottom,
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
		opts.SeedSet = true
	}
	if c.RipChance != nil {
		if *c.RipChance == 0 {
			opts.NoRip = true
		} else {
			opts.RipChance = *c.RipChance
		}
	}
	return opts
}
