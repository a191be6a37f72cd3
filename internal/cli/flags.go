package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/damagedcard/pkg/pipeline"
)

// cardFlags are the generation flags shared by render, inspect and hover.
type cardFlags struct {
	width     float64
	height    float64
	seed      uint64
	ripChance float64
	corners   string
	staples   bool
}

func (f *cardFlags) register(cmd *cobra.Command) {
	f.width = pipeline.DefaultWidth
	f.height = pipeline.DefaultHeight
	f.seed = pipeline.DefaultSeed
	f.ripChance = pipeline.DefaultRipChance

	cmd.Flags().Float64Var(&f.width, "width", f.width, "card width in pixels")
	cmd.Flags().Float64Var(&f.height, "height", f.height, "card height in pixels")
	cmd.Flags().Uint64Var(&f.seed, "seed", f.seed, "random seed")
	cmd.Flags().Float64Var(&f.ripChance, "rip-chance", f.ripChance, "probability of a torn corner (0 disables)")
	cmd.Flags().StringVar(&f.corners, "corners", "", "corners a rip may use (comma-separated, default all)")
	cmd.Flags().BoolVar(&f.staples, "staples", false, "draw staples and holes")
	_ = cmd.RegisterFlagCompletionFunc("corners", completeCorners)
}

// apply overlays explicitly set flags onto opts, which already holds the
// config file values.
func (f *cardFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("seed") {
		opts.Seed = f.seed
		opts.SeedSet = true
	}
	if changed("rip-chance") {
		opts.RipChance = f.ripChance
		opts.NoRip = f.ripChance == 0
	}
	if changed("corners") {
		opts.Corners = splitList(f.corners)
	}
	if changed("staples") {
		opts.Staples = f.staples
	}
}

// options loads the config file and applies the command's flags on top.
func (c *CLI) options(cmd *cobra.Command, f *cardFlags) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := cfg.Options()
	f.apply(cmd, &opts)
	return opts, nil
}
