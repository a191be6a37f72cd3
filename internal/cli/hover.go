package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/pipeline"
	"github.com/matzehuels/damagedcard/pkg/render"
)

// hoverCommand creates the hover command for previewing the hover effect.
func (c *CLI) hoverCommand() *cobra.Command {
	var flags cardFlags
	var gradientTop, gradientBottom string

	cmd := &cobra.Command{
		Use:   "hover",
		Short: "Preview a card and its hover effect in the terminal",
		Long: `Hover draws a card in the terminal and runs the hover choreography on it.

Entering tilts the panel and starts the logo wobble. With --staples, the staples
are pulled and leave holes behind; leaving puts a fresh pair in new spots.`,
		Example: `  damagedcard hover --staples
  damagedcard hover --seed 7 --rip-chance 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			if gradientTop != "" {
				opts.GradientTop = gradientTop
			}
			if gradientBottom != "" {
				opts.GradientBottom = gradientBottom
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			gradient, err := render.ParseGradient(opts.GradientTop, opts.GradientBottom)
			if err != nil {
				return err
			}

			// The TUI owns the terminal; keep the logger quiet underneath it.
			logger := c.Logger.With()
			logger.SetLevel(log.WarnLevel)

			clock := &teaClock{}
			model := NewHoverModel(hoverConfig{
				Geometry: pipeline.Generate(opts),
				Gradient: gradient,
				Texture:  pipeline.TextureRand(opts.Seed),
				Rand:     card.NewRand(opts.Seed),
				Staples:  opts.Staples,
				Clock:    clock,
				Logger:   logger,
			})

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			clock.send = p.Send
			final, err := p.Run()
			if m, ok := final.(HoverModel); ok {
				m.ctrl.Close()
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&gradientTop, "gradient-top", "", "top gradient color (hex)")
	cmd.Flags().StringVar(&gradientBottom, "gradient-bottom", "", "bottom gradient color (hex)")
	return cmd
}
