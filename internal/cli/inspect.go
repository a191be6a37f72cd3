package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/pipeline"
)

// inspectCommand creates the inspect command for printing a card's geometry.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags cardFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the generated geometry of a card",
		Long: `Inspect generates a card and prints its blemishes, rip and outline stats.

Blemishes marked as dropped are generated but run off their edge or across
the rip anchors, so they are not part of the outline.`,
		Example: `  damagedcard inspect --seed 7
  damagedcard inspect --width 640 --height 360 --rip-chance 1 --corners top-left`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			g := pipeline.Generate(opts)
			writeInspect(cmd.OutOrStdout(), g, opts.Seed)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// writeInspect prints the summary and blemish table of g.
func writeInspect(w io.Writer, g *card.Geometry, seed uint64) {
	path := g.Path(g.Width, g.Height)
	drawn := g.Drawn(g.Width, g.Height)

	kv := func(key, value string) { printKeyValue(w, key, value) }

	fmt.Fprintln(w, StyleTitle.Render("Card"))
	kv("seed", strconv.FormatUint(seed, 10))
	kv("size", fmt.Sprintf("%gx%g", g.Width, g.Height))
	kv("blemishes", fmt.Sprintf("%d generated, %d drawn", g.Blemishes.Count(), drawn.Count()))
	if g.Rip != nil {
		kv("rip", fmt.Sprintf("%s (%d points)", g.Rip.Corner, len(g.Rip.Points)))
	} else {
		kv("rip", "none")
	}
	kv("commands", strconv.Itoa(path.Len()))
	minX, minY, maxX, maxY := path.Bounds()
	kv("bounds", fmt.Sprintf("%.1f,%.1f %.1f,%.1f", minX, minY, maxX, maxY))

	if g.Blemishes.Count() == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, blemishTable(g.Blemishes, drawn))
}

// blemishTable renders one row per generated blemish, edge by edge.
func blemishTable(all, drawn card.Blemishes) string {
	var rows [][]string
	var dropped []bool
	for _, e := range card.Edges {
		kept := make(map[card.Blemish]bool, len(drawn.On(e)))
		for _, bl := range drawn.On(e) {
			kept[bl] = true
		}
		for _, bl := range all.On(e) {
			status := "drawn"
			if !kept[bl] {
				status = "dropped"
			}
			rows = append(rows, []string{
				string(e),
				fmt.Sprintf("%.3f", bl.Position),
				fmt.Sprintf("%.2f", bl.Depth),
				fmt.Sprintf("%.2f", bl.Width),
				fmt.Sprintf("%+.3f", bl.Skew),
				status,
			})
			dropped = append(dropped, !kept[bl])
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Edge", "Position", "Depth", "Width", "Skew", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(dropped) && dropped[row] {
				return base.Foreground(colorDim)
			}
			if col == 0 {
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})

	return t.Render()
}
