package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/damagedcard/pkg/errors"
	"github.com/matzehuels/damagedcard/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output         string  // output file (single format) or base path
	formats        string  // comma-separated output formats
	scale          float64 // PNG scale factor
	gradientTop    string  // top gradient color
	gradientBottom string  // bottom gradient color
	noCache        bool    // disable the artifact cache
	refresh        bool    // regenerate even when cached
	card           cardFlags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a damaged card to SVG, PNG or JSON",
		Long: `Render a damaged card.

With a single format, -o names the output file. With several formats, -o is a
base path and each file gets the format as its extension. Use -o - to write a
single format to stdout.`,
		Example: `  damagedcard render
  damagedcard render -f svg,png --seed 7 -o cards/seven
  damagedcard render --rip-chance 1 --corners top-right --staples -f png -o torn.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := c.options(cmd, &opts.card)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") || len(popts.Formats) == 0 {
				popts.Formats = parseFormats(opts.formats)
			}
			if cmd.Flags().Changed("scale") {
				popts.Scale = opts.scale
			}
			if opts.gradientTop != "" {
				popts.GradientTop = opts.gradientTop
			}
			if opts.gradientBottom != "" {
				popts.GradientBottom = opts.gradientBottom
			}
			popts.Refresh = opts.refresh
			return c.runRender(cmd.Context(), popts, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (default \"card\")")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.gradientTop, "gradient-top", "", "top gradient color (hex)")
	cmd.Flags().StringVar(&opts.gradientBottom, "gradient-bottom", "", "bottom gradient color (hex)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	opts.card.register(cmd)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, ropts *renderOpts) error {
	logger := loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	paths, err := outputPaths(ropts.output, opts.Formats)
	if err != nil {
		return err
	}

	if ropts.noCache && ropts.refresh {
		printWarning("--refresh has no effect with --no-cache")
	}

	// The spinner owns stderr while rendering unless debug output is wanted.
	runLogger := logger
	var spinner *Spinner
	if logger.GetLevel() > log.DebugLevel {
		runLogger = logger.With()
		runLogger.SetLevel(log.WarnLevel)
		spinner = newSpinnerWithContext(ctx, "Rendering card...")
		spinner.Start()
	}

	runner, err := c.newRunner(ropts.noCache, runLogger)
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Render failed")
		}
		return err
	}

	if spinner != nil {
		spinner.SetMessage("Writing files...")
	}
	for _, format := range opts.Formats {
		path := paths[format]
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			if spinner != nil {
				spinner.Stop()
			}
			return fmt.Errorf("write %s: %w", format, err)
		}
		logger.Debug("wrote artifact", "format", format, "bytes", len(result.Artifacts[format]), "path", path)
	}
	if spinner != nil {
		spinner.Stop()
	}

	if paths[opts.Formats[0]] == "-" {
		return nil
	}
	prog.done("Rendered card")
	printRenderSummary(result, opts, paths)
	return nil
}

// outputPaths maps each format to its destination.
func outputPaths(output string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if output == "-" {
		if len(formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidPath, "stdout output needs exactly one format, got %d", len(formats))
		}
		paths[formats[0]] = "-"
		return paths, nil
	}

	if output != "" {
		if err := errors.ValidateOutputPath(output); err != nil {
			return nil, err
		}
	}

	if len(formats) == 1 && output != "" && strings.TrimPrefix(filepath.Ext(output), ".") == formats[0] {
		paths[formats[0]] = output
		return paths, nil
	}

	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

// basePath strips a known format extension from output.
// An empty output selects the default base name.
func basePath(output string) string {
	if output == "" {
		return defaultOutput
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// "-" selects stdout; otherwise the file is created, overwriting if it exists,
// along with any missing parent directories.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printRenderSummary(result *pipeline.Result, opts pipeline.Options, paths map[string]string) {
	formats := slices.Clone(opts.Formats)
	slices.Sort(formats)
	for _, f := range formats {
		printFile(paths[f])
	}
	printStats(result.Stats.Blemishes, result.Stats.Ripped, result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Preview the hover effect", fmt.Sprintf("%s hover --seed %d", appName, opts.Seed))
}
