package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polygrid/pkg/cache"
	"github.com/matzehuels/polygrid/pkg/render"
	"github.com/matzehuels/polygrid/pkg/snapshot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file (single format) or base path
	formats   []string // output formats: "dot", "svg", "pdf", "png"
	showZone  bool     // draw the forbidden zone
	hideLoose bool     // omit components that did not validate
	pinned    bool     // pin nodes at their board positions
	noCache   bool     // bypass the render cache
}

func (o renderOpts) graph() render.Options {
	return render.Options{ShowZone: o.showZone, HideLoose: o.hideLoose, Grid: o.pinned}
}

// renderCommand creates the render command for connectivity graphs.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a saved board as a connectivity graph",
		Long: `Render a saved board as a Graphviz graph of its cells.

Figures and loose components become clusters, and edges join linked cells.
SVG is produced by graphviz; PDF and PNG additionally need rsvg-convert.
Results are cached by board digest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.showZone, "zone", false, "draw the forbidden zone")
	cmd.Flags().BoolVar(&opts.hideLoose, "hide-loose", false, "omit components that are not figures")
	cmd.Flags().BoolVar(&opts.pinned, "grid", false, "pin cells at their board positions")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are ones render.Convert accepts.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !isFormat(f) {
			return fmt.Errorf("invalid format: %s (must be one of %s)", f, strings.Join(render.Formats, ", "))
		}
	}
	return nil
}

func isFormat(f string) bool {
	for _, known := range render.Formats {
		if f == known {
			return true
		}
	}
	return false
}

// outputPath derives the file for one format. A single format with an
// explicit output writes exactly there; otherwise the format extension is
// appended to the base path.
func outputPath(output, input, format string, single bool) string {
	if single && output != "" && filepath.Ext(output) != "" {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if isFormat(strings.TrimPrefix(filepath.Ext(base), ".")) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + "." + format
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	rec, err := snapshot.LoadFile(input)
	if err != nil {
		return err
	}
	e, err := c.newEngine(boardFlags{})
	if err != nil {
		return err
	}
	if err := snapshot.Apply(e, rec); err != nil {
		return err
	}

	store, err := c.newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	board := render.FromEngine(e)
	dot := render.ToDOT(board, opts.graph())
	digest := snapshot.Digest(rec)
	keyer := cache.NewDefaultKeyer()

	for _, format := range opts.formats {
		prog := newProgress(logger)
		key := keyer.RenderKey(digest, cache.RenderKeyOpts{
			Format:    format,
			ShowZone:  opts.showZone,
			HideLoose: opts.hideLoose,
			Grid:      opts.pinned,
		})

		computed := false
		data, err := cache.GetOrCompute(ctx, store, "render", key, renderTTL, func() ([]byte, error) {
			computed = true
			return convert(ctx, dot, format)
		})
		if err != nil {
			return err
		}

		path := outputPath(opts.output, input, format, len(opts.formats) == 1)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		prog.done("Rendered " + path)
		printFile(path)
		printRenderStats(len(board.Figures), len(board.Loose), !computed)
	}
	return nil
}

// convert runs render.Convert with a spinner for the formats that go
// through graphviz.
func convert(ctx context.Context, dot, format string) ([]byte, error) {
	if format == "dot" {
		return render.Convert(ctx, dot, format)
	}
	spinner := newSpinner(ctx, os.Stderr, "Running graphviz ("+format+")...")
	spinner.Start()
	defer spinner.Stop()
	return render.Convert(ctx, dot, format)
}
