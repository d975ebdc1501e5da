package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bayplan/pkg/errors"
	"bayplan/pkg/layout"
	"bayplan/pkg/model"
	"bayplan/pkg/project"
	"bayplan/pkg/render/sink"
	"bayplan/pkg/render/styles"
)

const (
	styleWorkshop  = "workshop"  // flat single-color parts, black dimension lines
	styleBlueprint = "blueprint" // white line-work on a blue background
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple outputs)
	group   string   // render only this group (id or name)
	formats []string // output formats: "svg", "png", "pdf", "json"
	style   string   // visual style: "workshop" or "blueprint"
	zoom    float64  // view padding factor, >= 1
	noAnnot bool     // geometry only, no dimension lines
	scale   float64  // PNG resolution scale
}

// newRenderCmd creates the render command for generating drawings.
// It renders every group in the design file, or a single group with
// --group, in one or more output formats.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		style: styleWorkshop,
		zoom:  1.0,
		scale: 2.0,
	}

	cmd := &cobra.Command{
		Use:   "render [design file]",
		Short: "Render bay group drawings from a design file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if _, err := resolveStyle(opts.style); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single group/format) or base path")
	cmd.Flags().StringVarP(&opts.group, "group", "g", "", "render only this group (id or name)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: workshop (default), blueprint")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", opts.zoom, "view padding factor (>= 1)")
	cmd.Flags().BoolVar(&opts.noAnnot, "no-annotations", false, "draw geometry without dimension lines")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution scale factor")

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

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "json": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
		}
	}
	return nil
}

// resolveStyle maps a style name to its implementation.
func resolveStyle(name string) (styles.Style, error) {
	switch name {
	case styleWorkshop:
		return styles.Workshop{}, nil
	case styleBlueprint:
		return styles.Blueprint{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %s (must be 'workshop' or 'blueprint')", name)
}

// basePath derives the base output path from the output and input file paths.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// slug turns a group name into a file-name fragment.
func slug(name string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
	return strings.Trim(out, "-")
}

// runRender loads the design file, gates every selected group through the
// validator, and renders each to the requested formats.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	proj, err := project.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded design file: %d groups", len(proj.Groups))

	groups := proj.Groups
	if opts.group != "" {
		g, err := proj.Find(opts.group)
		if err != nil {
			return err
		}
		groups = []*model.BayGroup{g}
	}

	for _, g := range groups {
		if errs := model.Validate(g); len(errs) > 0 {
			for _, msg := range errs.Messages() {
				printError("%s: %s", g.Name, msg)
			}
			return errors.New(errors.ErrCodeInvalidDimension, "group %q failed validation", g.Name)
		}
	}

	base := basePath(opts.output, input)
	single := len(groups) == 1 && len(opts.formats) == 1

	for _, g := range groups {
		d := layout.Compose(g)
		logger.Debugf("Composed %q: %d parts, %d annotations", g.Name, len(d.Parts), len(d.Annotations))

		for _, format := range opts.formats {
			path := fmt.Sprintf("%s_%s.%s", base, slug(g.Name), format)
			if single && opts.output != "" {
				path = opts.output
			}
			if err := renderToFile(d, format, path, opts); err != nil {
				return fmt.Errorf("%s/%s: %w", g.Name, format, err)
			}
			logger.Infof("Generated %s", path)
		}
	}

	if len(groups) == 1 {
		printDimensions(groups[0])
	}
	return nil
}

// renderToFile renders one drawing in one format and writes it to path.
func renderToFile(d layout.Drawing, format, path string, opts *renderOpts) error {
	style, err := resolveStyle(opts.style)
	if err != nil {
		return err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style), sink.WithZoom(opts.zoom)}
	if opts.noAnnot {
		svgOpts = append(svgOpts, sink.WithoutAnnotations())
	}

	var data []byte
	switch format {
	case "svg":
		data = sink.RenderSVG(d, svgOpts...)
	case "png":
		data, err = sink.RenderPNG(d, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.scale))
	case "pdf":
		data, err = sink.RenderPDF(d, sink.WithPDFSVGOptions(svgOpts...))
	case "json":
		data, err = sink.RenderJSON(d)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
