package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bayplan/pkg/errors"
	"bayplan/pkg/export"
	"bayplan/pkg/project"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output string // base output path; defaults to the design file's base
	style  string // deck drawing style
	zoom   float64
	deck   bool // write the drawing deck PDF
	bom    bool // write the bill of materials XLSX
}

// newExportCmd creates the export command. It writes the drawing deck
// (multi-page PDF, summary page first) and the bill of materials (XLSX
// workbook with Summary and Cut List sheets). Groups that fail validation
// are skipped with a warning; the rest still export.
func newExportCmd() *cobra.Command {
	opts := exportOpts{
		style: styleWorkshop,
		zoom:  1.0,
	}

	cmd := &cobra.Command{
		Use:   "export [design file]",
		Short: "Export the drawing deck (PDF) and bill of materials (XLSX)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.deck && !opts.bom {
				opts.deck = true
				opts.bom = true
			}
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "base output path (default: design file base)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "deck style: workshop (default), blueprint")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", opts.zoom, "view padding factor (>= 1)")
	cmd.Flags().BoolVar(&opts.deck, "deck", false, "export only the drawing deck")
	cmd.Flags().BoolVar(&opts.bom, "bom", false, "export only the bill of materials")

	return cmd
}

func runExport(ctx context.Context, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	style, err := resolveStyle(opts.style)
	if err != nil {
		return err
	}

	proj, err := project.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded design file: %d groups", len(proj.Groups))

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	if opts.deck {
		deckPath := base + "_deck.pdf"
		logger.Infof("Building drawing deck")
		pdf, err := export.Deck(logger, proj.Groups, export.DeckOptions{Style: style, Zoom: opts.zoom})
		if err != nil {
			return err
		}
		if err := os.WriteFile(deckPath, pdf, 0o644); err != nil {
			return fmt.Errorf("write deck: %w", err)
		}
		printFile(deckPath)
	}

	if opts.bom {
		bomPath := base + "_bom.xlsx"
		logger.Infof("Building bill of materials")
		skipped, err := export.WriteBOM(proj.Groups, bomPath)
		for _, serr := range skipped {
			printWarning("Skipping group: %s", errors.UserMessage(serr))
		}
		if err != nil {
			return err
		}
		printFile(bomPath)
	}

	prog.done(fmt.Sprintf("Exported %d group(s)", len(proj.Groups)))
	return nil
}
