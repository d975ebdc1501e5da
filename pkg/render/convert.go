// Package render converts SVG drawings into raster and document formats by
// shelling out to rsvg-convert.
package render

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ToPDF converts SVG bytes to a single-page PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
// Scale of 2.0 produces a 2x resolution image.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// ToMultiPagePDF combines several SVG pages into one PDF document, one page
// per input, in order. rsvg-convert only reads multiple inputs from files,
// so the pages are staged in a temporary directory.
func ToMultiPagePDF(pages [][]byte) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages to convert")
	}
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errNoLibrsvg("pdf")
	}

	dir, err := os.MkdirTemp("", "bayplan-deck-*")
	if err != nil {
		return nil, fmt.Errorf("stage pages: %w", err)
	}
	defer os.RemoveAll(dir)

	args := []string{"-f", "pdf"}
	for i, page := range pages {
		path := filepath.Join(dir, fmt.Sprintf("page-%03d.svg", i))
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return nil, fmt.Errorf("stage page %d: %w", i, err)
		}
		args = append(args, path)
	}

	cmd := exec.Command("rsvg-convert", args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}

func errNoLibrsvg(format string) error {
	return fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errNoLibrsvg(format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
