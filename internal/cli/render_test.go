package cli

import (
	"testing"

	"bayplan/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "pdf", []string{"pdf"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid all", []string{"svg", "pdf", "png", "json"}, false},
		{"invalid format", []string{"docx"}, true},
		{"mixed valid invalid", []string{"svg", "docx"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %q, want INVALID_FORMAT", errors.GetCode(err))
			}
		})
	}
}

func TestResolveStyle(t *testing.T) {
	tests := []struct {
		name    string
		style   string
		wantErr bool
	}{
		{"workshop", "workshop", false},
		{"blueprint", "blueprint", false},
		{"invalid", "sketch", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := resolveStyle(tt.style)
			if (err != nil) != tt.wantErr {
				t.Errorf("resolveStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
			}
			if err == nil && s.Name() != tt.style {
				t.Errorf("resolved style %q for %q", s.Name(), tt.style)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output uses input base", "", "designs/wall.toml", "designs/wall"},
		{"output with format extension", "out/wall.svg", "wall.toml", "out/wall"},
		{"output without extension", "out/wall", "wall.toml", "out/wall"},
		{"foreign extension kept", "out/wall.v2", "wall.toml", "out/wall.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Workshop wall", "workshop-wall"},
		{"Bay group 1", "bay-group-1"},
		{"  trimmed  ", "trimmed"},
		{"Ünïcode", "n-code"},
	}

	for _, tt := range tests {
		if got := slug(tt.input); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
