package formatting_test

import (
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/promptd/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare bytes", "1024", 1024, false},
		{"bytes unit", "512B", 512, false},
		{"kilobytes", "1KB", 1024, false},
		{"megabytes", "50MB", 50 * 1024 * 1024, false},
		{"lowercase unit", "10mb", 10 * 1024 * 1024, false},
		{"with space", "100 MB", 100 * 1024 * 1024, false},
		{"surrounding whitespace", "  8KB  ", 8 * 1024, false},
		{"fractional", "1.5KB", 1536, false},
		{"zero", "0", 0, false},
		{"empty string", "", 0, true},
		{"unknown unit", "50XX", 0, true},
		{"no number", "MB", 0, true},
		{"negative", "-5MB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBytes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0 B"},
		{"bytes", 500, 0, "500 B"},
		{"one KB", 1024, 0, "1 KB"},
		{"one MB", 1024 * 1024, 0, "1 MB"},
		{"fractional MB", 1536 * 1024, 1, "1.5 MB"},
		{"negative precision clamped to zero", 1024, -1, "1 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestSizeTOML(t *testing.T) {
	var doc struct {
		Limit formatting.Size `toml:"limit"`
	}

	if err := toml.Unmarshal([]byte(`limit = "2MB"`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Limit != 2*1024*1024 {
		t.Errorf("limit: got %d, want %d", doc.Limit, 2*1024*1024)
	}
	if got := doc.Limit.String(); got != "2 MB" {
		t.Errorf("string: got %q, want 2 MB", got)
	}

	if err := toml.Unmarshal([]byte(`limit = "lots"`), &doc); err == nil {
		t.Error("expected error for invalid size")
	}
}
