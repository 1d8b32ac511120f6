// Package formatting provides human-readable formatting and parsing of byte sizes.
package formatting

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var units = []string{
	"B", "KB", "MB",
	"GB", "TB", "PB",
	"EB", "ZB", "YB",
}

var bytesPattern = regexp.MustCompile(`^(\d+\.?\d*)\s*([A-Za-z]*)$`)

// Size is a byte count that reads and writes as a human-readable string
// such as "1MB", so it can be used directly in TOML config.
type Size int64

// String formats the size with no fractional digits.
func (s Size) String() string {
	return FormatBytes(int64(s), 0)
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseBytes.
func (s *Size) UnmarshalText(text []byte) error {
	n, err := ParseBytes(string(text))
	if err != nil {
		return err
	}
	*s = Size(n)
	return nil
}

// FormatBytes converts a byte count to a human-readable string using base-1024 units.
// Negative precision values are clamped to zero.
func FormatBytes(n int64, precision int) string {
	if n == 0 {
		return "0 B"
	}
	precision = max(precision, 0)

	exp := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	exp = min(exp, len(units)-1)

	scaled := float64(n) / math.Pow(1024, float64(exp))
	return strconv.FormatFloat(scaled, 'f', precision, 64) + " " + units[exp]
}

// ParseBytes parses a human-readable byte size string (e.g., "50MB") into a byte count.
// A bare number is treated as bytes; unit matching is case-insensitive.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	m := bytesPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size number: %w", err)
	}

	unit := strings.ToUpper(m[2])
	if unit == "" {
		return int64(value), nil
	}

	exp := slices.Index(units, unit)
	if exp == -1 {
		return 0, fmt.Errorf("unknown byte size unit: %q", unit)
	}
	return int64(value * math.Pow(1024, float64(exp))), nil
}
