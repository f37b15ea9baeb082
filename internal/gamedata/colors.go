package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor is like ParseHexColor but panics on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// checkColor accepts an empty tint, which falls back to a default.
func checkColor(field, hex string) error {
	if hex == "" {
		return nil
	}
	if _, err := ParseHexColor(hex); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

// colorOr parses hex, returning fallback when it is empty or malformed.
// Loaded definitions are validated, so malformed only reaches here from
// hand-built ones.
func colorOr(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
