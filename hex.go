package tint

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex and ParseHexA when the input is not
// a six-digit hex color with an optional '#' prefix.
var ErrInvalidHex = errors.New("tint: invalid hex color")

// hexPattern matches six hex digits with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// HexInt creates an opaque color from a packed 24-bit integer, with red in
// the high byte: 0xRRGGBB.
func HexInt(hex uint32) RGBA {
	return HexIntA(hex, 1.0)
}

// HexIntA creates a color from a packed 24-bit integer and a unit-float
// alpha. Bits above the low 24 are ignored.
func HexIntA(hex uint32, alpha float64) RGBA {
	return RGB255A(
		int(hex>>16&0xFF),
		int(hex>>8&0xFF),
		int(hex&0xFF),
		alpha,
	)
}

// Hex creates an opaque color from a hex string such as "#3498db" or
// "3498db". Invalid input yields black; see HexA.
func Hex(s string) RGBA {
	return HexA(s, 1.0)
}

// HexA creates a color from a hex string and a unit-float alpha.
//
// The string must be exactly six hex digits, optionally prefixed with '#'
// (case-insensitive). Invalid input does not produce an error: the result
// falls back to black with the given alpha. Use ParseHexA to surface
// validation failures instead.
func HexA(s string, alpha float64) RGBA {
	v, err := parseHex24(s)
	if err != nil {
		Logger().Debug("invalid hex color, falling back to black",
			"input", s, "err", err)
		v = 0
	}
	return HexIntA(v, alpha)
}

// ParseHex is the strict counterpart of Hex: it returns ErrInvalidHex for
// input Hex would silently map to black.
func ParseHex(s string) (RGBA, error) {
	return ParseHexA(s, 1.0)
}

// ParseHexA is the strict counterpart of HexA.
func ParseHexA(s string, alpha float64) (RGBA, error) {
	v, err := parseHex24(s)
	if err != nil {
		return RGBA{}, err
	}
	return HexIntA(v, alpha), nil
}

// parseHex24 validates and parses a six-digit hex color string into a
// packed 24-bit value.
func parseHex24(s string) (uint32, error) {
	if len(s) != 6 && len(s) != 7 {
		return 0, fmt.Errorf("%w: %q has length %d, want 6 or 7", ErrInvalidHex, s, len(s))
	}
	if !hexPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	digits := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		// Unreachable after the pattern match; kept so a parse bug cannot
		// silently corrupt the result.
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return uint32(v), nil
}
