// Package tint provides constructors for building color values from common
// representations: 8-bit RGB triples, unit-float RGB, packed hex integers,
// hex strings, and HSB (hue/saturation/brightness) percentages.
//
// # Overview
//
// tint is a small, dependency-light color construction library for the GoGPU
// ecosystem. Every constructor returns a plain RGBA value with float64
// channels in the [0, 1] range and no platform binding; integration with the
// standard library's image/color and with GPU clear values is provided as
// thin adapters on top of the core type.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	// From 8-bit channel values
//	c := tint.RGB255(52, 152, 219)
//
//	// From a hex string (leading '#' optional)
//	c = tint.Hex("#3498db")
//
//	// From a packed 24-bit hex integer, half transparent
//	c = tint.HexIntA(0x3498db, 0.5)
//
//	// From hue in degrees, saturation and brightness in percent
//	c = tint.HSB(204, 76, 86)
//
// # Input Ranges
//
// Constructors do not clamp their inputs. Out-of-range channel values
// propagate into the resulting RGBA unchanged; clamping happens only when a
// color is converted to a discrete pixel representation (the color.Color
// interface, NRGBA, or a GPU clear value consumer). This keeps construction
// branch-free and makes the arithmetic exactly reversible.
//
// # Invalid Hex Strings
//
// Hex and HexA never fail: a string that is not exactly six hex digits with
// an optional '#' prefix yields black with the caller's alpha. Callers that
// need to distinguish invalid input should use ParseHex, which returns
// ErrInvalidHex instead of falling back.
package tint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
