package tint

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1], but constructors do not
// clamp, so out-of-range values are representable.
type RGBA struct {
	R, G, B, A float64
}

// RGB255 creates an opaque color from 8-bit channel values.
// Each channel is divided by 255; values outside [0, 255] are not clamped
// and produce out-of-range unit floats.
func RGB255(r, g, b int) RGBA {
	return RGB255A(r, g, b, 1.0)
}

// RGB255A creates a color from 8-bit channel values and a unit-float alpha.
// Alpha is passed through unchanged.
func RGB255A(r, g, b int, alpha float64) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: alpha,
	}
}

// RGB creates an opaque color from unit-float components.
// Components are assumed to already be in [0, 1]; no clamping is performed.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from unit-float RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// RGBA implements the color.Color interface. Channels are clamped to [0, 1],
// alpha-premultiplied, and scaled to 16 bits. This is the only place the
// package clamps: pixel representations cannot carry out-of-range values.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	ca := clamp01(c.A)
	r = uint32(clamp01(c.R) * ca * 65535)
	g = uint32(clamp01(c.G) * ca * 65535)
	b = uint32(clamp01(c.B) * ca * 65535)
	a = uint32(ca * 65535)
	return
}

// NRGBA converts the color to the standard 8-bit non-premultiplied form.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	return RGBA{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
