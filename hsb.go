package tint

import "math"

// HSB creates an opaque color from HSB (hue/saturation/brightness) values.
// h is hue in degrees [0, 360), s and b are percentages [0, 100].
func HSB(h, s, b float64) RGBA {
	return HSBA(h, s, b, 1.0)
}

// HSBA creates a color from HSB values and a unit-float alpha.
//
// Hue is reduced to a unit fraction by dividing by 360, saturation and
// brightness by dividing by 100, then converted with the standard sextant
// transform. Saturation and brightness are not clamped; out-of-range values
// flow through the conversion arithmetic.
func HSBA(h, s, b, alpha float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360
	s /= 100
	b /= 100

	i := math.Floor(h * 6)
	f := h*6 - i
	p := b * (1 - s)
	q := b * (1 - f*s)
	t := b * (1 - (1-f)*s)

	var r, g, bl float64
	switch int(i) % 6 {
	case 0:
		r, g, bl = b, t, p
	case 1:
		r, g, bl = q, b, p
	case 2:
		r, g, bl = p, b, t
	case 3:
		r, g, bl = p, q, b
	case 4:
		r, g, bl = t, p, b
	default:
		r, g, bl = b, p, q
	}

	return RGBA{R: r, G: g, B: bl, A: alpha}
}

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}
