package tint

import "github.com/gogpu/gputypes"

// GPU converts the color to the GoGPU native color type, used for render
// pass clear values and blend constants. Channels are passed through
// unclamped; WebGPU consumers clamp at use.
func (c RGBA) GPU() gputypes.Color {
	return gputypes.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromGPU converts a GoGPU native color to RGBA.
func FromGPU(c gputypes.Color) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
