package tint

import (
	"strings"

	"golang.org/x/image/colornames"
)

// FromName looks up an SVG 1.1 color name ("red", "RebeccaPurple", ...) and
// returns the corresponding opaque color. The lookup is case-insensitive.
// The second return value reports whether the name was found.
func FromName(name string) (RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGBA{}, false
	}
	return FromColor(c), true
}
