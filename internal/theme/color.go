package theme

import (
	"image/color"
	"strconv"
	"strings"
)

// namedColors covers the color words the stock palettes use.
var namedColors = map[string]color.NRGBA{
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black": {A: 0xff},
}

// ParseColor converts a theme color value ("#rrggbb", "#rgb" or a known
// color name) to a color.Color. Unparseable values fall back to white
// so a bad user theme degrades visibly instead of failing.
func ParseColor(value string) color.Color {
	v := strings.ToLower(strings.TrimSpace(value))

	if c, ok := namedColors[v]; ok {
		return c
	}

	hex := strings.TrimPrefix(v, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return namedColors["white"]
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return namedColors["white"]
	}

	return color.NRGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}
}
