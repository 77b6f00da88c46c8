package style

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Property is the value of a style property.
type Property string

// Color interprets a property value as a color. Values which cannot be
// interpreted result in black.
func (p Property) Color() color.Color {
	if c, ok := p.ParseColor(); ok {
		return c
	}
	return color.Black
}

// ParseColor interprets a property value as a color. It accepts CSS color
// names and hex notations #rgb and #rrggbb.
func (p Property) ParseColor() (color.Color, bool) {
	v := strings.ToLower(strings.TrimSpace(string(p)))
	if c, ok := colornames.Map[v]; ok {
		return c, true
	}
	if strings.HasPrefix(v, "#") {
		if c, ok := hexColor(v[1:]); ok {
			return c, true
		}
	}
	if v != "" {
		tracer().Debugf("cannot interpret color %q", string(p))
	}
	return nil, false
}

func hexColor(h string) (color.RGBA, bool) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, true
}
