package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex accepts "#rrggbb", "#rgb" and "#rrggbbaa". Colours without an
// alpha part are opaque.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it isn't opaque.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	if n.A == 0xFF {
		return cf.Hex()
	}
	return fmt.Sprintf("%s%02x", cf.Hex(), n.A)
}
