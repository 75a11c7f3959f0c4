package fandial

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"github.com/roffe/fancontroller/pkg/colors"
)

// StyleFromTheme reads fanColor1..3 from th.
func StyleFromTheme(th fyne.Theme, variant fyne.ThemeVariant) Style {
	get := func(name string) color.Color {
		return th.Color(fyne.ThemeColorName(name), variant)
	}
	return NewStyle(get(AttrLow), get(AttrMedium), get(AttrHigh))
}

// StyleFromPreferences reads fanColor1..3 as hex strings. Missing or
// unparsable values end up transparent.
func StyleFromPreferences(p fyne.Preferences) Style {
	get := func(name string) color.Color {
		raw := p.String(name)
		if raw == "" {
			return color.Transparent
		}
		c, err := colors.ParseHex(raw)
		if err != nil {
			log.Printf("preference %s: %v", name, err)
			return color.Transparent
		}
		return c
	}
	return NewStyle(get(AttrLow), get(AttrMedium), get(AttrHigh))
}

// SaveStyle writes s to p in the format StyleFromPreferences reads.
func SaveStyle(p fyne.Preferences, s Style) {
	p.SetString(AttrLow, colors.Hex(s.Low()))
	p.SetString(AttrMedium, colors.Hex(s.Medium()))
	p.SetString(AttrHigh, colors.Hex(s.High()))
}
