package colors

import (
	"image/color"
	"strings"
)

type ColorBlindMode int

var SupportedColorBlindModes = [...]string{
	Normal,
	Universal,
	Protanopia,
	Tritanopia,
	Deuteranomaly,
}

const (
	Normal        = "Normal"
	Universal     = "Universal"
	Protanopia    = "Protanopia"
	Tritanopia    = "Tritanopia"
	Deuteranomaly = "Deuteranomaly"
	Unknown       = "Unknown"
)

const (
	ModeNormal        ColorBlindMode = iota // Green → Yellow → Red
	ModeUniversal                           // Blue → Gray → Orange
	ModeProtanopia                          // Blue → White → Brown
	ModeTritanopia                          // Teal → Gray → Red
	ModeDeuteranomaly                       // Blue → Beige → Brown
)

func (m ColorBlindMode) String() string {
	switch m {
	case ModeNormal:
		return Normal
	case ModeUniversal:
		return Universal
	case ModeProtanopia:
		return Protanopia
	case ModeTritanopia:
		return Tritanopia
	case ModeDeuteranomaly:
		return Deuteranomaly
	default:
		return Unknown
	}
}

func StringToColorBlindMode(s string) ColorBlindMode {
	for i, name := range SupportedColorBlindModes {
		if strings.EqualFold(s, name) {
			return ColorBlindMode(i)
		}
	}
	return ModeNormal
}

// Palette returns the low, medium and high fan colours of mode.
func Palette(mode ColorBlindMode) (low, mid, high color.NRGBA) {
	switch mode {
	case ModeUniversal:
		low = color.NRGBA{33, 102, 172, 255}  // #2166AC
		mid = color.NRGBA{247, 247, 247, 255} // #F7F7F7
		high = color.NRGBA{255, 165, 0, 255}  // #FFA500
	case ModeProtanopia:
		low = color.NRGBA{5, 113, 176, 255}   // #0571B0
		mid = color.NRGBA{247, 247, 247, 255} // #F7F7F7
		high = color.NRGBA{150, 75, 0, 255}   // #964B00
	case ModeTritanopia:
		low = color.NRGBA{0, 128, 128, 255}   // #008080
		mid = color.NRGBA{247, 247, 247, 255} // #F7F7F7
		high = color.NRGBA{215, 48, 39, 255}  // #D73027
	case ModeDeuteranomaly:
		low = color.NRGBA{0x4A, 0x90, 0xE2, 255}  // #4A90E2
		mid = color.NRGBA{0xF5, 0xE6, 0xB3, 255}  // #F5E6B3
		high = color.NRGBA{0x8B, 0x45, 0x13, 255} // #8B4513
	default:
		low = color.NRGBA{0, 255, 0, 255}
		mid = color.NRGBA{255, 255, 0, 255}
		high = color.NRGBA{255, 0, 0, 255}
	}
	return
}
