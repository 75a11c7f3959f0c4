package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/roffe/fancontroller/pkg/colors"
	"github.com/roffe/fancontroller/pkg/fandial"
)

// Colour names the fan dial reads its style from.
const (
	ColorNameFanLow    = fyne.ThemeColorName(fandial.AttrLow)
	ColorNameFanMedium = fyne.ThemeColorName(fandial.AttrMedium)
	ColorNameFanHigh   = fyne.ThemeColorName(fandial.AttrHigh)
)

var _ fyne.Theme = (*FanTheme)(nil)

// FanTheme is the dark app theme with the fan colours of a colour blind mode.
type FanTheme struct {
	Mode colors.ColorBlindMode
}

func (m FanTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	low, mid, high := colors.Palette(m.Mode)
	switch name {
	case ColorNameFanLow:
		return low
	case ColorNameFanMedium:
		return mid
	case ColorNameFanHigh:
		return high
	case theme.ColorNameBackground:
		return color.RGBA{R: 23, G: 23, B: 24, A: 255}
	case fyne.ThemeColorName("primary-hover"):
		return color.RGBA{R: 0x21, G: 0x99, B: 0xF3, A: 255}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m FanTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m FanTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m FanTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameScrollBarSmall:
		return 5
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 24
	}
	return theme.DefaultTheme().Size(name)
}
