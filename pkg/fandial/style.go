package fandial

import (
	"image/color"

	"github.com/roffe/fancontroller/pkg/fanspeed"
)

var (
	// Neutral is the disc colour while the fan is off.
	Neutral = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	// Highlight is used for the indicator and the labels.
	Highlight = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Attribute names of the three configurable colours.
const (
	AttrLow    = "fanColor1"
	AttrMedium = "fanColor2"
	AttrHigh   = "fanColor3"
)

// Style holds the colours of the running speeds. It can't be changed once
// built; make a new one instead.
type Style struct {
	low, medium, high color.NRGBA
}

// NewStyle converts the given colours, nil becomes transparent.
func NewStyle(low, medium, high color.Color) Style {
	return Style{
		low:    toNRGBA(low),
		medium: toNRGBA(medium),
		high:   toNRGBA(high),
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (s Style) Low() color.NRGBA    { return s.low }
func (s Style) Medium() color.NRGBA { return s.medium }
func (s Style) High() color.NRGBA   { return s.high }

// Fill returns the disc colour for sp.
func (s Style) Fill(sp fanspeed.Speed) color.NRGBA {
	switch fanspeed.Speed(sp.Ordinal()) {
	case fanspeed.Low:
		return s.low
	case fanspeed.Medium:
		return s.medium
	case fanspeed.High:
		return s.high
	default:
		return Neutral
	}
}
