package widgets

import (
	"fyne.io/fyne/v2"
	"github.com/roffe/fancontroller/pkg/fandial"
	"github.com/roffe/fancontroller/pkg/fanspeed"
)

type FanDialConfig struct {
	Style   fandial.Style
	Labels  fandial.Labeler
	MinSize fyne.Size
	// TextSize of the labels, 0 scales them with the dial.
	TextSize float32
	// Speed to start at instead of Off.
	Speed fanspeed.Speed

	OnChanged func(fanspeed.Speed)
}
