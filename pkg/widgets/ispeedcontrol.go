package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"github.com/roffe/fancontroller/pkg/fandial"
	"github.com/roffe/fancontroller/pkg/fanspeed"
	"github.com/roffe/fancontroller/pkg/render"
)

// ISpeedControl is a widget that selects a fan speed.
type ISpeedControl interface {
	fyne.Widget
	fyne.Tappable
	Speed() fanspeed.Speed
	SetSpeed(fanspeed.Speed)
	SetStyle(fandial.Style)
	Description() binding.String
	Snapshot(width, height float32) render.Frame
}
