package fandial

import (
	"github.com/roffe/fancontroller/pkg/fanspeed"
	"github.com/roffe/fancontroller/pkg/render"
)

// Labeler resolves the display text of a speed.
type Labeler interface {
	Label(fanspeed.Speed) string
}

type LabelerFunc func(fanspeed.Speed) string

func (f LabelerFunc) Label(s fanspeed.Speed) string { return f(s) }

// KeyLabels labels every speed with its resource key.
var KeyLabels = LabelerFunc(fanspeed.Speed.LabelKey)

// Frame builds the draw commands for one pass: the disc, the indicator of
// the current speed, then the label of every speed.
func Frame(current fanspeed.Speed, width, height, radius float32, style Style, labels Labeler) render.Frame {
	if labels == nil {
		labels = KeyLabels
	}
	frame := make(render.Frame, 0, 2+fanspeed.Count)

	frame = append(frame, render.Disc{
		Center: Center(width, height),
		Radius: radius,
		Color:  style.Fill(current),
	})

	frame = append(frame, render.Disc{
		Center: Position(current, IndicatorRadius(radius), width, height),
		Radius: IndicatorSize(radius),
		Color:  Highlight,
	})

	labelRadius := LabelRadius(radius)
	for _, s := range fanspeed.All() {
		frame = append(frame, render.Text{
			Text:  labels.Label(s),
			Pos:   Position(s, labelRadius, width, height),
			Color: Highlight,
			Align: render.AlignCenter,
		})
	}
	return frame
}
