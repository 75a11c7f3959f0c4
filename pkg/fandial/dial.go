// Package fandial is the host independent part of the fan dial: the speed it
// is set to, its geometry and the frame it draws.
package fandial

import (
	"github.com/roffe/fancontroller/pkg/fanspeed"
	"github.com/roffe/fancontroller/pkg/render"
)

// DescriptionSink receives the accessibility description of the dial.
type DescriptionSink func(string)

type Config struct {
	Style  Style
	Labels Labeler
	// Initial speed, set without notifying anyone.
	Initial fanspeed.Speed

	// Describe is called with the label of the new speed on every change.
	Describe DescriptionSink
	// Invalidate asks the host for a redraw.
	Invalidate func()
	// OnChanged is called after an activation moved the speed.
	OnChanged func(fanspeed.Speed)
}

// Dial is not safe for concurrent use, it is owned by the UI goroutine.
type Dial struct {
	cfg Config

	speed         fanspeed.Speed
	width, height float32
	radius        float32
}

func New(cfg *Config) *Dial {
	d := &Dial{speed: fanspeed.Off}
	if cfg != nil {
		d.cfg = *cfg
		d.speed = fanspeed.Speed(cfg.Initial.Ordinal())
	}
	if d.cfg.Labels == nil {
		d.cfg.Labels = KeyLabels
	}
	return d
}

func (d *Dial) Current() fanspeed.Speed { return d.speed }

func (d *Dial) Style() Style { return d.cfg.Style }

func (d *Dial) Radius() float32 { return d.radius }

func (d *Dial) Size() (width, height float32) { return d.width, d.height }

// OnActivate advances to the next speed.
func (d *Dial) OnActivate() {
	d.speed = d.speed.Next()
	d.describe()
	if f := d.cfg.OnChanged; f != nil {
		f(d.speed)
	}
	d.invalidate()
}

// SetSpeed jumps straight to s, used when restoring a saved speed. OnChanged
// is not called.
func (d *Dial) SetSpeed(s fanspeed.Speed) {
	d.speed = fanspeed.Speed(s.Ordinal())
	d.describe()
	d.invalidate()
}

// OnResize caches the radius for the new size.
func (d *Dial) OnResize(width, height float32) {
	if d.width == width && d.height == height {
		return
	}
	d.width, d.height = width, height
	d.radius = Radius(width, height)
	d.invalidate()
}

// Frame returns the commands for the current state.
func (d *Dial) Frame() render.Frame {
	return Frame(d.speed, d.width, d.height, d.radius, d.cfg.Style, d.cfg.Labels)
}

// Render draws the current state onto s.
func (d *Dial) Render(s render.Surface) {
	d.Frame().Replay(s)
}

// Description is the text last handed to the description sink.
func (d *Dial) Description() string {
	return d.cfg.Labels.Label(d.speed)
}

func (d *Dial) describe() {
	if f := d.cfg.Describe; f != nil {
		f(d.Description())
	}
}

func (d *Dial) invalidate() {
	if f := d.cfg.Invalidate; f != nil {
		f()
	}
}
