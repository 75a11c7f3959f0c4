// Package render holds the draw commands a dial emits and the surface they
// are replayed onto.
package render

import "image/color"

type Point struct {
	X, Y float32
}

func Pt(x, y float32) Point { return Point{X: x, Y: y} }

type Align int

const (
	AlignLeading Align = iota
	AlignCenter
	AlignTrailing
)

// Surface is the host canvas.
type Surface interface {
	DrawDisc(center Point, radius float32, col color.Color)
	DrawText(text string, pos Point, col color.Color, align Align)
}

// Command is a self contained draw call. Commands carry their own colour,
// nothing is shared between them.
type Command interface {
	Draw(Surface)
}

type Disc struct {
	Center Point
	Radius float32
	Color  color.Color
}

func (d Disc) Draw(s Surface) { s.DrawDisc(d.Center, d.Radius, d.Color) }

// Text is drawn with its baseline at Pos.
type Text struct {
	Text  string
	Pos   Point
	Color color.Color
	Align Align
}

func (t Text) Draw(s Surface) { s.DrawText(t.Text, t.Pos, t.Color, t.Align) }

// Frame is an ordered list of commands, later commands paint over earlier.
type Frame []Command

func (f Frame) Replay(s Surface) {
	for _, c := range f {
		c.Draw(s)
	}
}

// Recorder is a Surface that keeps every call as a command.
type Recorder struct {
	Frame Frame
}

func (r *Recorder) DrawDisc(center Point, radius float32, col color.Color) {
	r.Frame = append(r.Frame, Disc{Center: center, Radius: radius, Color: col})
}

func (r *Recorder) DrawText(text string, pos Point, col color.Color, align Align) {
	r.Frame = append(r.Frame, Text{Text: text, Pos: pos, Color: col, Align: align})
}
