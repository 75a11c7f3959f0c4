package dial

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/fancontroller/pkg/fandial"
	"github.com/roffe/fancontroller/pkg/fanspeed"
	"github.com/roffe/fancontroller/pkg/render"
	"github.com/roffe/fancontroller/pkg/widgets"
)

var _ widgets.ISpeedControl = (*Dial)(nil)

// Dial is the tappable fan speed dial.
type Dial struct {
	widget.BaseWidget

	cfg  *widgets.FanDialConfig
	core *fandial.Dial

	description binding.String
	minsize     fyne.Size
}

func New(cfg *widgets.FanDialConfig) *Dial {
	if cfg == nil {
		cfg = &widgets.FanDialConfig{}
	}
	c := &Dial{
		cfg:         cfg,
		description: binding.NewString(),
		minsize:     fyne.NewSize(200, 200),
	}
	c.ExtendBaseWidget(c)

	if cfg.MinSize.Width > 0 && cfg.MinSize.Height > 0 {
		c.minsize = cfg.MinSize
	}

	c.core = c.newCore(cfg.Style, cfg.Speed)
	c.describe(c.core.Description())
	return c
}

func (c *Dial) newCore(style fandial.Style, speed fanspeed.Speed) *fandial.Dial {
	return fandial.New(&fandial.Config{
		Style:      style,
		Labels:     c.cfg.Labels,
		Initial:    speed,
		Describe:   c.describe,
		Invalidate: c.Refresh,
		OnChanged:  c.cfg.OnChanged,
	})
}

func (c *Dial) describe(s string) {
	// a plain string binding never fails to set
	_ = c.description.Set(s)
}

// Description is the accessibility text of the current speed.
func (c *Dial) Description() binding.String { return c.description }

func (c *Dial) Speed() fanspeed.Speed { return c.core.Current() }

func (c *Dial) SetSpeed(s fanspeed.Speed) { c.core.SetSpeed(s) }

func (c *Dial) Style() fandial.Style { return c.core.Style() }

// SetStyle swaps in a new style, keeping speed and size.
func (c *Dial) SetStyle(style fandial.Style) {
	w, h := c.core.Size()
	c.core = c.newCore(style, c.core.Current())
	c.core.OnResize(w, h)
	c.Refresh()
}

// Snapshot is the frame the dial would draw at the given size.
func (c *Dial) Snapshot(width, height float32) render.Frame {
	return fandial.Frame(c.core.Current(), width, height, fandial.Radius(width, height), c.core.Style(), c.cfg.Labels)
}

func (c *Dial) Tapped(*fyne.PointEvent) {
	c.core.OnActivate()
}

func (c *Dial) CreateRenderer() fyne.WidgetRenderer {
	r := &DialRenderer{d: c}
	r.face = &canvas.Circle{}
	r.indicator = &canvas.Circle{}
	r.surface.discs = []*canvas.Circle{r.face, r.indicator}
	for i := range r.labels {
		t := &canvas.Text{Alignment: fyne.TextAlignCenter, TextStyle: fyne.TextStyle{Bold: true}}
		r.labels[i] = t
		r.surface.texts = append(r.surface.texts, t)
	}
	return r
}

type DialRenderer struct {
	d *Dial

	face      *canvas.Circle
	indicator *canvas.Circle
	labels    [fanspeed.Count]*canvas.Text
	surface   objectSurface
	objects   []fyne.CanvasObject
}

func (r *DialRenderer) Layout(space fyne.Size) {
	r.d.core.OnResize(space.Width, space.Height)
	r.draw()
}

func (r *DialRenderer) MinSize() fyne.Size { return r.d.minsize }

func (r *DialRenderer) Refresh() {
	r.draw()
	for _, o := range r.Objects() {
		canvas.Refresh(o)
	}
}

func (r *DialRenderer) Destroy() {}

func (r *DialRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		objs := make([]fyne.CanvasObject, 0, 2+len(r.labels))
		objs = append(objs, r.face, r.indicator)
		for _, l := range r.labels {
			objs = append(objs, l)
		}
		r.objects = objs
	}
	return r.objects
}

func (r *DialRenderer) draw() {
	r.surface.textSize = r.d.cfg.TextSize
	if r.surface.textSize <= 0 {
		r.surface.textSize = max(10, r.d.core.Radius()*0.2)
	}
	r.surface.reset()
	r.d.core.Render(&r.surface)
}

var _ render.Surface = (*objectSurface)(nil)

// objectSurface maps draw calls onto a fixed set of canvas objects, in the
// order they are issued.
type objectSurface struct {
	discs    []*canvas.Circle
	texts    []*canvas.Text
	textSize float32

	nd, nt int
}

func (s *objectSurface) reset() { s.nd, s.nt = 0, 0 }

func (s *objectSurface) DrawDisc(center render.Point, radius float32, col color.Color) {
	if s.nd >= len(s.discs) {
		return
	}
	o := s.discs[s.nd]
	s.nd++
	o.FillColor = col
	r := max(radius, 0)
	o.Move(fyne.NewPos(center.X-r, center.Y-r))
	o.Resize(fyne.NewSquareSize(2 * r))
}

func (s *objectSurface) DrawText(text string, pos render.Point, col color.Color, align render.Align) {
	if s.nt >= len(s.texts) {
		return
	}
	o := s.texts[s.nt]
	s.nt++
	o.Text = text
	o.Color = col
	o.TextSize = s.textSize

	size, baseline := fyne.CurrentApp().Driver().RenderedTextSize(text, o.TextSize, o.TextStyle, nil)
	x := pos.X
	switch align {
	case render.AlignCenter:
		o.Alignment = fyne.TextAlignCenter
		x -= size.Width / 2
	case render.AlignTrailing:
		o.Alignment = fyne.TextAlignTrailing
		x -= size.Width
	default:
		o.Alignment = fyne.TextAlignLeading
	}
	o.Move(fyne.NewPos(x, pos.Y-baseline))
	o.Resize(size)
}
