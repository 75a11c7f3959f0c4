package dial

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/roffe/fancontroller/pkg/fandial"
	"github.com/roffe/fancontroller/pkg/fanspeed"
	"github.com/roffe/fancontroller/pkg/render"
	"github.com/roffe/fancontroller/pkg/widgets"
)

var (
	green  = color.NRGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	yellow = color.NRGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	red    = color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
)

func newTestDial(t *testing.T, cfg *widgets.FanDialConfig) (*Dial, fyne.WidgetRenderer) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	if cfg.Style == (fandial.Style{}) {
		cfg.Style = fandial.NewStyle(green, yellow, red)
	}
	d := New(cfg)
	r := test.TempWidgetRenderer(t, d)
	d.Resize(fyne.NewSize(200, 200))
	return d, r
}

func TestTapCycles(t *testing.T) {
	var changes []fanspeed.Speed
	d, r := newTestDial(t, &widgets.FanDialConfig{
		OnChanged: func(s fanspeed.Speed) { changes = append(changes, s) },
	})
	face := r.Objects()[0].(*canvas.Circle)
	if face.FillColor != fandial.Neutral {
		t.Errorf("off fill %v", face.FillColor)
	}

	test.Tap(d)
	if d.Speed() != fanspeed.Low {
		t.Fatalf("speed after tap %s", d.Speed())
	}
	if face.FillColor != green {
		t.Errorf("low fill %v, want %v", face.FillColor, green)
	}
	if got, _ := d.Description().Get(); got != "low" {
		t.Errorf("description %q", got)
	}

	for i := 0; i < 3; i++ {
		test.Tap(d)
	}
	if d.Speed() != fanspeed.Off {
		t.Errorf("speed after four taps %s", d.Speed())
	}
	if len(changes) != 4 {
		t.Errorf("OnChanged called %d times", len(changes))
	}
}

func TestLayoutGeometry(t *testing.T) {
	_, r := newTestDial(t, &widgets.FanDialConfig{})
	face := r.Objects()[0].(*canvas.Circle)
	if face.Position() != fyne.NewPos(20, 20) || face.Size() != fyne.NewSquareSize(160) {
		t.Errorf("face at %v size %v", face.Position(), face.Size())
	}

	ind := r.Objects()[1].(*canvas.Circle)
	want := fandial.Position(fanspeed.Off, 45, 200, 200)
	cx := ind.Position().X + ind.Size().Width/2
	cy := ind.Position().Y + ind.Size().Height/2
	if d := cx - want.X; d > 0.01 || d < -0.01 {
		t.Errorf("indicator centre x %v, want %v", cx, want.X)
	}
	if d := cy - want.Y; d > 0.01 || d < -0.01 {
		t.Errorf("indicator centre y %v, want %v", cy, want.Y)
	}

	for i, s := range fanspeed.All() {
		txt := r.Objects()[2+i].(*canvas.Text)
		if txt.Text != s.LabelKey() {
			t.Errorf("label %d = %q", i, txt.Text)
		}
	}
}

func TestResize(t *testing.T) {
	d, r := newTestDial(t, &widgets.FanDialConfig{})
	d.Resize(fyne.NewSize(100, 100))
	face := r.Objects()[0].(*canvas.Circle)
	if face.Size() != fyne.NewSquareSize(80) {
		t.Errorf("face size %v after resize", face.Size())
	}
}

func TestSetStyleKeepsSpeed(t *testing.T) {
	d, r := newTestDial(t, &widgets.FanDialConfig{Speed: fanspeed.High})
	blue := color.NRGBA{B: 0xFF, A: 0xFF}
	d.SetStyle(fandial.NewStyle(blue, blue, blue))
	if d.Speed() != fanspeed.High {
		t.Errorf("speed %s after SetStyle", d.Speed())
	}
	if got := r.Objects()[0].(*canvas.Circle).FillColor; got != blue {
		t.Errorf("fill %v, want %v", got, blue)
	}
}

func TestSnapshot(t *testing.T) {
	d, _ := newTestDial(t, &widgets.FanDialConfig{Speed: fanspeed.Medium})
	f := d.Snapshot(400, 400)
	bg := f[0].(render.Disc)
	if bg.Radius != 160 || bg.Color != yellow {
		t.Errorf("snapshot background %+v", bg)
	}
}
