package windows

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/skratchdot/open-golang/open"

	"github.com/roffe/fancontroller/pkg/eventbus"
	"github.com/roffe/fancontroller/pkg/fandial"
	"github.com/roffe/fancontroller/pkg/fanspeed"
	"github.com/roffe/fancontroller/pkg/labels"
	"github.com/roffe/fancontroller/pkg/render/raster"
	"github.com/roffe/fancontroller/pkg/sound"
	"github.com/roffe/fancontroller/pkg/widgets"
	"github.com/roffe/fancontroller/pkg/widgets/dial"
)

const (
	prefsLastSpeed       = "lastSpeed"
	prefsOpenAfterExport = "openAfterExport"

	exportSize = 512
)

type MainWindow struct {
	fyne.Window
	app fyne.App
	bus *eventbus.Controller

	dial       *dial.Dial
	statusText *widget.Label
	settings   *widgets.SettingsWidget
	content    *fyne.Container

	cancelSpeed func()
}

func NewMainWindow(app fyne.App, bus *eventbus.Controller) *MainWindow {
	mw := &MainWindow{
		Window: app.NewWindow("Fan controller"),
		app:    app,
		bus:    bus,
	}

	style := initialStyle(app)
	speed := fanspeed.Speed(app.Preferences().IntWithFallback(prefsLastSpeed, int(fanspeed.Off)))

	mw.dial = dial.New(&widgets.FanDialConfig{
		Style:     style,
		Labels:    labels.Lang{},
		Speed:     speed,
		OnChanged: mw.speedChanged,
	})

	mw.statusText = widget.NewLabelWithData(mw.dial.Description())
	mw.statusText.Alignment = fyne.TextAlignCenter

	mw.settings = widgets.NewSettingsWidget(style)
	mw.settings.OnStyle = mw.dial.SetStyle

	mw.cancelSpeed = bus.SubscribeFunc(eventbus.TopicSpeed, func(v float64) {
		fyne.Do(func() {
			mw.onSpeed(fanspeed.Speed(v))
		})
	})

	mw.SetCloseIntercept(func() {
		mw.cancelSpeed()
		mw.Close()
	})

	return mw
}

// initialStyle prefers colours saved by the user over the theme defaults.
func initialStyle(app fyne.App) fandial.Style {
	if app.Preferences().String(fandial.AttrLow) != "" {
		return fandial.StyleFromPreferences(app.Preferences())
	}
	return fandial.StyleFromTheme(app.Settings().Theme(), app.Settings().ThemeVariant())
}

func (mw *MainWindow) speedChanged(s fanspeed.Speed) {
	if err := mw.bus.Publish(eventbus.TopicSpeed, float64(s.Ordinal())); err != nil {
		log.Printf("publish speed: %v", err)
	}
}

func (mw *MainWindow) onSpeed(s fanspeed.Speed) {
	mw.app.Preferences().SetInt(prefsLastSpeed, s.Ordinal())
	if mw.app.Preferences().BoolWithFallback(widgets.PrefsClickSound, false) {
		if err := sound.Play(s); err != nil {
			log.Printf("click sound: %v", err)
		}
	}
}

func (mw *MainWindow) Layout() fyne.CanvasObject {
	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.SettingsIcon(), mw.showSettings),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), mw.exportDialog),
	)
	mw.content = container.NewBorder(toolbar, mw.statusText, nil, nil, mw.dial)
	return mw.content
}

func (mw *MainWindow) showSettings() {
	var d dialog.Dialog
	mw.settings.OnClose = func() { d.Hide() }
	d = dialog.NewCustomWithoutButtons("Settings", mw.settings, mw)
	d.Resize(fyne.NewSize(400, 300))
	d.Show()
}

func (mw *MainWindow) exportDialog() {
	widgets.SaveFile(func(filename string) {
		if err := mw.Export(filename); err != nil {
			dialog.ShowError(err, mw)
			return
		}
		if mw.app.Preferences().BoolWithFallback(prefsOpenAfterExport, true) {
			if err := open.Run(filename); err != nil {
				log.Printf("open %s: %v", filename, err)
			}
		}
	}, "Export dial", "PNG image", "png")
}

// Export writes the dial as it looks now to a PNG file.
func (mw *MainWindow) Export(filename string) error {
	bg := mw.app.Settings().Theme().Color(theme.ColorNameBackground, mw.app.Settings().ThemeVariant())
	frame := mw.dial.Snapshot(exportSize, exportSize)
	return raster.WritePNG(filename, frame, exportSize, exportSize, bg, raster.DefaultTextSize*exportSize/1024)
}
