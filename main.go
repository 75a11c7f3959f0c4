package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/roffe/fancontroller/pkg/colors"
	"github.com/roffe/fancontroller/pkg/eventbus"
	"github.com/roffe/fancontroller/pkg/labels"
	"github.com/roffe/fancontroller/pkg/presets"
	"github.com/roffe/fancontroller/pkg/theme"
	"github.com/roffe/fancontroller/pkg/widgets"
	"github.com/roffe/fancontroller/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.roffe.fancontroller")
	mode := colors.StringToColorBlindMode(a.Preferences().StringWithFallback(widgets.PrefsColorBlindMode, colors.Normal))
	a.Settings().SetTheme(&theme.FanTheme{Mode: mode})

	if err := labels.Register(); err != nil {
		log.Println(err)
	}
	if err := presets.Load(a); err != nil {
		log.Printf("load presets: %v", err)
	}

	bus := eventbus.New(nil)
	defer bus.Close()

	mw := windows.NewMainWindow(a, bus)
	mw.SetMaster()
	mw.Resize(fyne.NewSize(480, 480))
	mw.SetContent(mw.Layout())
	mw.ShowAndRun()
}
