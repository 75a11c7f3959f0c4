package widgets

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	"github.com/roffe/fancontroller/pkg/colors"
	"github.com/roffe/fancontroller/pkg/fandial"
	"github.com/roffe/fancontroller/pkg/presets"
	fantheme "github.com/roffe/fancontroller/pkg/theme"
)

const (
	PrefsClickSound     = "clickSound"
	PrefsLastPreset     = "lastPreset"
	PrefsColorBlindMode = "colorBlindMode"
)

// SettingsWidget edits the dial colours and the click sound.
type SettingsWidget struct {
	widget.BaseWidget

	presetSelect *widget.SelectEntry
	modeSelect   *widget.Select
	swatches     [3]*swatch
	clickSound   *widget.Check

	container *fyne.Container

	// OnStyle is called with every new style the user picks.
	OnStyle func(fandial.Style)
	OnClose func()
}

func NewSettingsWidget(current fandial.Style) *SettingsWidget {
	sw := &SettingsWidget{}
	sw.ExtendBaseWidget(sw)

	sw.swatches = [3]*swatch{
		newSwatch(current.Low(), sw.styleChanged),
		newSwatch(current.Medium(), sw.styleChanged),
		newSwatch(current.High(), sw.styleChanged),
	}
	sw.presetSelect = sw.newPresetSelect()
	sw.modeSelect = sw.newModeSelect()
	sw.clickSound = widget.NewCheck("Click on speed change", func(b bool) {
		fyne.CurrentApp().Preferences().SetBool(PrefsClickSound, b)
	})
	sw.clickSound.SetChecked(fyne.CurrentApp().Preferences().BoolWithFallback(PrefsClickSound, false))

	sw.container = container.NewBorder(
		container.NewVBox(
			widget.NewLabel("Settings"),
			canvas.NewLine(theme.Color(theme.ColorNameSeparator)),
		),
		container.NewHBox(
			widget.NewButtonWithIcon("Save preset", theme.DocumentSaveIcon(), sw.savePreset),
			widget.NewButtonWithIcon("Close", theme.ConfirmIcon(), func() {
				if sw.OnClose != nil {
					sw.OnClose()
				}
			}),
		),
		nil,
		nil,
		container.NewVBox(
			widget.NewForm(
				widget.NewFormItem("Preset", sw.presetSelect),
				widget.NewFormItem("Colour blind mode", sw.modeSelect),
				widget.NewFormItem(fandial.AttrLow, sw.swatches[0]),
				widget.NewFormItem(fandial.AttrMedium, sw.swatches[1]),
				widget.NewFormItem(fandial.AttrHigh, sw.swatches[2]),
			),
			sw.clickSound,
		),
	)
	return sw
}

// Style is the style currently shown in the swatches.
func (sw *SettingsWidget) Style() fandial.Style {
	return fandial.NewStyle(sw.swatches[0].color, sw.swatches[1].color, sw.swatches[2].color)
}

func (sw *SettingsWidget) SetStyle(s fandial.Style) {
	sw.swatches[0].setColor(s.Low())
	sw.swatches[1].setColor(s.Medium())
	sw.swatches[2].setColor(s.High())
	sw.styleChanged()
}

func (sw *SettingsWidget) styleChanged() {
	s := sw.Style()
	fandial.SaveStyle(fyne.CurrentApp().Preferences(), s)
	if sw.OnStyle != nil {
		sw.OnStyle(s)
	}
}

func (sw *SettingsWidget) newPresetSelect() *widget.SelectEntry {
	sel := widget.NewSelectEntry(presets.Names())
	sel.PlaceHolder = "Preset name"
	// shown only, the swatches already hold the saved style
	sel.SetText(fyne.CurrentApp().Preferences().String(PrefsLastPreset))
	sel.OnChanged = func(name string) {
		s, err := presets.Get(name)
		if err != nil {
			// still typing a new name
			return
		}
		fyne.CurrentApp().Preferences().SetString(PrefsLastPreset, name)
		sw.SetStyle(s)
	}
	return sel
}

// newModeSelect switches the app theme and loads the mode's palette into the
// swatches.
func (sw *SettingsWidget) newModeSelect() *widget.Select {
	sel := widget.NewSelect(colors.SupportedColorBlindModes[:], nil)
	sel.SetSelected(fyne.CurrentApp().Preferences().StringWithFallback(PrefsColorBlindMode, colors.Normal))
	sel.OnChanged = func(name string) {
		a := fyne.CurrentApp()
		a.Preferences().SetString(PrefsColorBlindMode, name)
		a.Settings().SetTheme(&fantheme.FanTheme{Mode: colors.StringToColorBlindMode(name)})
		sw.SetStyle(fandial.StyleFromTheme(a.Settings().Theme(), a.Settings().ThemeVariant()))
	}
	return sel
}

func (sw *SettingsWidget) savePreset() {
	name := sw.presetSelect.Text
	if name == "" {
		return
	}
	if err := presets.Set(name, sw.Style()); err != nil {
		log.Printf("save preset %q: %v", name, err)
		return
	}
	if err := presets.Save(fyne.CurrentApp()); err != nil {
		log.Printf("save presets: %v", err)
		return
	}
	sw.presetSelect.SetOptions(presets.Names())
}

func (sw *SettingsWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sw.container)
}

// swatch shows a colour and opens a picker when tapped.
type swatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	color    color.Color
	onChange func()
}

func newSwatch(col color.Color, onChange func()) *swatch {
	s := &swatch{
		rect:     canvas.NewRectangle(col),
		color:    col,
		onChange: onChange,
	}
	s.rect.SetMinSize(fyne.NewSize(80, 24))
	s.rect.StrokeColor = color.White
	s.rect.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *swatch) setColor(c color.Color) {
	s.color = c
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *swatch) Tapped(*fyne.PointEvent) {
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetColor(s.color)
	picker.SetOnChanged(func(c color.Color) {
		s.setColor(c)
		if s.onChange != nil {
			s.onChange()
		}
	})

	c := fyne.CurrentApp().Driver().CanvasForObject(s)
	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), c)
	modal.Show()
}

func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}
