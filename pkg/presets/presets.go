package presets

import (
	"encoding/json"
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"github.com/roffe/fancontroller/pkg/colors"
	"github.com/roffe/fancontroller/pkg/fandial"
)

const prefsKey = "presets"

// Preset is a stored fan dial style, colours as hex strings.
type Preset struct {
	Low    string `json:"low"`
	Medium string `json:"medium"`
	High   string `json:"high"`
}

// Map holds every known preset by name.
var Map = map[string]Preset{}

func Names() []string {
	var names []string
	for name := range Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isSystem(name string) bool {
	for _, n := range colors.SupportedColorBlindModes {
		if n == name {
			return true
		}
	}
	return false
}

func FromStyle(s fandial.Style) Preset {
	return Preset{
		Low:    colors.Hex(s.Low()),
		Medium: colors.Hex(s.Medium()),
		High:   colors.Hex(s.High()),
	}
}

func (p Preset) Style() (fandial.Style, error) {
	low, err := colors.ParseHex(p.Low)
	if err != nil {
		return fandial.Style{}, err
	}
	mid, err := colors.ParseHex(p.Medium)
	if err != nil {
		return fandial.Style{}, err
	}
	high, err := colors.ParseHex(p.High)
	if err != nil {
		return fandial.Style{}, err
	}
	return fandial.NewStyle(low, mid, high), nil
}

func Set(name string, style fandial.Style) error {
	if isSystem(name) {
		return fmt.Errorf("cannot replace system presets")
	}
	Map[name] = FromStyle(style)
	return nil
}

func Delete(name string) error {
	if isSystem(name) {
		return fmt.Errorf("cannot delete system presets")
	}
	delete(Map, name)
	return nil
}

func Get(name string) (fandial.Style, error) {
	p, ok := Map[name]
	if !ok {
		return fandial.Style{}, fmt.Errorf("preset %q not found", name)
	}
	s, err := p.Style()
	if err != nil {
		return fandial.Style{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return s, nil
}

func Load(app fyne.App) error {
	presets := app.Preferences().String(prefsKey)
	if presets == "" {
		setDefaults()
		return nil
	}
	if err := json.Unmarshal([]byte(presets), &Map); err != nil {
		setDefaults()
		return err
	}
	setDefaults()
	return nil
}

func setDefaults() {
	for i, name := range colors.SupportedColorBlindModes {
		low, mid, high := colors.Palette(colors.ColorBlindMode(i))
		Map[name] = FromStyle(fandial.NewStyle(low, mid, high))
	}
}

func Save(app fyne.App) error {
	presets, err := json.Marshal(Map)
	if err != nil {
		return err
	}
	app.Preferences().SetString(prefsKey, string(presets))
	return nil
}
