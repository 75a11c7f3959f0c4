// Package labels resolves the text drawn next to each fan speed.
package labels

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"fyne.io/fyne/v2/lang"
	"github.com/roffe/fancontroller/pkg/fanspeed"
)

//go:embed translations
var translations embed.FS

const translationsDir = "translations"

// Register adds the speed labels to fyne's translation catalogue. Call it
// once after the app is created.
func Register() error {
	if err := lang.AddTranslationsFS(translations, translationsDir); err != nil {
		return fmt.Errorf("labels.Register: %w", err)
	}
	return nil
}

// Lang looks labels up through fyne's lang package.
type Lang struct{}

func (Lang) Label(s fanspeed.Speed) string {
	return lang.X(s.LabelKey(), s.LabelKey())
}

// Static is a fixed key to label table, for use without a running app.
type Static map[string]string

func (st Static) Label(s fanspeed.Speed) string {
	if l, ok := st[s.LabelKey()]; ok {
		return l
	}
	return s.LabelKey()
}

// Load reads the embedded table for locale, e.g. "en" or "sv".
func Load(locale string) (Static, error) {
	b, err := translations.ReadFile(path.Join(translationsDir, locale+".json"))
	if err != nil {
		return nil, fmt.Errorf("no labels for locale %q: %w", locale, err)
	}
	st := Static{}
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("parse labels %q: %w", locale, err)
	}
	return st, nil
}

// Locales lists the embedded translations.
func Locales() []string {
	entries, err := translations.ReadDir(translationsDir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if ext := path.Ext(name); ext == ".json" {
			out = append(out, name[:len(name)-len(ext)])
		}
	}
	return out
}
