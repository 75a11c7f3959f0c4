package labels

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/roffe/fancontroller/pkg/fanspeed"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		locale  string
		speed   fanspeed.Speed
		want    string
		wantErr bool
	}{
		{locale: "en", speed: fanspeed.Off, want: "off"},
		{locale: "en", speed: fanspeed.High, want: "3"},
		{locale: "sv", speed: fanspeed.Off, want: "av"},
		{locale: "de", speed: fanspeed.Medium, want: "2"},
		{locale: "xx", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.speed.String(), func(t *testing.T) {
			st, err := Load(tt.locale)
			if err != nil {
				if !tt.wantErr {
					t.Errorf("Load() failed: %v", err)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Load() succeeded unexpectedly")
			}
			if got := st.Label(tt.speed); got != tt.want {
				t.Errorf("Label(%s) = %q, want %q", tt.speed, got, tt.want)
			}
		})
	}
}

func TestStaticFallback(t *testing.T) {
	if got := (Static{}).Label(fanspeed.Low); got != "low" {
		t.Errorf("Label = %q, want key", got)
	}
}

func TestLocales(t *testing.T) {
	got := map[string]bool{}
	for _, l := range Locales() {
		got[l] = true
	}
	for _, want := range []string{"en", "sv", "de"} {
		if !got[want] {
			t.Errorf("locale %s missing from %v", want, Locales())
		}
	}
}

func TestLang(t *testing.T) {
	test.NewApp()
	if err := Register(); err != nil {
		t.Fatal(err)
	}
	for _, s := range fanspeed.All() {
		if got := (Lang{}).Label(s); got == "" {
			t.Errorf("Label(%s) empty", s)
		}
	}
}
