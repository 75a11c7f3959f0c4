package fanspeed_test

import (
	"errors"
	"math"
	"testing"

	"github.com/roffe/fancontroller/pkg/fanspeed"
)

func TestNextCycle(t *testing.T) {
	for _, s := range fanspeed.All() {
		got := s
		for i := 0; i < fanspeed.Count; i++ {
			got = got.Next()
		}
		if got != s {
			t.Errorf("4x Next() from %s = %s", s, got)
		}
	}
	if got := fanspeed.High.Next(); got != fanspeed.Off {
		t.Errorf("High.Next() = %s, want off", got)
	}
}

func TestSequence(t *testing.T) {
	want := []fanspeed.Speed{fanspeed.Low, fanspeed.Medium, fanspeed.High, fanspeed.Off}
	s := fanspeed.Off
	for i, w := range want {
		s = s.Next()
		if s != w {
			t.Fatalf("step %d: got %s, want %s", i+1, s, w)
		}
	}
}

func TestAngle(t *testing.T) {
	if got := fanspeed.Off.Angle(); math.Abs(got-3.534291735) > 1e-6 {
		t.Errorf("Off.Angle() = %v", got)
	}
	all := fanspeed.All()
	for i := 1; i < len(all); i++ {
		diff := all[i].Angle() - all[i-1].Angle()
		if math.Abs(diff-math.Pi/4) > 1e-12 {
			t.Errorf("spacing %s-%s = %v", all[i-1], all[i], diff)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    fanspeed.Speed
		wantErr bool
	}{
		{name: "off", in: "off", want: fanspeed.Off},
		{name: "upper", in: "HIGH", want: fanspeed.High},
		{name: "spaces", in: " medium ", want: fanspeed.Medium},
		{name: "unknown", in: "turbo", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fanspeed.Parse(tt.in)
			if err != nil {
				if !tt.wantErr {
					t.Errorf("Parse() failed: %v", err)
				}
				if !errors.Is(err, fanspeed.ErrUnknownSpeed) {
					t.Errorf("Parse() error %v does not wrap ErrUnknownSpeed", err)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Parse() succeeded unexpectedly")
			}
			if got != tt.want {
				t.Errorf("Parse() = %s, want %s", got, tt.want)
			}
		})
	}
}
