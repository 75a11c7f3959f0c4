package fandial

import (
	"math"
	"testing"

	"github.com/roffe/fancontroller/pkg/fanspeed"
)

const tolerance = 1e-4

func near(a, b float64) bool { return math.Abs(a-b) <= tolerance }

func TestRadius(t *testing.T) {
	tests := []struct {
		name          string
		width, height float32
		want          float32
	}{
		{name: "square", width: 200, height: 200, want: 80},
		{name: "small", width: 100, height: 100, want: 40},
		{name: "wide", width: 400, height: 100, want: 40},
		{name: "tall", width: 100, height: 300, want: 40},
		{name: "zero", width: 0, height: 200, want: 0},
		{name: "negative", width: -10, height: 200, want: -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Radius(tt.width, tt.height); !near(float64(got), float64(tt.want)) {
				t.Errorf("Radius(%v, %v) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestRadiusScalesLinearly(t *testing.T) {
	for _, size := range []float32{10, 77, 200, 1024} {
		r1 := Radius(size, size*1.5)
		r2 := Radius(size*2, size*3)
		if !near(float64(r2), float64(2*r1)) {
			t.Errorf("size %v: doubled radius %v, want %v", size, r2, 2*r1)
		}
	}
}

func TestPositionOff(t *testing.T) {
	const r, w, h = 80, 200, 200
	theta := 9 * math.Pi / 8
	p := Position(fanspeed.Off, r, w, h)
	wantX := r*math.Cos(theta) + w/2
	wantY := r*math.Sin(theta) + h/2
	if !near(float64(p.X), wantX) || !near(float64(p.Y), wantY) {
		t.Errorf("Position(Off) = %v, want (%v, %v)", p, wantX, wantY)
	}
}

func TestPositionDeterministic(t *testing.T) {
	for _, s := range fanspeed.All() {
		a := Position(s, 110, 200, 200)
		b := Position(s, 110, 200, 200)
		if a != b {
			t.Errorf("Position(%s) not stable: %v != %v", s, a, b)
		}
	}
}

func TestPositionSpacing(t *testing.T) {
	for _, r := range []float32{10, 45, 110} {
		all := fanspeed.All()
		for i := 1; i < len(all); i++ {
			p0 := Position(all[i-1], r, 200, 200)
			p1 := Position(all[i], r, 200, 200)
			a0 := math.Atan2(float64(p0.Y-100), float64(p0.X-100))
			a1 := math.Atan2(float64(p1.Y-100), float64(p1.X-100))
			diff := math.Mod(a1-a0+2*math.Pi, 2*math.Pi)
			if !near(diff, math.Pi/4) {
				t.Errorf("r=%v %s->%s spacing %v", r, all[i-1], all[i], diff)
			}
		}
	}
}

func TestPositionHalvesWithSize(t *testing.T) {
	big := Radius(200, 200)
	small := Radius(100, 100)
	for _, s := range fanspeed.All() {
		pb := Position(s, big, 200, 200)
		ps := Position(s, small, 100, 100)
		if !near(float64(ps.X-50), float64(pb.X-100)/2) || !near(float64(ps.Y-50), float64(pb.Y-100)/2) {
			t.Errorf("%s: small offset (%v, %v), big offset (%v, %v)", s, ps.X-50, ps.Y-50, pb.X-100, pb.Y-100)
		}
	}
}

func TestPositionDegenerate(t *testing.T) {
	for _, s := range fanspeed.All() {
		p := Position(s, 0, 0, 0)
		if p.X != 0 || p.Y != 0 {
			t.Errorf("Position(%s, 0) = %v, want origin", s, p)
		}
	}
}

func TestRadii(t *testing.T) {
	if got := IndicatorRadius(80); got != 45 {
		t.Errorf("IndicatorRadius(80) = %v", got)
	}
	if got := LabelRadius(80); got != 110 {
		t.Errorf("LabelRadius(80) = %v", got)
	}
	if got := IndicatorSize(120); !near(float64(got), 10) {
		t.Errorf("IndicatorSize(120) = %v", got)
	}
}
