package fandial

import (
	"math"

	"github.com/roffe/fancontroller/pkg/fanspeed"
	"github.com/roffe/fancontroller/pkg/render"
)

const (
	// IndicatorOffset pulls the indicator dot inside the disc edge.
	IndicatorOffset = -35
	// LabelOffset pushes the labels outside the disc edge.
	LabelOffset = 30

	radiusFactor    = 0.8
	indicatorFactor = 1.0 / 12.0
)

// Radius of the dial disc for a widget of the given size.
func Radius(width, height float32) float32 {
	return radiusFactor * min(width, height) / 2
}

func Center(width, height float32) render.Point {
	return render.Pt(width/2, height/2)
}

// Position returns the point at radius r on the slot of s, relative to a
// widget of the given size. A zero or negative r is allowed.
func Position(s fanspeed.Speed, r, width, height float32) render.Point {
	sin, cos := math.Sincos(s.Angle())
	return render.Pt(
		float32(float64(r)*cos)+width/2,
		float32(float64(r)*sin)+height/2,
	)
}

func IndicatorRadius(radius float32) float32 { return radius + IndicatorOffset }

func LabelRadius(radius float32) float32 { return radius + LabelOffset }

// IndicatorSize is the radius of the indicator dot.
func IndicatorSize(radius float32) float32 { return radius * indicatorFactor }
