package fanspeed

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Speed is one of the four positions of the fan dial.
type Speed uint8

const (
	Off Speed = iota
	Low
	Medium
	High
)

// Count is the number of speeds.
const Count = 4

const (
	// StartAngle is the slot angle of Off, 9π/8 radians.
	StartAngle = math.Pi * (9 / 8.0)
	// Step is the angular distance between two neighbouring slots.
	Step = math.Pi / 4
)

var ErrUnknownSpeed = errors.New("unknown fan speed")

var labelKeys = [Count]string{"off", "low", "medium", "high"}

// All returns every speed in declaration order.
func All() []Speed {
	return []Speed{Off, Low, Medium, High}
}

// Next returns the successor, wrapping High back to Off.
func (s Speed) Next() Speed {
	return Speed((int(s) + 1) % Count)
}

func (s Speed) Ordinal() int {
	return int(s) % Count
}

// LabelKey is the resource key used to look up the localized label.
func (s Speed) LabelKey() string {
	return labelKeys[s.Ordinal()]
}

// Angle returns the slot angle in radians.
func (s Speed) Angle() float64 {
	return StartAngle + float64(s.Ordinal())*Step
}

func (s Speed) String() string {
	return s.LabelKey()
}

func Parse(str string) (Speed, error) {
	key := strings.ToLower(strings.TrimSpace(str))
	for i, k := range labelKeys {
		if k == key {
			return Speed(i), nil
		}
	}
	return Off, fmt.Errorf("%w: %q", ErrUnknownSpeed, str)
}
