package raster

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/roffe/fancontroller/pkg/render"
)

var ErrEmptyImage = errors.New("image has no area")

// Render replays frame onto a new canvas filled with bg.
func Render(frame render.Frame, width, height int, bg color.Color, textSize float64) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	face, err := BoldFace(textSize)
	if err != nil {
		return nil, err
	}
	c := New(width, height, face)
	if bg != nil {
		c.Fill(bg)
	}
	frame.Replay(c)
	return c, nil
}

// WritePNG renders frame and stores it at filename.
func WritePNG(filename string, frame render.Frame, width, height int, bg color.Color, textSize float64) error {
	c, err := Render(frame, width, height, bg, textSize)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
