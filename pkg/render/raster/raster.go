// Package raster draws dial frames into an in-memory image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/roffe/fancontroller/pkg/render"
)

// DefaultTextSize is the label size, in points, for a 1024 pixel image.
const DefaultTextSize = 55

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498

var _ render.Surface = (*Canvas)(nil)

type Canvas struct {
	img  *image.RGBA
	face font.Face
	z    *vector.Rasterizer
}

// BoldFace returns the Go Bold font at size points.
func BoldFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// New returns a transparent canvas. face may be nil, text is then skipped.
// Negative sizes give an empty canvas.
func New(width, height int, face font.Face) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: face,
		z:    vector.NewRasterizer(width, height),
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) DrawDisc(center render.Point, radius float32, col color.Color) {
	b := c.img.Bounds()
	if radius <= 0 || b.Empty() {
		return
	}
	c.z.Reset(b.Dx(), b.Dy())
	cx, cy, r := center.X, center.Y, radius
	k := r * kappa
	c.z.MoveTo(cx+r, cy)
	c.z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	c.z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	c.z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	c.z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func (c *Canvas) DrawText(text string, pos render.Point, col color.Color, align render.Align) {
	if c.face == nil || text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
	}
	x := fixed.Int26_6(pos.X * 64)
	switch align {
	case render.AlignCenter:
		x -= d.MeasureString(text) / 2
	case render.AlignTrailing:
		x -= d.MeasureString(text)
	}
	d.Dot = fixed.Point26_6{X: x, Y: fixed.Int26_6(pos.Y * 64)}
	d.DrawString(text)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
