// seehuhn.de/go/mandala - symmetric drawing on a disc
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster paints mandala operations into images.
//
// The Canvas type implements mandala.Painter. Shapes are converted to paths
// and scan-converted by a Rasterizer, which computes exact area coverage
// per pixel. The resulting coverage is composited onto an *image.RGBA using
// the Porter-Duff "source over" operator.
package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/mandala"
)

// Canvas is a raster drawing surface.
type Canvas struct {
	// Background is painted by mandala.Clear.
	Background color.NRGBA

	// Fallback is used for colour tags which ParseColor does not recognise.
	Fallback color.NRGBA

	img *image.RGBA
	r   *Rasterizer
}

var _ mandala.Painter = (*Canvas)(nil)

// NewCanvas allocates a width×height canvas with a white background.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Fallback:   color.NRGBA{A: 255},
		r:          NewRasterizer(rect.Rect{}),
	}
	c.Resize(width, height)
	return c
}

// Resize replaces the image by a new, cleared width×height image.
func (c *Canvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.r.Clip = rect.Rect{URx: float64(width), URy: float64(height)}
	c.clear()
}

// Image returns the current image.
// The image is replaced by Resize, and modified by Paint.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Paint implements the mandala.Painter interface.
func (c *Canvas) Paint(op mandala.Op) {
	switch op := op.(type) {
	case mandala.Clear:
		c.clear()
	case mandala.FillCircle:
		c.fill(circle(op.Center, op.Radius), nonZero, op.Color, op.Alpha)
	case mandala.StrokeCircle:
		c.fill(ring(op.Center, op.Radius, op.Width), evenOdd, op.Color, op.Alpha)
	case mandala.FillRect:
		c.fill(rectangle(op.Rect), nonZero, op.Color, op.Alpha)
	}
}

func (c *Canvas) clear() {
	bg := premultiply(c.Background, 1)
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = bg.A
	}
}

func (c *Canvas) color(tag mandala.Color) color.NRGBA {
	if col, ok := ParseColor(tag); ok {
		return col
	}
	return c.Fallback
}

func (c *Canvas) fill(p *path.Data, rule fillRule, tag mandala.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	col := c.color(tag)
	a := float32(min(alpha, 1)) * float32(col.A) / 255
	if a <= 0 {
		return
	}
	sr := float32(col.R) * a
	sg := float32(col.G) * a
	sb := float32(col.B) * a
	sa := 255 * a

	img := c.img
	c.r.fill(p, rule, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+4*xMin:]
		for i, cov := range coverage {
			px := row[4*i : 4*i+4 : 4*i+4]
			k := 1 - cov*a
			px[0] = blend(sr*cov, px[0], k)
			px[1] = blend(sg*cov, px[1], k)
			px[2] = blend(sb*cov, px[2], k)
			px[3] = blend(sa*cov, px[3], k)
		}
	})
}

// blend computes src + k·dst for premultiplied 8-bit channels.
func blend(src float32, dst uint8, k float32) uint8 {
	v := src + k*float32(dst) + 0.5
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

func premultiply(c color.NRGBA, alpha float32) color.RGBA {
	a := alpha * float32(c.A) / 255
	return color.RGBA{
		R: uint8(float32(c.R)*a + 0.5),
		G: uint8(float32(c.G)*a + 0.5),
		B: uint8(float32(c.B)*a + 0.5),
		A: uint8(255*a + 0.5),
	}
}
