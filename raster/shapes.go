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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// addCircle appends a closed circle to p, made of four cubic Bézier curves.
func addCircle(p *path.Data, c vec.Vec2, r float64) *path.Data {
	k := r * kappa
	x, y := c.X, c.Y
	return p.
		MoveTo(pt(x+r, y)).
		CubeTo(pt(x+r, y-k), pt(x+k, y-r), pt(x, y-r)).
		CubeTo(pt(x-k, y-r), pt(x-r, y-k), pt(x-r, y)).
		CubeTo(pt(x-r, y+k), pt(x-k, y+r), pt(x, y+r)).
		CubeTo(pt(x+k, y+r), pt(x+r, y+k), pt(x+r, y)).
		Close()
}

// circle returns a circular path.
func circle(c vec.Vec2, r float64) *path.Data {
	return addCircle(&path.Data{}, c, r)
}

// ring returns two concentric circles. Filled with the even-odd rule, this
// gives the outline of a circle with radius r and line width w.
func ring(c vec.Vec2, r, w float64) *path.Data {
	p := addCircle(&path.Data{}, c, r+w/2)
	if inner := r - w/2; inner > 0 {
		p = addCircle(p, c, inner)
	}
	return p
}

// rectangle returns the outline of an axis-aligned rectangle.
func rectangle(b rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(b.LLx, b.LLy)).
		LineTo(pt(b.URx, b.LLy)).
		LineTo(pt(b.URx, b.URy)).
		LineTo(pt(b.LLx, b.URy)).
		Close()
}
