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

package mandala

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultSteps is the number of sub-intervals used to densify the segment
// between two consecutive pointer samples.
const DefaultSteps = 10

// Disc is the circular region which accepts input.
type Disc struct {
	Center vec.Vec2 // in surface coordinates
	Radius float64
}

// SurfaceDisc returns the largest disc centred on a width×height surface.
func SurfaceDisc(width, height float64) Disc {
	return Disc{
		Center: vec.Vec2{X: width / 2, Y: height / 2},
		Radius: min(width, height) / 2,
	}
}

// Relative converts surface coordinates to offsets from the disc centre.
func (d Disc) Relative(px, py float64) vec.Vec2 {
	return vec.Vec2{X: px - d.Center.X, Y: py - d.Center.Y}
}

// Contains reports whether the centre-relative point v lies in the disc.
// Points on the boundary are inside.
func (d Disc) Contains(v vec.Vec2) bool {
	return math.Hypot(v.X, v.Y) <= d.Radius
}

// Interpolate returns the steps-1 points which divide the segment from a to
// b into steps equal parts. The end points are not included.
func Interpolate(a, b vec.Vec2, steps int) []vec.Vec2 {
	if steps < 2 {
		return nil
	}
	d := b.Sub(a)
	dx := d.X / float64(steps)
	dy := d.Y / float64(steps)

	res := make([]vec.Vec2, 0, steps-1)
	for i := 1; i < steps; i++ {
		res = append(res, vec.Vec2{
			X: a.X + dx*float64(i),
			Y: a.Y + dy*float64(i),
		})
	}
	return res
}

// Clipper turns raw pointer positions into accepted stroke samples.
type Clipper struct {
	Disc Disc

	// Steps controls densification between consecutive samples.
	// Values below 2 disable densification.
	Steps int
}

// Clip converts the surface position (px, py) into samples.
//
// If the position lies outside the disc, the result is nil: the sample is
// dropped, not moved onto the boundary. Otherwise the result ends with the
// sample itself. If last is non-nil, the interpolated points between last
// and the new sample come first. These intermediate points are not tested
// against the disc.
func (c *Clipper) Clip(last *Point, px, py float64, color Color) []Point {
	v := c.Disc.Relative(px, py)
	if !c.Disc.Contains(v) {
		return nil
	}

	var res []Point
	if last != nil {
		between := Interpolate(last.Vec(), v, c.Steps)
		res = make([]Point, 0, len(between)+1)
		for _, w := range between {
			res = append(res, Point{X: w.X, Y: w.Y, Color: color})
		}
	}
	return append(res, Point{X: v.X, Y: v.Y, Color: color})
}
