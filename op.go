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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Op is a primitive paint operation.
// All coordinates are in surface space, with the origin at the top left.
type Op interface {
	isOp()
}

// Clear resets the whole surface to its background.
type Clear struct{}

// FillCircle paints a filled disc.
type FillCircle struct {
	Center vec.Vec2
	Radius float64
	Color  Color
	Alpha  float64 // opacity in [0, 1]
}

// StrokeCircle paints the outline of a circle.
// The line is centred on the circle and has the given width.
type StrokeCircle struct {
	Center vec.Vec2
	Radius float64
	Width  float64
	Color  Color
	Alpha  float64
}

// FillRect paints an axis-aligned rectangle.
type FillRect struct {
	Rect  rect.Rect
	Color Color
	Alpha float64
}

func (Clear) isOp()        {}
func (FillCircle) isOp()   {}
func (StrokeCircle) isOp() {}
func (FillRect) isOp()     {}

// Painter executes paint operations against a drawing surface.
type Painter interface {
	Paint(op Op)
}

// PainterFunc adapts an ordinary function to the Painter interface.
type PainterFunc func(op Op)

// Paint calls f(op).
func (f PainterFunc) Paint(op Op) {
	f(op)
}

// Recorder is a Painter which remembers all operations.
type Recorder struct {
	Ops []Op
}

// Paint appends op to r.Ops.
func (r *Recorder) Paint(op Op) {
	r.Ops = append(r.Ops, op)
}

// Reset forgets all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
