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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Color is an opaque colour tag, for example "red" or "#0077b6".
// The core never interprets it; executors decide how to map tags to pixels.
type Color string

// Point is one sample of a stroke.
// X and Y are offsets from the centre of the drawing surface.
type Point struct {
	X, Y  float64
	Color Color
}

// Vec returns the position of the sample.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Stroke is one continuous pointer-down to pointer-up gesture.
type Stroke struct {
	// Symmetry is the number of rotational copies, captured when the stroke
	// was started.
	Symmetry int

	// Points holds the samples in the order they were drawn.
	Points []Point
}

// History is the ordered list of strokes on the surface.
//
// Strokes are only ever appended, removed from the end, or discarded all at
// once. Only the last stroke can grow, and only through [History.Append].
// The zero value is an empty history.
type History struct {
	strokes []Stroke
}

// Begin starts a new, empty stroke with the given symmetry.
func (h *History) Begin(symmetry int) {
	h.strokes = append(h.strokes, Stroke{Symmetry: ClampSymmetry(symmetry)})
}

// Append adds p to the last stroke.
// It reports false, and does nothing, if the history is empty.
func (h *History) Append(p Point) bool {
	n := len(h.strokes)
	if n == 0 {
		return false
	}
	last := &h.strokes[n-1]
	last.Points = append(last.Points, p)
	return true
}

// Undo removes the last stroke.
// It reports whether there was a stroke to remove.
func (h *History) Undo() bool {
	n := len(h.strokes)
	if n == 0 {
		return false
	}
	h.strokes[n-1] = Stroke{}
	h.strokes = h.strokes[:n-1]
	return true
}

// Clear removes all strokes.
func (h *History) Clear() {
	h.strokes = nil
}

// Len returns the number of strokes.
func (h *History) Len() int {
	return len(h.strokes)
}

// Strokes returns a copy of the history.
// The result does not share memory with h.
func (h *History) Strokes() []Stroke {
	if len(h.strokes) == 0 {
		return nil
	}
	res := make([]Stroke, len(h.strokes))
	for i, s := range h.strokes {
		res[i] = Stroke{
			Symmetry: s.Symmetry,
			Points:   slices.Clone(s.Points),
		}
	}
	return res
}
