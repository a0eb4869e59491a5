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

// Event is an input to a Session.
type Event interface {
	isEvent()
}

// PointerDownEvent starts a stroke.
type PointerDownEvent struct{}

// PointerMoveEvent reports a pointer position in surface coordinates.
type PointerMoveEvent struct {
	X, Y float64
}

// PointerUpEvent ends a stroke.
type PointerUpEvent struct{}

// SymmetryEvent changes the symmetry for new strokes.
type SymmetryEvent struct {
	N int
}

// ColorEvent changes the colour for new samples.
type ColorEvent struct {
	Color Color
}

// UndoEvent removes the last stroke.
type UndoEvent struct{}

// ClearEvent removes all strokes.
type ClearEvent struct{}

// ReleaseEvent lets go of the drawing.
type ReleaseEvent struct{}

// ResetEvent returns from the parting message to an empty drawing.
type ResetEvent struct{}

// ResizeEvent reports a new surface size.
type ResizeEvent struct {
	Width, Height float64
}

func (PointerDownEvent) isEvent() {}
func (PointerMoveEvent) isEvent() {}
func (PointerUpEvent) isEvent()   {}
func (SymmetryEvent) isEvent()    {}
func (ColorEvent) isEvent()       {}
func (UndoEvent) isEvent()        {}
func (ClearEvent) isEvent()       {}
func (ReleaseEvent) isEvent()     {}
func (ResetEvent) isEvent()       {}
func (ResizeEvent) isEvent()      {}

// Dispatch calls the Session method corresponding to ev.
// Unknown event types are ignored.
func (s *Session) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case PointerDownEvent:
		s.PointerDown()
	case PointerMoveEvent:
		s.PointerMove(ev.X, ev.Y)
	case PointerUpEvent:
		s.PointerUp()
	case SymmetryEvent:
		s.SetSymmetry(ev.N)
	case ColorEvent:
		s.SetColor(ev.Color)
	case UndoEvent:
		s.Undo()
	case ClearEvent:
		s.Clear()
	case ReleaseEvent:
		s.Release()
	case ResetEvent:
		s.Reset()
	case ResizeEvent:
		s.Resize(ev.Width, ev.Height)
	}
}
