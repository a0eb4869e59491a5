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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistoryAppendUndo(t *testing.T) {
	var h History
	if h.Append(Point{X: 1}) {
		t.Error("Append succeeded on an empty history")
	}
	if h.Undo() {
		t.Error("Undo succeeded on an empty history")
	}

	h.Begin(3)
	h.Append(Point{X: 1, Color: "red"})
	h.Append(Point{X: 2, Color: "red"})
	h.Begin(0)
	h.Append(Point{Y: 5, Color: "blue"})

	want := []Stroke{
		{Symmetry: 3, Points: []Point{{X: 1, Color: "red"}, {X: 2, Color: "red"}}},
		{Symmetry: 1, Points: []Point{{Y: 5, Color: "blue"}}},
	}
	if d := cmp.Diff(want, h.Strokes()); d != "" {
		t.Errorf("strokes (-want +got):\n%s", d)
	}

	if !h.Undo() {
		t.Fatal("Undo failed")
	}
	if d := cmp.Diff(want[:1], h.Strokes()); d != "" {
		t.Errorf("after undo (-want +got):\n%s", d)
	}

	// a new stroke after undo does not see stale points
	h.Begin(2)
	if got := h.Strokes()[1]; len(got.Points) != 0 || got.Symmetry != 2 {
		t.Errorf("new stroke = %+v", got)
	}
}

func TestHistoryClear(t *testing.T) {
	var h History
	for i := range 4 {
		h.Begin(i + 1)
		h.Append(Point{X: float64(i)})
	}
	h.Clear()
	if h.Len() != 0 || h.Strokes() != nil {
		t.Errorf("history not empty after Clear: %v", h.Strokes())
	}
	h.Clear()
	if h.Len() != 0 {
		t.Error("second Clear changed the history")
	}
}

// N draws followed by K undos leave exactly the first N-K strokes.
func TestHistoryUndoLinear(t *testing.T) {
	const n = 7
	for k := 0; k <= n+2; k++ {
		var h History
		for i := range n {
			h.Begin(i + 1)
		}
		for range k {
			h.Undo()
		}
		strokes := h.Strokes()
		if want := max(n-k, 0); len(strokes) != want {
			t.Fatalf("k=%d: %d strokes, want %d", k, len(strokes), want)
		}
		for i, s := range strokes {
			if s.Symmetry != i+1 {
				t.Errorf("k=%d: stroke %d has symmetry %d", k, i, s.Symmetry)
			}
		}
	}
}

func TestHistoryStrokesIsCopy(t *testing.T) {
	var h History
	h.Begin(4)
	h.Append(Point{X: 1})

	s := h.Strokes()
	s[0].Symmetry = 99
	s[0].Points[0].X = 99

	got := h.Strokes()
	if got[0].Symmetry != 4 || got[0].Points[0].X != 1 {
		t.Errorf("history modified through copy: %+v", got[0])
	}
}
