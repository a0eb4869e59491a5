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

package testcases

import "seehuhn.de/go/mandala"

// threeStrokes draws strokes with symmetry 2, 4 and 6.
var threeStrokes = lines(
	"size 200 200",
	"symmetry 2",
	stroke(segment(110, 100, 150, 100, 4)...),
	"symmetry 4",
	"color blue",
	stroke(segment(100, 120, 100, 170, 5)...),
	"symmetry 6",
	"color green",
	stroke(arc(100, 100, 80, 0, 1, 10)...),
)

var historyCases = []Scenario{
	{
		Name:     "undo",
		Width:    200,
		Height:   200,
		Script:   threeStrokes + lines("undo"),
		Strokes:  2,
		Symmetry: []int{2, 4},
	},
	{
		Name:     "undo_twice",
		Width:    200,
		Height:   200,
		Script:   threeStrokes + lines("undo", "undo"),
		Strokes:  1,
		Symmetry: []int{2},
	},
	{
		Name:   "undo_empty",
		Width:  200,
		Height: 200,
		Script: lines("size 200 200", "undo", "undo"),
	},
	{
		Name:   "clear",
		Width:  200,
		Height: 200,
		Script: threeStrokes + lines("clear"),
	},
	{
		Name:     "clear_then_draw",
		Width:    200,
		Height:   200,
		Script:   threeStrokes + lines("clear", "color red", stroke(segment(60, 60, 90, 90, 3)...)),
		Strokes:  1,
		Symmetry: []int{6},
	},
	{
		Name:   "undo_during_stroke",
		Width:  200,
		Height: 200,
		Script: lines(
			"size 200 200",
			"down",
			"move 120 100",
			"undo",
			"move 130 100",
			"up",
		),
	},
	{
		Name:   "resize",
		Width:  400,
		Height: 300,
		Script: lines(
			"size 200 200",
			stroke(segment(110, 110, 150, 130, 4)...),
			"size 400 300",
			stroke(segment(200, 150, 300, 150, 4)...),
		),
		Strokes:  2,
		Symmetry: []int{6, 6},
		State:    mandala.StateDrawing,
	},
}
