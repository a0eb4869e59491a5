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

var flower = lines(
	"size 240 160",
	"symmetry 8",
	"color crimson",
	stroke(arc(150, 80, 25, 3.5, 6, 16)...),
	"color gold",
	stroke(spiral(120, 80, 2, 20, 2, 30)...),
)

var releaseCases = []Scenario{
	{
		Name:     "fade",
		Width:    240,
		Height:   160,
		Script:   flower + lines("release", "wait"),
		Strokes:  2,
		State:    mandala.StateMessage,
		Messages: 1,
	},
	{
		Name:    "half_faded",
		Width:   240,
		Height:  160,
		Script:  flower + lines("release", "tick 5"),
		Strokes: 2,
		State:   mandala.StateFading,
	},
	{
		Name:   "input_ignored",
		Width:  240,
		Height: 160,
		Script: flower + lines(
			"release",
			stroke([2]float64{130, 80}),
			"undo",
			"clear",
			"wait",
			stroke([2]float64{130, 80}),
			"undo",
			"clear",
		),
		Strokes:  2,
		Symmetry: []int{8, 8},
		State:    mandala.StateMessage,
		Messages: 1,
	},
	{
		Name:     "release_twice",
		Width:    240,
		Height:   160,
		Script:   flower + lines("release", "tick 2", "release", "wait", "release", "wait"),
		Strokes:  2,
		State:    mandala.StateMessage,
		Messages: 1,
	},
	{
		Name:     "reset",
		Width:    240,
		Height:   160,
		Script:   flower + lines("release", "wait", "reset"),
		State:    mandala.StateDrawing,
		Messages: 1,
	},
	{
		Name:    "reset_too_early",
		Width:   240,
		Height:  160,
		Script:  flower + lines("release", "tick 3", "reset"),
		Strokes: 2,
		State:   mandala.StateFading,
	},
	{
		Name:   "draw_after_reset",
		Width:  240,
		Height: 160,
		Script: flower + lines(
			"release",
			"wait",
			"reset",
			"symmetry 5",
			stroke(segment(120, 80, 160, 60, 5)...),
		),
		Strokes:  1,
		Symmetry: []int{5},
		State:    mandala.StateDrawing,
		Messages: 1,
	},
}
