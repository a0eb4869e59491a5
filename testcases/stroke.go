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

import "math"

var strokeCases = []Scenario{
	{
		Name:     "single_dot",
		Width:    200,
		Height:   200,
		Script:   lines("size 200 200", stroke([2]float64{130, 100})),
		Strokes:  1,
		Symmetry: []int{6},
	},
	{
		Name:     "line",
		Width:    200,
		Height:   200,
		Script:   lines("size 200 200", stroke(segment(100, 100, 160, 140, 8)...)),
		Strokes:  1,
		Symmetry: []int{6},
	},
	{
		Name:   "spiral",
		Width:  200,
		Height: 200,
		Script: lines(
			"size 200 200",
			"color purple",
			stroke(spiral(100, 100, 5, 90, 3, 120)...),
		),
		Strokes:  1,
		Symmetry: []int{6},
	},
	{
		Name:   "two_colors",
		Width:  200,
		Height: 200,
		Script: lines(
			"size 200 200",
			"color blue",
			stroke(arc(100, 100, 60, 0, math.Pi/3, 12)...),
			"color #ffa500",
			stroke(arc(100, 100, 30, 0, math.Pi/3, 12)...),
		),
		Strokes:  2,
		Symmetry: []int{6, 6},
	},
	{
		Name:     "empty_stroke",
		Width:    200,
		Height:   200,
		Script:   lines("size 200 200", "down", "up"),
		Strokes:  1,
		Symmetry: []int{6},
	},
	{
		Name:   "move_without_down",
		Width:  200,
		Height: 200,
		Script: lines("size 200 200", "move 120 120", "move 130 130", "up"),
	},
}

var symmetryCases = []Scenario{
	{
		Name:     "fold_1",
		Width:    200,
		Height:   200,
		Script:   lines("size 200 200", "symmetry 1", stroke(segment(110, 100, 180, 100, 7)...)),
		Strokes:  1,
		Symmetry: []int{1},
	},
	{
		Name:     "fold_12",
		Width:    200,
		Height:   200,
		Script:   lines("size 200 200", "symmetry 12", stroke(arc(100, 100, 70, 0, math.Pi/6, 10)...)),
		Strokes:  1,
		Symmetry: []int{12},
	},
	{
		Name:   "mixed",
		Width:  200,
		Height: 200,
		Script: lines(
			"size 200 200",
			"symmetry 3",
			stroke(segment(100, 60, 100, 20, 5)...),
			"symmetry 8",
			"color green",
			stroke(arc(100, 100, 50, 0, math.Pi/4, 8)...),
		),
		Strokes:  2,
		Symmetry: []int{3, 8},
	},
	{
		Name:   "clamped",
		Width:  200,
		Height: 200,
		Script: lines(
			"size 200 200",
			"symmetry 0",
			stroke([2]float64{120, 100}),
			"symmetry -5",
			stroke([2]float64{140, 100}),
		),
		Strokes:  2,
		Symmetry: []int{1, 1},
	},
	{
		Name:   "change_mid_stroke",
		Width:  200,
		Height: 200,
		Script: lines(
			"size 200 200",
			"down",
			"move 120 100",
			"symmetry 3",
			"move 140 110",
			"up",
			stroke([2]float64{100, 150}),
		),
		Strokes:  2,
		Symmetry: []int{6, 3},
	},
}

var clipCases = []Scenario{
	{
		Name:     "outside_only",
		Width:    200,
		Height:   200,
		Script:   lines("size 200 200", stroke([2]float64{5, 5}, [2]float64{195, 5}, [2]float64{195, 195})),
		Strokes:  1,
		Symmetry: []int{6},
	},
	{
		Name:     "edge_crossing",
		Width:    200,
		Height:   200,
		Script:   lines("size 200 200", stroke(segment(100, 100, 200, 200, 20)...)),
		Strokes:  1,
		Symmetry: []int{6},
	},
	{
		Name:     "wide_surface",
		Width:    300,
		Height:   100,
		Script:   lines("size 300 100", stroke(segment(150, 50, 250, 50, 20)...)),
		Strokes:  1,
		Symmetry: []int{6},
	},
}
