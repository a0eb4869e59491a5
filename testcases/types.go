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

// Package testcases collects recorded drawing sessions with their expected
// outcome.
package testcases

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/mandala"
	"seehuhn.de/go/mandala/script"
)

// Scenario is a scripted drawing session.
type Scenario struct {
	Name   string // lowercase letters, digits and _ only
	Width  int    // surface width in pixels
	Height int    // surface height in pixels
	Script string // see package script

	// Expected outcome after the script has run.
	Strokes  int           // number of strokes in the history
	Symmetry []int         // symmetry of every stroke, in order; nil skips the check
	State    mandala.State // final session state
	Messages int           // number of parting messages shown
}

// Commands parses the script of the scenario.
func (s Scenario) Commands() ([]script.Command, error) {
	cmds, err := script.ParseString(s.Script)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	return cmds, nil
}

// lines joins script lines.
func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

// stroke returns a complete down/move.../up gesture through the given
// surface points.
func stroke(pts ...[2]float64) string {
	var b strings.Builder
	b.WriteString("down\n")
	for _, p := range pts {
		fmt.Fprintf(&b, "move %g %g\n", p[0], p[1])
	}
	b.WriteString("up\n")
	return b.String()
}

// segment returns n+1 evenly spaced points from (x1, y1) to (x2, y2).
func segment(x1, y1, x2, y2 float64, n int) [][2]float64 {
	res := make([][2]float64, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		res = append(res, [2]float64{x1 + t*(x2-x1), y1 + t*(y2-y1)})
	}
	return res
}

// arc returns n+1 points on a circle around (cx, cy) with radius r, from
// angle phi0 to phi1 (in radians).
func arc(cx, cy, r, phi0, phi1 float64, n int) [][2]float64 {
	res := make([][2]float64, 0, n+1)
	for i := range n + 1 {
		phi := phi0 + (phi1-phi0)*float64(i)/float64(n)
		res = append(res, [2]float64{cx + r*math.Cos(phi), cy + r*math.Sin(phi)})
	}
	return res
}

// spiral returns n+1 points on an Archimedean spiral around (cx, cy),
// growing from radius r0 to r1 over the given number of turns.
func spiral(cx, cy, r0, r1, turns float64, n int) [][2]float64 {
	res := make([][2]float64, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		phi := 2 * math.Pi * turns * t
		r := r0 + (r1-r0)*t
		res = append(res, [2]float64{cx + r*math.Cos(phi), cy + r*math.Sin(phi)})
	}
	return res
}
