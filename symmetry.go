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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ClampSymmetry maps symmetry counts below 1 to 1.
func ClampSymmetry(n int) int {
	return max(n, 1)
}

// SymmetryValue converts a (possibly fractional) slider value to a symmetry
// count. NaN, infinite and non-positive values give 1.
func SymmetryValue(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 1 {
		return 1
	}
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	return ClampSymmetry(int(math.Round(x)))
}

// Marks returns the n rotational copies of v around the origin.
// Copy i is rotated by the angle 2πi/n; copy 0 is v itself.
func Marks(v vec.Vec2, n int) []vec.Vec2 {
	n = ClampSymmetry(n)
	res := make([]vec.Vec2, n)
	res[0] = v
	for i := 1; i < n; i++ {
		x, y := matrix.Rotate(2*math.Pi*float64(i)/float64(n)).Apply(v.X, v.Y)
		res[i] = vec.Vec2{X: x, Y: y}
	}
	return res
}
