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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestSurfaceDisc(t *testing.T) {
	tests := []struct {
		w, h float64
		want Disc
	}{
		{200, 200, Disc{Center: vec.Vec2{X: 100, Y: 100}, Radius: 100}},
		{300, 100, Disc{Center: vec.Vec2{X: 150, Y: 50}, Radius: 50}},
		{80, 120, Disc{Center: vec.Vec2{X: 40, Y: 60}, Radius: 40}},
	}
	for _, test := range tests {
		if got := SurfaceDisc(test.w, test.h); got != test.want {
			t.Errorf("SurfaceDisc(%g, %g) = %v, want %v", test.w, test.h, got, test.want)
		}
	}
}

func TestDiscBoundary(t *testing.T) {
	d := SurfaceDisc(200, 200)
	if !d.Contains(vec.Vec2{X: 100, Y: 0}) {
		t.Error("point on the boundary rejected")
	}
	if !d.Contains(vec.Vec2{X: 0, Y: -100}) {
		t.Error("point on the boundary rejected")
	}
	if d.Contains(vec.Vec2{X: 100 + 1e-9, Y: 0}) {
		t.Error("point just outside accepted")
	}
	if !d.Contains(vec.Vec2{}) {
		t.Error("centre rejected")
	}
}

func TestRelative(t *testing.T) {
	d := SurfaceDisc(300, 100)
	if got, want := d.Relative(160, 40), (vec.Vec2{X: 10, Y: -10}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpolate(t *testing.T) {
	got := Interpolate(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, 10)
	var want []vec.Vec2
	for i := 1; i <= 9; i++ {
		want = append(want, vec.Vec2{X: float64(i)})
	}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	if got := Interpolate(vec.Vec2{}, vec.Vec2{X: 1}, 1); got != nil {
		t.Errorf("steps=1 gave %v", got)
	}
	if got := Interpolate(vec.Vec2{}, vec.Vec2{X: 1}, 0); got != nil {
		t.Errorf("steps=0 gave %v", got)
	}
}

func TestClip(t *testing.T) {
	c := Clipper{Disc: SurfaceDisc(200, 200), Steps: 10}

	// first sample: no interpolation
	got := c.Clip(nil, 110, 100, "red")
	if d := cmp.Diff([]Point{{X: 10, Y: 0, Color: "red"}}, got); d != "" {
		t.Errorf("first sample (-want +got):\n%s", d)
	}

	// second sample: nine interpolated points, then the sample
	last := got[0]
	got = c.Clip(&last, 120, 100, "blue")
	if len(got) != 10 {
		t.Fatalf("got %d points, want 10", len(got))
	}
	for i, p := range got {
		want := Point{X: 11 + float64(i), Y: 0, Color: "blue"}
		if math.Abs(p.X-want.X) > 1e-9 || p.Y != 0 || p.Color != "blue" {
			t.Errorf("point %d = %v, want %v", i, p, want)
		}
	}

	// outside: dropped, not projected
	if got := c.Clip(&last, 0, 0, "red"); got != nil {
		t.Errorf("outside sample gave %v", got)
	}
	// exactly on the boundary: accepted
	if got := c.Clip(nil, 200, 100, "red"); len(got) != 1 {
		t.Errorf("boundary sample gave %v", got)
	}
}

func TestSymmetryValue(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{6, 6},
		{5.6, 6},
		{5.4, 5},
		{1, 1},
		{0.7, 1},
		{0, 1},
		{-3, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 1},
		{1e20, math.MaxInt32},
	}
	for _, test := range tests {
		if got := SymmetryValue(test.in); got != test.want {
			t.Errorf("SymmetryValue(%g) = %d, want %d", test.in, got, test.want)
		}
	}
	if got := ClampSymmetry(-7); got != 1 {
		t.Errorf("ClampSymmetry(-7) = %d", got)
	}
}

func TestMarks(t *testing.T) {
	v := vec.Vec2{X: 30, Y: 40}
	for _, n := range []int{1, 2, 3, 6, 12, 24} {
		marks := Marks(v, n)
		if len(marks) != n {
			t.Fatalf("n=%d: got %d marks", n, len(marks))
		}
		if marks[0] != v {
			t.Errorf("n=%d: first mark %v, want %v", n, marks[0], v)
		}
		phi0 := math.Atan2(v.Y, v.X)
		for i, m := range marks {
			if r := m.Length(); math.Abs(r-50) > 1e-9 {
				t.Errorf("n=%d, i=%d: radius %g, want 50", n, i, r)
			}
			want := phi0 + 2*math.Pi*float64(i)/float64(n)
			diff := math.Remainder(math.Atan2(m.Y, m.X)-want, 2*math.Pi)
			if math.Abs(diff) > 1e-9 {
				t.Errorf("n=%d, i=%d: angle off by %g", n, i, diff)
			}
		}
	}

	if got := Marks(v, 0); len(got) != 1 || got[0] != v {
		t.Errorf("n=0 gave %v", got)
	}
	if got := Marks(vec.Vec2{}, 5); len(got) != 5 {
		t.Errorf("centre: got %d marks", len(got))
	}
}
