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

package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// segment is a non-horizontal line segment in device coordinates.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer computes the fraction of each pixel covered by a filled path.
// Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it. Must be positive.
	Flatness float64

	// LargePathArea is the bounding box area, in pixels, above which paths
	// are processed one scanline at a time. Zero selects a default.
	LargePathArea int

	segs   []segment
	active []int     // fillRows: indices of segments crossing the current row
	cover  []float32 // signed vertical extent per cell; holds the result after integration
	area   []float32 // cover weighted by the uncovered part of the cell
	used   []bool    // fillBuffered: at least one segment touches the row

	bbox struct {
		empty                  bool
		xMin, xMax, yMin, yMax float64
	}
}

func (s *segment) top() float64    { return min(s.y0, s.y1) }
func (s *segment) bottom() float64 { return max(s.y0, s.y1) }

// fillRule selects how winding numbers map to coverage.
type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

const (
	defaultFlatness = 0.25

	defaultLargePathArea = 1 << 16

	// segments with a smaller vertical extent do not affect coverage
	horizontalThreshold = 1e-10
)

// NewRasterizer returns a Rasterizer with the identity CTM.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// FillNonZero fills p using the nonzero winding rule.
// For every row with non-zero coverage, emit is called with the coverage of
// the pixels starting at column xMin. The slice is only valid during the
// call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// The emit callback is used as for FillNonZero.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, evenOdd, emit)
}

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.flatten(p)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) > r.largeArea() {
		r.fillRows(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillBuffered(xMin, xMax, yMin, yMax, rule, emit)
	}
}

func (r *Rasterizer) largeArea() int {
	if r.LargePathArea > 0 {
		return r.LargePathArea
	}
	return defaultLargePathArea
}

// fillBuffered accumulates all segments into one buffer covering the
// bounding box, and then integrates the rows.
func (r *Rasterizer) fillBuffered(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.used = slices.Grow(r.used[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.used)

	for i := range r.segs {
		s := &r.segs[i]
		lo := max(int(math.Floor(s.top())), yMin)
		hi := min(int(math.Floor(s.bottom()))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			s.accumulate(y, r.cover[off:off+width], r.area[off:off+width], xMin)
			r.used[row] = true
		}
	}

	for row := range height {
		if !r.used[row] {
			continue
		}
		off := row * width
		cov := r.cover[off : off+width]
		integrate(cov, r.area[off:off+width], rule)
		emitTrimmed(yMin+row, xMin, cov, emit)
	}
}

// fillRows processes one scanline at a time, keeping a list of the
// segments which cross the current row. Memory use is proportional to the
// width of the bounding box only.
func (r *Rasterizer) fillRows(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(a.top(), b.top())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.segs) && r.segs[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			s := &r.segs[r.active[i]]
			if s.bottom() <= yf {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			s.accumulate(y, r.cover, r.area, xMin)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		emitTrimmed(y, xMin, r.cover, emit)
	}
}

// emitTrimmed passes the non-zero part of a row of coverage values to emit.
func emitTrimmed(y, xMin int, cov []float32, emit func(y, xMin int, coverage []float32)) {
	lo, hi := 0, len(cov)
	for lo < hi && cov[lo] == 0 {
		lo++
	}
	for hi > lo && cov[hi-1] == 0 {
		hi--
	}
	if lo < hi {
		emit(y, xMin+lo, cov[lo:hi])
	}
}

// flatten converts p into device-space segments and returns the integer
// bounding box of the segments, clamped to the clip rectangle.
func (r *Rasterizer) flatten(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.segs = r.segs[:0]
	r.bbox.empty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addLine(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.quadTo(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.cubeTo(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addLine(cur, start)
			}
			cur = start
		}
	}
	if len(r.segs) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.xMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.xMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.yMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasterizer) toDevice(v vec.Vec2) vec.Vec2 {
	x, y := r.CTM.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

// deviceLength measures a user-space vector in device pixels.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

func (r *Rasterizer) addLine(a, b vec.Vec2) {
	da := r.toDevice(a)
	db := r.toDevice(b)

	if r.bbox.empty {
		r.bbox.xMin, r.bbox.xMax = min(da.X, db.X), max(da.X, db.X)
		r.bbox.yMin, r.bbox.yMax = min(da.Y, db.Y), max(da.Y, db.Y)
		r.bbox.empty = false
	} else {
		r.bbox.xMin = min(r.bbox.xMin, da.X, db.X)
		r.bbox.xMax = max(r.bbox.xMax, da.X, db.X)
		r.bbox.yMin = min(r.bbox.yMin, da.Y, db.Y)
		r.bbox.yMax = max(r.bbox.yMax, da.Y, db.Y)
	}

	dy := db.Y - da.Y
	if math.Abs(dy) < horizontalThreshold {
		return
	}
	r.segs = append(r.segs, segment{
		x0: da.X, y0: da.Y,
		x1: db.X, y1: db.Y,
		dxdy: (db.X - da.X) / dy,
	})
}

// quadTo approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) quadTo(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addLine(prev, q)
		prev = q
	}
}

// cubeTo approximates a cubic Bézier curve by line segments.
// The number of segments follows Wang's formula.
func (r *Rasterizer) cubeTo(p0, p1, p2, p3 vec.Vec2) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dev > 0 {
		if m := math.Sqrt(3 * dev / (4 * r.Flatness)); m > 1 {
			n = int(math.Ceil(m))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addLine(prev, q)
		prev = q
	}
}

// Each segment crossing a cell adds its signed vertical extent to cover, and
// the same amount weighted by the part of the cell to the right of the
// segment to area. Integrating a row from left to right then gives the
// winding number times the covered fraction for every cell.
//
// accumulate adds the contribution of s within scanline y. The buffers hold
// one row, starting at column x0. Segments left of the row are folded into
// the first cell; segments right of the row have no effect.
func (s *segment) accumulate(y int, cover, area []float32, x0 int) {
	top := max(float64(y), s.top())
	bot := min(float64(y+1), s.bottom())
	if bot <= top {
		return
	}
	sign := float32(1)
	if s.y1 < s.y0 {
		sign = -1
	}

	xt := s.x0 + s.dxdy*(top-s.y0)
	xb := s.x0 + s.dxdy*(bot-s.y0)
	colL := int(math.Floor(min(xt, xb)))
	colR := int(math.Floor(max(xt, xb)))

	if colL == colR {
		s.addCell(colL, top, bot, sign, cover, area, x0)
		return
	}

	// split the piece at the column boundaries
	dydx := 1 / s.dxdy
	for col := colL; col <= colR; col++ {
		ya := s.y0 + dydx*(float64(col)-s.x0)
		yb := s.y0 + dydx*(float64(col+1)-s.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi > lo {
			s.addCell(col, lo, hi, sign, cover, area, x0)
		}
	}
}

// addCell adds the part of s between heights lo and hi, known to lie in
// column col.
func (s *segment) addCell(col int, lo, hi float64, sign float32, cover, area []float32, x0 int) {
	c := sign * float32(hi-lo)
	i := col - x0
	switch {
	case i < 0:
		cover[0] += c
		area[0] += c
	case i < len(cover):
		xm := s.x0 + s.dxdy*((lo+hi)/2-s.y0)
		frac := xm - float64(col)
		cover[i] += c
		area[i] += c * float32(1-frac)
	}
}

// integrate turns the accumulated cover and area of one row into coverage
// values in [0, 1], stored in cover.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		if w < 0 {
			w = -w
		}
		switch rule {
		case nonZero:
			w = min(w, 1)
		case evenOdd:
			w -= 2 * float32(int(w/2))
			if w > 1 {
				w = 2 - w
			}
		}
		cover[i] = w
	}
}
