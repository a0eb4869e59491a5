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

// Default values for renderer parameters.
const (
	DefaultMarkRadius  = 3.0
	DefaultBorderWidth = 2.0

	DefaultBorderColor Color = "#000000"
)

// Renderer turns samples into paint operations.
//
// The output depends only on the arguments and the renderer fields, so that
// replaying a history always reproduces the same picture.
type Renderer struct {
	Painter Painter
	Disc    Disc

	// MarkRadius is the radius of the disc painted for each mark.
	MarkRadius float64

	// BorderWidth and BorderColor describe the outline of the disc.
	BorderWidth float64
	BorderColor Color

	// Opacity multiplies the alpha of every operation. Must be in [0, 1].
	Opacity float64
}

// NewRenderer returns a Renderer for the given disc with default parameters.
func NewRenderer(p Painter, d Disc) *Renderer {
	return &Renderer{
		Painter:     p,
		Disc:        d,
		MarkRadius:  DefaultMarkRadius,
		BorderWidth: DefaultBorderWidth,
		BorderColor: DefaultBorderColor,
		Opacity:     1,
	}
}

// RenderPoint paints the n symmetric copies of sample p.
func (r *Renderer) RenderPoint(p Point, n int) {
	for _, m := range Marks(p.Vec(), n) {
		r.Painter.Paint(FillCircle{
			Center: m.Add(r.Disc.Center),
			Radius: r.MarkRadius,
			Color:  p.Color,
			Alpha:  r.Opacity,
		})
	}
}

// RenderBorder paints the outline of the disc.
func (r *Renderer) RenderBorder() {
	r.Painter.Paint(StrokeCircle{
		Center: r.Disc.Center,
		Radius: r.Disc.Radius,
		Width:  r.BorderWidth,
		Color:  r.BorderColor,
		Alpha:  r.Opacity,
	})
}

// RedrawAll clears the surface and repaints the border and all strokes.
// Every stroke is drawn with its own symmetry.
func (r *Renderer) RedrawAll(strokes []Stroke) {
	r.Painter.Paint(Clear{})
	r.renderScene(strokes)
}

// renderScene paints the border and the strokes on top of whatever is
// already on the surface.
func (r *Renderer) renderScene(strokes []Stroke) {
	r.RenderBorder()
	for _, s := range strokes {
		for _, p := range s.Points {
			r.RenderPoint(p, s.Symmetry)
		}
	}
}
