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

package main

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textBoard keeps the parting message until the image is written.
type textBoard struct {
	text    string
	visible bool
}

func (b *textBoard) ShowMessage(text string) {
	b.text = text
	b.visible = true
}

func (b *textBoard) HideMessage() {
	b.visible = false
}

// basicfont only covers ASCII
var asciiQuotes = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"—", "-", "–", "-", "―", "-",
)

const (
	margin     = 10
	lineHeight = 16
)

// drawMessage prints text in white onto the lower half of img, wrapped to
// the image width.
func drawMessage(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	b := img.Bounds()
	cols := max((b.Dx()-2*margin)/face.Advance, 1)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	y := b.Min.Y + b.Dy()/2 + margin + face.Ascent
	for _, line := range wrap(asciiQuotes.Replace(text), cols) {
		if y > b.Max.Y {
			break
		}
		d.Dot = fixed.P(b.Min.X+margin, y)
		d.DrawString(line)
		y += lineHeight
	}
}

// wrap breaks text into lines of at most cols characters. Existing line
// breaks are kept; words longer than a line are split.
func wrap(text string, cols int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var cur []rune
		for _, word := range strings.Fields(para) {
			w := []rune(word)
			for len(w) > cols {
				if len(cur) > 0 {
					lines = append(lines, string(cur))
					cur = cur[:0]
				}
				lines = append(lines, string(w[:cols]))
				w = w[cols:]
			}
			switch {
			case len(cur) == 0:
				cur = append(cur, w...)
			case len(cur)+1+len(w) <= cols:
				cur = append(append(cur, ' '), w...)
			default:
				lines = append(lines, string(cur))
				cur = append(cur[:0], w...)
			}
		}
		lines = append(lines, string(cur))
	}
	return lines
}
