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
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"seehuhn.de/go/mandala"
	"seehuhn.de/go/mandala/raster"
)

// initialSize is used until the widget is first laid out.
const initialSize = 300

// board is the drawing surface. It forwards pointer input to a
// mandala.Session and shows the picture painted by the session.
type board struct {
	widget.BaseWidget

	sess    *mandala.Session
	surface *raster.Canvas
	image   *canvas.Image
}

var (
	_ fyne.Widget       = (*board)(nil)
	_ fyne.Draggable    = (*board)(nil)
	_ desktop.Mouseable = (*board)(nil)
)

func newBoard(cfg mandala.Config, log *zap.Logger, messages mandala.MessageBoard) *board {
	b := &board{
		surface: raster.NewCanvas(initialSize, initialSize),
	}
	b.image = canvas.NewImageFromImage(b.surface.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScalePixels

	b.sess = mandala.NewSession(cfg, initialSize, initialSize, b.surface)
	b.sess.Log = log
	b.sess.Messages = messages
	b.sess.Scheduler = mandala.TickerScheduler{
		Do: func(f func()) {
			fyne.Do(func() {
				f()
				b.repaint()
			})
		},
	}

	b.ExtendBaseWidget(b)
	return b
}

// repaint shows the current state of the surface.
func (b *board) repaint() {
	b.image.Image = b.surface.Image()
	b.image.Refresh()
}

func (b *board) resize(size fyne.Size) {
	w, h := int(size.Width), int(size.Height)
	if w < 1 || h < 1 {
		return
	}
	if img := b.surface.Image().Bounds(); img.Dx() == w && img.Dy() == h {
		return
	}
	b.surface.Resize(w, h)
	b.sess.Resize(float64(w), float64(h))
	b.repaint()
}

func (b *board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.sess.PointerDown()
}

func (b *board) MouseUp(*desktop.MouseEvent) {
	b.sess.PointerUp()
}

func (b *board) Dragged(e *fyne.DragEvent) {
	b.sess.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	b.repaint()
}

func (b *board) DragEnd() {
	b.sess.PointerUp()
}

func (b *board) setSymmetry(x float64) { b.sess.SetSymmetryValue(x) }
func (b *board) setColor(c mandala.Color) { b.sess.SetColor(c) }

func (b *board) undo() {
	b.sess.Undo()
	b.repaint()
}

func (b *board) clear() {
	b.sess.Clear()
	b.repaint()
}

func (b *board) release() {
	b.sess.Release()
}

func (b *board) reset() {
	b.sess.Reset()
	b.repaint()
}

func (b *board) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b}
}

type boardRenderer struct {
	board *board
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.board.image.Resize(size)
	r.board.resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(initialSize, initialSize)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.image}
}

func (r *boardRenderer) Refresh() {
	r.board.image.Refresh()
}

func (r *boardRenderer) Destroy() {}
