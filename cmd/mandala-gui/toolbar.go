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
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/mandala"
	"seehuhn.de/go/mandala/raster"
)

var palette = []mandala.Color{"red", "orange", "yellow", "green", "blue", "purple", "black", "white"}

const maxSymmetry = 24

type colorSwatch struct {
	widget.BaseWidget
	tag      mandala.Color
	OnTapped func(mandala.Color)
}

func newColorSwatch(tag mandala.Color, tapped func(mandala.Color)) *colorSwatch {
	s := &colorSwatch{tag: tag, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	var fill color.Color = color.Black
	if c, ok := raster.ParseColor(s.tag); ok {
		fill = c
	}
	rect := canvas.NewRectangle(fill)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.tag)
	}
}

func newToolbar(b *board, cfg mandala.Config) fyne.CanvasObject {
	swatches := container.NewHBox()
	for _, tag := range palette {
		swatches.Add(newColorSwatch(tag, b.setColor))
	}

	value := widget.NewLabel("")
	slider := widget.NewSlider(1, maxSymmetry)
	slider.Step = 1
	slider.SetValue(float64(min(cfg.Symmetry, maxSymmetry)))
	value.SetText(fmt.Sprint(int(slider.Value)))
	b.setSymmetry(slider.Value)
	slider.OnChanged = func(x float64) {
		b.setSymmetry(x)
		value.SetText(fmt.Sprint(b.sess.Symmetry()))
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(180, 35)), slider)

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), b.undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), b.clear),
	)
	letGo := widget.NewButton("Let go", b.release)

	return container.NewHBox(
		widget.NewLabel("Color:"),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Symmetry:"),
		sliderBox,
		value,
		widget.NewSeparator(),
		actions,
		letGo,
		layout.NewSpacer(),
	)
}

// messageBox shows the parting message on top of the board.
type messageBox struct {
	text  *widget.Label
	again *widget.Button
	box   fyne.CanvasObject
}

var _ mandala.MessageBoard = (*messageBox)(nil)

func newMessageBox() *messageBox {
	m := &messageBox{
		text:  widget.NewLabel(""),
		again: widget.NewButton("Draw again", nil),
	}
	m.text.Wrapping = fyne.TextWrapWord
	m.text.Alignment = fyne.TextAlignCenter
	m.text.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewVBox(m.text, container.NewCenter(m.again))
	m.box = container.NewCenter(
		container.New(layout.NewGridWrapLayout(fyne.NewSize(440, 220)), content),
	)
	m.box.Hide()
	return m
}

func (m *messageBox) ShowMessage(text string) {
	m.text.SetText(text)
	m.box.Show()
}

func (m *messageBox) HideMessage() {
	m.box.Hide()
}
