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

// Package mandala implements the model behind a symmetric drawing canvas.
//
// A user paints freehand strokes inside a disc. Every accepted pointer
// sample is replicated under N-fold rotational symmetry around the centre of
// the disc. The package keeps the stroke history (with linear undo and
// clear), clips and densifies raw pointer motion, and expresses all drawing
// as a stream of primitive paint operations ([Op]) handed to a [Painter].
// The package never touches an actual drawing surface; see the raster
// sub-package for an executor that paints into an image.
//
// A [Session] ties everything together. It is driven by discrete input
// events and is not safe for concurrent use: all calls, including the fade
// steps run by a [Scheduler], must happen on one logical thread.
package mandala

//go:generate go run ./testcases/export
