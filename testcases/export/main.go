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

// Command export renders every test scenario to a PNG file in testdata/.
// Run from the module root directory.
package main

import (
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"seehuhn.de/go/mandala"
	"seehuhn.de/go/mandala/raster"
	"seehuhn.de/go/mandala/testcases"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		log.Fatal("cannot create output directory", zap.Error(err))
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := export(name, sc); err != nil {
				log.Fatal("export failed", zap.String("scenario", name), zap.Error(err))
			}
			log.Info("exported", zap.String("scenario", name))
		}
	}
}

func export(name string, sc testcases.Scenario) error {
	c := raster.NewCanvas(sc.Width, sc.Height)
	resize := func(w, h float64) { c.Resize(int(w), int(h)) }
	if _, err := sc.Replay(mandala.DefaultConfig(), c, resize); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join("testdata", name+".png"))
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
