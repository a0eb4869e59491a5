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

// Command mandala-gui is an interactive mandala drawing program.
//
// Every stroke drawn inside the circle is repeated with rotational
// symmetry. "Let go" fades the drawing away and shows a parting message.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"seehuhn.de/go/mandala"
)

func main() {
	configFile := flag.String("config", "", "TOML configuration `file`")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	zcfg := zap.NewDevelopmentConfig()
	if !*verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := mandala.LoadConfigFile(*configFile)
	if err != nil {
		log.Fatal("cannot load configuration", zap.Error(err))
	}

	a := app.New()
	w := a.NewWindow("Mandala")
	w.Resize(fyne.NewSize(900, 760))

	msg := newMessageBox()
	b := newBoard(cfg, log, msg)
	msg.again.OnTapped = b.reset

	toolbar := newToolbar(b, cfg)
	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, container.NewStack(b, msg.box)))

	log.Info("starting", zap.String("session", b.sess.ID))
	w.ShowAndRun()
}
