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

// Command mandala replays a recorded drawing session and writes the final
// picture to a PNG file.
//
// The session is read from a script (see package seehuhn.de/go/mandala/script),
// for example:
//
//	size 400 400
//	symmetry 8
//	color blue
//	down
//	move 220 200
//	move 260 180
//	up
//	release
//	wait
//
// If the script ends while the parting message is shown, the message is
// printed onto the image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"go.uber.org/zap"

	"seehuhn.de/go/mandala"
	"seehuhn.de/go/mandala/raster"
	"seehuhn.de/go/mandala/script"
)

type options struct {
	config string
	script string
	output string
	width  int
	height int
}

func main() {
	var opt options
	flag.StringVar(&opt.config, "config", "", "TOML configuration `file`")
	flag.StringVar(&opt.script, "script", "", "session script `file` (default standard input)")
	flag.StringVar(&opt.output, "o", "mandala.png", "output PNG `file`")
	flag.IntVar(&opt.width, "width", 600, "surface width, if the script sets no size")
	flag.IntVar(&opt.height, "height", 600, "surface height, if the script sets no size")
	verbose := flag.Bool("v", false, "log every stroke")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, opt); err != nil {
		log.Fatal("mandala failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func run(log *zap.Logger, opt options) error {
	cfg, err := mandala.LoadConfigFile(opt.config)
	if err != nil {
		return err
	}

	cmds, err := readScript(opt.script)
	if err != nil {
		return err
	}

	w, h, ok := script.Size(cmds)
	if !ok {
		w, h = float64(opt.width), float64(opt.height)
	}
	if w < 1 || h < 1 {
		return fmt.Errorf("invalid surface size %gx%g", w, h)
	}

	c := raster.NewCanvas(int(w), int(h))
	sched := &mandala.ManualScheduler{}
	board := &textBoard{}

	sess := mandala.NewSession(cfg, w, h, c)
	sess.Scheduler = sched
	sess.Messages = board
	sess.Log = log
	log.Info("replaying",
		zap.String("session", sess.ID),
		zap.Int("commands", len(cmds)),
		zap.Float64("width", w),
		zap.Float64("height", h))

	player := &script.Player{
		Session:   sess,
		Scheduler: sched,
		OnResize:  func(w, h float64) { c.Resize(int(w), int(h)) },
	}
	player.Play(cmds)

	img := c.Image()
	if board.visible {
		drawMessage(img, board.text)
	}
	if err := writePNG(opt.output, img); err != nil {
		return err
	}
	log.Info("written",
		zap.String("file", opt.output),
		zap.Stringer("state", sess.State()),
		zap.Int("strokes", len(sess.History())))
	return nil
}

func readScript(name string) ([]script.Command, error) {
	var r io.Reader = os.Stdin
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "<stdin>"
	}
	cmds, err := script.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cmds, nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
