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

// Package script reads and replays recorded drawing sessions.
//
// A script has one command per line. Words are separated by white space;
// a '#' starts a comment which runs to the end of the line. The argument of
// a color command is never a comment, so that hex colours like #0077b6 can
// be given.
//
//	size W H      surface size
//	down          pointer pressed
//	move X Y      pointer position, in surface coordinates
//	up            pointer released
//	symmetry N    symmetry for new strokes
//	color TAG     colour for new samples
//	undo
//	clear
//	release       let go of the drawing
//	tick [N]      run N steps (default 1) of the fade
//	wait          run the fade to completion
//	reset         start over after the parting message
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/mandala"
)

// Command is one line of a script.
// It is either a mandala.Event or one of the types Tick and Wait.
type Command any

// Tick advances the fade by N steps.
type Tick struct {
	N int
}

// Wait runs the fade until it has finished.
type Wait struct{}

// Parse reads a script.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		words := stripComment(strings.Fields(sc.Text()))
		if len(words) == 0 {
			continue
		}
		cmd, err := parseCommand(words)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

// ParseString is like Parse, but reads from a string.
func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

// stripComment removes the words belonging to a trailing comment.
func stripComment(words []string) []string {
	for i, w := range words {
		if i == 1 && words[0] == "color" {
			continue
		}
		k := strings.IndexByte(w, '#')
		if k < 0 {
			continue
		}
		if k > 0 {
			return append(words[:i], w[:k])
		}
		return words[:i]
	}
	return words
}

var errArgs = errors.New("wrong number of arguments")

func parseCommand(words []string) (Command, error) {
	name, args := words[0], words[1:]

	nArgs := func(n ...int) error {
		for _, k := range n {
			if len(args) == k {
				return nil
			}
		}
		return fmt.Errorf("%s: %w", name, errArgs)
	}

	switch name {
	case "down", "up", "undo", "clear", "release", "reset", "wait":
		if err := nArgs(0); err != nil {
			return nil, err
		}
	case "move", "size":
		if err := nArgs(2); err != nil {
			return nil, err
		}
	case "symmetry", "color":
		if err := nArgs(1); err != nil {
			return nil, err
		}
	case "tick":
		if err := nArgs(0, 1); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown command %q", name)
	}

	switch name {
	case "down":
		return mandala.PointerDownEvent{}, nil
	case "up":
		return mandala.PointerUpEvent{}, nil
	case "undo":
		return mandala.UndoEvent{}, nil
	case "clear":
		return mandala.ClearEvent{}, nil
	case "release":
		return mandala.ReleaseEvent{}, nil
	case "reset":
		return mandala.ResetEvent{}, nil
	case "wait":
		return Wait{}, nil
	case "color":
		return mandala.ColorEvent{Color: mandala.Color(args[0])}, nil
	case "symmetry":
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("symmetry: %w", err)
		}
		return mandala.SymmetryEvent{N: n}, nil
	case "tick":
		n := 1
		if len(args) == 1 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("tick: %w", err)
			}
		}
		return Tick{N: n}, nil
	}

	// move and size take two numbers
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if name == "size" {
		if x <= 0 || y <= 0 {
			return nil, fmt.Errorf("size: invalid dimensions %gx%g", x, y)
		}
		return mandala.ResizeEvent{Width: x, Height: y}, nil
	}
	return mandala.PointerMoveEvent{X: x, Y: y}, nil
}

// Player replays commands against a session.
type Player struct {
	Session *mandala.Session

	// Scheduler must be the scheduler of Session, for Tick and Wait to
	// have an effect.
	Scheduler *mandala.ManualScheduler

	// OnResize, if set, is called with the new size before a
	// mandala.ResizeEvent is passed to the session. It can be used to
	// resize the painter.
	OnResize func(width, height float64)
}

// maxFadeRounds bounds Wait, in case a step function never finishes.
const maxFadeRounds = 1 << 16

// Play runs all commands in order.
func (p *Player) Play(cmds []Command) {
	for _, cmd := range cmds {
		p.Step(cmd)
	}
}

// Step runs a single command. Commands of unknown type are ignored.
func (p *Player) Step(cmd Command) {
	switch cmd := cmd.(type) {
	case Tick:
		if p.Scheduler == nil {
			return
		}
		for range cmd.N {
			p.Scheduler.Advance()
		}
	case Wait:
		if p.Scheduler != nil {
			p.Scheduler.Run(maxFadeRounds)
		}
	case mandala.ResizeEvent:
		if p.OnResize != nil {
			p.OnResize(cmd.Width, cmd.Height)
		}
		p.Session.Dispatch(cmd)
	case mandala.Event:
		p.Session.Dispatch(cmd)
	}
}

// Size returns the first surface size set by cmds.
func Size(cmds []Command) (width, height float64, ok bool) {
	for _, cmd := range cmds {
		if ev, isSize := cmd.(mandala.ResizeEvent); isSize {
			return ev.Width, ev.Height, true
		}
	}
	return 0, 0, false
}
