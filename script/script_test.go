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

package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/mandala"
)

func TestParse(t *testing.T) {
	in := `# a small session
size 200 100

down
move 110 50   # inside
move 1.5e2 -3
up
symmetry 8
color #0077b6
undo
clear
release
tick
tick 4
wait
reset
`
	got, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []Command{
		mandala.ResizeEvent{Width: 200, Height: 100},
		mandala.PointerDownEvent{},
		mandala.PointerMoveEvent{X: 110, Y: 50},
		mandala.PointerMoveEvent{X: 150, Y: -3},
		mandala.PointerUpEvent{},
		mandala.SymmetryEvent{N: 8},
		mandala.ColorEvent{Color: "#0077b6"},
		mandala.UndoEvent{},
		mandala.ClearEvent{},
		mandala.ReleaseEvent{},
		Tick{N: 1},
		Tick{N: 4},
		Wait{},
		mandala.ResetEvent{},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestParseComments(t *testing.T) {
	tests := []struct {
		in   string
		want []Command
	}{
		{"color #0077b6 # backdrop\n", []Command{mandala.ColorEvent{Color: "#0077b6"}}},
		{"color #ffa500#orange\n", []Command{mandala.ColorEvent{Color: "#ffa500#orange"}}},
		{"color gold #ffa500\n", []Command{mandala.ColorEvent{Color: "gold"}}},
		{"tick 3#three\n", []Command{Tick{N: 3}}},
		{"undo#\n", []Command{mandala.UndoEvent{}}},
		{"#color #0077b6\n", nil},
	}
	for _, test := range tests {
		got, err := ParseString(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", test.in, d)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := ParseString("\n  # nothing\n\n")
	if err != nil || got != nil {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		line string
	}{
		{"down\nfly\n", "line 2: "},
		{"move 1\n", "line 1: "},
		{"down\nup\nmove x 2\n", "line 3: "},
		{"symmetry six\n", "line 1: "},
		{"tick 1 2\n", "line 1: "},
		{"size 0 10\n", "line 1: "},
		{"undo now\n", "line 1: "},
	}
	for _, test := range tests {
		_, err := ParseString(test.in)
		if err == nil {
			t.Errorf("%q: no error", test.in)
			continue
		}
		if !strings.HasPrefix(err.Error(), test.line) {
			t.Errorf("%q: error %q, want prefix %q", test.in, err, test.line)
		}
	}

	_, err := ParseString("color\n")
	if !errors.Is(err, errArgs) {
		t.Errorf("missing argument gave %v", err)
	}
}

func TestSize(t *testing.T) {
	cmds, err := ParseString("down\nsize 30 40\nsize 50 60\n")
	if err != nil {
		t.Fatal(err)
	}
	w, h, ok := Size(cmds)
	if !ok || w != 30 || h != 40 {
		t.Errorf("Size = %g, %g, %t", w, h, ok)
	}
	if _, _, ok := Size(nil); ok {
		t.Error("Size found a size in an empty script")
	}
}

type board struct{ shown int }

func (b *board) ShowMessage(string) { b.shown++ }
func (b *board) HideMessage()       {}

func TestPlayer(t *testing.T) {
	cmds, err := ParseString(`
size 100 100
symmetry 3
down
move 60 50
move 70 50
up
release
tick 4
`)
	if err != nil {
		t.Fatal(err)
	}

	sched := &mandala.ManualScheduler{}
	msgs := &board{}
	sess := mandala.NewSession(mandala.DefaultConfig(), 50, 50, &mandala.Recorder{})
	sess.Scheduler = sched
	sess.Messages = msgs

	var sizes [][2]float64
	p := &Player{
		Session:   sess,
		Scheduler: sched,
		OnResize:  func(w, h float64) { sizes = append(sizes, [2]float64{w, h}) },
	}
	p.Play(cmds)

	if d := cmp.Diff([][2]float64{{100, 100}}, sizes); d != "" {
		t.Errorf("resize calls (-want +got):\n%s", d)
	}
	if sess.Disc().Radius != 50 {
		t.Errorf("radius %g after size command", sess.Disc().Radius)
	}
	h := sess.History()
	if len(h) != 1 || h[0].Symmetry != 3 || len(h[0].Points) != 11 {
		t.Fatalf("unexpected history %+v", h)
	}
	if sess.State() != mandala.StateFading || msgs.shown != 0 {
		t.Errorf("after 4 ticks: state %s, %d messages", sess.State(), msgs.shown)
	}

	p.Step(Wait{})
	if sess.State() != mandala.StateMessage || msgs.shown != 1 {
		t.Errorf("after wait: state %s, %d messages", sess.State(), msgs.shown)
	}

	p.Step(mandala.ResetEvent{})
	p.Step("not a command")
	if sess.State() != mandala.StateDrawing {
		t.Errorf("after reset: state %s", sess.State())
	}
}

// Without a scheduler, ticks are ignored.
func TestPlayerNoScheduler(t *testing.T) {
	sess := mandala.NewSession(mandala.DefaultConfig(), 50, 50, &mandala.Recorder{})
	sess.Scheduler = &mandala.ManualScheduler{}
	p := &Player{Session: sess}
	p.Play([]Command{mandala.ReleaseEvent{}, Tick{N: 20}, Wait{}})
	if sess.State() != mandala.StateFading {
		t.Errorf("state %s", sess.State())
	}
}
