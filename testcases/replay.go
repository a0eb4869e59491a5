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

package testcases

import (
	"math/rand/v2"

	"seehuhn.de/go/mandala"
	"seehuhn.de/go/mandala/script"
)

// Board records the parting messages shown by a session.
type Board struct {
	Shown   []string
	Visible bool
}

// ShowMessage implements the mandala.MessageBoard interface.
func (b *Board) ShowMessage(text string) {
	b.Shown = append(b.Shown, text)
	b.Visible = true
}

// HideMessage implements the mandala.MessageBoard interface.
func (b *Board) HideMessage() {
	b.Visible = false
}

// Outcome is the result of replaying a scenario.
type Outcome struct {
	Session   *mandala.Session
	Scheduler *mandala.ManualScheduler
	Board     *Board
}

// Replay runs the scenario against a new session which paints to p.
// The session starts at the first size given in the script, or at the
// scenario size if the script sets none. If onResize is not nil, it is
// called before every size change is passed to the session.
//
// The fade is driven manually and the parting message is chosen by a
// fixed seed, so that replays are reproducible.
func (s Scenario) Replay(cfg mandala.Config, p mandala.Painter, onResize func(width, height float64)) (*Outcome, error) {
	cmds, err := s.Commands()
	if err != nil {
		return nil, err
	}

	w, h, ok := script.Size(cmds)
	if !ok {
		w, h = float64(s.Width), float64(s.Height)
	}
	if onResize != nil {
		onResize(w, h)
	}

	sched := &mandala.ManualScheduler{}
	board := &Board{}
	sess := mandala.NewSession(cfg, w, h, p)
	sess.Scheduler = sched
	sess.Messages = board
	sess.Rand = rand.New(rand.NewPCG(1, 2))

	player := &script.Player{
		Session:   sess,
		Scheduler: sched,
		OnResize:  onResize,
	}
	player.Play(cmds)

	return &Outcome{Session: sess, Scheduler: sched, Board: board}, nil
}
