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

package mandala

import "time"

// Scheduler runs periodic work on behalf of a Session.
type Scheduler interface {
	// Start arranges for step to be called repeatedly, once per interval,
	// until step returns false. Start must not block, and must not call
	// step before it has returned.
	Start(interval time.Duration, step func() bool)
}

// TickerScheduler runs steps from a time.Ticker.
type TickerScheduler struct {
	// Do runs f on the thread which owns the session and returns without
	// waiting for f to complete, for example fyne.Do. If Do is nil, steps
	// are called directly from the ticker goroutine; a Session serialises
	// them with its other methods.
	Do func(f func())
}

// Start implements the Scheduler interface.
func (ts TickerScheduler) Start(interval time.Duration, step func() bool) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		more := make(chan bool, 1)
		for range ticker.C {
			if ts.Do == nil {
				if !step() {
					return
				}
				continue
			}
			ts.Do(func() { more <- step() })
			if !<-more {
				return
			}
		}
	}()
}

// ManualScheduler queues steps until they are explicitly advanced.
// It is used by tests and for offline replay, where no wall-clock time
// should pass.
type ManualScheduler struct {
	pending []func() bool

	// Intervals records the interval of every Start call.
	Intervals []time.Duration
}

// Start implements the Scheduler interface.
func (m *ManualScheduler) Start(interval time.Duration, step func() bool) {
	m.pending = append(m.pending, step)
	m.Intervals = append(m.Intervals, interval)
}

// Pending returns the number of step functions which have not finished.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// Advance calls every pending step function once, and drops those which
// return false. It returns the number of steps which were run.
func (m *ManualScheduler) Advance() int {
	current := m.pending
	m.pending = nil
	var keep []func() bool
	for _, step := range current {
		if step() {
			keep = append(keep, step)
		}
	}
	// steps started during this round go after the surviving ones
	m.pending = append(keep, m.pending...)
	return len(current)
}

// Run advances until no steps are pending and returns the number of
// rounds. At most limit rounds are run; limit <= 0 means no limit.
func (m *ManualScheduler) Run(limit int) int {
	rounds := 0
	for len(m.pending) > 0 && (limit <= 0 || rounds < limit) {
		m.Advance()
		rounds++
	}
	return rounds
}
