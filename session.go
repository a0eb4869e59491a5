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

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/rect"
)

// State is the lifecycle state of a Session.
type State int

const (
	// StateDrawing accepts strokes, undo and clear.
	StateDrawing State = iota

	// StateFading is entered on release. The drawing fades away and all
	// input is ignored.
	StateFading

	// StateMessage shows the parting message. Only Reset is accepted.
	StateMessage
)

func (s State) String() string {
	switch s {
	case StateDrawing:
		return "drawing"
	case StateFading:
		return "fading"
	case StateMessage:
		return "message"
	default:
		return "unknown"
	}
}

// MessageBoard displays the parting message after a release.
type MessageBoard interface {
	ShowMessage(text string)
	HideMessage()
}

// fadeEpsilon absorbs the rounding error of repeatedly subtracting the fade
// step, so that 1.0 in steps of 0.1 ends after exactly ten steps.
const fadeEpsilon = 1e-9

// Session is the controller for one drawing surface.
//
// Methods which are not permitted in the current state do nothing.
// The methods of a Session may be called concurrently with the steps of its
// Scheduler; all calls to the Painter and the MessageBoard are serialised.
// They must not call back into the Session.
type Session struct {
	// ID identifies the session in log output.
	ID string

	// Scheduler runs the fade after a release.
	Scheduler Scheduler

	// Messages receives the parting message. It may be nil.
	Messages MessageBoard

	// Log receives diagnostic output.
	Log *zap.Logger

	// Rand picks the parting message.
	Rand *rand.Rand

	mu sync.Mutex

	cfg      Config
	width    float64
	height   float64
	clipper  Clipper
	renderer *Renderer
	history  History

	state    State
	active   bool
	last     *Point
	color    Color
	symmetry int
	opacity  float64
}

// NewSession creates a session for a width×height surface and paints the
// empty disc. The configuration is normalized first.
func NewSession(cfg Config, width, height float64, p Painter) *Session {
	cfg = cfg.Normalize()
	disc := SurfaceDisc(width, height)

	r := NewRenderer(p, disc)
	r.MarkRadius = cfg.MarkRadius
	r.BorderWidth = cfg.BorderWidth
	r.BorderColor = cfg.BorderColor

	s := &Session{
		ID:        uuid.NewString(),
		Scheduler: TickerScheduler{},
		Log:       zap.NewNop(),
		Rand:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),

		cfg:      cfg,
		width:    width,
		height:   height,
		clipper:  Clipper{Disc: disc, Steps: cfg.Steps},
		renderer: r,
		color:    cfg.Color,
		symmetry: cfg.Symmetry,
		opacity:  1,
	}
	r.RenderBorder()
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Released reports whether the drawing has been let go.
// This is the case from Release until Reset.
func (s *Session) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released()
}

func (s *Session) released() bool {
	return s.state != StateDrawing
}

// Active reports whether a stroke is in progress.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// History returns a copy of the strokes drawn so far.
func (s *Session) History() []Stroke {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Strokes()
}

// Symmetry returns the symmetry used for new strokes.
func (s *Session) Symmetry() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.symmetry
}

// Color returns the colour used for new samples.
func (s *Session) Color() Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// Opacity returns the opacity of the fade in progress, or 1.
func (s *Session) Opacity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opacity
}

// Disc returns the region which accepts input.
func (s *Session) Disc() Disc {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clipper.Disc
}

func (s *Session) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log.With(zap.String("session", s.ID))
}

// SetSymmetry sets the symmetry for strokes started from now on.
// Strokes which already exist keep their symmetry. Values below 1 are
// treated as 1.
func (s *Session) SetSymmetry(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symmetry = ClampSymmetry(n)
}

// SetSymmetryValue is like SetSymmetry, but accepts the raw value of
// a slider. See SymmetryValue.
func (s *Session) SetSymmetryValue(x float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symmetry = SymmetryValue(x)
}

// SetColor sets the colour for new samples. An empty tag is ignored.
func (s *Session) SetColor(c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == "" {
		return
	}
	s.color = c
}

// PointerDown starts a new stroke.
func (s *Session) PointerDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released() {
		return
	}
	s.history.Begin(s.symmetry)
	s.active = true
	s.last = nil
	s.logger().Debug("stroke started",
		zap.Int("symmetry", s.symmetry),
		zap.Int("strokes", s.history.Len()))
}

// PointerMove adds the pointer position (px, py), in surface coordinates,
// to the current stroke. Positions outside the disc are dropped.
func (s *Session) PointerMove(px, py float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released() || !s.active {
		return
	}
	n := s.history.Len()
	if n == 0 {
		return
	}
	symmetry := s.history.strokes[n-1].Symmetry

	samples := s.clipper.Clip(s.last, px, py, s.color)
	for _, p := range samples {
		s.renderer.RenderPoint(p, symmetry)
		s.history.Append(p)
	}
	if len(samples) > 0 {
		last := samples[len(samples)-1]
		s.last = &last
	}
}

// PointerUp ends the current stroke.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released() {
		return
	}
	if s.active {
		s.logger().Debug("stroke finished", zap.Int("strokes", s.history.Len()))
	}
	s.endStroke()
}

func (s *Session) endStroke() {
	s.active = false
	s.last = nil
}

// Undo removes the last stroke and redraws the surface.
func (s *Session) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released() || s.history.Len() == 0 {
		return
	}
	s.history.Undo()
	s.endStroke()
	s.redraw()
	s.logger().Debug("undo", zap.Int("strokes", s.history.Len()))
}

// Clear removes all strokes and redraws the surface.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released() {
		return
	}
	s.history.Clear()
	s.endStroke()
	s.redraw()
	s.logger().Debug("clear")
}

func (s *Session) redraw() {
	s.renderer.RedrawAll(s.history.strokes)
}

// Release lets go of the drawing. The drawing fades away, driven by the
// Scheduler, and then the parting message is shown.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released() {
		return
	}
	s.state = StateFading
	s.endStroke()
	s.opacity = 1
	s.logger().Info("released",
		zap.Int("strokes", s.history.Len()),
		zap.Duration("interval", s.cfg.FadeInterval()))
	sched := s.Scheduler
	if sched == nil {
		sched = TickerScheduler{}
	}
	sched.Start(s.cfg.FadeInterval(), s.fadeStep)
}

// fadeStep paints one frame of the fade. It returns false after the last
// frame, once the message has been shown.
func (s *Session) fadeStep() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateFading {
		return false
	}

	s.renderer.Opacity = 1
	s.renderer.Painter.Paint(Clear{})
	s.paintBackdrop()

	if s.opacity > fadeEpsilon {
		s.renderer.Opacity = s.opacity
		s.renderer.renderScene(s.history.strokes)
		s.renderer.Opacity = 1
	}

	s.opacity -= s.cfg.FadeStep
	if s.opacity > fadeEpsilon {
		return true
	}

	s.opacity = 1
	s.state = StateMessage
	msg := s.pickMessage()
	s.logger().Info("showing message", zap.String("state", s.state.String()))
	if s.Messages != nil {
		s.Messages.ShowMessage(msg)
	}
	return false
}

func (s *Session) pickMessage() string {
	n := len(s.cfg.Messages)
	if s.Rand == nil {
		return s.cfg.Messages[rand.IntN(n)]
	}
	return s.cfg.Messages[s.Rand.IntN(n)]
}

func (s *Session) paintBackdrop() {
	s.renderer.Painter.Paint(FillRect{
		Rect: rect.Rect{
			LLx: 0,
			LLy: s.height / 2,
			URx: s.width,
			URy: s.height,
		},
		Color: s.cfg.BackdropColor,
		Alpha: 1,
	})
}

// Reset discards the drawing and returns to the initial state.
// It is only permitted while the parting message is shown.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateMessage {
		return
	}
	s.history.Clear()
	s.endStroke()
	s.state = StateDrawing
	s.opacity = 1
	s.redraw()
	if s.Messages != nil {
		s.Messages.HideMessage()
	}
	s.logger().Info("reset")
}

// Resize informs the session that the surface now has the given size.
// Samples are stored relative to the centre, so the drawing re-centres.
func (s *Session) Resize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
	disc := SurfaceDisc(width, height)
	s.clipper.Disc = disc
	s.renderer.Disc = disc

	switch s.state {
	case StateDrawing:
		s.redraw()
	case StateMessage:
		s.renderer.Painter.Paint(Clear{})
		s.paintBackdrop()
	}
	// while fading, the next frame picks up the new geometry
}
