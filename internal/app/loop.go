package app

import (
	"errors"
	"time"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// ErrQuit is returned by the Loop once a quit event was received.
var ErrQuit = errors.New("app: quit")

// Loop drives an App from an input source. The platform calls Step (or
// Update and Draw separately) once per tick at its own fixed cadence.
type Loop struct {
	app   *App
	input core.InputSource
	clock core.Clock
	last  time.Time
}

// NewLoop creates a loop for a.
func NewLoop(a *App, in core.InputSource, clock core.Clock) *Loop {
	return &Loop{app: a, input: in, clock: clock}
}

// App returns the driven app.
func (l *Loop) App() *App {
	return l.app
}

// Update drains pending events into the active screen and advances it by one
// tick. Returns ErrQuit on a quit event; events after it are dropped.
func (l *Loop) Update() error {
	now := l.clock.Now()
	var dt float64
	if !l.last.IsZero() {
		dt = now.Sub(l.last).Seconds()
	}
	l.last = now

	for _, ev := range l.input.PollEvents() {
		if ev.Kind == core.EventQuit {
			return ErrQuit
		}
		if err := l.app.HandleEvent(ev, now); err != nil {
			return err
		}
	}
	l.app.Update(l.input, now, dt)
	return nil
}

// Draw renders the current frame without presenting it.
func (l *Loop) Draw(dst core.Renderer) {
	now := l.last
	if now.IsZero() {
		now = l.clock.Now()
	}
	l.app.Draw(dst, now)
}

// Step runs one full tick: update, draw, present.
func (l *Loop) Step(dst core.Renderer) error {
	if err := l.Update(); err != nil {
		return err
	}
	l.Draw(dst)
	return dst.Present()
}
