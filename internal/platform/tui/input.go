package tui

import (
	"time"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// keyHold is how long a key counts as held after its last press or
// auto-repeat. Terminals report presses only, never releases.
const keyHold = 120 * time.Millisecond

// Input is the InputSource fed by Bubble Tea messages.
type Input struct {
	vp     *Viewport
	clock  core.Clock
	held   map[core.Key]time.Time // Key -> hold expiry
	repeat map[core.Key]time.Time // Edge-triggered key -> auto-repeat expiry
	events []core.Event
	mouse  core.Vec2
}

// NewInput creates an input source that maps cells through vp.
func NewInput(vp *Viewport, clock core.Clock) *Input {
	return &Input{
		vp:     vp,
		clock:  clock,
		held:   make(map[core.Key]time.Time),
		repeat: make(map[core.Key]time.Time),
	}
}

// Press records a key press. Movement keys count as held for keyHold and
// release the opposite direction at once. A throw press arriving within
// keyHold of the previous one is auto-repeat and queues no event.
func (in *Input) Press(k core.Key) {
	if k == core.KeyNone {
		return
	}
	now := in.clock.Now()
	if opposite, ok := opposites[k]; ok {
		in.held[k] = now.Add(keyHold)
		delete(in.held, opposite)
	}
	if k == core.KeyThrow {
		expiry, repeating := in.repeat[k]
		in.repeat[k] = now.Add(keyHold)
		if repeating && now.Before(expiry) {
			return
		}
	}
	in.events = append(in.events, core.KeyEvent(k))
}

var opposites = map[core.Key]core.Key{
	core.KeyUp:    core.KeyDown,
	core.KeyDown:  core.KeyUp,
	core.KeyLeft:  core.KeyRight,
	core.KeyRight: core.KeyLeft,
}

// Click records a left click on a cell.
func (in *Input) Click(col, row int) {
	in.MoveMouse(col, row)
	in.events = append(in.events, core.ClickEvent(in.mouse))
}

// MoveMouse records the pointer position.
func (in *Input) MoveMouse(col, row int) {
	in.mouse = in.vp.ToField(col, row)
}

// Quit queues a quit event.
func (in *Input) Quit() {
	in.events = append(in.events, core.QuitEvent())
}

// IsKeyDown reports whether k was pressed within the hold window.
func (in *Input) IsKeyDown(k core.Key) bool {
	expiry, ok := in.held[k]
	return ok && in.clock.Now().Before(expiry)
}

// PollEvents returns and clears the queued events.
func (in *Input) PollEvents() []core.Event {
	events := in.events
	in.events = nil
	return events
}

// MousePosition returns the last pointer position in playfield units.
func (in *Input) MousePosition() core.Vec2 {
	return in.mouse
}
