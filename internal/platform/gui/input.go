package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// bindings maps game keys to keyboard keys.
var bindings = map[core.Key][]ebiten.Key{
	core.KeyUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.KeyDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.KeyLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.KeyThrow:   {ebiten.KeyQ, ebiten.KeySpace},
	core.KeyConfirm: {ebiten.KeyEnter},
	core.KeyBack:    {ebiten.KeyEscape},
}

// edgeKeys are reported as events, in this order.
var edgeKeys = []core.Key{core.KeyThrow, core.KeyConfirm, core.KeyBack}

// Input reads ebiten's keyboard and mouse state. Poll must run at the
// start of every Update.
type Input struct {
	origin core.Vec2
	events []core.Event
	mouse  core.Vec2
}

// NewInput creates an input source for a playfield whose top-left corner
// is at origin.
func NewInput(origin core.Vec2) *Input {
	return &Input{origin: origin}
}

// Poll queues the events of the current tick.
func (in *Input) Poll() {
	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, core.QuitEvent())
	}
	for _, k := range edgeKeys {
		for _, ek := range bindings[k] {
			if inpututil.IsKeyJustPressed(ek) {
				in.events = append(in.events, core.KeyEvent(k))
				break
			}
		}
	}

	x, y := ebiten.CursorPosition()
	in.mouse = in.origin.Add(core.V(float64(x), float64(y)))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.events = append(in.events, core.ClickEvent(in.mouse))
	}
}

// IsKeyDown reports whether any key bound to k is held.
func (in *Input) IsKeyDown(k core.Key) bool {
	for _, ek := range bindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

// PollEvents returns and clears the queued events.
func (in *Input) PollEvents() []core.Event {
	events := in.events
	in.events = nil
	return events
}

// MousePosition returns the cursor in playfield units.
func (in *Input) MousePosition() core.Vec2 {
	return in.mouse
}
