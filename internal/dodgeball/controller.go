package dodgeball

import (
	"math/rand"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// Controls is the level-triggered movement input of the human for one tick.
type Controls struct {
	Up, Down, Left, Right bool
}

// ControlsFrom reads the four movement keys from an input source.
func ControlsFrom(in core.InputSource) Controls {
	return Controls{
		Up:    in.IsKeyDown(core.KeyUp),
		Down:  in.IsKeyDown(core.KeyDown),
		Left:  in.IsKeyDown(core.KeyLeft),
		Right: in.IsKeyDown(core.KeyRight),
	}
}

// HumanDisplacement turns the held keys into a displacement of length speed.
// Opposite keys on one axis resolve to the later of up/down and left/right.
// Returns the zero vector when no key is held.
func HumanDisplacement(c Controls, speed float64) core.Vec2 {
	var move core.Vec2
	if c.Up {
		move.Y = -speed
	}
	if c.Down {
		move.Y = speed
	}
	if c.Left {
		move.X = -speed
	}
	if c.Right {
		move.X = speed
	}
	if move.IsZero() {
		return move
	}
	return move.Normalize().Scale(speed)
}

// AIDisplacement seeks from self toward target at speed, then adds uniform
// noise in [-jitter, jitter] to each axis. The noise is added after scaling,
// so it does not shrink with speed. Returns zero when self is on target.
func AIDisplacement(self, target core.Vec2, speed, jitter float64, rng *rand.Rand) core.Vec2 {
	dir := target.Sub(self)
	if dir.Length() == 0 {
		return core.Vec2{}
	}
	move := dir.Normalize().Scale(speed)
	move.X += (rng.Float64()*2 - 1) * jitter
	move.Y += (rng.Float64()*2 - 1) * jitter
	return move
}
