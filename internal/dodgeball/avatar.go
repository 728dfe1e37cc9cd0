// Package dodgeball implements the dodgeball round simulation: avatars,
// projectiles, collision resolution and the round lifecycle.
// It renders through core.Renderer and holds no platform state.
package dodgeball

import (
	"time"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// Side identifies who controls an avatar and who threw a projectile.
type Side int

const (
	SideHuman Side = iota
	SideAI
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideHuman:
		return "Human"
	case SideAI:
		return "AI"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideAI
	}
	return SideHuman
}

// Avatar is a controllable character. Kind selects which of the optional
// human or AI fields are in use.
type Avatar struct {
	Kind     Side
	Pos      core.Vec2 // Center
	Size     int
	Speed    float64
	Velocity core.Vec2 // Displacement applied in the last tick
	Balls    int
	Facing   core.Vec2 // Last nonzero movement direction

	// Human only
	frames []core.Image
	frame  int
	accum  float64

	// AI only
	image     core.Image
	lastThrow time.Time
}

// NewHuman creates the human avatar with its animation frames.
func NewHuman(pos core.Vec2, speed, size, balls int, frames []core.Image) *Avatar {
	return &Avatar{
		Kind:   SideHuman,
		Pos:    pos,
		Size:   size,
		Speed:  float64(speed),
		Balls:  balls,
		Facing: core.DefaultDirection,
		frames: frames,
	}
}

// NewAI creates the AI avatar. The throw cooldown starts counting at now.
func NewAI(pos core.Vec2, speed, size, balls int, img core.Image, now time.Time) *Avatar {
	return &Avatar{
		Kind:      SideAI,
		Pos:       pos,
		Size:      size,
		Speed:     float64(speed),
		Balls:     balls,
		Facing:    core.DefaultDirection,
		image:     img,
		lastThrow: now,
	}
}

// Box returns the avatar's bounding box.
func (a *Avatar) Box() core.Box {
	s := float64(a.Size)
	return core.BoxAround(a.Pos, s, s)
}

// Move applies a displacement and hard-clamps the avatar inside field.
// A nonzero displacement also becomes the new facing direction.
func (a *Avatar) Move(d core.Vec2, field core.Box) {
	a.Velocity = d
	if a.Kind == SideHuman && !d.IsZero() {
		a.Facing = d.Normalize()
	}
	s := float64(a.Size)
	a.Pos = field.ClampCenter(a.Pos.Add(d), s, s)
}

// Animate advances the human sprite by one frame each time the accumulated
// time reaches interval seconds.
func (a *Avatar) Animate(dt, interval float64) {
	if a.Kind != SideHuman || len(a.frames) == 0 {
		return
	}
	a.accum += dt
	if a.accum >= interval {
		a.frame = (a.frame + 1) % len(a.frames)
		a.accum = 0
	}
}

// Frame returns the index of the current animation frame.
func (a *Avatar) Frame() int {
	return a.frame
}

// Image returns the image to draw for the avatar.
func (a *Avatar) Image() core.Image {
	if a.Kind == SideHuman {
		if len(a.frames) == 0 {
			return nil
		}
		return a.frames[a.frame]
	}
	return a.image
}

// Throw spends one ball and launches a projectile from the avatar's center.
// The human throws along its facing, the AI straight at target.
// Returns false when no balls are left.
func (a *Avatar) Throw(target core.Vec2, speed, size float64, img core.Image) (*Projectile, bool) {
	if a.Balls <= 0 {
		return nil, false
	}
	a.Balls--

	dir := a.Facing
	if a.Kind == SideAI {
		dir = target.Sub(a.Pos)
	}
	dir = dir.NormalizeOr(core.DefaultDirection)

	return &Projectile{
		Pos:      a.Pos,
		Velocity: dir.Scale(speed),
		Owner:    a.Kind,
		Size:     size,
		Image:    img,
	}, true
}

// TryThrow throws at target when more than cooldown has passed since the
// last AI throw and balls remain.
func (a *Avatar) TryThrow(now time.Time, cooldown time.Duration, target core.Vec2, speed, size float64, img core.Image) (*Projectile, bool) {
	if now.Sub(a.lastThrow) <= cooldown || a.Balls <= 0 {
		return nil, false
	}
	a.lastThrow = now
	return a.Throw(target, speed, size, img)
}
