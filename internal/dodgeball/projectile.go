package dodgeball

import "github.com/vovakirdan/dodgeball/internal/core"

// Projectile is a thrown ball. Owner is the side that threw it and is used
// only to attribute hits.
type Projectile struct {
	Pos      core.Vec2 // Center
	Velocity core.Vec2
	Owner    Side
	Size     float64
	Image    core.Image

	dead bool
}

// Box returns the projectile's bounding box.
func (p *Projectile) Box() core.Box {
	return core.BoxAround(p.Pos, p.Size, p.Size)
}

// Update advances the projectile one tick and marks it dead once its box no
// longer intersects field.
func (p *Projectile) Update(field core.Box) {
	p.Pos = p.Pos.Add(p.Velocity)
	if !p.Box().Intersects(field) {
		p.dead = true
	}
}

// Dead reports whether the projectile left the playfield or hit an avatar.
func (p *Projectile) Dead() bool {
	return p.dead
}
