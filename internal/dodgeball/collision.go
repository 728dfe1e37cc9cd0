package dodgeball

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// Collision space tags.
const (
	tagHuman      = "human"
	tagAI         = "ai"
	tagProjectile = "projectile"
)

// collisionCellSize is the resolv cell edge in playfield units.
const collisionCellSize = 32

// Hit describes a projectile striking the avatar of the opposing side.
type Hit struct {
	Projectile *Projectile
	Victim     Side
}

// Winner returns the side whose projectile landed.
func (h Hit) Winner() Side {
	return h.Projectile.Owner
}

// CollisionSystem finds projectiles overlapping the opposing avatar.
// A resolv space buckets objects by cell for the broad phase; the exact
// overlap test is core.Box.Intersects.
type CollisionSystem struct {
	space   *resolv.Space
	origin  core.Vec2
	avatars map[Side]*resolv.Object
	shots   map[*Projectile]*resolv.Object
}

// NewCollisionSystem creates a collision space covering field. Object
// positions are stored relative to the field's top-left corner.
func NewCollisionSystem(field core.Box) *CollisionSystem {
	return &CollisionSystem{
		space:   resolv.NewSpace(spaceExtent(field.W), spaceExtent(field.H), collisionCellSize, collisionCellSize),
		origin:  core.V(field.X, field.Y),
		avatars: make(map[Side]*resolv.Object),
		shots:   make(map[*Projectile]*resolv.Object),
	}
}

// spaceExtent rounds n up to whole cells, plus one so the padded edge of a
// box flush with the far side still lands in a cell.
func spaceExtent(n float64) int {
	cells := int(math.Ceil(n/collisionCellSize)) + 1
	return cells * collisionCellSize
}

// Resolve returns the first projectile, in slice order, that overlaps the
// avatar of the side opposing its owner. Projectiles never hit their owner.
func (c *CollisionSystem) Resolve(human, ai *Avatar, projectiles []*Projectile) (Hit, bool) {
	byTag := map[string]*Avatar{
		tagHuman: c.sync(human),
		tagAI:    c.sync(ai),
	}

	for _, p := range projectiles {
		if p.Dead() {
			continue
		}
		victimTag := tagFor(p.Owner.Opponent())
		obj := c.shot(p)

		collision := obj.Check(0, 0, victimTag)
		if collision == nil {
			continue
		}
		victim := byTag[victimTag]
		if p.Box().Intersects(victim.Box()) {
			return Hit{Projectile: p, Victim: victim.Kind}, true
		}
	}
	return Hit{}, false
}

// Forget drops the broad-phase object of a projectile that left play.
func (c *CollisionSystem) Forget(p *Projectile) {
	if obj, ok := c.shots[p]; ok {
		c.space.Remove(obj)
		delete(c.shots, p)
	}
}

// sync moves the avatar's object to its current box, creating it on first use.
func (c *CollisionSystem) sync(a *Avatar) *Avatar {
	obj, ok := c.avatars[a.Kind]
	if !ok {
		obj = resolv.NewObject(0, 0, 0, 0, tagFor(a.Kind))
		c.space.Add(obj)
		c.avatars[a.Kind] = obj
	}
	c.place(obj, a.Box())
	return a
}

// shot returns the projectile's broad-phase object, placed at its current box.
func (c *CollisionSystem) shot(p *Projectile) *resolv.Object {
	obj, ok := c.shots[p]
	if !ok {
		obj = resolv.NewObject(0, 0, 0, 0, tagProjectile)
		c.space.Add(obj)
		c.shots[p] = obj
	}
	// Padded by one unit per side so sub-unit overlaps share a cell.
	b := p.Box()
	c.place(obj, core.NewBox(b.X-1, b.Y-1, b.W+2, b.H+2))
	return obj
}

func (c *CollisionSystem) place(obj *resolv.Object, b core.Box) {
	obj.Position.X = b.X - c.origin.X
	obj.Position.Y = b.Y - c.origin.Y
	obj.Size.X, obj.Size.Y = b.W, b.H
	obj.Update()
}

func tagFor(s Side) string {
	if s == SideHuman {
		return tagHuman
	}
	return tagAI
}
