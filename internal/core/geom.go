// Package core provides fundamental types and utilities for the dodgeball game.
// It contains no platform dependencies (no Bubble Tea, no ebiten) to keep the
// simulation pure and testable.
package core

import "math"

// Rect is an integer rectangle in terminal cell space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in playfield units.
// All simulation geometry (avatars, projectiles, buttons) uses Box.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box from its top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// BoxAround creates a w by h box centered on c.
func BoxAround(c Vec2, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Intersects reports strict overlap. Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if p lies inside the box (right and bottom edges exclusive).
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}

// Inside reports whether the box lies entirely within outer.
func (b Box) Inside(outer Box) bool {
	return b.X >= outer.X && b.Y >= outer.Y && b.Right() <= outer.Right() && b.Bottom() <= outer.Bottom()
}

// ClampCenter returns the center a w by h box must have to stay fully inside
// outer while moving as little as possible from c. A box larger than outer on
// an axis is centered on that axis.
func (b Box) ClampCenter(c Vec2, w, h float64) Vec2 {
	return Vec2{
		X: clampAxis(c.X, b.X, b.W, w),
		Y: clampAxis(c.Y, b.Y, b.H, h),
	}
}

func clampAxis(c, start, length, size float64) float64 {
	if size >= length {
		return start + length/2
	}
	return ClampF(c, start+size/2, start+length-size/2)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
