package core

import "math"

// Vec2 is an immutable 2D vector in playfield units.
type Vec2 struct {
	X, Y float64
}

// DefaultDirection is substituted whenever a zero vector has to be normalized.
var DefaultDirection = Vec2{X: 1, Y: 0}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// The result for a zero vector is undefined; use NormalizeOr.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// NormalizeOr normalizes v, or normalizes def when v has zero length.
func (v Vec2) NormalizeOr(def Vec2) Vec2 {
	if v.Length() == 0 {
		return def.Normalize()
	}
	return v.Normalize()
}
