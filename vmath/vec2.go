package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector for world-space positions and velocities
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Mag returns the length without intermediate overflow or underflow
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// TryNormalize returns the unit vector in v's direction
// ok is false for zero-length or non-finite input; the returned vector is then zero
func (v Vec2) TryNormalize() (Vec2, bool) {
	if !v.IsFinite() {
		return Vec2{}, false
	}
	mag := v.Mag()
	if mag == 0 || math.IsInf(mag, 0) {
		return Vec2{}, false
	}
	n := Vec2{v.X / mag, v.Y / mag}
	if !n.IsFinite() {
		return Vec2{}, false
	}
	return n, true
}

// Direction returns the unit vector pointing from 'from' to 'to'
// ok is false when the points coincide
func Direction(from, to Vec2) (Vec2, bool) {
	return to.Sub(from).TryNormalize()
}

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
