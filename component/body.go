package component

import (
	"github.com/lixenwraith/arena/vmath"
)

// MotionKind classifies how a body's position is driven
type MotionKind uint8

const (
	MotionStatic            MotionKind = iota // Never moves
	MotionKinematicPosition                   // Position written directly by a system
	MotionKinematicVelocity                   // Position integrated from a system-set velocity
	MotionDynamic                             // Position integrated from velocity (no forces modeled)
)

// String returns the motion kind name for logs
func (k MotionKind) String() string {
	switch k {
	case MotionStatic:
		return "static"
	case MotionKinematicPosition:
		return "kinematic-position"
	case MotionKinematicVelocity:
		return "kinematic-velocity"
	case MotionDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Integrates reports whether the motion integrator advances this body by its velocity
func (k MotionKind) Integrates() bool {
	return k == MotionKinematicVelocity || k == MotionDynamic
}

// ShapeKind defines the collision outline of a body
type ShapeKind uint8

const (
	ShapeBox    ShapeKind = iota // Axis-aligned box with HalfExtents
	ShapeCircle                  // Circle with radius HalfExtents.X
)

// BodyComponent is the spatial state of an entity with a collision shape
type BodyComponent struct {
	Position    vmath.Vec2
	Velocity    vmath.Vec2 // World units per second, used by velocity-driven kinds
	HalfExtents vmath.Vec2
	Shape       ShapeKind
	Motion      MotionKind
}

// Radius returns the circle radius for circle shapes
func (b BodyComponent) Radius() float64 {
	return b.HalfExtents.X
}
