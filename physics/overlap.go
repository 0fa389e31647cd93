package physics

import (
	"math"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/vmath"
)

// Overlaps reports whether two shapes strictly intersect; touching edges do not count
func Overlaps(a, b component.BodyComponent) bool {
	switch {
	case a.Shape == component.ShapeBox && b.Shape == component.ShapeBox:
		return boxBox(a.Position, a.HalfExtents, b.Position, b.HalfExtents)
	case a.Shape == component.ShapeCircle && b.Shape == component.ShapeCircle:
		return circleCircle(a.Position, a.Radius(), b.Position, b.Radius())
	case a.Shape == component.ShapeCircle:
		return boxCircle(b.Position, b.HalfExtents, a.Position, a.Radius())
	default:
		return boxCircle(a.Position, a.HalfExtents, b.Position, b.Radius())
	}
}

func boxBox(pa, ha, pb, hb vmath.Vec2) bool {
	return math.Abs(pa.X-pb.X) < ha.X+hb.X && math.Abs(pa.Y-pb.Y) < ha.Y+hb.Y
}

func circleCircle(pa vmath.Vec2, ra float64, pb vmath.Vec2, rb float64) bool {
	r := ra + rb
	return pa.Sub(pb).MagSq() < r*r
}

// boxCircle tests against the closest point of the box to the circle center
func boxCircle(box, half, center vmath.Vec2, r float64) bool {
	closest := vmath.Vec2{
		X: vmath.Clamp(center.X, box.X-half.X, box.X+half.X),
		Y: vmath.Clamp(center.Y, box.Y-half.Y, box.Y+half.Y),
	}
	return center.Sub(closest).MagSq() < r*r
}
