package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Triangle is a region on the ground plane.
type Triangle struct {
	A, B, C dmath.Vec2
}

// Contains reports whether p is strictly inside t. Points on an edge or a
// vertex are outside, and a zero-area triangle contains nothing.
func (t Triangle) Contains(p dmath.Vec2) bool {
	t0, t1, t2 := t.A, t.B, t.C
	area := 0.5 * (-t1.Y*t2.X + t0.Y*(-t1.X+t2.X) + t0.X*(t1.Y-t2.Y) + t1.X*t2.Y)
	sign := 1.0
	if area < 0 {
		sign = -1
	}
	s := (t0.Y*t2.X - t0.X*t2.Y + (t2.Y-t0.Y)*p.X + (t0.X-t2.X)*p.Y) * sign
	u := (t0.X*t1.Y - t0.Y*t1.X + (t0.Y-t1.Y)*p.X + (t1.X-t0.X)*p.Y) * sign
	return s > 0 && u > 0 && s+u < 2*area*sign
}

// VisionCone builds the view triangle of an observer at origin facing the
// given angle, with rays at facing±halfAngle of length distance.
func VisionCone(origin dmath.Vec2, facing, halfAngle, distance float64) Triangle {
	ray := func(a float64) dmath.Vec2 {
		s, c := math.Sincos(a)
		return dmath.Vec2{X: origin.X + c*distance, Y: origin.Y + s*distance}
	}
	return Triangle{
		A: origin,
		B: ray(facing - halfAngle),
		C: ray(facing + halfAngle),
	}
}
