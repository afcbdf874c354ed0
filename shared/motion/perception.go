package motion

import (
	"github.com/automoto/matinee/shared/gamemath"
)

// Vision is the view cone of a patrol guard.
type Vision struct {
	HalfAngle float64
	Distance  float64
}

// Cone builds the guard's view triangle on the ground plane.
func (v Vision) Cone(position gamemath.Vec3, rotation gamemath.Quat) gamemath.Triangle {
	return gamemath.VisionCone(position.Ground(), gamemath.FacingAngle(rotation), v.HalfAngle, v.Distance)
}

// Sees reports whether a guard at position with rotation sees target.
func (v Vision) Sees(position gamemath.Vec3, rotation gamemath.Quat, target gamemath.Vec3) bool {
	return v.Cone(position, rotation).Contains(target.Ground())
}
