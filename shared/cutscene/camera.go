package cutscene

import "github.com/automoto/matinee/shared/gamemath"

// ArriveDistance is how close the camera must get to finish a camera
// segment.
const ArriveDistance = 0.5

// Rig is a camera pose.
type Rig struct {
	Translation gamemath.Vec3
	Rotation    gamemath.Quat
}

// Approach eases the rig toward a target pose: translation by speed*dt of the
// remaining distance, rotation by a slerp factor of dt. It reports whether the
// translation is within ArriveDistance of the target.
func (r *Rig) Approach(target gamemath.Vec3, rotation gamemath.Quat, speed, dt float64) bool {
	r.Translation = r.Translation.Add(target.Sub(r.Translation).Scale(speed * dt))
	if next := r.Rotation.Slerp(rotation, dt); !next.IsNaN() {
		r.Rotation = next
	}
	return r.Translation.Distance(target) < ArriveDistance
}
