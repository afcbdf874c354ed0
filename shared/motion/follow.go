package motion

import "github.com/automoto/matinee/shared/gamemath"

// FollowSettings tunes how companions trail the controlled kid.
type FollowSettings struct {
	Settings
	// FollowDistance is how far a companion lets the leader get before
	// walking after them.
	FollowDistance float64
	// SeparationDistance is how close two companions may stand.
	SeparationDistance float64
	// SpeedFactor caps companion speed as a share of MaxSpeed.
	SpeedFactor float64
}

// Companion steers a non-controlled kid: toward the leader when it is far
// away and away from any other companion standing too close.
func Companion(self, velocity, leader gamemath.Vec3, others []gamemath.Vec3, s FollowSettings, dt float64) gamemath.Vec3 {
	velocity = velocity.Scale(gamemath.Decay(1, s.Friction, dt))
	velocity.Y = 0

	if gamemath.GroundDistance(self, leader) > s.FollowDistance {
		toward := gamemath.V3(leader.X-self.X, 0, leader.Z-self.Z).Normalize()
		velocity = velocity.Add(toward.Scale(s.Speed * dt))
	}

	for _, other := range others {
		d := gamemath.GroundDistance(self, other)
		if d >= s.SeparationDistance || d == 0 {
			continue
		}
		away := gamemath.V3(self.X-other.X, 0, self.Z-other.Z).Normalize()
		push := (s.SeparationDistance - d) / s.SeparationDistance
		velocity = velocity.Add(away.Scale(s.Speed * dt * push))
	}

	return velocity.ClampLength(s.MaxSpeed * s.SpeedFactor)
}
