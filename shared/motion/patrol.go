package motion

import (
	"github.com/automoto/matinee/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// PatrolSettings tunes patrol guards.
type PatrolSettings struct {
	Speed        float64
	Friction     float64
	ArriveRadius float64
	SlowRadius   float64
	// SpeedCap overrides Speed as the top speed when positive.
	SpeedCap float64
}

// PatrolState is a guard's live patrol progress.
type PatrolState struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Target   int
}

// PatrolResult is the outcome of one patrol step.
type PatrolResult struct {
	PatrolState
	Heading gamemath.Quat
	Turned  bool
	// Arrived is set when the guard reached its waypoint this step.
	Arrived bool
}

// NextWaypoint advances a waypoint index, wrapping past the end.
func NextWaypoint(current, count int) int {
	if current >= count-1 {
		return 0
	}
	return current + 1
}

// StepPatrol walks a guard toward its current waypoint. On arrival it only
// picks the next waypoint; movement resumes on the following step.
func StepPatrol(st PatrolState, waypoints []dmath.Vec2, s PatrolSettings, dt float64, fit Fitter) PatrolResult {
	res := PatrolResult{PatrolState: st}
	if len(waypoints) == 0 {
		return res
	}
	if st.Target < 0 || st.Target >= len(waypoints) {
		res.Target = 0
	}
	point := waypoints[res.Target]

	dx, dz := point.X-st.Position.X, point.Y-st.Position.Z
	distance := gamemath.GroundDistance(st.Position, gamemath.V3(point.X, 0, point.Y))
	if distance < s.ArriveRadius {
		res.Target = NextWaypoint(res.Target, len(waypoints))
		res.Arrived = true
		return res
	}

	toward := gamemath.V3(dx, 0, dz).Normalize()
	v := st.Velocity.Add(toward.Scale(s.Speed * dt)).ClampLength(s.Speed)
	if distance < s.SlowRadius {
		v = v.Scale(gamemath.Decay(1, s.Friction, dt))
	}
	if s.SpeedCap > 0 {
		v = v.ClampLength(s.SpeedCap)
	}

	res.Position, res.Velocity, res.Heading, res.Turned = Step(st.Position, v, fit)
	return res
}
