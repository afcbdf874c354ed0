// Package motion integrates kid and guard movement and decides what a guard
// can see. Positions are resolved through a Fitter so the same rules apply to
// every character.
package motion

import (
	"github.com/automoto/matinee/shared/gamemath"
	"github.com/automoto/matinee/shared/leveldata"
)

// Fitter resolves a move against level geometry.
type Fitter func(current, target gamemath.Vec3) gamemath.Vec3

// LevelFitter binds FitInLevel to the shapes of one sub-level.
func LevelFitter(shapes []leveldata.PlacedShape, level leveldata.SubLevel) Fitter {
	return func(current, target gamemath.Vec3) gamemath.Vec3 {
		return leveldata.FitInLevel(shapes, level, current, target)
	}
}

// Settings tunes kid movement.
type Settings struct {
	Speed    float64
	Friction float64
	MaxSpeed float64
}

// Intent is the direction a kid was asked to move this frame.
type Intent struct {
	Up, Down, Left, Right bool
}

func (i Intent) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// Acceleration maps the intent onto the ground plane: up is +x and right is
// +z.
func (i Intent) Acceleration() gamemath.Vec3 {
	var a gamemath.Vec3
	if i.Up {
		a.X++
	}
	if i.Down {
		a.X--
	}
	if i.Right {
		a.Z++
	}
	if i.Left {
		a.Z--
	}
	return a
}

// Accelerate applies an intent to a velocity. With no intent the velocity
// decays by friction^dt.
func Accelerate(velocity gamemath.Vec3, intent Intent, s Settings, dt float64) gamemath.Vec3 {
	if intent.Any() {
		velocity = velocity.Add(intent.Acceleration().Scale(s.Speed * dt))
	} else {
		velocity = velocity.Scale(gamemath.Decay(1, s.Friction, dt))
	}
	if s.MaxSpeed > 0 {
		velocity = velocity.ClampLength(s.MaxSpeed)
	}
	return velocity
}

// Step moves position by velocity through fit. Velocity axes that the fit
// clamped are zeroed. The returned heading is valid when turned is true.
func Step(position, velocity gamemath.Vec3, fit Fitter) (newPos, newVel gamemath.Vec3, heading gamemath.Quat, turned bool) {
	requested := position.Add(velocity)
	resolved := fit(position, requested)
	newVel = leveldata.ZeroClampedAxes(velocity, requested, resolved)
	if requested.Y != resolved.Y {
		newVel.Y = 0
	}

	dx, dz := resolved.X-position.X, resolved.Z-position.Z
	if newVel.Length() > 0.0001 {
		heading, turned = gamemath.HeadingRotation(dx, dz)
	}
	return resolved, newVel, heading, turned
}
