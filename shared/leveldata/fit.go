package leveldata

import "github.com/automoto/matinee/shared/gamemath"

// FitInLevel resolves a move from current to target against the floor shapes
// of level.
//
// A target on flat floor takes that floor's height; a target on a stair takes
// the stair's interpolated height. Flat floor is checked before stairs and
// the first match in authoring order wins. A target off the floor is clamped
// into the first shape holding the current position. When neither position is
// on the floor the move is rejected and current is returned.
func FitInLevel(shapes []PlacedShape, level SubLevel, current, target gamemath.Vec3) gamemath.Vec3 {
	var (
		stairHit      *Rectangle
		holder        *Rectangle
		holderIsStair bool
	)

	for i := range shapes {
		if shapes[i].Level != level {
			continue
		}
		var r Rectangle
		isStair := false
		switch s := shapes[i].Shape.(type) {
		case Rect, LevelSwitch, TicketCheck, GetTicket:
			r = s.Bounds()
		case Stair:
			r = s.Rectangle
			isStair = true
		default:
			continue
		}

		if r.Contains(target) {
			if !isStair {
				return gamemath.Vec3{X: target.X, Y: r.Height, Z: target.Z}
			}
			if stairHit == nil {
				rc := r
				stairHit = &rc
			}
		}
		if holder == nil && r.Contains(current) {
			rc := r
			holder = &rc
			holderIsStair = isStair
		}
	}

	if stairHit != nil {
		r := stairHit
		y := gamemath.StairHeight(r.BaseHeight, r.Height, r.BottomX, r.TopX, target.X)
		return gamemath.Vec3{X: target.X, Y: y, Z: target.Z}
	}

	if holder == nil {
		return current
	}

	out := holder.Clamp(target)
	if holderIsStair {
		out.Y = current.Y
	} else {
		out.Y = holder.Height
	}
	return out
}

// ZeroClampedAxes zeroes the velocity components whose axis was changed by
// FitInLevel, so a character does not keep pushing into a wall.
func ZeroClampedAxes(velocity, requested, resolved gamemath.Vec3) gamemath.Vec3 {
	if resolved.X != requested.X {
		velocity.X = 0
	}
	if resolved.Z != requested.Z {
		velocity.Z = 0
	}
	return velocity
}
