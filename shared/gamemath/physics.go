package gamemath

import "math"

// Decay applies exponential friction: v * friction^dt.
func Decay(v, friction, dt float64) float64 {
	return v * math.Pow(friction, dt)
}

// ClampSpeed limits a signed speed to max in either direction.
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// StairHeight returns the height of a point at x on a stair that climbs from
// baseHeight at bottomX to height at topX.
func StairHeight(baseHeight, height, bottomX, topX, x float64) float64 {
	run := topX - bottomX
	if run == 0 {
		return height
	}
	return Lerp(baseHeight, height, (x-bottomX)/run)
}
