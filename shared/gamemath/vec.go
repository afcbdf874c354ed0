package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec3 is a world position or velocity. Y is up; the ground plane is (X, Z).
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Length() }

// Normalize returns the unit vector, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// ClampLength limits the magnitude of v to max.
func (v Vec3) ClampLength(max float64) Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(ClampSpeed(l, max) / l)
}

func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Ground projects v onto the ground plane as (x, z).
func (v Vec3) Ground() dmath.Vec2 {
	return dmath.Vec2{X: v.X, Y: v.Z}
}

// GroundDistance is the distance between two points ignoring height.
func GroundDistance(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}
