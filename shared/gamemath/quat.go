package gamemath

import "math"

// Quat is a unit rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

// Identity is the zero rotation.
var Identity = Quat{W: 1}

// QuatFromAxisAngle builds a rotation of angle radians about axis.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	axis = axis.Normalize()
	s, c := math.Sincos(angle / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// QuatFromRotationY is a rotation about the up axis.
func QuatFromRotationY(angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{Y: s, W: c}
}

// AxisAngle decomposes q. A rotation with no angle reports the X axis.
func (q Quat) AxisAngle() (Vec3, float64) {
	scaleSq := math.Max(1-q.W*q.W, 0)
	if scaleSq < 1e-12 {
		return Vec3{X: 1}, 0
	}
	inv := 1 / math.Sqrt(scaleSq)
	return Vec3{q.X * inv, q.Y * inv, q.Z * inv}, 2 * math.Acos(Clamp(q.W, -1, 1))
}

func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.Dot(q))
	if l == 0 {
		return Identity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

func (q Quat) IsNaN() bool {
	return math.IsNaN(q.X) || math.IsNaN(q.Y) || math.IsNaN(q.Z) || math.IsNaN(q.W)
}

// Slerp spherically interpolates from q toward end by t along the short arc.
func (q Quat) Slerp(end Quat, t float64) Quat {
	dot := q.Dot(end)
	if dot < 0 {
		end = Quat{-end.X, -end.Y, -end.Z, -end.W}
		dot = -dot
	}
	if dot > 0.9995 {
		return Quat{
			X: Lerp(q.X, end.X, t),
			Y: Lerp(q.Y, end.Y, t),
			Z: Lerp(q.Z, end.Z, t),
			W: Lerp(q.W, end.W, t),
		}.Normalize()
	}
	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	a := math.Sin((1-t)*theta) / sinTheta
	b := math.Sin(t*theta) / sinTheta
	return Quat{
		X: q.X*a + end.X*b,
		Y: q.Y*a + end.Y*b,
		Z: q.Z*a + end.Z*b,
		W: q.W*a + end.W*b,
	}
}

// FacingAngle is the heading of q on the ground plane, measured from +X
// toward +Z.
func FacingAngle(q Quat) float64 {
	axis, angle := q.AxisAngle()
	if axis.Y >= 0 {
		return -angle
	}
	return angle
}

// HeadingRotation turns a ground-plane movement delta into an orientation.
// ok is false when the delta gives no usable heading.
func HeadingRotation(dx, dz float64) (Quat, bool) {
	angle := math.Atan2(-dz, dx)
	if math.IsNaN(angle) {
		return Quat{}, false
	}
	q := QuatFromRotationY(angle)
	if q.IsNaN() {
		return Quat{}, false
	}
	return q, true
}
