package math3d

import (
	"fmt"
	"math"

	"github.com/adammck/footstep/utils"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}

	// World axes. Y is up, Z is forward, X is right.
	Up      = Vector3{X: 0, Y: 1, Z: 0}
	Down    = Vector3{X: 0, Y: -1, Z: 0}
	Right   = Vector3{X: 1, Y: 0, Z: 0}
	Forward = Vector3{X: 0, Y: 0, Z: 1}
)

// MakeVector3 returns a pointer to a new Vector3.
func MakeVector3(x float64, y float64, z float64) *Vector3 {
	return &Vector3{x, y, z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// Add returns the sum of two vectors.
func (v Vector3) Add(vv Vector3) Vector3 {
	return Vector3{
		(v.X + vv.X),
		(v.Y + vv.Y),
		(v.Z + vv.Z),
	}
}

// Subtract returns the vector from vv to v.
func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3{
		(v.X - vv.X),
		(v.Y - vv.Y),
		(v.Z - vv.Z),
	}
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Dot(vv Vector3) float64 {
	return (v.X * vv.X) + (v.Y * vv.Y) + (v.Z * vv.Z)
}

func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns a vector with the same direction and a magnitude of one. The
// zero vector is returned unchanged, since it has no direction.
func (v Vector3) Unit() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return ZeroVector3
	}

	return Vector3{v.X / m, v.Y / m, v.Z / m}
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	return v.Subtract(vv).Magnitude()
}

// Lerp returns the point t of the way from a to b. t is not clamped, so values
// outside of [0, 1] extrapolate along the line.
func Lerp(a Vector3, b Vector3, t float64) Vector3 {
	return Vector3{
		X: utils.Lerp(a.X, b.X, t),
		Y: utils.Lerp(a.Y, b.Y, t),
		Z: utils.Lerp(a.Z, b.Z, t),
	}
}

// MultiplyByMatrix44 returns a new Vector3, by multiplying this vector my a 4x4
// matrix.
func (v Vector3) MultiplyByMatrix44(m Matrix44) Vector3 {
	return Vector3{
		(v.X * m.m11) + (v.Y * m.m21) + (v.Z * m.m31) + m.m41,
		(v.X * m.m12) + (v.Y * m.m22) + (v.Z * m.m32) + m.m42,
		(v.X * m.m13) + (v.Y * m.m23) + (v.Z * m.m33) + m.m43,
	}
}

// Rotate applies only the rotation part of the matrix. This is what you want for
// directions (axes, normals), which must not be translated.
func (v Vector3) Rotate(m Matrix44) Vector3 {
	return Vector3{
		(v.X * m.m11) + (v.Y * m.m21) + (v.Z * m.m31),
		(v.X * m.m12) + (v.Y * m.m22) + (v.Z * m.m32),
		(v.X * m.m13) + (v.Y * m.m23) + (v.Z * m.m33),
	}
}
