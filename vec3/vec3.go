// Package vec3 provides the 3D vector, matrix, and quaternion
// primitives shared by the formula, raymarch, and shade packages, plus
// the fixed-point packers used to encode G-buffer fields.
package vec3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a position or direction in world space.
type Vec3 = r3.Vec

// New builds a Vec3 from components.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns a+b.
func Add(a, b Vec3) Vec3 {
	return r3.Add(a, b)
}

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 {
	return r3.Sub(a, b)
}

// Scale returns v*s.
func Scale(s float64, v Vec3) Vec3 {
	return r3.Scale(s, v)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 {
	return r3.Dot(a, b)
}

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return r3.Cross(a, b)
}

// Length returns the Euclidean norm of v.
func Length(v Vec3) float64 {
	return r3.Norm(v)
}

// LengthSqr returns the squared Euclidean norm of v, avoiding the sqrt.
func LengthSqr(v Vec3) float64 {
	return r3.Dot(v, v)
}

// Normalize returns v scaled to unit length. Vectors shorter than
// 1e-30 are returned unchanged (the zero vector stays zero), matching
// the degenerate-direction guard in the reference DE/normal code.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l > 1e-30 {
		return r3.Scale(1/l, v)
	}
	return v
}

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 struct {
	M [3][3]float64
}

// IdentityMatrix3 returns the 3x3 identity matrix.
func IdentityMatrix3() Matrix3 {
	return Matrix3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// MulVec returns m*v.
func (m Matrix3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Mul returns m*other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][0]*other.M[0][j] + m.M[i][1]*other.M[1][j] + m.M[i][2]*other.M[2][j]
		}
	}
	return r
}

// Transpose returns the transpose of m.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{M: [3][3]float64{
		{m.M[0][0], m.M[1][0], m.M[2][0]},
		{m.M[0][1], m.M[1][1], m.M[2][1]},
		{m.M[0][2], m.M[1][2], m.M[2][2]},
	}}
}

// FromEuler builds a rotation matrix from Euler angles in radians,
// matching the Math3D.pas RotateMatrixXYZ convention.
func FromEuler(rx, ry, rz float64) Matrix3 {
	sx, cx := math.Sincos(rx)
	sy, cy := math.Sincos(ry)
	sz, cz := math.Sincos(rz)

	return Matrix3{M: [3][3]float64{
		{cy * cz, -cy * sz, sy},
		{sx*sy*cz + cx*sz, -sx*sy*sz + cx*cz, -sx * cy},
		{-cx*sy*cz + sx*sz, cx*sy*sz + sx*cz, cx * cy},
	}}
}
