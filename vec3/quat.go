package vec3

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a unit (or near-unit) rotation quaternion, stored as
// (w, x, y, z). The algebraic product delegates to gonum's quat.Number;
// Slerp and the matrix conversions are hand-written because they pin
// exact numerical conventions (antipode handling, trace-based matrix
// decomposition) that the generic quat package does not provide.
type Quaternion struct {
	quat.Number
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{quat.Number{Real: 1}}
}

// NewQuaternion builds a quaternion from components (w, x, y, z).
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}}
}

// Length returns the quaternion's norm.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Normalized returns q scaled to unit length; q is returned unchanged
// if its norm is below 1e-30.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	if l > 1e-30 {
		inv := 1 / l
		return Quaternion{quat.Number{
			Real: q.Real * inv,
			Imag: q.Imag * inv,
			Jmag: q.Jmag * inv,
			Kmag: q.Kmag * inv,
		}}
	}
	return q
}

// Mul returns q*other using quaternion multiplication.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{quat.Mul(q.Number, other.Number)}
}

// Slerp performs spherical linear interpolation from q to other at
// parameter t in [0,1]. Ported from Interpolation.pas via the
// reference WASM implementation: if the dot product is negative the
// shorter arc is taken by negating other, and a near-identical pair
// (theta below 1e-10) short-circuits to q.
func (q Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	dot := q.Real*other.Real + q.Imag*other.Imag + q.Jmag*other.Jmag + q.Kmag*other.Kmag

	if dot < 0 {
		other = Quaternion{quat.Number{
			Real: -other.Real,
			Imag: -other.Imag,
			Jmag: -other.Jmag,
			Kmag: -other.Kmag,
		}}
		dot = -dot
	}
	if dot > 1 {
		dot = 1
	}

	theta := math.Acos(dot)
	if math.Abs(theta) < 1e-10 {
		return q
	}

	sinTheta := math.Sin(theta)
	s0 := math.Sin((1-t)*theta) / sinTheta
	s1 := math.Sin(t*theta) / sinTheta

	return Quaternion{quat.Number{
		Real: s0*q.Real + s1*other.Real,
		Imag: s0*q.Imag + s1*other.Imag,
		Jmag: s0*q.Jmag + s1*other.Jmag,
		Kmag: s0*q.Kmag + s1*other.Kmag,
	}}
}

// ToMatrix3 converts q to a 3x3 rotation matrix.
func (q Quaternion) ToMatrix3() Matrix3 {
	x, y, z, w := q.Imag, q.Jmag, q.Kmag, q.Real
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Matrix3{M: [3][3]float64{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}}
}

// FromMatrix3 builds a normalized quaternion from a proper rotation
// matrix, using the standard trace-based branch selection to avoid
// dividing by a near-zero term.
func FromMatrix3(m Matrix3) Quaternion {
	trace := m.M[0][0] + m.M[1][1] + m.M[2][2]
	var w, x, y, z float64

	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		w = 0.25 * s
		x = (m.M[2][1] - m.M[1][2]) / s
		y = (m.M[0][2] - m.M[2][0]) / s
		z = (m.M[1][0] - m.M[0][1]) / s
	case m.M[0][0] > m.M[1][1] && m.M[0][0] > m.M[2][2]:
		s := math.Sqrt(1+m.M[0][0]-m.M[1][1]-m.M[2][2]) * 2
		w = (m.M[2][1] - m.M[1][2]) / s
		x = 0.25 * s
		y = (m.M[0][1] + m.M[1][0]) / s
		z = (m.M[0][2] + m.M[2][0]) / s
	case m.M[1][1] > m.M[2][2]:
		s := math.Sqrt(1+m.M[1][1]-m.M[0][0]-m.M[2][2]) * 2
		w = (m.M[0][2] - m.M[2][0]) / s
		x = (m.M[0][1] + m.M[1][0]) / s
		y = 0.25 * s
		z = (m.M[1][2] + m.M[2][1]) / s
	default:
		s := math.Sqrt(1+m.M[2][2]-m.M[0][0]-m.M[1][1]) * 2
		w = (m.M[1][0] - m.M[0][1]) / s
		x = (m.M[0][2] + m.M[2][0]) / s
		y = (m.M[1][2] + m.M[2][1]) / s
		z = 0.25 * s
	}

	return NewQuaternion(w, x, y, z).Normalized()
}
