package vec3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuaternionIdentityToMatrix3(t *testing.T) {
	m := IdentityQuaternion().ToMatrix3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, m.M[i][j], 1e-10)
		}
	}
}

func TestQuaternionRoundTrip(t *testing.T) {
	m := FromEuler(0.3, 0.5, 0.7)
	q := FromMatrix3(m)
	m2 := q.ToMatrix3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, m.M[i][j], m2.M[i][j], 1e-9)
		}
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := IdentityQuaternion()
	b := NewQuaternion(math.Sqrt2/2, math.Sqrt2/2, 0, 0)

	r0 := a.Slerp(b, 0)
	assert.InDelta(t, a.Real, r0.Real, 1e-5)

	r1 := a.Slerp(b, 1)
	assert.InDelta(t, b.Real, r1.Real, 1e-5)
	assert.InDelta(t, b.Imag, r1.Imag, 1e-5)
}
