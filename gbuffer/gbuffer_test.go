package gbuffer

import (
	"testing"

	"github.com/guidogerb/mb3d/vec3"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := Pixel{
		Normal:    vec3.New(0.5, -0.25, 0.1),
		ZPos:      12345,
		Shadow:    0,
		Ambient:   30000,
		ColorGrad: 1000,
		OrbitTrap: 500,
		Roughness: 0,
	}
	buf := Encode(nil, p)
	assert.Len(t, buf, BytesPerPixel)

	back := Decode(buf)
	assert.InDelta(t, p.Normal.X, back.Normal.X, 1.0/32767.0)
	assert.InDelta(t, p.Normal.Y, back.Normal.Y, 1.0/32767.0)
	assert.InDelta(t, p.Normal.Z, back.Normal.Z, 1.0/32767.0)
	assert.Equal(t, p.ZPos, back.ZPos)
	assert.Equal(t, p.Ambient, back.Ambient)
	assert.Equal(t, p.ColorGrad, back.ColorGrad)
	assert.Equal(t, p.OrbitTrap, back.OrbitTrap)
}

func TestMissSentinel(t *testing.T) {
	assert.True(t, Miss.IsMiss())
	buf := Encode(nil, Miss)
	back := Decode(buf)
	assert.True(t, back.IsMiss())
	assert.Equal(t, ZPosNoHit, back.ZPos)
}

func TestEncodeAppendsToExisting(t *testing.T) {
	dst := make([]byte, 0, BytesPerPixel*2)
	dst = Encode(dst, Miss)
	dst = Encode(dst, Miss)
	assert.Len(t, dst, BytesPerPixel*2)
}

func TestFromHitClampsAmbient(t *testing.T) {
	p := FromHit(vec3.New(0, 1, 0), 0.5, 1000, 8000, 3.0, 0.2)
	assert.Equal(t, uint16(65535), p.Ambient)
}
