// Package gbuffer packs and unpacks the per-pixel geometry buffer
// the ray marcher writes and the deferred shader reads. The wire
// layout is 18 bytes per pixel, little-endian, with no padding.
package gbuffer

import (
	"encoding/binary"
	"math"

	"github.com/guidogerb/mb3d/vec3"
)

// BytesPerPixel is the fixed size of one packed pixel record.
const BytesPerPixel = 18

// ZPosMiss is the lowest z_pos value that marks a ray that never hit a
// surface; paint passes treat any value at or above it as a miss.
const ZPosMiss uint16 = 65534

// ZPosNoHit is the exact value the marcher writes for a miss pixel.
const ZPosNoHit uint16 = 65535

// Pixel is the unpacked form of one SiLight5 record.
type Pixel struct {
	Normal       vec3.Vec3
	ZPos         uint16
	Shadow       uint16
	Ambient      uint16
	ColorGrad    uint16
	OrbitTrap    uint16
	Roughness    uint16
}

// Miss is the canonical unpacked record for a ray that hit nothing.
var Miss = Pixel{ZPos: ZPosNoHit}

// Encode appends the packed 18-byte form of p to dst and returns the
// extended slice.
func Encode(dst []byte, p Pixel) []byte {
	var buf [BytesPerPixel]byte
	binary.LittleEndian.PutUint16(buf[0:2], uint16(vec3.ClipI15(p.Normal.X)))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(vec3.ClipI15(p.Normal.Y)))
	binary.LittleEndian.PutUint16(buf[4:6], uint16(vec3.ClipI15(p.Normal.Z)))
	binary.LittleEndian.PutUint16(buf[6:8], p.ZPos)
	binary.LittleEndian.PutUint16(buf[8:10], p.Shadow)
	binary.LittleEndian.PutUint16(buf[10:12], p.Ambient)
	binary.LittleEndian.PutUint16(buf[12:14], p.ColorGrad)
	binary.LittleEndian.PutUint16(buf[14:16], p.OrbitTrap)
	binary.LittleEndian.PutUint16(buf[16:18], p.Roughness)
	return append(dst, buf[:]...)
}

// Decode unpacks one 18-byte record at the front of b. b must be at
// least BytesPerPixel bytes long.
func Decode(b []byte) Pixel {
	_ = b[BytesPerPixel-1]
	nx := int16(binary.LittleEndian.Uint16(b[0:2]))
	ny := int16(binary.LittleEndian.Uint16(b[2:4]))
	nz := int16(binary.LittleEndian.Uint16(b[4:6]))
	return Pixel{
		Normal:    vec3.New(float64(nx)/32767.0, float64(ny)/32767.0, float64(nz)/32767.0),
		ZPos:      binary.LittleEndian.Uint16(b[6:8]),
		Shadow:    binary.LittleEndian.Uint16(b[8:10]),
		Ambient:   binary.LittleEndian.Uint16(b[10:12]),
		ColorGrad: binary.LittleEndian.Uint16(b[12:14]),
		OrbitTrap: binary.LittleEndian.Uint16(b[14:16]),
		Roughness: binary.LittleEndian.Uint16(b[16:18]),
	}
}

// IsMiss reports whether p represents a ray that hit nothing.
func (p Pixel) IsMiss() bool { return p.ZPos >= ZPosMiss }

// FromHit builds the packed record for a surface hit, given the
// marcher's raw floating-point outputs.
func FromHit(normal vec3.Vec3, depth01 float64, steps int, maxSteps int, smoothIt float64, orbitTrap float64) Pixel {
	ambient := float64(steps) / 200.0
	if ambient > 1 {
		ambient = 1
	}
	grad := math.Mod(smoothIt, 256) / 256.0
	trap := 1 - math.Min(1, orbitTrap)

	return Pixel{
		Normal:    normal,
		ZPos:      vec3.ClipU16(depth01),
		Shadow:    0,
		Ambient:   vec3.ClipU16(ambient),
		ColorGrad: vec3.ClipU16(grad),
		OrbitTrap: vec3.ClipU16(trap),
		Roughness: 0,
	}
}
