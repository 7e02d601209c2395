package shade

import (
	"encoding/binary"
	"math"

	"github.com/guidogerb/mb3d/gbuffer"
	"github.com/guidogerb/mb3d/vec3"
)

// LightConfig is one directional light in the scene.
type LightConfig struct {
	Direction        vec3.Vec3
	Color            vec3.Vec3
	Amplitude        float64
	SpecularSize     float64
	SpecularIntensity float64
}

// PaintConfig controls the deferred shading pass.
type PaintConfig struct {
	Lights       []LightConfig
	AmbientColor vec3.Vec3
	AmbientInten float64
	FogDensity   float64
	BGColor      vec3.Vec3
	ViewDir      vec3.Vec3
	AOStrength   float64
	Gradient     ColorGradient
}

// DefaultPaintConfig mirrors the engine's built-in lighting defaults:
// one white key light, a cool ambient term, no fog, and a dark
// background.
func DefaultPaintConfig() PaintConfig {
	return PaintConfig{
		Lights: []LightConfig{{
			Direction:         vec3.New(0.577, 0.577, -0.577),
			Color:             vec3.New(1, 1, 1),
			Amplitude:         1.0,
			SpecularSize:      32,
			SpecularIntensity: 0.5,
		}},
		AmbientColor: vec3.New(0.25, 0.25, 0.375),
		AmbientInten: 0.3,
		FogDensity:   0,
		BGColor:      vec3.New(0.02, 0.02, 0.05),
		ViewDir:      vec3.New(0, 0, 1),
		AOStrength:   0.5,
		Gradient:     DefaultGradient(),
	}
}

// maxLights caps how many lights paint_params can carry, matching the
// host's fixed-size light array.
const maxLights = 6

// PaintConfigFromBuffer parses a paint_params buffer. Parsing stops at
// whatever section the buffer runs out of bytes in; everything after
// that point keeps its default value rather than erroring.
func PaintConfigFromBuffer(data []byte) PaintConfig {
	cfg := DefaultPaintConfig()
	f := make([]float64, len(data)/8)
	for i := range f {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		f[i] = math.Float64frombits(bits)
	}

	idx := 0
	need := func(n int) bool { return idx+n <= len(f) }

	if !need(1) {
		return cfg
	}
	numLights := int(f[idx])
	idx++
	if numLights > maxLights {
		numLights = maxLights
	}

	var lights []LightConfig
	for i := 0; i < numLights; i++ {
		if !need(9) {
			cfg.Lights = lights
			return cfg
		}
		lights = append(lights, LightConfig{
			Direction:         vec3.New(f[idx], f[idx+1], f[idx+2]),
			Color:             vec3.New(f[idx+3], f[idx+4], f[idx+5]),
			Amplitude:         f[idx+6],
			SpecularSize:      f[idx+7],
			SpecularIntensity: f[idx+8],
		})
		idx += 9
	}
	cfg.Lights = lights

	if !need(4) {
		return cfg
	}
	cfg.AmbientColor = vec3.New(f[idx], f[idx+1], f[idx+2])
	cfg.AmbientInten = f[idx+3]
	idx += 4

	if !need(1) {
		return cfg
	}
	cfg.FogDensity = f[idx]
	idx++

	// fogR, fogG, fogB: PaintConfig has no separate fog color (fog
	// blends toward BGColor), so these three values are skipped.
	if !need(3) {
		return cfg
	}
	idx += 3

	if !need(3) {
		return cfg
	}
	cfg.BGColor = vec3.New(f[idx], f[idx+1], f[idx+2])
	idx += 3

	if !need(3) {
		return cfg
	}
	cfg.ViewDir = vec3.New(f[idx], f[idx+1], f[idx+2])
	idx += 3

	if !need(1) {
		return cfg
	}
	cfg.AOStrength = f[idx]
	idx++

	if !need(1) {
		return cfg
	}
	numStops := int(f[idx])
	idx++

	var stops []ColorStop
	for i := 0; i < numStops; i++ {
		if !need(4) {
			break
		}
		stops = append(stops, ColorStop{
			Position: f[idx],
			Color:    colorRGB(f[idx+1], f[idx+2], f[idx+3]),
		})
		idx += 4
	}
	if len(stops) > 0 {
		cfg.Gradient = ColorGradient{Stops: stops}
	}

	return cfg
}

// PaintGBuffer shades width*height packed pixels from gbuf into an
// RGBA8 output buffer (4 bytes per pixel, alpha always 255). Pixels
// that a short gbuf does not cover are painted as misses (background).
func PaintGBuffer(gbuf []byte, width, height int, cfg PaintConfig) []byte {
	out := make([]byte, width*height*4)

	for i := 0; i < width*height; i++ {
		gOff := i * gbuffer.BytesPerPixel
		px := gbuffer.Miss
		if gOff+gbuffer.BytesPerPixel <= len(gbuf) {
			px = gbuffer.Decode(gbuf[gOff : gOff+gbuffer.BytesPerPixel])
		}
		oOff := i * 4

		var c vec3.Vec3
		if px.IsMiss() {
			c = cfg.BGColor
		} else {
			c = shadePixel(px, cfg)
		}

		out[oOff+0] = byteClamp(c.X)
		out[oOff+1] = byteClamp(c.Y)
		out[oOff+2] = byteClamp(c.Z)
		out[oOff+3] = 255
	}
	return out
}

func shadePixel(px gbuffer.Pixel, cfg PaintConfig) vec3.Vec3 {
	ambient := vec3.Scale(cfg.AmbientInten, cfg.AmbientColor)
	ao := 1 - cfg.AOStrength*(float64(px.Ambient)/65535.0)

	grad := cfg.Gradient.Sample(float64(px.ColorGrad) / 65535.0)
	base := vec3.New(grad.R, grad.G, grad.B)

	color := ambient
	for _, l := range cfg.Lights {
		ldir := vec3.Normalize(l.Direction)
		diffuse := math.Max(0, vec3.Dot(px.Normal, ldir)) * l.Amplitude
		color = vec3.Add(color, vec3.Scale(diffuse, l.Color))

		half := vec3.Normalize(vec3.Add(ldir, cfg.ViewDir))
		spec := math.Pow(math.Max(0, vec3.Dot(px.Normal, half)), l.SpecularSize) * l.SpecularIntensity
		color = vec3.Add(color, vec3.Scale(spec, l.Color))
	}

	color = vec3.New(color.X*base.X, color.Y*base.Y, color.Z*base.Z)
	color = vec3.Scale(ao, color)

	depth := float64(px.ZPos) / 65535.0
	fogAmt := 1 - math.Exp(-depth*cfg.FogDensity*10)
	color = vec3.Add(vec3.Scale(1-fogAmt, color), vec3.Scale(fogAmt, cfg.BGColor))

	return color
}

func byteClamp(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return byte(v * 255)
}
