// Package shade implements the deferred shading pass: it decodes a
// packed G-buffer, applies Phong lighting and fog, and resolves a
// color gradient for the color-gradient channel, writing RGBA8 output.
package shade

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ColorStop is one anchor of a ColorGradient at position t in [0,1].
type ColorStop struct {
	Position float64
	Color    colorful.Color
}

// ColorGradient samples a piecewise-linear blend of the RGB components
// across its stops, using go-colorful's BlendRgb.
type ColorGradient struct {
	Stops []ColorStop
}

// DefaultGradient is the "Blue-Orange" 5-stop gradient: deep blue at
// position 0, through white at 0.5, out to orange and black at 1.
func DefaultGradient() ColorGradient {
	return ColorGradient{Stops: []ColorStop{
		{Position: 0.0, Color: mustHex("#000044")},
		{Position: 0.25, Color: mustHex("#0066ff")},
		{Position: 0.5, Color: colorful.Color{R: 1, G: 1, B: 1}},
		{Position: 0.75, Color: mustHex("#ff6600")},
		{Position: 1.0, Color: colorful.Color{R: 0, G: 0, B: 0}},
	}}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// colorRGB builds a colorful.Color from raw 0..1 RGB components.
func colorRGB(r, g, b float64) colorful.Color {
	return colorful.Color{R: r, G: g, B: b}
}

// FromStops builds a gradient from explicit stops.
func FromStops(stops []ColorStop) ColorGradient {
	return ColorGradient{Stops: stops}
}

// Sample resolves the gradient's color at t, clamping t into [0,1].
// An empty gradient yields black, a zero-width span between two stops
// yields the lower stop, and a t not bracketed by any pair of stops
// yields the last stop.
func (g ColorGradient) Sample(t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if len(g.Stops) == 0 {
		return colorful.Color{}
	}
	if len(g.Stops) == 1 {
		return g.Stops[0].Color
	}

	for i := 0; i < len(g.Stops)-1; i++ {
		a, b := g.Stops[i], g.Stops[i+1]
		if t >= a.Position && t <= b.Position {
			span := b.Position - a.Position
			if span <= 0 {
				return a.Color
			}
			local := (t - a.Position) / span
			return a.Color.BlendRgb(b.Color, local)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}
