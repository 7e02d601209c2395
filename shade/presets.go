package shade

import "github.com/lucasb-eyer/go-colorful"

// Presets collects named gradients a host can offer: "blue-orange" is
// DefaultGradient, and the others are built the same way the teacher
// palette built its banded palettes: as a short run of HSV stops
// rather than raw hex.
var Presets = map[string]ColorGradient{
	"blue-orange": DefaultGradient(),
	"earth": FromStops([]ColorStop{
		{Position: 0.0, Color: colorful.Hsv(24.0, 0.38, 0.33)},
		{Position: 0.35, Color: colorful.Hsv(158.0, 0.48, 0.73)},
		{Position: 0.65, Color: colorful.Hsv(58.0, 0.72, 0.83)},
		{Position: 1.0, Color: colorful.Hsv(58.0, 0.32, 0.95)},
	}),
	"mono": FromStops([]ColorStop{
		{Position: 0.0, Color: colorful.Hsv(0, 0, 0)},
		{Position: 1.0, Color: colorful.Hsv(0, 0, 1)},
	}),
}
