package raymarch

import (
	"testing"

	"github.com/guidogerb/mb3d/formula"
	"github.com/guidogerb/mb3d/gbuffer"
	"github.com/stretchr/testify/assert"
)

func TestRenderScanlinesFillsWholeBuffer(t *testing.T) {
	p := DefaultRenderParams()
	p.Width, p.Height = 16, 12
	de := singleFormula{f: formula.MandelbulbPower8(), p: p}

	out := make([]byte, p.Width*p.Height*gbuffer.BytesPerPixel)
	RenderScanlines(de, p, nil, out, 4)

	var hits, misses int
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			offset := (y*p.Width + x) * gbuffer.BytesPerPixel
			px := gbuffer.Decode(out[offset : offset+gbuffer.BytesPerPixel])
			if px.IsMiss() {
				misses++
			} else {
				hits++
			}
		}
	}
	assert.Equal(t, p.Width*p.Height, hits+misses)
	assert.Greater(t, hits, 0)
}

func TestRenderScanlinesDeterministicAcrossWorkerCounts(t *testing.T) {
	p := DefaultRenderParams()
	p.Width, p.Height = 8, 8
	de := singleFormula{f: formula.MandelbulbPower8(), p: p}

	out1 := make([]byte, p.Width*p.Height*gbuffer.BytesPerPixel)
	out2 := make([]byte, p.Width*p.Height*gbuffer.BytesPerPixel)
	RenderScanlines(de, p, nil, out1, 1)
	RenderScanlines(de, p, nil, out2, 8)

	assert.Equal(t, out1, out2)
}
