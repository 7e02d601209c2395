package raymarch

import (
	"runtime"
	"sync"

	"github.com/guidogerb/mb3d/gbuffer"
	"github.com/guidogerb/mb3d/vec3"
)

// row is one scanline's worth of work handed to a dispatcher worker.
type row struct {
	y int
}

// RenderScanlines sphere-traces every pixel of p.Width x p.Height
// against de and writes the packed G-buffer into out; pixels whose
// record would fall past the end of out are skipped. Work is
// partitioned by row: every row is queued once on a shared channel and
// taken by exactly one worker, so the only shared write target (out)
// is never contended, mirroring the teacher's
// job-channel-plus-WaitGroup dispatch.
func RenderScanlines(de DE, p RenderParams, juliaC *vec3.Vec3, out []byte, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make(chan row, p.Height)
	for y := 0; y < p.Height; y++ {
		rows <- row{y: y}
	}
	close(rows)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := range rows {
				renderRow(de, p, juliaC, out, r.y)
			}
		}()
	}
	wg.Wait()
}

func renderRow(de DE, p RenderParams, juliaC *vec3.Vec3, out []byte, y int) {
	halfW := float64(p.Width) / 2
	halfH := float64(p.Height) / 2

	for x := 0; x < p.Width; x++ {
		px := (float64(x) - halfW) / halfW
		py := (float64(y) - halfH) / halfH

		dir := vec3.Add(p.ViewBase, vec3.Add(vec3.Scale(px, p.ViewDX), vec3.Scale(py, p.ViewDY)))
		dir = vec3.Normalize(dir)

		res := MarchRay(de, p.Camera, dir, juliaC, p)

		offset := (y*p.Width + x) * gbuffer.BytesPerPixel
		if offset < 0 || offset+gbuffer.BytesPerPixel > len(out) {
			continue
		}
		pixel := gbuffer.Miss
		if res.Hit {
			depth01 := res.TotalDistance / p.MaxRayLength
			pixel = gbuffer.FromHit(res.Normal, depth01, res.Steps, maxSteps, res.SmoothIter, res.OrbitTrap)
		}
		copy(out[offset:offset+gbuffer.BytesPerPixel], gbuffer.Encode(nil, pixel))
	}
}
