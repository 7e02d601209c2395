// Command mb3drender is a CLI host for the mb3d renderer: it builds
// render_params and formula_ids buffers from flags, drives RenderQuick
// with an empty paint_params buffer (default lighting), and writes the
// result as a PNG.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

// writePNG encodes an RGBA8 buffer produced by mb3d.RenderQuick to
// path as a PNG.
func writePNG(path string, pixels []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
