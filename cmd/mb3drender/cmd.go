package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guidogerb/mb3d"
	"github.com/guidogerb/mb3d/cmd/mb3drender/internal/wire"
	"github.com/guidogerb/mb3d/formula"
)

// renderFlags holds the CLI's tunable render parameters.
type renderFlags struct {
	out            string
	width, height  int
	formulaName    string
	iterations     int
	bailout        float64
	deStop         float64
	stepWidth      float64
	maxRayLength   float64
}

var formulaIDsByName = map[string]formula.ID{
	"mandelbulb2":     formula.IDMandelbulbPower2,
	"mandelbulb8":     formula.IDMandelbulbPower8,
	"amazingbox":      formula.IDAmazingBox,
	"amazingsurf":     formula.IDAmazingSurf,
	"bulbox":          formula.IDBulbox,
	"quaternionjulia": formula.IDQuaternionJulia,
	"tricorn":         formula.IDTricorn,
	"foldingintpow":   formula.IDFoldingIntPow,
	"realpower":       formula.IDRealPower,
	"aexionc":         formula.IDAexionC,
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	flags := &renderFlags{}

	root := &cobra.Command{
		Use:   "mb3drender",
		Short: "Render a 3D fractal scene to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(logger, flags)
		},
	}

	root.Flags().StringVarP(&flags.out, "out", "o", "render.png", "output PNG path")
	root.Flags().IntVar(&flags.width, "width", 800, "image width")
	root.Flags().IntVar(&flags.height, "height", 600, "image height")
	root.Flags().StringVar(&flags.formulaName, "formula", "mandelbulb8", "fractal formula name")
	root.Flags().IntVar(&flags.iterations, "iterations", 12, "max iterations")
	root.Flags().Float64Var(&flags.bailout, "bailout", 16, "escape bailout radius squared")
	root.Flags().Float64Var(&flags.deStop, "de-stop", 0.0005, "surface distance threshold")
	root.Flags().Float64Var(&flags.stepWidth, "step-width", 0.8, "ray march step width")
	root.Flags().Float64Var(&flags.maxRayLength, "max-ray-length", 50, "maximum ray travel distance")

	return root
}

func runRender(logger *zap.Logger, flags *renderFlags) error {
	id, ok := formulaIDsByName[flags.formulaName]
	if !ok {
		logger.Warn("unknown formula, falling back to mandelbulb8", zap.String("formula", flags.formulaName))
		id = formula.IDMandelbulbPower8
	}

	logger.Info("rendering",
		zap.Int("width", flags.width),
		zap.Int("height", flags.height),
		zap.String("formula", flags.formulaName),
		zap.Int("iterations", flags.iterations),
	)

	params := wire.EncodeRenderParams(wire.RenderParams{
		Width: flags.width, Height: flags.height,
		CameraZ:        -2.5,
		DEStop:         flags.deStop,
		StepWidth:      flags.stepWidth,
		MaxRayLength:   flags.maxRayLength,
		MaxIterations:  flags.iterations,
		Bailout:        flags.bailout,
		BinSearchSteps: 3,
	})
	formulaBuf := wire.EncodeFormulaIDs(uint32(id), uint32(flags.iterations))

	pixels := mb3d.RenderQuick(params, formulaBuf, nil, nil)

	if err := writePNG(flags.out, pixels, flags.width, flags.height); err != nil {
		return err
	}
	logger.Info("wrote image", zap.String("path", flags.out))
	return nil
}
