package renderer

import (
	"fmt"
	"math"
	"runtime"

	"github.com/df07/go-pathtracer/log"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ProgressFunc receives the number of finished pixels out of total.
// It is called from the progress loop goroutine, never from workers.
type ProgressFunc func(done, total int64)

// Options contains rendering configuration
type Options struct {
	// Frame dims.
	Width  int
	Height int

	// Samples per 2x2 sub-pixel stratum; each pixel traces 4x this many paths.
	SamplesPerStratum int

	// Soft recursion target; only enforced when SoftDepthCap is set.
	MaxDepth     int
	SoftDepthCap bool

	// Output encoding exponent.
	Gamma float64

	// Number of rendering goroutines.
	Workers int

	// Destination image; the encoder picks the format from the extension.
	OutputPath string

	// Base seed for the per-pixel random streams.
	Seed int64

	Background integrator.Background

	// Optional callbacks and sinks.
	Progress ProgressFunc
	Logger   log.Logger
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:             640,
		Height:            480,
		SamplesPerStratum: 25,
		MaxDepth:          50,
		Gamma:             2.2,
		Workers:           runtime.NumCPU(),
		OutputPath:        "output.png",
		Seed:              1,
		Background:        integrator.BackgroundBlack,
	}
}

// AspectRatio returns width / height
func (o Options) AspectRatio() float64 {
	return float64(o.Width) / float64(o.Height)
}

// Validate checks the render preconditions
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: frame size must be positive, got %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.SamplesPerStratum < 1:
		return fmt.Errorf("%w: samples per stratum must be at least 1, got %d", ErrInvalidOptions, o.SamplesPerStratum)
	case o.Workers < 1:
		return fmt.Errorf("%w: worker count must be at least 1, got %d", ErrInvalidOptions, o.Workers)
	case !(o.Gamma > 0) || math.IsInf(o.Gamma, 0):
		return fmt.Errorf("%w: gamma must be a positive number, got %f", ErrInvalidOptions, o.Gamma)
	case o.SoftDepthCap && o.MaxDepth < 1:
		return fmt.Errorf("%w: max depth must be at least 1 when capping depth, got %d", ErrInvalidOptions, o.MaxDepth)
	case o.OutputPath == "":
		return fmt.Errorf("%w: no output path", ErrInvalidOptions)
	}
	return nil
}
