package renderer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/log"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var logger = log.New("renderer")

// pixelTracer holds the read-only state shared by all workers plus the
// synchronized frame buffer and completion counter
type pixelTracer struct {
	camera     *geometry.Camera
	integrator *integrator.PathTracingIntegrator
	width      int
	height     int
	samples    int
	seed       int64
	frame      *FrameBuffer
	completed  *atomic.Int64
}

func (pt *pixelTracer) pixelIndex(x, y int) uint64 {
	return uint64(y)*uint64(pt.width) + uint64(x)
}

// renderPixel estimates one pixel over a 2x2 stratified grid with tent-filtered
// jitter, stores it and returns the number of camera paths traced
func (pt *pixelTracer) renderPixel(x, y int, sampler core.Sampler) int64 {
	invWidth := 1.0 / float64(pt.width)
	invHeight := 1.0 / float64(pt.height)

	var sum core.Vec3
	for sy := 0; sy < 2; sy++ {
		for sx := 0; sx < 2; sx++ {
			for i := 0; i < pt.samples; i++ {
				dx := core.TentFilter(sampler.Get1D())
				dy := core.TentFilter(sampler.Get1D())

				s := ((float64(sx)+0.5+dx)*0.5 + float64(x)) * invWidth
				t := ((float64(sy)+0.5+dy)*0.5 + float64(y)) * invHeight

				ray := pt.camera.GetRay(s, t)
				sum = sum.Add(pt.integrator.Radiance(ray, 1, sampler))
			}
		}
	}

	paths := int64(4 * pt.samples)
	pt.frame.Set(x, y, sum.Multiply(1.0/float64(paths)))
	pt.completed.Add(1)
	return paths
}

// Render traces every pixel of the scene on a pool of opts.Workers goroutines
// and writes the finished frame through encoder. Nothing is written when
// rendering fails, and a failed write leaves no partial image behind.
func Render(sc *scene.Scene, opts Options, encoder ImageEncoder) (RenderStats, error) {
	if err := opts.Validate(); err != nil {
		return RenderStats{}, err
	}
	if sc == nil || sc.Camera == nil || sc.World == nil {
		return RenderStats{}, ErrSceneNotReady
	}
	if encoder == nil {
		encoder = FileEncoder{}
	}
	out := opts.Logger
	if out == nil {
		out = logger
	}

	estimator := integrator.NewPathTracingIntegrator(sc.World, integrator.Config{
		Background:   opts.Background,
		MaxDepth:     opts.MaxDepth,
		SoftDepthCap: opts.SoftDepthCap,
	})

	var completed atomic.Int64
	tracer := &pixelTracer{
		camera:     sc.Camera,
		integrator: estimator,
		width:      opts.Width,
		height:     opts.Height,
		samples:    opts.SamplesPerStratum,
		seed:       opts.Seed,
		frame:      NewFrameBuffer(opts.Width, opts.Height, opts.Gamma),
		completed:  &completed,
	}

	out.Infof("rendering %q at %dx%d, %d paths per pixel, %d workers, depth limit %d, %s background",
		sc.Name, opts.Width, opts.Height, 4*opts.SamplesPerStratum, opts.Workers, estimator.DepthLimit(), opts.Background)

	start := time.Now()
	total := int64(opts.Width) * int64(opts.Height)
	monitor := newProgressMonitor(&completed, total, opts.Progress)
	monitor.Start()

	pool := NewWorkerPool(tracer, opts.Workers)
	pool.Start()
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			pool.SubmitTask(PixelTask{X: x, Y: y})
		}
	}
	pool.Stop()
	monitor.Stop()
	renderTime := time.Since(start)

	worldStats := sc.World.Stats()
	stats := RenderStats{
		Scene:         sc.Name,
		Width:         opts.Width,
		Height:        opts.Height,
		Pixels:        completed.Load(),
		PathsPerPixel: 4 * opts.SamplesPerStratum,
		Paths:         pool.PathsTraced(),
		Workers:       pool.GetNumWorkers(),
		DepthLimit:    estimator.DepthLimit(),
		Background:    opts.Background.String(),
		Primitives:    worldStats.Primitives,
		BVHNodes:      worldStats.BVHNodes,
		BVHDepth:      worldStats.BVHDepth,
		RenderTime:    renderTime,
		OutputPath:    opts.OutputPath,
	}

	saveStart := time.Now()
	if err := encoder.Encode(tracer.frame.Image(), opts.OutputPath); err != nil {
		return stats, fmt.Errorf("%w %s: %w", ErrWriteImage, opts.OutputPath, err)
	}
	stats.SaveTime = time.Since(saveStart)

	out.Infof("render took %s, saved %s in %s", stats.RenderTime, opts.OutputPath, stats.SaveTime)
	return stats, nil
}
