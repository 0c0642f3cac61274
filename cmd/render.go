package cmd

import (
	"runtime"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

// RenderFrame renders a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	logHostInfo()

	sc, err := scene.Lookup(ctx.String("scene"), scene.Config{
		AspectRatio: opts.AspectRatio(),
		Seed:        opts.Seed,
		TextureDir:  ctx.String("textures"),
		LoadBitmap:  loaders.LoadBitmap,
	})
	if err != nil {
		return err
	}

	logger.Debugf("camera basis: forward %v, up %v, right %v", sc.Camera.Forward(), sc.Camera.Up(), sc.Camera.Right())

	worldStats := sc.World.Stats()
	logger.Infof("built scene %q: %d primitives (%d unbounded), %d BVH nodes, depth %d",
		sc.Name, worldStats.Primitives, worldStats.Unbounded, worldStats.BVHNodes, worldStats.BVHDepth)

	stats, err := renderer.Render(sc, opts, renderer.FileEncoder{JPEGQuality: ctx.Int("jpeg-quality")})
	if err != nil {
		return err
	}

	displayRenderStats(stats)
	return nil
}

// renderOptions maps the command flags onto renderer options.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	background, err := integrator.ParseBackground(ctx.String("background"))
	if err != nil {
		return renderer.Options{}, err
	}

	workers := ctx.Int("workers")
	if workers == 0 {
		workers = defaultWorkers()
	}

	opts := renderer.Options{
		Width:             ctx.Int("width"),
		Height:            ctx.Int("height"),
		SamplesPerStratum: ctx.Int("spp"),
		MaxDepth:          ctx.Int("max-depth"),
		SoftDepthCap:      ctx.Bool("cap-depth"),
		Gamma:             ctx.Float64("gamma"),
		Workers:           workers,
		OutputPath:        ctx.String("out"),
		Seed:              ctx.Int64("seed"),
		Background:        background,
		Progress:          renderer.LogProgress(logger.Noticef),
		Logger:            logger,
	}

	if opts.SoftDepthCap {
		logger.Noticef("capping path depth at %d", opts.MaxDepth)
	}

	return opts, nil
}

// defaultWorkers returns the number of logical CPUs, falling back to the Go
// runtime's view when the host cannot be queried.
func defaultWorkers() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		logger.Debugf("cpu count unavailable (%v), using runtime.NumCPU", err)
		return runtime.NumCPU()
	}
	return count
}

func logHostInfo() {
	var model string
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		model = info[0].ModelName
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Infof("host: %s", model)
		return
	}
	logger.Infof("host: %s, %.1f GiB memory (%.1f GiB available)",
		model, float64(memInfo.Total)/(1<<30), float64(memInfo.Available)/(1<<30))
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", stats.Table())
	if stats.RenderTime > 0 {
		logger.Noticef("%.0f paths/s, frame written to %s", stats.PathsPerSecond(), stats.OutputPath)
	}
}
