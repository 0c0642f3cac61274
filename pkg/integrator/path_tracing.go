package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	// RouletteDepth is the last depth at which paths always continue
	RouletteDepth = 5

	// HardDepthLimit bounds recursion regardless of roulette outcomes
	HardDepthLimit = 100

	// tMin offsets secondary rays to avoid self-intersection
	tMin = 1e-4
)

var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// Config controls the estimator policy
type Config struct {
	Background Background

	// MaxDepth lowers the recursion limit below HardDepthLimit when SoftDepthCap is set
	MaxDepth     int
	SoftDepthCap bool
}

// PathTracingIntegrator implements unidirectional path tracing with Russian roulette
type PathTracingIntegrator struct {
	world      Intersector
	background Background
	depthLimit int
}

// NewPathTracingIntegrator creates an estimator over the given scene geometry
func NewPathTracingIntegrator(world Intersector, config Config) *PathTracingIntegrator {
	depthLimit := HardDepthLimit
	if config.SoftDepthCap && config.MaxDepth > 0 && config.MaxDepth < depthLimit {
		depthLimit = config.MaxDepth
	}

	return &PathTracingIntegrator{
		world:      world,
		background: config.Background,
		depthLimit: depthLimit,
	}
}

// DepthLimit returns the depth at which recursion stops
func (pt *PathTracingIntegrator) DepthLimit() int {
	return pt.depthLimit
}

// Radiance estimates the light arriving along ray. Camera rays start at depth 1.
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	hit, isHit := pt.world.Hit(ray, tMin, math.Inf(1))
	if !isHit {
		return pt.Background(ray)
	}

	emitted := hit.Material.Emit(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	attenuation := scatter.Attenuation
	if depth > RouletteDepth {
		var survived bool
		attenuation, survived = RussianRoulette(attenuation, sampler.Get1D())
		if !survived {
			return emitted
		}
	}

	if depth >= pt.depthLimit {
		return emitted
	}

	incoming := pt.Radiance(scatter.Scattered, depth+1, sampler)
	return emitted.Add(attenuation.MultiplyVec(incoming))
}

// RussianRoulette continues a path with probability equal to the mean attenuation
// (capped at one) and reweights survivors so the expected contribution is unchanged.
// u must be uniform in [0, 1).
func RussianRoulette(attenuation core.Vec3, u float64) (core.Vec3, bool) {
	survival := math.Min(attenuation.Mean(), 1.0)
	if !(u < survival) {
		return core.Vec3{}, false
	}
	return attenuation.Divide(survival), true
}

// Background returns the radiance for a ray that hits nothing
func (pt *PathTracingIntegrator) Background(ray core.Ray) core.Vec3 {
	if pt.background != BackgroundSky {
		return core.Vec3{}
	}

	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}
