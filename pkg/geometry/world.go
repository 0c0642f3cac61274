package geometry

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// World is the queryable scene geometry: a BVH over every bounded primitive
// plus a linear list of unbounded planes.
type World struct {
	bvh       *BVH
	unbounded []Primitive
}

// WorldStats summarizes the acceleration structure for logging
type WorldStats struct {
	Primitives int
	Unbounded  int
	BVHNodes   int
	BVHDepth   int
}

// NewWorld validates the primitives and builds the acceleration structure.
// An empty primitive list is a configuration error.
func NewWorld(primitives []Primitive, rng *rand.Rand) (*World, error) {
	if len(primitives) == 0 {
		return nil, ErrEmptyBVH
	}

	var bounded []Primitive
	world := &World{}
	for i := range primitives {
		if err := primitives[i].Validate(); err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		if _, ok := primitives[i].BoundingBox(); ok {
			bounded = append(bounded, primitives[i])
		} else {
			world.unbounded = append(world.unbounded, primitives[i])
		}
	}

	if len(bounded) > 0 {
		bvh, err := NewBVH(bounded, rng)
		if err != nil {
			return nil, err
		}
		world.bvh = bvh
	}

	return world, nil
}

// Hit returns the nearest intersection inside the open interval (tMin, tMax)
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	var closest *material.SurfaceInteraction
	if w.bvh != nil {
		if hit, ok := w.bvh.Hit(ray, tMin, tMax); ok {
			closest = hit
			tMax = hit.T
		}
	}

	for i := range w.unbounded {
		if hit, ok := w.unbounded[i].Hit(ray, tMin, tMax); ok {
			closest = hit
			tMax = hit.T
		}
	}

	return closest, closest != nil
}

// Stats reports primitive and BVH counts
func (w *World) Stats() WorldStats {
	stats := WorldStats{Unbounded: len(w.unbounded)}
	if w.bvh != nil {
		stats.Primitives = w.bvh.PrimitiveCount()
		stats.BVHNodes = w.bvh.NodeCount()
		stats.BVHDepth = w.bvh.Depth()
	}
	stats.Primitives += stats.Unbounded
	return stats
}
