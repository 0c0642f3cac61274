package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewPlane creates an infinite plane through point. Planes have no bounding
// box and are kept outside the BVH by World.
func NewPlane(point, normal core.Vec3, mat *material.Material) Primitive {
	n := normal.Normalize()
	tangent, bitangent := tangentFrame(n)

	return Primitive{
		Kind:      PlaneKind,
		Center:    point,
		Normal:    n,
		Material:  mat,
		tangent:   tangent,
		bitangent: bitangent,
	}
}

func (p *Primitive) hitPlane(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if math.Abs(denom) <= parallelEpsilon {
		return nil, false
	}

	t := p.Center.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	offset := point.Subtract(p.Center)

	// One texture tile per world unit
	x := offset.Dot(p.tangent)
	y := offset.Dot(p.bitangent)

	return &material.SurfaceInteraction{
		Point:    point,
		T:        t,
		Normal:   p.Normal,
		U:        wrapUnit(x),
		V:        wrapUnit(y),
		Material: p.Material,
	}, true
}

// wrapUnit maps x into [0, 1)
func wrapUnit(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
