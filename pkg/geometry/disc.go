package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// parallelEpsilon is float64 machine epsilon; smaller |normal·direction| counts as parallel
const parallelEpsilon = 2.220446049250313e-16

// NewDisc creates a bounded disc lying in the plane through center with the given normal
func NewDisc(center, normal core.Vec3, radius float64, mat *material.Material) Primitive {
	n := normal.Normalize()
	tangent, bitangent := tangentFrame(n)

	return Primitive{
		Kind:      DiscKind,
		Center:    center,
		Normal:    n,
		Radius:    radius,
		Material:  mat,
		tangent:   tangent,
		bitangent: bitangent,
	}
}

func (p *Primitive) hitDisc(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
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
	if offset.LengthSquared() > p.Radius*p.Radius {
		return nil, false
	}

	// Polar coordinates: u is the angle around the normal, v the distance from the center
	x := offset.Dot(p.tangent)
	y := offset.Dot(p.bitangent)
	u := (math.Atan2(y, x) + math.Pi) / (2 * math.Pi)
	v := math.Sqrt(x*x+y*y) / p.Radius

	return &material.SurfaceInteraction{
		Point:    point,
		T:        t,
		Normal:   p.Normal,
		U:        u,
		V:        v,
		Material: p.Material,
	}, true
}
