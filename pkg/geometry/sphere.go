package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) Primitive {
	return Primitive{
		Kind:     SphereKind,
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

func (p *Primitive) hitSphere(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(p.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - p.Radius*p.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(p.Center).Divide(p.Radius)
	u, v := sphereUV(normal)

	return &material.SurfaceInteraction{
		Point:    point,
		T:        root,
		Normal:   normal,
		U:        u,
		V:        v,
		Material: p.Material,
	}, true
}

// sphereUV maps a unit outward normal to longitude/latitude texture coordinates.
// u runs around the Y axis starting at -X, v runs from the south pole (0) to the north pole (1).
func sphereUV(n core.Vec3) (float64, float64) {
	theta := math.Acos(math.Max(-1, math.Min(1, -n.Y)))
	phi := math.Atan2(-n.Z, n.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}
