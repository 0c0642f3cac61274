package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const tolerance = 1e-9

func grey() *material.Material {
	return material.NewSolidLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func vecNear(a, b core.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}
