package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene builds the classic field of small random spheres around three
// large ones, lit by a faint blue emissive dome
func NewDefaultScene(config Config) (*Scene, error) {
	random := rand.New(rand.NewSource(config.Seed))

	primitives := []geometry.Primitive{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewSolidLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	}

	const radius = 0.2
	keepClear := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				radius,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var mat *material.Material
			switch {
			case chooseMaterial < 0.8:
				mat = material.NewSolidLambertian(core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				))
			case chooseMaterial < 0.95:
				mat = material.NewSolidMetal(core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				), 0.5*random.Float64())
			default:
				mat = material.NewClearDielectric(1.5)
			}
			primitives = append(primitives, geometry.NewSphere(center, radius, mat))
		}
	}

	primitives = append(primitives,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewClearDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewSolidLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewSolidMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
		// The dome encloses everything and is the only light source
		geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewEmissive(core.NewVec3(0.5, 0.7, 1.0))),
	)

	return New("default", geometry.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VFov:        20,
		AspectRatio: config.AspectRatio,
	}, primitives, random)
}
