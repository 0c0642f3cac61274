package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewCheckerboardScene puts three spheres on an infinite checkered floor under
// an overhead disc light. The floor plane lives outside the BVH.
func NewCheckerboardScene(config Config) (*Scene, error) {
	floor := material.NewLambertian(material.NewCheckerTexture(2,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.3, 0.1),
	))
	rolled := material.NewLambertian(material.NewCheckerTexture(8,
		core.NewVec3(0.8, 0.1, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	primitives := []geometry.Primitive{
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1, rolled),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewClearDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1, material.NewSolidMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05)),
		geometry.NewDisc(core.NewVec3(0, 8, 0), core.NewVec3(0, -1, 0), 3, material.NewEmissive(core.NewVec3(6, 6, 6))),
	}

	return New("checkerboard", geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 3, 9),
		LookAt:      core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: config.AspectRatio,
		Roll:        -4,
	}, primitives, rand.New(rand.NewSource(config.Seed)))
}
