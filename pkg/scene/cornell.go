package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	cornellRed   = core.NewVec3(0.75, 0.25, 0.25)
	cornellWhite = core.NewVec3(0.75, 0.75, 0.75)
	cornellBlue  = core.NewVec3(0.25, 0.25, 0.75)
	cornellLight = core.NewVec3(15, 15, 15)
)

// cornellWalls approximates the box with huge spheres so every wall is bounded
func cornellWalls() []geometry.Primitive {
	return []geometry.Primitive{
		geometry.NewSphere(core.NewVec3(5006, 0, 0), 5000, material.NewSolidLambertian(cornellBlue)),   // right
		geometry.NewSphere(core.NewVec3(-5006, 0, 0), 5000, material.NewSolidLambertian(cornellRed)),   // left
		geometry.NewSphere(core.NewVec3(0, 5010, 0), 5000, material.NewSolidLambertian(cornellWhite)),  // ceiling
		geometry.NewSphere(core.NewVec3(0, -5000, 0), 5000, material.NewSolidLambertian(cornellWhite)), // floor
		geometry.NewSphere(core.NewVec3(0, 0, -5010), 5000, material.NewSolidLambertian(cornellWhite)), // back
	}
}

// NewCornellScene creates a Cornell box lit by a disc in the ceiling
func NewCornellScene(config Config) (*Scene, error) {
	primitives := append(cornellWalls(),
		geometry.NewDisc(core.NewVec3(0, 10, -5), core.NewVec3(0, -1, 0), 1.5, material.NewEmissive(cornellLight)),
		geometry.NewSphere(core.NewVec3(-3.5, 2, -3), 2, material.NewClearDielectric(1.52)),
		geometry.NewSphere(core.NewVec3(3.5, 2, -7), 2, material.NewSolidMetal(core.NewVec3(0.05, 1, 0.05), 0.25)),
		geometry.NewSphere(core.NewVec3(5, 1, 0), 1, material.NewSolidMetal(core.NewVec3(1, 0.05, 0.05), 0)),
	)

	return New("cornell", geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 5, 15),
		LookAt:      core.NewVec3(0, 5, 0),
		VFov:        45,
		AspectRatio: config.AspectRatio,
	}, primitives, rand.New(rand.NewSource(config.Seed)))
}

// NewInvertedCornellScene places the light on the floor facing up and views
// the box from high above the entrance
func NewInvertedCornellScene(config Config) (*Scene, error) {
	primitives := append(cornellWalls(),
		geometry.NewDisc(core.NewVec3(0, 0, -5), core.NewVec3(0, 1, 0), 1.5, material.NewEmissive(cornellLight)),
		geometry.NewSphere(core.NewVec3(-3.5, 2, -3), 2, material.NewClearDielectric(1.52)),
		geometry.NewSphere(core.NewVec3(3.5, 2, -7), 2, material.NewSolidMetal(core.NewVec3(0.05, 1, 0.05), 0.25)),
		geometry.NewSphere(core.NewVec3(3.8, 2, -1.5), 2, material.NewSolidMetal(core.NewVec3(1, 0.05, 0.05), 0)),
	)

	return New("inverted-cornell", geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 9.95, 8),
		LookAt:      core.NewVec3(0, 3, -5),
		VFov:        55,
		AspectRatio: config.AspectRatio,
	}, primitives, rand.New(rand.NewSource(config.Seed)))
}
