package scene

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	earthTexture = "earth.jpg"
	moonTexture  = "moon.jpg"
)

// NewEarthMoonScene renders two bitmap-textured spheres lit by a huge warm disc.
// Textures are read from config.TextureDir; a missing file is an error.
func NewEarthMoonScene(config Config) (*Scene, error) {
	if config.LoadBitmap == nil {
		return nil, fmt.Errorf("%w: earth-moon needs a bitmap loader", ErrMissingAsset)
	}

	earth, err := config.LoadBitmap(filepath.Join(config.TextureDir, earthTexture))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingAsset, err)
	}
	moon, err := config.LoadBitmap(filepath.Join(config.TextureDir, moonTexture))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingAsset, err)
	}

	sun := material.NewEmissive(core.NewVec3(1.0, 0.90, 0.75).Multiply(5))
	primitives := []geometry.Primitive{
		geometry.NewDisc(core.NewVec3(1000, 0, 0), core.NewVec3(-1, 0, 0), 1000, sun),
		geometry.NewSphere(core.NewVec3(-9, 0, 0), 10, material.NewLambertian(material.NewBitmapTexture(earth))),
		geometry.NewSphere(core.NewVec3(13, 0, 0), 5, material.NewLambertian(material.NewBitmapTexture(moon))),
	}

	return New("earth-moon", geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 20, 30),
		LookAt:      core.NewVec3(0, 0, 0),
		VFov:        45,
		AspectRatio: config.AspectRatio,
	}, primitives, rand.New(rand.NewSource(config.Seed)))
}
