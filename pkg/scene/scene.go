package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	ErrUnknownScene = errors.New("scene: unknown scene")
	ErrMissingAsset = errors.New("scene: missing asset")
)

// Scene contains all the elements needed for rendering. It is immutable once
// built and shared by reference between render workers.
type Scene struct {
	Name         string
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	World        *geometry.World
}

// BitmapLoader decodes the image at path for use by bitmap textures
type BitmapLoader func(path string) (*material.Bitmap, error)

// Config carries the inputs scene builders may depend on
type Config struct {
	AspectRatio float64      // Image width / height
	Seed        int64        // Seeds procedural placement and BVH axis choice
	TextureDir  string       // Directory holding texture files
	LoadBitmap  BitmapLoader // Required by textured scenes
}

// New validates the camera and builds the world for a list of primitives
func New(name string, cameraConfig geometry.CameraConfig, primitives []geometry.Primitive, rng *rand.Rand) (*Scene, error) {
	if err := cameraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	world, err := geometry.NewWorld(primitives, rng)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	return &Scene{
		Name:         name,
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		World:        world,
	}, nil
}
