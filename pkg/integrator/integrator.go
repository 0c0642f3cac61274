package integrator

import (
	"fmt"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Intersector answers nearest-hit queries against the scene geometry
type Intersector interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)
}

// Background selects the radiance returned for rays that escape the scene
type Background uint8

const (
	// BackgroundBlack returns no light; emissive geometry is the only source
	BackgroundBlack Background = iota
	// BackgroundSky returns a white-to-blue gradient over the ray's vertical component
	BackgroundSky
)

func (b Background) String() string {
	switch b {
	case BackgroundBlack:
		return "black"
	case BackgroundSky:
		return "sky"
	default:
		return fmt.Sprintf("Background(%d)", uint8(b))
	}
}

// ParseBackground converts a flag value to a Background
func ParseBackground(name string) (Background, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "black":
		return BackgroundBlack, nil
	case "sky":
		return BackgroundSky, nil
	default:
		return BackgroundBlack, fmt.Errorf("unknown background %q (expected black or sky)", name)
	}
}
