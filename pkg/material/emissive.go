package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDiffuseLight creates a light-emitting material. It never scatters.
func NewDiffuseLight(emission Texture) *Material {
	return &Material{Kind: DiffuseLightKind, Texture: emission}
}

// NewEmissive creates a diffuse light with a constant emission color
func NewEmissive(emission core.Vec3) *Material {
	return NewDiffuseLight(NewSolidColor(emission))
}
