package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Kind selects the scattering behavior of a Material
type Kind uint8

const (
	LambertianKind Kind = iota
	MetalKind
	DielectricKind
	DiffuseLightKind
)

func (k Kind) String() string {
	switch k {
	case LambertianKind:
		return "lambertian"
	case MetalKind:
		return "metal"
	case DielectricKind:
		return "dielectric"
	case DiffuseLightKind:
		return "diffuse-light"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Material describes how a surface scatters and emits light.
// Texture is the albedo (Lambertian, Metal), the attenuation (Dielectric)
// or the emission (DiffuseLight) depending on Kind.
type Material struct {
	Kind            Kind
	Texture         Texture
	Fuzz            float64 // Metal only, in [0, 1]
	RefractiveIndex float64 // Dielectric only, > 0
}

// Emit returns the radiance emitted at a surface point.
// Only diffuse lights emit; every other kind returns black.
func (m *Material) Emit(u, v float64, point core.Vec3) core.Vec3 {
	if m.Kind != DiffuseLightKind {
		return core.Vec3{}
	}
	return m.Texture.Evaluate(u, v, point)
}

// Scatter produces the continuation ray and its attenuation.
// A false result terminates the path (absorbed or emissive surface).
func (m *Material) Scatter(rayIn core.Ray, hit SurfaceInteraction, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case LambertianKind:
		return m.scatterLambertian(hit, sampler)
	case MetalKind:
		return m.scatterMetal(rayIn, hit, sampler)
	case DielectricKind:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// Validate reports configuration errors such as a non-positive refractive index
func (m *Material) Validate() error {
	if err := m.Texture.Validate(); err != nil {
		return fmt.Errorf("%s: %w", m.Kind, err)
	}

	switch m.Kind {
	case LambertianKind, DiffuseLightKind:
		return nil
	case MetalKind:
		if m.Fuzz < 0 || m.Fuzz > 1 {
			return fmt.Errorf("%w: metal fuzz %f outside [0, 1]", ErrInvalidMaterial, m.Fuzz)
		}
		return nil
	case DielectricKind:
		if !(m.RefractiveIndex > 0) {
			return fmt.Errorf("%w: dielectric refractive index must be positive, got %f", ErrInvalidMaterial, m.RefractiveIndex)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidMaterial, m.Kind)
	}
}
