package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDielectric creates a transparent material like glass that can both reflect and refract
func NewDielectric(attenuation Texture, refractiveIndex float64) *Material {
	return &Material{Kind: DielectricKind, Texture: attenuation, RefractiveIndex: refractiveIndex}
}

// NewClearDielectric creates a dielectric with white attenuation
func NewClearDielectric(refractiveIndex float64) *Material {
	return NewDielectric(NewSolidColor(core.NewVec3(1, 1, 1)), refractiveIndex)
}

func (m *Material) scatterDielectric(rayIn core.Ray, hit SurfaceInteraction, sampler core.Sampler) (ScatterResult, bool) {
	n := m.RefractiveIndex
	attenuation := m.Texture.Evaluate(hit.U, hit.V, hit.Point)

	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	// The sign of d tells whether we are leaving (d > 0) or entering the medium
	d := rayIn.Direction.Dot(hit.Normal)
	length := rayIn.Direction.Length()

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if d > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = n
		cosine = n * d / length
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / n
		cosine = -d / length
	}

	reflectProbability := 1.0 // total internal reflection unless refraction succeeds
	refracted, canRefract := refractVector(rayIn.Direction, outwardNormal, niOverNt)
	if canRefract {
		reflectProbability = Schlick(cosine, n)
	}

	direction := refracted
	if sampler.Get1D() < reflectProbability {
		direction = reflected
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// refractVector bends v through a surface with normal n using Snell's law.
// It returns false when the discriminant is not positive (total internal reflection).
func refractVector(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)

	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}

	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refractiveIndex float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
