package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo Texture) *Material {
	return &Material{Kind: LambertianKind, Texture: albedo}
}

// NewSolidLambertian creates a diffuse material with a constant albedo
func NewSolidLambertian(albedo core.Vec3) *Material {
	return NewLambertian(NewSolidColor(albedo))
}

// scatterLambertian offsets the normal by a point in the unit ball, which
// approximates a cosine-weighted hemisphere sample
func (m *Material) scatterLambertian(hit SurfaceInteraction, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.SamplePointInUnitSphere(sampler.Get3D()))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Texture.Evaluate(hit.U, hit.V, hit.Point),
	}, true
}
