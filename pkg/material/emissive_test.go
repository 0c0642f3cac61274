package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewEmissive(core.NewVec3(4, 4, 4))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := SurfaceInteraction{
		Point:  core.NewVec3(1, 0, 0),
		Normal: core.NewVec3(-1, 0, 0),
		T:      1.0,
	}

	if _, scattered := light.Scatter(ray, hit, fixedSampler{}); scattered {
		t.Error("Diffuse light should not scatter rays")
	}
}

func TestMaterial_Emit(t *testing.T) {
	emission := core.NewVec3(10.0, 5.0, 2.0)
	albedo := core.NewVec3(0.5, 0.5, 0.5)

	tests := []struct {
		name     string
		material *Material
		expected core.Vec3
	}{
		{"Diffuse light", NewEmissive(emission), emission},
		{"Lambertian", NewSolidLambertian(albedo), core.Vec3{}},
		{"Metal", NewSolidMetal(albedo, 0.1), core.Vec3{}},
		{"Dielectric", NewClearDielectric(1.5), core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.material.Emit(0.5, 0.5, core.Vec3{})
			if !got.Equals(tt.expected) {
				t.Errorf("Expected emission %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDiffuseLight_TexturedEmission(t *testing.T) {
	hot := core.NewVec3(8, 8, 8)
	cold := core.NewVec3(1, 1, 1)
	light := NewDiffuseLight(NewCheckerTexture(1, cold, hot))

	if got := light.Emit(0.5, 0.5, core.Vec3{}); !got.Equals(hot) {
		t.Errorf("Expected %v in cell (0,0), got %v", hot, got)
	}
	if got := light.Emit(1.5, 0.5, core.Vec3{}); !got.Equals(cold) {
		t.Errorf("Expected %v in cell (1,0), got %v", cold, got)
	}
}
