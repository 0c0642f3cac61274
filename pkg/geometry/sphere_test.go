package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, grey())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FromOutsideAndInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, grey())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "Axis ray from z=5",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			// Normals stay outward; orientation is resolved by materials
			name:           "Ray from the center takes the far root",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "Unnormalized direction",
			rayOrigin:      core.NewVec3(0, 3, 0),
			rayDirection:   core.NewVec3(0, -2, 0),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, tolerance) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != sphere.Material {
				t.Error("Expected hit to carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, grey())
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{"tMax before sphere", 0.001, 0.5, false, 0},
		{"tMin past sphere", 3.5, 1000.0, false, 0},
		{"Interval excludes near root at tMax", 0.001, 1.0, false, 0},
		{"Near root equal to tMin falls back to far root", 1.0, 1000.0, true, 3.0},
		{"Both roots inside", 0.001, 1000.0, true, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_NormalsAreUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := NewSphere(core.NewVec3(1, -2, 3), 2.5, grey())

	hits := 0
	for i := 0; i < 1000; i++ {
		origin := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		target := sphere.Center.Add(core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, random.Float64()*4-2))
		ray := core.NewRay(origin, target.Subtract(origin))

		hit, isHit := sphere.Hit(ray, 1e-4, math.Inf(1))
		if !isHit {
			continue
		}
		hits++
		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Fatalf("Normal %v is not unit length", hit.Normal)
		}
		if hit.U < 0 || hit.U > 1 || hit.V < 0 || hit.V > 1 {
			t.Fatalf("UV (%f, %f) outside [0, 1]", hit.U, hit.V)
		}
	}

	if hits == 0 {
		t.Fatal("Expected some rays to hit the sphere")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name   string
		normal core.Vec3
		u, v   float64
	}{
		{"+X equator", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"-Z equator", core.NewVec3(0, 0, -1), 0.75, 0.5},
		{"North pole", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"South pole", core.NewVec3(0, -1, 0), 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.normal)
			if math.Abs(u-tt.u) > tolerance || math.Abs(v-tt.v) > tolerance {
				t.Errorf("Expected UV (%f, %f), got (%f, %f)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, grey())
	box, bounded := sphere.BoundingBox()
	if !bounded {
		t.Fatal("Sphere should be bounded")
	}
	if !box.Min.Equals(core.NewVec3(0.5, 1.5, 2.5)) || !box.Max.Equals(core.NewVec3(1.5, 2.5, 3.5)) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}
