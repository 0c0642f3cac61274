package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// PrimitiveKind selects the geometric variant of a Primitive
type PrimitiveKind uint8

const (
	SphereKind PrimitiveKind = iota
	DiscKind
	PlaneKind
)

func (k PrimitiveKind) String() string {
	switch k {
	case SphereKind:
		return "sphere"
	case DiscKind:
		return "disc"
	case PlaneKind:
		return "plane"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", uint8(k))
	}
}

// Primitive is an intersectable surface with a material.
// Only the fields belonging to Kind are meaningful. Values are immutable
// after construction and safe to share between goroutines.
type Primitive struct {
	Kind     PrimitiveKind
	Center   core.Vec3 // Sphere and Disc center, a point on the Plane
	Normal   core.Vec3 // Disc and Plane unit normal
	Radius   float64   // Sphere and Disc
	Material *material.Material

	// Tangent frame in the Disc/Plane surface used for UV coordinates
	tangent   core.Vec3
	bitangent core.Vec3
}

// Hit tests the ray against the primitive inside the open interval (tMin, tMax)
func (p *Primitive) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	switch p.Kind {
	case SphereKind:
		return p.hitSphere(ray, tMin, tMax)
	case DiscKind:
		return p.hitDisc(ray, tMin, tMax)
	case PlaneKind:
		return p.hitPlane(ray, tMin, tMax)
	default:
		return nil, false
	}
}

// BoundingBox returns the primitive's bounds. Planes are unbounded and report false.
func (p *Primitive) BoundingBox() (core.AABB, bool) {
	switch p.Kind {
	case SphereKind, DiscKind:
		// A disc always fits inside the cube around its bounding sphere
		radius := core.NewVec3(p.Radius, p.Radius, p.Radius)
		return core.NewAABB(p.Center.Subtract(radius), p.Center.Add(radius)), true
	default:
		return core.AABB{}, false
	}
}

// Validate reports geometric or material configuration errors
func (p *Primitive) Validate() error {
	if p.Material == nil {
		return fmt.Errorf("%w: %s has no material", ErrInvalidPrimitive, p.Kind)
	}

	switch p.Kind {
	case SphereKind, DiscKind:
		if !(p.Radius > 0) {
			return fmt.Errorf("%w: %s radius must be positive, got %f", ErrInvalidPrimitive, p.Kind, p.Radius)
		}
	case PlaneKind:
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidPrimitive, p.Kind)
	}

	if p.Kind != SphereKind && p.Normal.LengthSquared() == 0 {
		return fmt.Errorf("%w: %s normal is zero", ErrInvalidPrimitive, p.Kind)
	}

	if err := p.Material.Validate(); err != nil {
		return fmt.Errorf("%s: %w", p.Kind, err)
	}
	return nil
}

// tangentFrame builds two unit vectors spanning the surface orthogonal to normal
func tangentFrame(normal core.Vec3) (core.Vec3, core.Vec3) {
	var helper core.Vec3
	if normal.X > 0.9 || normal.X < -0.9 {
		helper = core.NewVec3(0, 1, 0)
	} else {
		helper = core.NewVec3(1, 0, 0)
	}

	tangent := helper.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent).Normalize()
	return tangent, bitangent
}
