package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// SurfaceInteraction contains information about a ray-object intersection.
// It is created fresh per query and owned by the caller.
type SurfaceInteraction struct {
	Point    core.Vec3 // Point of intersection
	T        float64   // Parameter t along the ray
	Normal   core.Vec3 // Outward unit surface normal
	U, V     float64   // Surface parameterization for texture lookup
	Material *Material // Material of the hit object
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}
