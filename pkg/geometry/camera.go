package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
	Roll        float64   // Rotation around the view axis in degrees
}

// Validate reports a degenerate view setup
func (c CameraConfig) Validate() error {
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("%w: vertical field of view must be in (0, 180), got %f", ErrInvalidCamera, c.VFov)
	}
	if !(c.AspectRatio > 0) {
		return fmt.Errorf("%w: aspect ratio must be positive, got %f", ErrInvalidCamera, c.AspectRatio)
	}
	if c.LookFrom.Equals(c.LookAt) {
		return fmt.Errorf("%w: look-from and look-at are the same point %v", ErrInvalidCamera, c.LookFrom)
	}
	w := c.LookFrom.Subtract(c.LookAt).Normalize()
	if rollUp(c.Roll).Cross(w).LengthSquared() < degenerateBasis {
		return fmt.Errorf("%w: view direction %v is parallel to the rolled up vector", ErrInvalidCamera, w.Negate())
	}
	return nil
}

// degenerateBasis is the squared sine below which the view and up vectors are treated as parallel
const degenerateBasis = 1e-12

// rollUp returns the world up vector rotated by roll degrees about the view axis
func rollUp(roll float64) core.Vec3 {
	rollRadians := roll * math.Pi / 180.0
	return core.NewVec3(-math.Sin(rollRadians), math.Cos(rollRadians), 0)
}

// Camera generates primary rays through a viewport one unit in front of the
// origin. Screen coordinate (0, 0) is the top-left corner of the image.
type Camera struct {
	origin     core.Vec3
	corner     core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	u, v, w    core.Vec3 // Camera basis: right, up, backward
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	rotatedUp := rollUp(config.Roll)

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := rotatedUp.Cross(w).Normalize()
	v := w.Cross(u).Normalize()

	halfHeight := math.Tan(config.VFov * math.Pi / 180.0 / 2.0)
	halfWidth := halfHeight * config.AspectRatio

	// Top-left corner; vertical points down so t grows with image rows
	corner := config.LookFrom.
		Subtract(u.Multiply(halfWidth)).
		Add(v.Multiply(halfHeight)).
		Subtract(w)

	return &Camera{
		origin:     config.LookFrom,
		corner:     corner,
		horizontal: u.Multiply(2.0 * halfWidth),
		vertical:   v.Multiply(-2.0 * halfHeight),
		u:          u,
		v:          v,
		w:          w,
	}
}

// GetRay generates a unit-direction ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.corner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

// Up returns the roll-adjusted unit up vector of the image plane
func (c *Camera) Up() core.Vec3 {
	return c.v
}

// Right returns the unit vector pointing toward increasing s
func (c *Camera) Right() core.Vec3 {
	return c.u
}
