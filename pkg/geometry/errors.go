package geometry

import "errors"

var (
	// ErrEmptyBVH is returned when a BVH is built from no primitives
	ErrEmptyBVH = errors.New("geometry: cannot build a BVH from an empty primitive list")

	// ErrUnboundedPrimitive is returned when a primitive without a bounding box is passed to NewBVH
	ErrUnboundedPrimitive = errors.New("geometry: unbounded primitive cannot be stored in a BVH")

	ErrInvalidPrimitive = errors.New("geometry: invalid primitive")
	ErrInvalidCamera    = errors.New("geometry: invalid camera")
)
