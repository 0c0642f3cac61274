package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Bitmap is a decoded raster used by bitmap textures
type Bitmap struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], y=0 is the top row
}

// NewBitmap creates a new bitmap
func NewBitmap(width, height int, pixels []core.Vec3) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// At samples the bitmap at UV coordinates using nearest-neighbor lookup,
// clamping out-of-range coordinates to the image edges
func (b *Bitmap) At(u, v float64) core.Vec3 {
	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := floorInt(u * float64(b.Width))
	y := floorInt((1.0-v)*float64(b.Height) - 0.001)

	x = max(0, min(b.Width-1, x))
	y = max(0, min(b.Height-1, y))

	return b.Pixels[y*b.Width+x]
}
