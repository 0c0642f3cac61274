package material

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TextureKind selects the color source variant of a Texture
type TextureKind uint8

const (
	ConstantColorTexture TextureKind = iota
	CheckerTexture
	BitmapTexture
)

func (k TextureKind) String() string {
	switch k {
	case ConstantColorTexture:
		return "constant"
	case CheckerTexture:
		return "checker"
	case BitmapTexture:
		return "bitmap"
	default:
		return fmt.Sprintf("TextureKind(%d)", uint8(k))
	}
}

// Texture provides spatially-varying colors for materials.
// Only the fields belonging to Kind are meaningful.
type Texture struct {
	Kind TextureKind

	Color core.Vec3 // ConstantColorTexture

	Squares   int       // CheckerTexture: squares per unit of u and v
	Odd, Even core.Vec3 // CheckerTexture

	Bitmap *Bitmap // BitmapTexture, shared read-only
}

// NewSolidColor creates a uniform color texture
func NewSolidColor(color core.Vec3) Texture {
	return Texture{Kind: ConstantColorTexture, Color: color}
}

// NewBitmapTexture creates a texture backed by a decoded raster
func NewBitmapTexture(bitmap *Bitmap) Texture {
	return Texture{Kind: BitmapTexture, Bitmap: bitmap}
}

// Evaluate returns color at the given UV coordinates and 3D point
func (t Texture) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	switch t.Kind {
	case CheckerTexture:
		return t.checker(u, v)
	case BitmapTexture:
		return t.Bitmap.At(u, v)
	default:
		return t.Color
	}
}

// Validate reports configuration errors for the texture variant
func (t Texture) Validate() error {
	switch t.Kind {
	case ConstantColorTexture:
		return nil
	case CheckerTexture:
		if t.Squares <= 0 {
			return fmt.Errorf("%w: checker needs a positive square count, got %d", ErrInvalidTexture, t.Squares)
		}
		return nil
	case BitmapTexture:
		if t.Bitmap == nil || t.Bitmap.Width <= 0 || t.Bitmap.Height <= 0 {
			return fmt.Errorf("%w: bitmap texture has no pixels", ErrInvalidTexture)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidTexture, t.Kind)
	}
}

func floorInt(x float64) int {
	return int(math.Floor(x))
}
