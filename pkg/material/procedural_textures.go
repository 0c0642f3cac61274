package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewCheckerTexture creates a procedural checkerboard over UV space with
// squares cells per unit along each of u and v
func NewCheckerTexture(squares int, odd, even core.Vec3) Texture {
	return Texture{Kind: CheckerTexture, Squares: squares, Odd: odd, Even: even}
}

// checker picks Even when the cell indices along u and v share parity
func (t Texture) checker(u, v float64) core.Vec3 {
	x := floorInt(u * float64(t.Squares))
	y := floorInt(v * float64(t.Squares))

	if (x^y)&1 == 0 {
		return t.Even
	}
	return t.Odd
}
