package material

import "github.com/df07/go-pathtracer/pkg/core"

// fixedSampler returns the same values on every call
type fixedSampler struct {
	value1D float64
	value3D core.Vec3
}

func (f fixedSampler) Get1D() float64 { return f.value1D }

func (f fixedSampler) Get3D() core.Vec3 { return f.value3D }
