package renderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// FrameBuffer is the shared 8-bit output image. Workers write one pixel per
// lock acquisition.
type FrameBuffer struct {
	mu    sync.Mutex
	img   *image.RGBA
	gamma float64
}

// NewFrameBuffer allocates an opaque black frame
func NewFrameBuffer(width, height int, gamma float64) *FrameBuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	return &FrameBuffer{
		img:   img,
		gamma: gamma,
	}
}

// Set encodes a linear radiance value and stores it at (x, y), where y=0 is the top row
func (fb *FrameBuffer) Set(x, y int, radiance core.Vec3) {
	pixel := EncodeColor(radiance, fb.gamma)

	fb.mu.Lock()
	fb.img.SetRGBA(x, y, pixel)
	fb.mu.Unlock()
}

// Image returns the underlying image. Callers must not write pixels concurrently.
func (fb *FrameBuffer) Image() *image.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.img
}

// EncodeColor clamps each channel to [0, 1], gamma-encodes it and scales it to [0, 255]
func EncodeColor(radiance core.Vec3, gamma float64) color.RGBA {
	encoded := radiance.Clamp(0, 1).GammaCorrect(gamma)
	return color.RGBA{
		R: encodeChannel(encoded.X),
		G: encodeChannel(encoded.Y),
		B: encodeChannel(encoded.Z),
		A: 255,
	}
}

func encodeChannel(v float64) uint8 {
	// NaN from a degenerate sample encodes as black
	if math.IsNaN(v) {
		return 0
	}
	return uint8(v * 255)
}
