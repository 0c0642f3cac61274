package loaders

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

// testImage is a 2x2 image: white, red on top; green, blue on the bottom
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, white)
	img.Set(1, 0, red)
	img.Set(0, 1, green)
	img.Set(1, 1, blue)
	return img
}

func writeImage(t *testing.T, name string, encode func(io.Writer, image.Image) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := encode(f, testImage()); err != nil {
		t.Fatalf("Failed to encode %s: %v", name, err)
	}
	return path
}

func checkColor(t *testing.T, name string, got, expected core.Vec3, tolerance float64) {
	t.Helper()
	if abs(got.X-expected.X) > tolerance ||
		abs(got.Y-expected.Y) > tolerance ||
		abs(got.Z-expected.Z) > tolerance {
		t.Errorf("%s: expected %v, got %v", name, expected, got)
	}
}

func TestLoadBitmapFormats(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		encode    func(io.Writer, image.Image) error
		tolerance float64
	}{
		{"png", "test.png", png.Encode, 0.01},
		{"bmp", "test.bmp", bmp.Encode, 0.01},
		{"tiff", "test.tiff", func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) }, 0.01},
		{"gif", "test.gif", func(w io.Writer, img image.Image) error {
			paletted := image.NewPaletted(img.Bounds(), color.Palette{white, red, green, blue})
			draw.Draw(paletted, img.Bounds(), img, img.Bounds().Min, draw.Src)
			return gif.Encode(w, paletted, nil)
		}, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bitmap, err := LoadBitmap(writeImage(t, tt.file, tt.encode))
			if err != nil {
				t.Fatalf("LoadBitmap failed: %v", err)
			}

			if bitmap.Width != 2 || bitmap.Height != 2 {
				t.Fatalf("Expected 2x2 image, got %dx%d", bitmap.Width, bitmap.Height)
			}
			if len(bitmap.Pixels) != 4 {
				t.Fatalf("Expected 4 pixels, got %d", len(bitmap.Pixels))
			}

			checkColor(t, "Top-left (white)", bitmap.Pixels[0], core.NewVec3(1, 1, 1), tt.tolerance)
			checkColor(t, "Top-right (red)", bitmap.Pixels[1], core.NewVec3(1, 0, 0), tt.tolerance)
			checkColor(t, "Bottom-left (green)", bitmap.Pixels[2], core.NewVec3(0, 1, 0), tt.tolerance)
			checkColor(t, "Bottom-right (blue)", bitmap.Pixels[3], core.NewVec3(0, 0, 1), tt.tolerance)
		})
	}
}

func TestLoadBitmapJPEG(t *testing.T) {
	// JPEG is lossy, so use a flat image and only check it stays close
	path := filepath.Join(t.TempDir(), "flat.jpg")
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 95}); err != nil {
		f.Close()
		t.Fatalf("Failed to encode JPEG: %v", err)
	}
	f.Close()

	bitmap, err := LoadBitmap(path)
	if err != nil {
		t.Fatalf("LoadBitmap failed: %v", err)
	}
	checkColor(t, "Center", bitmap.Pixels[8*16+8], core.NewVec3(0.5, 0.5, 0.5), 0.03)
}

func TestLoadBitmapTopRowFirst(t *testing.T) {
	bitmap, err := LoadBitmap(writeImage(t, "test.png", png.Encode))
	if err != nil {
		t.Fatalf("LoadBitmap failed: %v", err)
	}

	// v=1 is the top of the image, v=0 the bottom
	checkColor(t, "Top-left via At", bitmap.At(0.1, 0.9), core.NewVec3(1, 1, 1), 0.01)
	checkColor(t, "Bottom-right via At", bitmap.At(0.9, 0.1), core.NewVec3(0, 0, 1), 0.01)
}

func TestLoadBitmapErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		_, err := LoadBitmap(filepath.Join(t.TempDir(), "nonexistent.png"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.png")
		if err := os.WriteFile(path, []byte("definitely not an image"), 0o644); err != nil {
			t.Fatalf("Failed to write test file: %v", err)
		}
		if _, err := LoadBitmap(path); !errors.Is(err, image.ErrFormat) {
			t.Errorf("Expected image.ErrFormat, got %v", err)
		}
	})
}

func TestToBitmap(t *testing.T) {
	t.Run("offset bounds", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(5, 5, 7, 6))
		img.Set(5, 5, red)
		img.Set(6, 5, blue)

		bitmap, err := ToBitmap(img)
		if err != nil {
			t.Fatalf("ToBitmap failed: %v", err)
		}
		if bitmap.Width != 2 || bitmap.Height != 1 {
			t.Fatalf("Expected 2x1 bitmap, got %dx%d", bitmap.Width, bitmap.Height)
		}
		checkColor(t, "Left", bitmap.Pixels[0], core.NewVec3(1, 0, 0), 1e-9)
		checkColor(t, "Right", bitmap.Pixels[1], core.NewVec3(0, 0, 1), 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := ToBitmap(image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrEmptyImage) {
			t.Errorf("Expected ErrEmptyImage, got %v", err)
		}
	})
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
