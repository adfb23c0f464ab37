package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

func TestImageBuffer_SetGet(t *testing.T) {
	buffer := NewImageBuffer(3, 2)
	if buffer.Width() != 3 || buffer.Height() != 2 {
		t.Fatalf("Expected 3x2 buffer, got %dx%d", buffer.Width(), buffer.Height())
	}

	buffer.Set(2, 1, core.NewVec3(1, 2, 3))
	buffer.SetColumn(0, []core.Vec3{core.NewVec3(4, 0, 0), core.NewVec3(5, 0, 0)})

	tests := []struct {
		x, y     int
		expected core.Vec3
	}{
		{2, 1, core.NewVec3(1, 2, 3)},
		{0, 0, core.NewVec3(4, 0, 0)},
		{0, 1, core.NewVec3(5, 0, 0)},
		{1, 0, core.Vec3{}},
	}
	for _, tt := range tests {
		if got := buffer.Get(tt.x, tt.y); got != tt.expected {
			t.Errorf("Get(%d,%d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestImageBuffer_ToneMap(t *testing.T) {
	buffer := NewImageBuffer(2, 2)
	buffer.Set(0, 0, core.NewVec3(0.5, 0, 0))
	buffer.Set(1, 0, core.NewVec3(1, 0.25, 0))
	buffer.Set(0, 1, core.NewVec3(-1, 0.5, 1))

	img := buffer.ToneMap()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{127, 0, 0, 255}},
		{1, 0, color.RGBA{255, 63, 0, 255}},
		{0, 1, color.RGBA{0, 127, 255, 255}},
		{1, 1, color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d,%d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestImageBuffer_ToneMapBlack(t *testing.T) {
	buffer := NewImageBuffer(2, 1)
	buffer.Set(0, 0, core.NewVec3(-1, -2, 0))

	img := buffer.ToneMap()
	for x := 0; x < 2; x++ {
		if got := img.RGBAAt(x, 0); got != (color.RGBA{A: 255}) {
			t.Errorf("Expected black at (%d,0), got %v", x, got)
		}
	}
}

func TestImageBuffer_ToneMapIgnoresNonFinite(t *testing.T) {
	buffer := NewImageBuffer(3, 1)
	buffer.Set(0, 0, core.NewVec3(math.NaN(), 0, 0))
	buffer.Set(1, 0, core.NewVec3(math.Inf(1), 0, 0))
	buffer.Set(2, 0, core.NewVec3(2, 1, 0))

	img := buffer.ToneMap()
	if got := img.RGBAAt(2, 0); got != (color.RGBA{255, 127, 0, 255}) {
		t.Errorf("Expected finite maximum to drive scaling, got %v", got)
	}
	if got := img.RGBAAt(0, 0); got.R != 0 {
		t.Errorf("Expected NaN channel to map to 0, got %v", got)
	}
}
