package renderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

// ImageBuffer is the radiance accumulated for every pixel, shared by the chunk
// workers and the dumper for the duration of a render. Chunks write disjoint
// columns, but every access still goes through the lock.
type ImageBuffer struct {
	width, height int
	mu            sync.RWMutex
	pixels        []core.Vec3 // row-major
}

// NewImageBuffer creates a black buffer
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the buffer width in pixels
func (b *ImageBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels
func (b *ImageBuffer) Height() int { return b.height }

// Set stores the radiance of one pixel
func (b *ImageBuffer) Set(x, y int, c core.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pixels[y*b.width+x] = c
}

// SetColumn stores a full column, top row first
func (b *ImageBuffer) SetColumn(x int, column []core.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for y, c := range column {
		b.pixels[y*b.width+x] = c
	}
}

// Get returns the radiance of one pixel
func (b *ImageBuffer) Get(x, y int) core.Vec3 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pixels[y*b.width+x]
}

// ToneMap converts the current contents to 8-bit color. Every channel is scaled
// by 255 over the brightest channel in the buffer and truncated, so snapshots
// taken mid-render are normalized independently of the final image.
func (b *ImageBuffer) ToneMap() *image.RGBA {
	b.mu.RLock()
	defer b.mu.RUnlock()

	maxChannel := 0.0
	for _, p := range b.pixels {
		maxChannel = max(maxChannel, finiteOrZero(p.MaxComponent()))
	}

	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	if maxChannel <= 0 {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			}
		}
		return img
	}

	scale := 255 / maxChannel
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.pixels[y*b.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(p.X * scale),
				G: toByte(p.Y * scale),
				B: toByte(p.Z * scale),
				A: 255,
			})
		}
	}
	return img
}

// toByte truncates v into [0, 255]; NaN maps to 0
func toByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
