package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

// CameraConfig contains the ray generation parameters read from the camera file
type CameraConfig struct {
	Height   int       `json:"height"`
	Width    int       `json:"width"`
	FOV      float64   `json:"fov"` // Vertical field of view in radians
	LookFrom core.Vec3 `json:"look_from"`
	LookTo   core.Vec3 `json:"look_to"`
}

// Validate checks that the configuration describes a usable camera
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= math.Pi {
		return fmt.Errorf("fov must be in (0, pi) radians, got %f", c.FOV)
	}
	if c.LookFrom == c.LookTo {
		return fmt.Errorf("look_from and look_to must differ, both are %v", c.LookFrom)
	}
	return nil
}

// Camera generates one primary ray per pixel
type Camera struct {
	width, height int
	origin        core.Vec3
	backward      core.Vec3 // unit, points from the target to the eye
	right         core.Vec3 // scaled to one pixel
	up            core.Vec3 // scaled to one pixel
}

// NewCamera builds the camera basis. When the view direction is parallel to the
// world up axis the basis falls back to right = +X.
func NewCamera(config CameraConfig) *Camera {
	backward := config.LookFrom.Subtract(config.LookTo).Normalized()

	right := core.NewVec3(0, 1, 0).Cross(backward)
	if right.Length() < core.Epsilon {
		right = core.NewVec3(1, 0, 0)
	} else {
		right.Normalize()
	}
	up := backward.Cross(right).Normalized()

	pixelSize := 2 * math.Tan(config.FOV/2) / float64(config.Height)

	return &Camera{
		width:    config.Width,
		height:   config.Height,
		origin:   config.LookFrom,
		backward: backward,
		right:    right.Multiply(pixelSize),
		up:       up.Multiply(pixelSize),
	}
}

// GetRay returns the unit ray through the centre of pixel (x, y); y = 0 is the top row
func (c *Camera) GetRay(x, y int) core.Ray {
	px := float64(x) - float64(c.width-1)/2
	py := float64(c.height-1)/2 - float64(y)

	direction := c.right.Multiply(px).
		Add(c.up.Multiply(py)).
		Subtract(c.backward).
		Normalized()

	return core.NewRay(c.origin, direction)
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }
