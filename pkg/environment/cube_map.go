package environment

import (
	"fmt"
	"math"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

// Face identifies one of the six faces of the cube map
type Face int

const (
	Front  Face = iota // +X
	Back               // -X
	Right              // +Y
	Left               // -Y
	Top                // +Z
	Bottom             // -Z
)

var faceNames = [...]string{"front", "back", "right", "left", "top", "bottom"}

func (f Face) String() string {
	if f < Front || f > Bottom {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Cell returns the column and row of the face in the 4x3 cross layout:
//
//	      top
//	left front right back
//	      bottom
func (f Face) Cell() (column, row int) {
	switch f {
	case Front:
		return 1, 1
	case Back:
		return 3, 1
	case Right:
		return 2, 1
	case Left:
		return 0, 1
	case Top:
		return 1, 0
	default:
		return 1, 2
	}
}

// DominantFace picks the face a direction points at from its largest absolute component.
// Ties go to the earlier axis (X, then Y, then Z).
func DominantFace(d core.Vec3) Face {
	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)
	switch {
	case ax >= ay && ax >= az:
		if d.X > 0 {
			return Front
		}
		return Back
	case ay >= az:
		if d.Y > 0 {
			return Right
		}
		return Left
	default:
		if d.Z > 0 {
			return Top
		}
		return Bottom
	}
}

// CubeMap is an environment texture in cross layout, sampled by rays that leave the scene
type CubeMap struct {
	width, height int
	side          int
	pixels        []core.Vec3 // row-major, channels in [0,1]
}

// NewCubeMap wraps a row-major pixel array. The width must split into four square
// faces and the height must hold three rows of them.
func NewCubeMap(width, height int, pixels []core.Vec3) (*CubeMap, error) {
	if width <= 0 || width%4 != 0 {
		return nil, fmt.Errorf("cube map width %d is not a positive multiple of 4", width)
	}
	side := width / 4
	if height < 3*side {
		return nil, fmt.Errorf("cube map height %d is less than three faces of %d pixels", height, side)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("cube map has %d pixels, expected %dx%d", len(pixels), width, height)
	}
	return &CubeMap{width: width, height: height, side: side, pixels: pixels}, nil
}

// FaceSize returns the side length of one face in pixels
func (c *CubeMap) FaceSize() int {
	return c.side
}

// Coordinates maps a direction to the atlas pixel it samples.
// The direction is projected onto the unit cube face it points at and the
// [-1,1]x[-1,1] face square is scaled into that face's cell.
func (c *CubeMap) Coordinates(d core.Vec3) (x, y int, face Face) {
	s := float64(c.side)
	half := s / 2
	face = DominantFace(d)

	var fx, fy float64
	switch face {
	case Front:
		p := d.Divide(d.X)
		fx, fy = 1.5*s+half*p.Y, 1.5*s-half*p.Z
	case Back:
		p := d.Divide(-d.X)
		fx, fy = 3.5*s-half*p.Y, 1.5*s-half*p.Z
	case Right:
		p := d.Divide(d.Y)
		fx, fy = 2.5*s-half*p.X, 1.5*s-half*p.Z
	case Left:
		p := d.Divide(-d.Y)
		fx, fy = 0.5*s+half*p.X, 1.5*s-half*p.Z
	case Top:
		p := d.Divide(d.Z)
		fx, fy = 1.5*s+half*p.Y, 0.5*s+half*p.X
	case Bottom:
		p := d.Divide(-d.Z)
		fx, fy = 1.5*s+half*p.Y, 2.5*s-half*p.X
	}

	column, row := face.Cell()
	x = clampToCell(fx, column*c.side, c.side)
	y = clampToCell(fy, row*c.side, c.side)
	return x, y, face
}

// clampToCell truncates v and keeps it within [origin, origin+size)
func clampToCell(v float64, origin, size int) int {
	if !(v >= float64(origin)) {
		return origin
	}
	return min(int(v), origin+size-1)
}

// Sample returns the environment color seen along direction d
func (c *CubeMap) Sample(d core.Vec3) core.Vec3 {
	x, y, _ := c.Coordinates(d)
	return c.pixels[y*c.width+x]
}
