package geometry

import (
	"math"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

// Intersection describes where a ray hit a triangle
type Intersection struct {
	Position core.Vec3 // Hit point
	Normal   core.Vec3 // Unit shading normal facing against the ray
	Distance float64   // Distance from the ray origin to Position
}

// Intersect tests a ray against a triangle using the Möller-Trumbore algorithm.
// Hits closer than core.Epsilon are rejected so a ray spawned on a surface does not
// hit that surface again.
func Intersect(ray core.Ray, tri Triangle) (Intersection, bool) {
	edge1 := tri.V1.Subtract(tri.V0)
	edge2 := tri.V2.Subtract(tri.V0)

	h := ray.Direction.Cross(edge2)
	a := h.Dot(edge1)

	// Ray lies in (or parallel to) the plane of the triangle
	if math.Abs(a) < core.Epsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tri.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Intersection{}, false
	}

	t := f * edge2.Dot(q)
	if t < core.Epsilon {
		return Intersection{}, false
	}

	position := ray.At(t)

	normal := tri.WeightedNormal(position)
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}
	normal.Normalize()

	return Intersection{
		Position: position,
		Normal:   normal,
		Distance: position.Subtract(ray.Origin).Length(),
	}, true
}
