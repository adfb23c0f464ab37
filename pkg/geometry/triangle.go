package geometry

import (
	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

// Triangle is a triangle with resolved vertex positions and per-vertex shading normals
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	N0, N1, N2 core.Vec3 // Shading normal at each vertex
}

// NewTriangle creates a triangle from three vertices and their shading normals
func NewTriangle(v0, v1, v2, n0, n1, n2 core.Vec3) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2, N0: n0, N1: n1, N2: n2}
}

// NewFlatTriangle creates a triangle whose vertex normals all equal the geometric normal
func NewFlatTriangle(v0, v1, v2 core.Vec3) Triangle {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalized()
	return NewTriangle(v0, v1, v2, n, n, n)
}

// Area returns the area of the triangle
func (t Triangle) Area() float64 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length() / 2
}

// WeightedNormal blends the vertex normals at point p.
// Each vertex normal is weighted by the area of the sub-triangle opposite that vertex.
// The result is not normalized.
func (t Triangle) WeightedNormal(p core.Vec3) core.Vec3 {
	areaV0V1P := t.V1.Subtract(t.V0).Cross(t.V1.Subtract(p)).Length()
	areaV1V2P := t.V2.Subtract(t.V1).Cross(t.V2.Subtract(p)).Length()
	areaV2V0P := t.V2.Subtract(t.V0).Cross(t.V0.Subtract(p)).Length()

	return t.N0.Multiply(areaV1V2P).
		Add(t.N1.Multiply(areaV2V0P)).
		Add(t.N2.Multiply(areaV0V1P))
}
