package geometry

import (
	"fmt"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
	"github.com/df07/go-cubemap-raytracer/pkg/material"
)

// Face references three vertices and three vertex normals of a Mesh by index
type Face struct {
	Vertices [3]int
	Normals  [3]int
	Material *material.Material
}

// Mesh stores vertex positions and normals once; faces index into them so
// geometry shared between triangles is never duplicated. A Mesh is read-only
// after construction and safe for concurrent use.
type Mesh struct {
	vertices []core.Vec3
	normals  []core.Vec3
	faces    []Face
}

// NewMesh creates a mesh, validating every face index
func NewMesh(vertices, normals []core.Vec3, faces []Face) (*Mesh, error) {
	for i, face := range faces {
		for k := 0; k < 3; k++ {
			if face.Vertices[k] < 0 || face.Vertices[k] >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i, face.Vertices[k], len(vertices))
			}
			if face.Normals[k] < 0 || face.Normals[k] >= len(normals) {
				return nil, fmt.Errorf("face %d: normal index %d out of range [0,%d)", i, face.Normals[k], len(normals))
			}
		}
		if face.Material == nil {
			return nil, fmt.Errorf("face %d: missing material", i)
		}
	}

	return &Mesh{vertices: vertices, normals: normals, faces: faces}, nil
}

// Triangle resolves face i into positions and normals
func (m *Mesh) Triangle(i int) Triangle {
	f := &m.faces[i]
	return Triangle{
		V0: m.vertices[f.Vertices[0]],
		V1: m.vertices[f.Vertices[1]],
		V2: m.vertices[f.Vertices[2]],
		N0: m.normals[f.Normals[0]],
		N1: m.normals[f.Normals[1]],
		N2: m.normals[f.Normals[2]],
	}
}

// Hit returns the nearest intersection of ray with any face of the mesh.
// Every face is tested; on equal distances the earlier face wins.
func (m *Mesh) Hit(ray core.Ray) (Intersection, *material.Material, bool) {
	var closest Intersection
	var closestMaterial *material.Material
	found := false

	for i := range m.faces {
		hit, ok := Intersect(ray, m.Triangle(i))
		if !ok {
			continue
		}
		if !found || hit.Distance < closest.Distance {
			closest = hit
			closestMaterial = m.faces[i].Material
			found = true
		}
	}

	return closest, closestMaterial, found
}

// Face returns face i
func (m *Mesh) Face(i int) Face {
	return m.faces[i]
}

// FaceCount returns the number of triangles in the mesh
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// VertexCount returns the number of shared vertex positions
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// NormalCount returns the number of shared vertex normals
func (m *Mesh) NormalCount() int {
	return len(m.normals)
}
