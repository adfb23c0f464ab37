package scene

import (
	"github.com/df07/go-cubemap-raytracer/pkg/core"
	"github.com/df07/go-cubemap-raytracer/pkg/environment"
	"github.com/df07/go-cubemap-raytracer/pkg/geometry"
	"github.com/df07/go-cubemap-raytracer/pkg/lights"
	"github.com/df07/go-cubemap-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is immutable once built and shared by every render worker.
type Scene struct {
	Mesh        *geometry.Mesh
	Materials   *material.Library
	Lights      []lights.PointLight
	Environment *environment.CubeMap // nil when the scene declares no sky
}

// NewScene creates a scene from its parts. A nil mesh becomes an empty mesh.
func NewScene(mesh *geometry.Mesh, materials *material.Library, pointLights []lights.PointLight, env *environment.CubeMap) *Scene {
	if mesh == nil {
		mesh, _ = geometry.NewMesh(nil, nil, nil)
	}
	if materials == nil {
		materials = material.NewLibrary()
	}
	return &Scene{
		Mesh:        mesh,
		Materials:   materials,
		Lights:      pointLights,
		Environment: env,
	}
}

// Hit finds the nearest triangle hit by ray
func (s *Scene) Hit(ray core.Ray) (geometry.Intersection, *material.Material, bool) {
	return s.Mesh.Hit(ray)
}

// HasEnvironment reports whether rays escaping the scene sample a cube map
func (s *Scene) HasEnvironment() bool {
	return s.Environment != nil
}
