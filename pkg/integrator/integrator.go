package integrator

import (
	"github.com/df07/go-cubemap-raytracer/pkg/core"
	"github.com/df07/go-cubemap-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray with depth bounces left
	RayColor(ray core.Ray, scene *scene.Scene, depth int) core.Vec3

	// Background returns the radiance seen along ray if it escapes the scene
	Background(ray core.Ray, scene *scene.Scene) core.Vec3
}
