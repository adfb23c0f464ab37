package lights

import "github.com/df07/go-cubemap-raytracer/pkg/core"

// PointLight is an isotropic light declared with a P line in the scene file.
// The mirror integrator does not sample lights; they are carried with the scene.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light
func NewPointLight(position, intensity core.Vec3) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
