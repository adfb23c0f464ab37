package integrator

import (
	"github.com/df07/go-cubemap-raytracer/pkg/core"
	"github.com/df07/go-cubemap-raytracer/pkg/geometry"
	"github.com/df07/go-cubemap-raytracer/pkg/scene"
)

// MirrorIntegrator follows a single path per ray: rays arriving from outside a
// volume are mirrored about the shading normal, rays travelling inside pass
// straight through, and rays that escape sample the environment.
// Material colors and lights do not contribute.
type MirrorIntegrator struct{}

// NewMirrorIntegrator creates a mirror integrator
func NewMirrorIntegrator() *MirrorIntegrator {
	return &MirrorIntegrator{}
}

// RayColor returns the environment radiance reached by ray within depth bounces,
// or black once the bounce budget runs out
func (mi *MirrorIntegrator) RayColor(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, _, isHit := s.Hit(ray)
	if !isHit {
		return mi.Background(ray, s)
	}

	direction := ray.Direction
	if !ray.Inside {
		direction = geometry.Reflect(ray.Direction, hit.Normal)
	}

	next := core.Ray{
		Origin:    hit.Position,
		Direction: direction,
		Inside:    !ray.Inside,
	}
	return mi.RayColor(next.Advance(core.Epsilon), s, depth-1)
}

// Background samples the scene's cube map, or returns black if it has none
func (mi *MirrorIntegrator) Background(ray core.Ray, s *scene.Scene) core.Vec3 {
	if !s.HasEnvironment() {
		return core.Vec3{}
	}
	return s.Environment.Sample(ray.Direction)
}
