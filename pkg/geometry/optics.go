package geometry

import (
	"math"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

// Reflect mirrors direction d about the unit normal n
func Reflect(d, n core.Vec3) core.Vec3 {
	return d.Subtract(n.Multiply(2 * n.Dot(d)))
}

// Refract bends direction d through a surface with unit normal n facing against d,
// where eta is the ratio of refraction indices (incident over transmitted).
// It returns false on total internal reflection.
func Refract(d, n core.Vec3, eta float64) (core.Vec3, bool) {
	c := -n.Dot(d)
	cos2 := eta * eta * (1 - c*c)
	if cos2 > 1 {
		return core.Vec3{}, false
	}
	return d.Multiply(eta).Add(n.Multiply(eta*c - math.Sqrt(1-cos2))), true
}
