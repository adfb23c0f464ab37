package core

// Epsilon rejects near-parallel intersections and near-zero forward distances.
// It is also the distance a spawned ray is pushed off the surface it leaves.
const Epsilon = 1e-5

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Inside    bool // travelling through the interior of a transmissive volume
}

// NewRay creates a new ray outside of any volume
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Advance returns the ray with its origin moved distance along the direction
func (r Ray) Advance(distance float64) Ray {
	r.Origin = r.At(distance)
	return r
}
