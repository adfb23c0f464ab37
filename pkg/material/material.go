package material

import "github.com/df07/go-cubemap-raytracer/pkg/core"

// Material describes the surface properties declared in a material file.
// Materials are shared by pointer across every face that uses them and are
// never modified once the scene is built.
type Material struct {
	Name             string
	Ambient          core.Vec3 // Ka
	Diffuse          core.Vec3 // Kd
	Specular         core.Vec3 // Ks
	Emission         core.Vec3 // Ke
	SpecularExponent float64   // Ns
	RefractionIndex  float64   // Ni
	Albedo           core.Vec3 // al
}

// DefaultMaterial returns the material used before any newmtl or usemtl
func DefaultMaterial() *Material {
	return NewMaterial("")
}

// NewMaterial creates a named material with default properties
func NewMaterial(name string) *Material {
	return &Material{
		Name:            name,
		RefractionIndex: 1.0,
		Albedo:          core.NewVec3(1, 0, 0),
	}
}
