package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

func TestReflect_Involution(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		d := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		n := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64()).Normalized()

		got := Reflect(Reflect(d, n), n)
		if got.Subtract(d).Length() > 1e-9*(1+d.Length()) {
			t.Fatalf("reflect(reflect(%v)) = %v", d, got)
		}
	}
}

func TestReflect(t *testing.T) {
	d := core.NewVec3(1, -1, 0)
	n := core.NewVec3(0, 1, 0)

	expected := core.NewVec3(1, 1, 0)
	if got := Reflect(d, n); got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRefract(t *testing.T) {
	n := core.NewVec3(0, 0, 1)

	tests := []struct {
		name  string
		angle float64 // incidence angle in radians
		eta   float64
	}{
		{"normal incidence", 0, 1.0 / 1.5},
		{"into denser medium", math.Pi / 4, 1.0 / 1.5},
		{"out of denser medium below critical", math.Pi / 8, 1.5},
		{"out of denser medium past critical", math.Pi / 3, 1.5},
		{"grazing from dense", math.Pi/2 - 0.01, 1.33},
		{"identity index", math.Pi / 5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := core.NewVec3(math.Sin(tt.angle), 0, -math.Cos(tt.angle))
			c := -n.Dot(d)
			cos2 := tt.eta * tt.eta * (1 - c*c)

			got, ok := Refract(d, n, tt.eta)
			if ok != (cos2 <= 1) {
				t.Fatalf("Expected ok=%v for cos2=%f, got %v", cos2 <= 1, cos2, ok)
			}
			if !ok {
				return
			}

			// Component along n follows the closed form
			expectedAlongN := tt.eta*d.Dot(n) + (tt.eta*c - math.Sqrt(1-cos2))
			if math.Abs(got.Dot(n)-expectedAlongN) > 1e-12 {
				t.Errorf("Expected normal component %f, got %f", expectedAlongN, got.Dot(n))
			}
			// Snell's law on a unit incident direction keeps the result unit length
			if math.Abs(got.Length()-1) > 1e-9 {
				t.Errorf("Expected unit refracted direction, got length %f", got.Length())
			}
		})
	}
}
