package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

func TestTriangle_Area(t *testing.T) {
	tri := NewFlatTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 0))

	if math.Abs(tri.Area()-3) > 1e-12 {
		t.Errorf("Expected area 3, got %f", tri.Area())
	}

	expectedNormal := core.NewVec3(0, 0, 1)
	if tri.N0.Subtract(expectedNormal).Length() > 1e-12 {
		t.Errorf("Expected flat normal %v, got %v", expectedNormal, tri.N0)
	}
}

func TestTriangle_WeightedNormal(t *testing.T) {
	nx := core.NewVec3(1, 0, 0)
	ny := core.NewVec3(0, 1, 0)
	nz := core.NewVec3(0, 0, 1)
	tri := NewTriangle(
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		nx, ny, nz,
	)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"at first vertex", core.NewVec3(0, 0, 0), nx},
		{"at second vertex", core.NewVec3(1, 0, 0), ny},
		{"at third vertex", core.NewVec3(0, 1, 0), nz},
		{"midpoint of first edge", core.NewVec3(0.5, 0, 0), core.NewVec3(1, 1, 0).Normalized()},
		{"centroid", core.NewVec3(1.0/3, 1.0/3, 0), core.NewVec3(1, 1, 1).Normalized()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tri.WeightedNormal(tt.point).Normalized()
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
