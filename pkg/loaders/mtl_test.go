package loaders

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

func TestParseMaterials(t *testing.T) {
	content := `# materials
newmtl mirror
Ka 0.1 0.1 0.1
Kd 0.5 0.4 0.3
Ks 1 1 1
Ke 0 0 0.5
Ns 96.078431
Ni 1.45
al 0.2 0.8 0
illum 3

newmtl plain
`
	library, err := ParseMaterials(strings.NewReader(content), "test.mtl")
	if err != nil {
		t.Fatalf("ParseMaterials failed: %v", err)
	}
	if library.Len() != 2 {
		t.Fatalf("Expected 2 materials, got %d", library.Len())
	}

	mirror, ok := library.Lookup("mirror")
	if !ok {
		t.Fatal("Expected material \"mirror\"")
	}
	checks := []struct {
		name     string
		got      core.Vec3
		expected core.Vec3
	}{
		{"Ka", mirror.Ambient, core.NewVec3(0.1, 0.1, 0.1)},
		{"Kd", mirror.Diffuse, core.NewVec3(0.5, 0.4, 0.3)},
		{"Ks", mirror.Specular, core.NewVec3(1, 1, 1)},
		{"Ke", mirror.Emission, core.NewVec3(0, 0, 0.5)},
		{"al", mirror.Albedo, core.NewVec3(0.2, 0.8, 0)},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s: expected %v, got %v", c.name, c.expected, c.got)
		}
	}
	if mirror.SpecularExponent != 96.078431 || mirror.RefractionIndex != 1.45 {
		t.Errorf("Unexpected Ns/Ni: %f/%f", mirror.SpecularExponent, mirror.RefractionIndex)
	}

	// Unset properties keep their defaults
	plain, _ := library.Lookup("plain")
	if plain.RefractionIndex != 1 || plain.Albedo != core.NewVec3(1, 0, 0) || plain.Diffuse != (core.Vec3{}) {
		t.Errorf("Expected default properties, got %+v", plain)
	}

	names := []string{}
	for _, m := range library.Materials() {
		names = append(names, m.Name)
	}
	if strings.Join(names, ",") != "mirror,plain" {
		t.Errorf("Expected declaration order, got %v", names)
	}
}

func TestParseMaterials_ImplicitDefault(t *testing.T) {
	library, err := ParseMaterials(strings.NewReader("Kd 1 0 0\nnewmtl named\n"), "test.mtl")
	if err != nil {
		t.Fatalf("ParseMaterials failed: %v", err)
	}

	implicit, ok := library.Lookup("")
	if !ok {
		t.Fatal("Expected implicit material named \"\"")
	}
	if implicit.Diffuse != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected Kd applied to implicit material, got %v", implicit.Diffuse)
	}
	if _, ok := library.Lookup("named"); !ok {
		t.Error("Expected material \"named\"")
	}
}

func TestParseMaterials_Empty(t *testing.T) {
	library, err := ParseMaterials(strings.NewReader("# nothing\n\n"), "test.mtl")
	if err != nil {
		t.Fatalf("ParseMaterials failed: %v", err)
	}
	if library.Len() != 0 {
		t.Errorf("Expected empty library, got %d materials", library.Len())
	}
}

func TestParseMaterials_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sentinel error
		line     int
	}{
		{"unknown key", "newmtl a\nmap_Kd tex.png\n", ErrUnknownKey, 2},
		{"color arity", "newmtl a\nKd 1 1\n", ErrArity, 2},
		{"scalar arity", "newmtl a\n\nNs 1 2\n", ErrArity, 3},
		{"missing name", "newmtl\n", ErrArity, 1},
		{"malformed number", "newmtl a\nNi glass\n", nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaterials(strings.NewReader(tt.content), "test.mtl")

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *ParseError, got %v", err)
			}
			if parseErr.Line != tt.line {
				t.Errorf("Expected line %d, got %d", tt.line, parseErr.Line)
			}
			if !strings.HasPrefix(err.Error(), "test.mtl:") {
				t.Errorf("Expected error to start with the path, got %q", err.Error())
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestLoadMaterials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.mtl")
	writeFile(t, path, "newmtl a\nNi 2\n")

	library, err := LoadMaterials(path)
	if err != nil {
		t.Fatalf("LoadMaterials failed: %v", err)
	}
	if m, ok := library.Lookup("a"); !ok || m.RefractionIndex != 2 {
		t.Errorf("Unexpected library contents")
	}

	if _, err := LoadMaterials(filepath.Join(t.TempDir(), "missing.mtl")); err == nil {
		t.Error("Expected error for missing file")
	}
}
