package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df07/go-cubemap-raytracer/pkg/material"
)

// ParseMaterials parses a material file. Properties that appear before the first
// newmtl apply to an implicit material named "". path is only used in errors.
func ParseMaterials(reader io.Reader, path string) (*material.Library, error) {
	library := material.NewLibrary()
	var current *material.Material

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		tokens := tokenize(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		key, values := tokens[0], tokens[1:]
		if key == "newmtl" {
			if len(values) == 0 {
				return nil, &ParseError{Path: path, Line: lineNumber, Err: fmt.Errorf("%w: newmtl needs a name", ErrArity)}
			}
			current = material.NewMaterial(strings.Join(values, " "))
			library.Add(current)
			continue
		}

		if current == nil {
			current = material.NewMaterial("")
			library.Add(current)
		}
		if err := applyMaterialProperty(current, key, values); err != nil {
			return nil, &ParseError{Path: path, Line: lineNumber, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return library, nil
}

func applyMaterialProperty(m *material.Material, key string, values []string) error {
	var err error
	switch key {
	case "Ka":
		m.Ambient, err = parseVec3(values)
	case "Kd":
		m.Diffuse, err = parseVec3(values)
	case "Ks":
		m.Specular, err = parseVec3(values)
	case "Ke":
		m.Emission, err = parseVec3(values)
	case "al":
		m.Albedo, err = parseVec3(values)
	case "Ns":
		m.SpecularExponent, err = parseFloat(values)
	case "Ni":
		m.RefractionIndex, err = parseFloat(values)
	case "illum":
		// Illumination models are not used
	default:
		err = fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return err
}

// LoadMaterials loads and parses a material file
func LoadMaterials(filename string) (*material.Library, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open material file: %w", err)
	}
	defer file.Close()

	return ParseMaterials(file, filename)
}
