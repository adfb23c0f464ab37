package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
	"github.com/df07/go-cubemap-raytracer/pkg/environment"
	"github.com/df07/go-cubemap-raytracer/pkg/geometry"
	"github.com/df07/go-cubemap-raytracer/pkg/lights"
	"github.com/df07/go-cubemap-raytracer/pkg/material"
	"github.com/df07/go-cubemap-raytracer/pkg/scene"
)

// faceRecord is a triangle as parsed, before vertex normals are synthesized
type faceRecord struct {
	vertices   [3]int
	normals    [3]int
	synthesize bool // the face gave no normals
	material   *material.Material
}

// sceneParser holds the state accumulated while reading a scene file
type sceneParser struct {
	path string
	dir  string

	vertices  []core.Vec3
	normals   []core.Vec3
	faces     []faceRecord
	materials *material.Library
	current   *material.Material
	lights    []lights.PointLight
	sky       *environment.CubeMap
}

// ParseScene parses an OBJ-style scene. path names the file in errors and is the
// base directory for mtllib and Sky references.
func ParseScene(reader io.Reader, path string) (*scene.Scene, error) {
	p := &sceneParser{
		path:      path,
		dir:       filepath.Dir(path),
		materials: material.NewLibrary(),
		current:   material.DefaultMaterial(),
	}

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		tokens := tokenize(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if err := p.processLine(tokens[0], tokens[1:]); err != nil {
			return nil, &ParseError{Path: path, Line: lineNumber, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return p.build()
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(file, filename)
}

func (p *sceneParser) processLine(key string, values []string) error {
	switch key {
	case "v":
		v, err := parseVec3(values)
		if err != nil {
			return err
		}
		p.vertices = append(p.vertices, v)
	case "vn":
		n, err := parseVec3(values)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, n)
	case "f":
		return p.parseFace(values)
	case "mtllib":
		if len(values) == 0 {
			return fmt.Errorf("%w: mtllib needs a path", ErrArity)
		}
		for _, value := range values {
			library, err := LoadMaterials(resolvePath(p.dir, value))
			if err != nil {
				return err
			}
			p.materials.Merge(library)
		}
	case "usemtl":
		if len(values) == 0 {
			return fmt.Errorf("%w: usemtl needs a name", ErrArity)
		}
		name := strings.Join(values, " ")
		m, ok := p.materials.Lookup(name)
		if !ok {
			return fmt.Errorf("%w %q", ErrUndeclaredMaterial, name)
		}
		p.current = m
	case "P":
		f, err := parseFloats(values, 6)
		if err != nil {
			return err
		}
		p.lights = append(p.lights, lights.NewPointLight(
			core.NewVec3(f[0], f[1], f[2]),
			core.NewVec3(f[3], f[4], f[5]),
		))
	case "Sky":
		return p.parseSky(values)
	case "vt", "o", "g", "s":
		// Texture coordinates, object and group names, smoothing groups are not used
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return nil
}

// parseFace reads a polygon and fan-triangulates it around its first element
func (p *sceneParser) parseFace(values []string) error {
	if len(values) < 3 {
		return fmt.Errorf("%w: face needs at least 3 vertices, got %d", ErrArity, len(values))
	}

	vertices := make([]int, len(values))
	normals := make([]int, len(values))
	withNormals := 0
	for i, element := range values {
		v, n, err := p.parseFaceElement(element)
		if err != nil {
			return err
		}
		vertices[i], normals[i] = v, n
		if n >= 0 {
			withNormals++
		}
	}

	if withNormals != 0 && withNormals != len(values) {
		return ErrMixedNormals
	}
	synthesize := withNormals == 0

	for i := 1; i < len(values)-1; i++ {
		p.faces = append(p.faces, faceRecord{
			vertices:   [3]int{vertices[0], vertices[i], vertices[i+1]},
			normals:    [3]int{normals[0], normals[i], normals[i+1]},
			synthesize: synthesize,
			material:   p.current,
		})
	}
	return nil
}

// parseFaceElement reads v, v/vt, v/vt/vn or v//vn. The normal index is -1 when absent.
func (p *sceneParser) parseFaceElement(element string) (vertex, normal int, err error) {
	parts := strings.Split(element, "/")
	if len(parts) > 3 {
		return 0, 0, fmt.Errorf("%w: face element %q", ErrArity, element)
	}

	vertex, err = resolveIndex(parts[0], len(p.vertices))
	if err != nil {
		return 0, 0, fmt.Errorf("vertex of %q: %w", element, err)
	}

	normal = -1
	if len(parts) == 3 && parts[2] != "" {
		normal, err = resolveIndex(parts[2], len(p.normals))
		if err != nil {
			return 0, 0, fmt.Errorf("normal of %q: %w", element, err)
		}
	}
	return vertex, normal, nil
}

// resolveIndex converts a 1-based or negative relative index into a 0-based one
func resolveIndex(value string, count int) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", value, err)
	}

	index := i - 1
	if i < 0 {
		index = count + i
	}
	if i == 0 || index < 0 || index >= count {
		return 0, fmt.Errorf("%w: %d with %d defined", ErrIndexRange, i, count)
	}
	return index, nil
}

func (p *sceneParser) parseSky(values []string) error {
	if len(values) != 3 {
		return fmt.Errorf("%w: Sky expects width, height and path", ErrArity)
	}
	width, err := strconv.Atoi(values[0])
	if err != nil {
		return fmt.Errorf("invalid sky width %q: %w", values[0], err)
	}
	height, err := strconv.Atoi(values[1])
	if err != nil {
		return fmt.Errorf("invalid sky height %q: %w", values[1], err)
	}

	sky, err := LoadCubeMap(resolvePath(p.dir, values[2]), width, height)
	if err != nil {
		return err
	}
	p.sky = sky
	return nil
}

// build synthesizes missing vertex normals and assembles the immutable scene.
// A synthesized normal is the sum of the face normals of every normal-less
// triangle touching the vertex, each weighted by the triangle's area.
func (p *sceneParser) build() (*scene.Scene, error) {
	normals := p.normals
	synthesized := make(map[int]int) // vertex index -> index into normals

	for _, face := range p.faces {
		if !face.synthesize {
			continue
		}
		v0, v1, v2 := p.vertices[face.vertices[0]], p.vertices[face.vertices[1]], p.vertices[face.vertices[2]]
		// The cross product's length is twice the area
		weighted := v1.Subtract(v0).Cross(v2.Subtract(v0))

		for _, v := range face.vertices {
			n, ok := synthesized[v]
			if !ok {
				n = len(normals)
				synthesized[v] = n
				normals = append(normals, core.Vec3{})
			}
			normals[n] = normals[n].Add(weighted)
		}
	}

	for _, n := range synthesized {
		normals[n].Normalize()
	}

	faces := make([]geometry.Face, len(p.faces))
	for i, face := range p.faces {
		faces[i] = geometry.Face{Vertices: face.vertices, Normals: face.normals, Material: face.material}
		if face.synthesize {
			for j, v := range face.vertices {
				faces[i].Normals[j] = synthesized[v]
			}
		}
	}

	mesh, err := geometry.NewMesh(p.vertices, normals, faces)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh for %s: %w", p.path, err)
	}

	return scene.NewScene(mesh, p.materials, p.lights, p.sky), nil
}
