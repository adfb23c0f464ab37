package loaders

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

// tokenize strips a trailing comment and splits the line on whitespace
func tokenize(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

// parseFloats parses exactly n numbers
func parseFloats(values []string, n int) ([]float64, error) {
	if len(values) != n {
		return nil, fmt.Errorf("%w: expected %d numbers, got %d", ErrArity, n, len(values))
	}
	result := make([]float64, n)
	for i, value := range values {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", value, err)
		}
		result[i] = f
	}
	return result, nil
}

// parseVec3 parses an "x y z" or "r g b" triplet
func parseVec3(values []string) (core.Vec3, error) {
	f, err := parseFloats(values, 3)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(f[0], f[1], f[2]), nil
}

// parseFloat parses a single number
func parseFloat(values []string) (float64, error) {
	f, err := parseFloats(values, 1)
	if err != nil {
		return 0, err
	}
	return f[0], nil
}

// resolvePath makes a path referenced from inside a file relative to that file's directory
func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
