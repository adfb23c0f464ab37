package loaders

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKey         = errors.New("unknown key")
	ErrUndeclaredMaterial = errors.New("undeclared material")
	ErrArity              = errors.New("wrong number of values")
	ErrMixedNormals       = errors.New("face mixes elements with and without normals")
	ErrIndexRange         = errors.New("index out of range")
)

// ParseError reports a problem on a specific line of a scene or material file
type ParseError struct {
	Path string
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
