package fasteners

import (
	"errors"
	"fmt"

	"github.com/soypat/fasteners/standard"
)

// ErrMalformed is matched by every *ParseError.
var ErrMalformed = errors.New("malformed input")

// ParseError reports a symbolic dimension that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fasteners: malformed dimension %q", e.Input)
	}
	return fmt.Sprintf("fasteners: malformed dimension %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrMalformed }

// DimensionError reports a dimension a generator needs but that resolution
// could not provide. It matches standard.ErrNotFound.
type DimensionError struct {
	Type standard.Type
	Role standard.Role
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("fasteners: %v is missing dimension %q", e.Type, e.Role.String())
}

func (e *DimensionError) Unwrap() error { return standard.ErrNotFound }

// GeometryError reports a failure of the geometry kernel while building one
// feature of a fastener.
type GeometryError struct {
	Feature string
	Spec    string
	Err     error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("fasteners: building %s of %s: %v", e.Feature, e.Spec, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }
