package standard

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by every *LookupError.
	ErrNotFound = errors.New("not found")
	// ErrUnsupported is wrapped by every *VariantError.
	ErrUnsupported = errors.New("unsupported variant")
)

// LookupError reports a standard, size or template key absent from a table.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("standard: key %q not found in %s", e.Key, e.Table)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

// VariantError reports a base type whose family is known but whose variant
// letter is not handled.
type VariantError struct {
	Type string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("standard: unsupported variant %q", e.Type)
}

func (e *VariantError) Unwrap() error { return ErrUnsupported }
