// Package fasteners resolves standard fastener descriptions into physical
// dimensions and designations.
//
// A generation call flows through these stages:
//
//	Spec -> Resolve -> Dimensions -> forge (profile, kernel) -> kernel.Solid
//
// Resolve reads the read-only tables of package standard. Nothing here
// keeps state between calls, so independent specs may be resolved and
// generated concurrently.
package fasteners

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/soypat/fasteners/standard"
)

// Custom is the diameter or length key that selects a caller supplied
// physical value instead of a table size.
const Custom = "Custom"

// Spec describes one fastener to generate. The variant letter (point style,
// head style) is part of Type. A Spec is a value and is never modified by
// the functions that consume it.
type Spec struct {
	Type standard.Type `json:"type" validate:"required"`
	// Diameter is a size key of Type's table, e.g. "3 mm" or "ST 3.5", or Custom.
	Diameter string `json:"diameter" validate:"required"`
	// Length is the nominal length in the family's units, e.g. "20", or
	// Custom. Types whose size key includes the length ignore it.
	Length         string `json:"length,omitempty"`
	CustomDiameter Length `json:"custom_diameter,omitempty"`
	CustomLength   Length `json:"custom_length,omitempty"`
	Threaded       bool   `json:"threaded,omitempty"`
	LeftHanded     bool   `json:"left_handed,omitempty"`
	// ThreadLength is the threaded length b of tapping screws in millimetres.
	// Zero threads the full length.
	ThreadLength float64 `json:"thread_length,omitempty" validate:"gte=0"`
	// TCode is the thickness code of press-in fasteners.
	TCode string `json:"tcode,omitempty"`
}

// NewSpec parses typ and returns a Spec with the given sizes.
func NewSpec(typ, diameter, length string) (Spec, error) {
	t, err := standard.ParseType(typ)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Type: t, Diameter: diameter, Length: length}, nil
}

// Validate checks the spec's fields without consulting any table.
func (s Spec) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return &ParseError{Input: s.String(), Err: err}
	}
	switch {
	case s.Diameter == Custom && s.CustomDiameter.Value <= 0:
		return &ParseError{Input: s.String(), Err: fmt.Errorf("custom diameter must be positive")}
	case s.Length == Custom && s.CustomLength.Value <= 0:
		return &ParseError{Input: s.String(), Err: fmt.Errorf("custom length must be positive")}
	}
	return nil
}

// String returns a short description used in error messages.
func (s Spec) String() string {
	var b strings.Builder
	b.WriteString(s.Type.String())
	b.WriteByte(' ')
	if s.Diameter == Custom {
		b.WriteString(s.CustomDiameter.String())
	} else {
		b.WriteString(s.Diameter)
	}
	switch {
	case s.Length == Custom:
		b.WriteString(" x ")
		b.WriteString(s.CustomLength.String())
	case s.Length != "":
		b.WriteString(" x ")
		b.WriteString(s.Length)
	}
	if s.LeftHanded {
		b.WriteString(" LH")
	}
	return b.String()
}
