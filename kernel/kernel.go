// Package kernel defines the solid modeling capabilities fastener
// generators consume. Implementations wrap a geometry library behind this
// interface; package kernel/sdfx is the default one.
package kernel

import (
	"fmt"

	"github.com/soypat/fasteners/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is an opaque handle to a kernel solid. Operations never modify
// their operands.
type Solid interface {
	Bounds() r3.Box
}

// Field is an implicit solid given by its signed distance: negative inside,
// positive outside. Kernels turn fields into solids with Kernel.Field.
type Field interface {
	Evaluate(p r3.Vec) float64
	Bounds() r3.Box
}

// Placement positions a solid: rotation about X, then Y, then Z (degrees),
// then translation.
type Placement struct {
	Translation r3.Vec
	RotX        float64
	RotY        float64
	RotZ        float64
}

// At returns a placement translating to (x, y, z).
func At(x, y, z float64) Placement {
	return Placement{Translation: r3.Vec{X: x, Y: y, Z: z}}
}

// IsIdentity reports whether p moves nothing.
func (p Placement) IsIdentity() bool {
	return p == Placement{}
}

// Kernel is the geometry kernel interface.
type Kernel interface {
	// Revolve revolves a profile a full turn about the Z axis. Profile r
	// maps to the distance from the axis and profile z to Z.
	Revolve(f *profile.Face) (Solid, error)
	// Extrude extrudes a profile, read as (x, y), along +Z from 0 to height.
	Extrude(f *profile.Face, height float64) (Solid, error)

	Cut(a, b Solid) (Solid, error)
	Fuse(a, b Solid) (Solid, error)
	Intersect(a, b Solid) (Solid, error)

	// Cylinder returns a cylinder along Z spanning 0 to height before
	// placement.
	Cylinder(radius, height float64, p Placement) (Solid, error)
	Transform(s Solid, p Placement) (Solid, error)
	Field(f Field) (Solid, error)

	// Mesh tessellates s with a uniform grid of cells along its longest side.
	Mesh(s Solid, cells int) (*Mesh, error)
}

// ShapeError is a panic raised inside a kernel backend, recovered and
// returned as an error.
type ShapeError struct {
	Op    string
	Value interface{}
	Stack string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("kernel: %s: %v", e.Op, e.Value)
}
