package kernel

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a triangle soup: three vertices per triangle, three float32 per
// vertex.
type Mesh struct {
	Vertices []float32
	Normals  []float32
}

var errEmptyMesh = errors.New("kernel: empty mesh")

// Triangles returns the number of triangles.
func (m *Mesh) Triangles() int { return len(m.Vertices) / 9 }

// Validate checks that the mesh is non empty and every coordinate is finite.
func (m *Mesh) Validate() error {
	if m.Triangles() == 0 {
		return errEmptyMesh
	}
	if len(m.Vertices)%9 != 0 {
		return fmt.Errorf("kernel: %d coordinates is not a whole number of triangles", len(m.Vertices))
	}
	for i := 0; i < len(m.Vertices); i += 3 {
		if badFloat(m.Vertices[i : i+3]) {
			return fmt.Errorf("kernel: vertex %d is not finite", i/3)
		}
	}
	return nil
}

// Bounds returns the bounding box of the mesh vertices.
func (m *Mesh) Bounds() r3.Box {
	if len(m.Vertices) < 3 {
		return r3.Box{}
	}
	v0 := vertex(m.Vertices, 0)
	bb := r3.Box{Min: v0, Max: v0}
	for i := 3; i+2 < len(m.Vertices); i += 3 {
		v := vertex(m.Vertices, i)
		bb.Min = r3.Vec{X: min(bb.Min.X, v.X), Y: min(bb.Min.Y, v.Y), Z: min(bb.Min.Z, v.Z)}
		bb.Max = r3.Vec{X: max(bb.Max.X, v.X), Y: max(bb.Max.Y, v.Y), Z: max(bb.Max.Z, v.Z)}
	}
	return bb
}

// Volume returns the enclosed volume by the divergence theorem. It assumes
// outward facing counter clockwise triangles.
func (m *Mesh) Volume() float64 {
	var vol float64
	for i := 0; i+8 < len(m.Vertices); i += 9 {
		a := vertex(m.Vertices, i)
		b := vertex(m.Vertices, i+3)
		c := vertex(m.Vertices, i+6)
		vol += r3.Dot(a, r3.Cross(b, c))
	}
	return vol / 6
}

func vertex(v []float32, i int) r3.Vec {
	return r3.Vec{X: float64(v[i]), Y: float64(v[i+1]), Z: float64(v[i+2])}
}

func badFloat(f []float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
