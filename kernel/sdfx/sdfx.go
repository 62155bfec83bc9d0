// Package sdfx implements kernel.Kernel with the signed distance function
// solids of github.com/deadsy/sdfx.
package sdfx

import (
	"errors"
	"fmt"
	"math"
	"runtime/debug"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/fasteners/kernel"
	"github.com/soypat/fasteners/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ kernel.Kernel = Kernel{}

// axisTolerance is how far a profile may stray to negative r and still be
// revolved.
const axisTolerance = 1e-9

var errForeignSolid = errors.New("sdfx: solid was not created by this kernel")

// Kernel is a stateless kernel.Kernel. Its zero value is ready to use and
// safe for concurrent use.
type Kernel struct{}

type solid struct {
	s sdf.SDF3
}

func (s solid) Bounds() r3.Box {
	bb := s.s.BoundingBox()
	return r3.Box{Min: fromV3(bb.Min), Max: fromV3(bb.Max)}
}

// SDF3 returns the sdfx solid behind s, for callers that need sdfx
// features the kernel interface does not expose.
func SDF3(s kernel.Solid) (sdf.SDF3, bool) {
	sl, ok := s.(solid)
	return sl.s, ok
}

func unwrap(ss ...kernel.Solid) ([]sdf.SDF3, error) {
	out := make([]sdf.SDF3, len(ss))
	for i, s := range ss {
		sl, ok := s.(solid)
		if !ok || sl.s == nil {
			return nil, errForeignSolid
		}
		out[i] = sl.s
	}
	return out, nil
}

// recoverShape turns a panic in an sdfx call into a *kernel.ShapeError.
func recoverShape(op string, err *error) {
	if a := recover(); a != nil {
		*err = &kernel.ShapeError{
			Op:    op,
			Value: a,
			Stack: string(debug.Stack()),
		}
	}
}

func polygon(f *profile.Face) (sdf.SDF2, error) {
	if f == nil {
		return nil, errors.New("sdfx: nil face")
	}
	verts := f.Vertices()
	vs := make([]v2.Vec, len(verts))
	for i, v := range verts {
		vs[i] = v2.Vec{X: v.X, Y: v.Y}
	}
	return sdf.Polygon2D(vs)
}

func (Kernel) Revolve(f *profile.Face) (s kernel.Solid, err error) {
	defer recoverShape("revolve", &err)
	if f != nil && !f.Revolvable(axisTolerance) {
		return nil, fmt.Errorf("sdfx: profile crosses the revolution axis (min r %g)", f.Bounds().Min.X)
	}
	s2, err := polygon(f)
	if err != nil {
		return nil, err
	}
	s3, err := sdf.Revolve3D(s2)
	if err != nil {
		return nil, err
	}
	return solid{s3}, nil
}

func (Kernel) Extrude(f *profile.Face, height float64) (s kernel.Solid, err error) {
	defer recoverShape("extrude", &err)
	if height <= 0 {
		return nil, fmt.Errorf("sdfx: extrusion height %g must be positive", height)
	}
	s2, err := polygon(f)
	if err != nil {
		return nil, err
	}
	s3 := sdf.Extrude3D(s2, height)
	return solid{sdf.Transform3D(s3, sdf.Translate3d(v3.Vec{Z: height / 2}))}, nil
}

func (Kernel) Cut(a, b kernel.Solid) (s kernel.Solid, err error) {
	defer recoverShape("cut", &err)
	ss, err := unwrap(a, b)
	if err != nil {
		return nil, err
	}
	return solid{sdf.Difference3D(ss[0], ss[1])}, nil
}

func (Kernel) Fuse(a, b kernel.Solid) (s kernel.Solid, err error) {
	defer recoverShape("fuse", &err)
	ss, err := unwrap(a, b)
	if err != nil {
		return nil, err
	}
	return solid{sdf.Union3D(ss[0], ss[1])}, nil
}

func (Kernel) Intersect(a, b kernel.Solid) (s kernel.Solid, err error) {
	defer recoverShape("intersect", &err)
	ss, err := unwrap(a, b)
	if err != nil {
		return nil, err
	}
	return solid{sdf.Intersect3D(ss[0], ss[1])}, nil
}

func (Kernel) Cylinder(radius, height float64, p kernel.Placement) (s kernel.Solid, err error) {
	defer recoverShape("cylinder", &err)
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("sdfx: cylinder radius %g and height %g must be positive", radius, height)
	}
	c, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, err
	}
	// sdfx centers cylinders on the origin.
	c = sdf.Transform3D(c, sdf.Translate3d(v3.Vec{Z: height / 2}))
	return solid{place(c, p)}, nil
}

func (Kernel) Transform(s kernel.Solid, p kernel.Placement) (out kernel.Solid, err error) {
	defer recoverShape("transform", &err)
	ss, err := unwrap(s)
	if err != nil {
		return nil, err
	}
	return solid{place(ss[0], p)}, nil
}

func (Kernel) Field(f kernel.Field) (s kernel.Solid, err error) {
	defer recoverShape("field", &err)
	if f == nil {
		return nil, errors.New("sdfx: nil field")
	}
	bb := f.Bounds()
	if bb.Max.X <= bb.Min.X || bb.Max.Y <= bb.Min.Y || bb.Max.Z <= bb.Min.Z {
		return nil, fmt.Errorf("sdfx: field has empty bounds %+v", bb)
	}
	return solid{field{f: f, bb: sdf.Box3{Min: toV3(bb.Min), Max: toV3(bb.Max)}}}, nil
}

func (Kernel) Mesh(s kernel.Solid, cells int) (m *kernel.Mesh, err error) {
	defer recoverShape("mesh", &err)
	if cells < 2 {
		return nil, fmt.Errorf("sdfx: need at least 2 mesh cells, got %d", cells)
	}
	ss, err := unwrap(s)
	if err != nil {
		return nil, err
	}
	triangles := render.ToTriangles(ss[0], render.NewMarchingCubesUniform(cells))
	m = &kernel.Mesh{
		Vertices: make([]float32, 0, 9*len(triangles)),
		Normals:  make([]float32, 0, 9*len(triangles)),
	}
	for _, tri := range triangles {
		n := tri.Normal()
		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
		}
	}
	return m, nil
}

// place applies the rotations, X then Y then Z, then the translation.
func place(s sdf.SDF3, p kernel.Placement) sdf.SDF3 {
	if p.IsIdentity() {
		return s
	}
	m := sdf.Translate3d(toV3(p.Translation)).
		Mul(sdf.RotateZ(dtor(p.RotZ))).
		Mul(sdf.RotateY(dtor(p.RotY))).
		Mul(sdf.RotateX(dtor(p.RotX)))
	return sdf.Transform3D(s, m)
}

// field adapts a kernel.Field to sdf.SDF3.
type field struct {
	f  kernel.Field
	bb sdf.Box3
}

func (f field) Evaluate(p v3.Vec) float64 { return f.f.Evaluate(fromV3(p)) }

func (f field) BoundingBox() sdf.Box3 { return f.bb }

func dtor(deg float64) float64 { return deg * math.Pi / 180 }

func toV3(v r3.Vec) v3.Vec { return v3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func fromV3(v v3.Vec) r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }
