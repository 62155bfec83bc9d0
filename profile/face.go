package profile

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Face is a finalized, immutable profile.
type Face struct {
	points   []r2.Vec // segment end points in insertion order
	vertices []r2.Vec // closed outline with curves tessellated
	bb       r2.Box
}

// Points returns the segment end points in insertion order.
func (f *Face) Points() []r2.Vec { return append([]r2.Vec(nil), f.points...) }

// Vertices returns the outline with curved segments tessellated. The
// outline is implicitly closed from the last vertex back to the first.
func (f *Face) Vertices() []r2.Vec { return append([]r2.Vec(nil), f.vertices...) }

// Bounds returns the bounding box of the outline.
func (f *Face) Bounds() r2.Box { return f.bb }

// First returns the first point of the profile.
func (f *Face) First() r2.Vec { return f.points[0] }

// Last returns the last point of the profile.
func (f *Face) Last() r2.Vec { return f.points[len(f.points)-1] }

// OnAxis reports whether the profile starts and ends on the revolution axis,
// so that revolving it closes the solid.
func (f *Face) OnAxis(tol float64) bool {
	return math.Abs(f.First().X) <= tol && math.Abs(f.Last().X) <= tol
}

// Area returns the signed area of the outline, positive when the outline
// runs counter clockwise.
func (f *Face) Area() float64 {
	var sum float64
	n := len(f.vertices)
	for i := range f.vertices {
		a, b := f.vertices[i], f.vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Revolvable reports whether no vertex lies on the negative r side of the
// axis, beyond tol.
func (f *Face) Revolvable(tol float64) bool {
	return f.bb.Min.X >= -tol
}
