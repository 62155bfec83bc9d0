// Package profile accumulates the closed planar boundary a fastener body is
// revolved or extruded from.
//
// Points are (r, z) pairs stored as r2.Vec{X: r, Y: z}. Revolution is about
// the z axis, so the profile of a solid of revolution starts and ends on
// r = 0 and the closing edge runs along the axis.
package profile

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/fasteners/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultFacets is the number of straight segments a quarter turn of a
// curved segment is approximated with.
const DefaultFacets = 8

// tolerance under which two consecutive vertices are merged.
const tolerance = 1e-9

var (
	ErrTooFewPoints = errors.New("profile: fewer than 3 points")
	ErrFinalized    = errors.New("profile: builder already finalized")
	ErrNoStart      = errors.New("profile: curve without start point")
)

type segKind uint8

const (
	segLine   segKind = iota // straight line to end
	segSpline                // cubic spline fillet to end
	segArc                   // circular arc to end
)

type segment struct {
	kind   segKind
	corner r2.Vec  // spline tangent intersection
	center r2.Vec  // arc center
	sweep  float64 // arc sweep in radians, counter clockwise positive
	end    r2.Vec
}

// Builder accumulates profile segments in insertion order. A Builder is
// finalized by Face and cannot be extended afterwards.
type Builder struct {
	facets int
	segs   []segment
	err    error
	face   *Face
}

// NewBuilder returns an empty builder approximating curves with
// DefaultFacets segments per quarter turn.
func NewBuilder() *Builder {
	return &Builder{facets: DefaultFacets}
}

// Facets sets the number of segments per quarter turn of curved segments.
func (b *Builder) Facets(n int) *Builder {
	b.mustOpen()
	if n < 1 {
		n = 1
	}
	b.facets = n
	return b
}

// AddPoint adds a straight line from the previous point to (r, z).
func (b *Builder) AddPoint(r, z float64) *Builder {
	b.mustOpen()
	b.segs = append(b.segs, segment{kind: segLine, end: r2.Vec{X: r, Y: z}})
	return b
}

// AddSplineFillet adds a rounded corner from the previous point to (r, z).
// (rc, zc) is the corner the fillet replaces: the curve leaves the previous
// point towards it and arrives at (r, z) coming from it, but does not pass
// through it.
func (b *Builder) AddSplineFillet(rc, zc, r, z float64) *Builder {
	b.mustOpen()
	if len(b.segs) == 0 {
		b.setErr(ErrNoStart)
	}
	b.segs = append(b.segs, segment{
		kind:   segSpline,
		corner: vec(rc, zc),
		end:    vec(r, z),
	})
	return b
}

// AddArc adds a circular arc that starts at the previous point and turns
// sweepDegrees about the center located at (dr, dz) relative to the
// previous point. Positive sweeps turn counter clockwise in the (r, z)
// plane: AddPoint(ro+rf, 0).AddArc(0, -rf, 90) is the concave fillet under
// a head that ends on the shank at (ro, -rf).
func (b *Builder) AddArc(dr, dz, sweepDegrees float64) *Builder {
	b.mustOpen()
	if len(b.segs) == 0 {
		b.setErr(ErrNoStart)
		return b
	}
	if dr == 0 && dz == 0 {
		b.setErr(fmt.Errorf("profile: arc with zero radius after point %d", len(b.segs)))
	}
	start := b.segs[len(b.segs)-1].end
	center := r2.Add(start, vec(dr, dz))
	sweep := sweepDegrees * math.Pi / 180
	b.segs = append(b.segs, segment{
		kind:   segArc,
		center: center,
		sweep:  sweep,
		end:    d2.Rotate(start, sweep, center),
	})
	return b
}

// Last returns the end of the latest segment.
func (b *Builder) Last() r2.Vec {
	if len(b.segs) == 0 {
		return r2.Vec{}
	}
	return b.segs[len(b.segs)-1].end
}

// Points returns the segment end points added so far.
func (b *Builder) Points() []r2.Vec {
	pts := make([]r2.Vec, len(b.segs))
	for i, s := range b.segs {
		pts[i] = s.end
	}
	return pts
}

// Face finalizes the builder. It fails when fewer than 3 distinct vertices
// describe the boundary or a curve was added without a start point.
// Self intersection is left for the geometry kernel to reject. Calling Face
// again returns the same face.
func (b *Builder) Face() (*Face, error) {
	if b.face != nil {
		return b.face, nil
	}
	if b.err != nil {
		return nil, b.err
	}
	if len(b.segs) > 0 && b.segs[0].kind != segLine {
		return nil, ErrNoStart
	}
	var verts []r2.Vec
	for i, s := range b.segs {
		switch s.kind {
		case segLine:
			verts = append(verts, s.end)
		case segSpline:
			verts = append(verts, splineFillet(b.segs[i-1].end, s.corner, s.end, b.facets)...)
		case segArc:
			verts = append(verts, arc(b.segs[i-1].end, s.center, s.sweep, s.end, b.facets)...)
		}
	}
	verts = dedupe(verts)
	if len(verts) < 3 {
		return nil, ErrTooFewPoints
	}
	f := &Face{points: b.Points(), vertices: verts}
	f.bb = r2.Box{Min: verts[0], Max: verts[0]}
	for _, v := range verts[1:] {
		f.bb.Min = d2.MinElem(f.bb.Min, v)
		f.bb.Max = d2.MaxElem(f.bb.Max, v)
	}
	b.face = f
	return f, nil
}

func (b *Builder) mustOpen() {
	if b.face != nil {
		panic(ErrFinalized)
	}
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// splineFillet approximates the corner at c between p0 and p3 with a cubic
// Bézier whose control points lie on the corner legs. The control distance
// is the one that makes a symmetric corner a circular arc to within 0.03%.
func splineFillet(p0, c, p3 r2.Vec, facets int) []r2.Vec {
	a, b := r2.Sub(c, p0), r2.Sub(p3, c)
	theta := d2.Angle(a, b)
	if theta < 1e-6 || r2.Norm(a) == 0 || r2.Norm(b) == 0 {
		return []r2.Vec{p3}
	}
	k := 4.0 / 3 * math.Tan(theta/4) / math.Tan(theta/2)
	p1 := r2.Add(p0, r2.Scale(k, a))
	p2 := r2.Sub(p3, r2.Scale(k, b))
	n := segments(theta, facets)
	pts := make([]r2.Vec, 0, n)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p := r2.Scale(u*u*u, p0)
		p = r2.Add(p, r2.Scale(3*u*u*t, p1))
		p = r2.Add(p, r2.Scale(3*u*t*t, p2))
		p = r2.Add(p, r2.Scale(t*t*t, p3))
		pts = append(pts, p)
	}
	return append(pts, p3)
}

func arc(start, center r2.Vec, sweep float64, end r2.Vec, facets int) []r2.Vec {
	n := segments(math.Abs(sweep), facets)
	pts := make([]r2.Vec, 0, n)
	for i := 1; i < n; i++ {
		pts = append(pts, d2.Rotate(start, sweep*float64(i)/float64(n), center))
	}
	return append(pts, end)
}

// segments returns how many straight segments approximate a turn of angle
// radians.
func segments(angle float64, facetsPerQuarter int) int {
	n := int(math.Ceil(angle / (math.Pi / 2) * float64(facetsPerQuarter)))
	if n < 1 {
		n = 1
	}
	return n
}

func dedupe(verts []r2.Vec) []r2.Vec {
	out := verts[:0]
	for _, v := range verts {
		if len(out) > 0 && d2.EqualWithin(out[len(out)-1], v, tolerance) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && d2.EqualWithin(out[0], out[len(out)-1], tolerance) {
		out = out[:len(out)-1]
	}
	return out
}

func vec(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }
