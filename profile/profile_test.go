package profile

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestChamferedCylinder(t *testing.T) {
	const (
		dia = 3.0
		l   = 20.0
		c   = 0.5
	)
	off := c * math.Sin(15*math.Pi/180)
	b := NewBuilder().
		AddPoint(0, 0).
		AddPoint(dia/2-off, 0).
		AddPoint(dia/2, -c).
		AddPoint(dia/2, -l+c).
		AddPoint(dia/2-off, -l).
		AddPoint(0, -l)
	f, err := b.Face()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(f.Points()); n != 6 {
		t.Errorf("got %d points", n)
	}
	if !f.OnAxis(0) {
		t.Error("profile not closed on axis")
	}
	bb := f.Bounds()
	if bb.Min.X != 0 || bb.Max.X != dia/2 || bb.Min.Y != -l || bb.Max.Y != 0 {
		t.Errorf("bounds %+v", bb)
	}
	// Head to tip on the positive r side runs clockwise.
	if f.Area() >= 0 {
		t.Errorf("area %v, want negative", f.Area())
	}
}

func TestArcUnderHead(t *testing.T) {
	const ro, rf = 1.75, 0.1
	b := NewBuilder().AddPoint(0, 1).AddPoint(ro+rf, 0).AddArc(0, -rf, 90)
	end := b.Last()
	if !scalar.EqualWithinAbs(end.X, ro, 1e-12) || !scalar.EqualWithinAbs(end.Y, -rf, 1e-12) {
		t.Errorf("arc ended at %+v", end)
	}
	b.AddPoint(ro, -10).AddPoint(0, -10)
	f, err := b.Face()
	if err != nil {
		t.Fatal(err)
	}
	center := r2.Vec{X: ro + rf, Y: -rf}
	for _, v := range f.Vertices() {
		if v.X > ro && v.Y < 0 && v.Y > -rf {
			if d := r2.Norm(r2.Sub(v, center)); !scalar.EqualWithinAbs(d, rf, 1e-9) {
				t.Errorf("arc vertex %+v off circle by %v", v, d-rf)
			}
		}
	}
}

func TestArcClockwiseDome(t *testing.T) {
	const d = 3.1
	b := NewBuilder().AddPoint(0, 0.6*d).AddArc(0, -d/2, -180)
	end := b.Last()
	if !scalar.EqualWithinAbs(end.X, 0, 1e-9) || !scalar.EqualWithinAbs(end.Y, -0.4*d, 1e-9) {
		t.Fatalf("dome ended at %+v", end)
	}
	f, err := b.Face()
	if err != nil {
		t.Fatal(err)
	}
	if !f.Revolvable(1e-9) {
		t.Error("clockwise half turn should sweep through positive r")
	}
	if got := f.Bounds().Max.X; !scalar.EqualWithinAbs(got, d/2, 1e-9) {
		t.Errorf("dome radius %v", got)
	}
	if len(f.Points()) != 2 {
		t.Errorf("points %v", f.Points())
	}
}

func TestSplineFillet(t *testing.T) {
	b := NewBuilder().AddPoint(0, 0).AddSplineFillet(1, 0, 1, -1).AddPoint(0, -1)
	f, err := b.Face()
	if err != nil {
		t.Fatal(err)
	}
	center := r2.Vec{X: 0, Y: -1}
	verts := f.Vertices()
	if len(verts) < 4 {
		t.Fatalf("fillet not tessellated: %v", verts)
	}
	for _, v := range verts[:len(verts)-1] {
		if v.X == 0 {
			continue
		}
		if d := r2.Norm(r2.Sub(v, center)); math.Abs(d-1) > 3e-4 {
			t.Errorf("fillet vertex %+v is %v from the quarter circle", v, d-1)
		}
	}
	for _, p := range f.Points() {
		if p == (r2.Vec{X: 1, Y: 0}) {
			t.Error("corner point must not be part of the profile")
		}
	}
}

func TestSplineFilletUnequalLegs(t *testing.T) {
	// Taper pin style rounding: long radial leg, short axial leg.
	const r, a = 1.5, 0.4
	f, err := NewBuilder().AddPoint(0, 0).AddSplineFillet(r, 0, r, -a).AddPoint(r, -10).AddPoint(0, -10).Face()
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range f.Vertices() {
		if v.X < 0 || v.X > r+1e-12 || v.Y > 1e-12 || v.Y < -10 {
			t.Errorf("vertex %+v escapes the corner box", v)
		}
	}
}

func TestFaceFailures(t *testing.T) {
	for _, test := range []struct {
		name string
		b    *Builder
		want error
	}{
		{"empty", NewBuilder(), ErrTooFewPoints},
		{"two", NewBuilder().AddPoint(0, 0).AddPoint(1, 0), ErrTooFewPoints},
		{"duplicates", NewBuilder().AddPoint(0, 0).AddPoint(1, 0).AddPoint(1, 0).AddPoint(0, 0), ErrTooFewPoints},
		{"spline first", NewBuilder().AddSplineFillet(1, 0, 1, -1).AddPoint(0, -1).AddPoint(0, 0), ErrNoStart},
		{"arc first", NewBuilder().AddArc(0, -1, 90).AddPoint(0, -1).AddPoint(0, 0), ErrNoStart},
	} {
		_, err := test.b.Face()
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
	_, err := NewBuilder().AddPoint(1, 0).AddArc(0, 0, 90).AddPoint(0, -1).Face()
	if err == nil {
		t.Error("zero radius arc accepted")
	}
}

func TestFinalized(t *testing.T) {
	b := NewBuilder().AddPoint(0, 0).AddPoint(1, 0).AddPoint(0, -1)
	f1, err := b.Face()
	if err != nil {
		t.Fatal(err)
	}
	f2, err := b.Face()
	if err != nil || f1 != f2 {
		t.Error("second Face call should return the same face")
	}
	verts := f1.Vertices()
	verts[0] = r2.Vec{X: 100, Y: 100}
	if f1.Vertices()[0] == verts[0] {
		t.Error("face vertices are mutable through the returned slice")
	}
	defer func() {
		if r := recover(); r != ErrFinalized {
			t.Errorf("recovered %v, want ErrFinalized", r)
		}
	}()
	b.AddPoint(2, 2)
}
