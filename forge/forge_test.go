package forge

import (
	"errors"
	"math"
	"strings"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/fasteners"
	"github.com/soypat/fasteners/kernel"
	"github.com/soypat/fasteners/kernel/sdfx"
	"github.com/soypat/fasteners/profile"
	"github.com/soypat/fasteners/standard"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

// countingKernel counts geometry calls and optionally fails cuts.
type countingKernel struct {
	kernel.Kernel
	calls   int
	failCut error
}

func (k *countingKernel) Revolve(f *profile.Face) (kernel.Solid, error) {
	k.calls++
	return k.Kernel.Revolve(f)
}

func (k *countingKernel) Extrude(f *profile.Face, h float64) (kernel.Solid, error) {
	k.calls++
	return k.Kernel.Extrude(f, h)
}

func (k *countingKernel) Cut(a, b kernel.Solid) (kernel.Solid, error) {
	k.calls++
	if k.failCut != nil {
		return nil, k.failCut
	}
	return k.Kernel.Cut(a, b)
}

func (k *countingKernel) Fuse(a, b kernel.Solid) (kernel.Solid, error) {
	k.calls++
	return k.Kernel.Fuse(a, b)
}

func (k *countingKernel) Intersect(a, b kernel.Solid) (kernel.Solid, error) {
	k.calls++
	return k.Kernel.Intersect(a, b)
}

func (k *countingKernel) Cylinder(r, h float64, p kernel.Placement) (kernel.Solid, error) {
	k.calls++
	return k.Kernel.Cylinder(r, h, p)
}

func (k *countingKernel) Transform(s kernel.Solid, p kernel.Placement) (kernel.Solid, error) {
	k.calls++
	return k.Kernel.Transform(s, p)
}

func (k *countingKernel) Field(f kernel.Field) (kernel.Solid, error) {
	k.calls++
	return k.Kernel.Field(f)
}

func resolve(t *testing.T, spec fasteners.Spec) fasteners.Dimensions {
	t.Helper()
	dims, err := fasteners.Resolve(spec)
	if err != nil {
		t.Fatalf("%v: %v", spec, err)
	}
	return dims
}

func TestProfilesClosedOnAxis(t *testing.T) {
	for _, typ := range standard.Types() {
		for _, size := range standard.Sizes(typ) {
			for _, threaded := range []bool{false, true} {
				spec := fasteners.Spec{Type: typ, Diameter: size, Length: "20", Threaded: threaded}
				if typ == standard.DIN508 || typ == standard.ISO299 {
					spec.Length = ""
				}
				dims := resolve(t, spec)
				pb, err := Profile(spec, dims)
				if typ == standard.DIN508 || typ == standard.ISO299 {
					if !errors.Is(err, ErrNotRevolved) {
						t.Errorf("%v: got %v", spec, err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("%v: %v", spec, err)
				}
				f, err := pb.Face()
				if err != nil {
					t.Fatalf("%v: %v", spec, err)
				}
				if !f.OnAxis(tol) {
					t.Errorf("%v: profile runs from %v to %v, not on the axis", spec, f.First(), f.Last())
				}
				if !f.Revolvable(tol) {
					t.Errorf("%v: profile crosses the axis", spec)
				}
			}
		}
	}
}

func TestDowelPin(t *testing.T) {
	spec := fasteners.Spec{Type: standard.ISO2338, Diameter: "3 mm", Length: "20"}
	pb, err := Profile(spec, resolve(t, spec))
	if err != nil {
		t.Fatal(err)
	}
	pts := pb.Points()
	if len(pts) != 6 {
		t.Fatalf("got %d points, want 6", len(pts))
	}
	for _, p := range pts {
		if p.X < 0 || p.X > 1.5 || p.Y < -20 || p.Y > 0 {
			t.Errorf("point %v outside r in [0, 1.5], z in [-20, 0]", p)
		}
	}
	c := 0.5
	if want := (r2.Vec{X: 1.5 - c*math.Sin(15*math.Pi/180), Y: 0}); !vecEqual(pts[1], want) {
		t.Errorf("chamfer start %v, want %v", pts[1], want)
	}
}

func TestTaperPin(t *testing.T) {
	if got := TaperDiameter(10); !scalar.EqualWithinAbs(got, 10.2, 1e-12) {
		t.Errorf("taper diameter of 10 mm is %v", got)
	}
	f, err := TaperPin(10, 60, 1.2).Face()
	if err != nil {
		t.Fatal(err)
	}
	if bb := f.Bounds(); !scalar.EqualWithinAbs(bb.Max.X, 5.1, tol) || !scalar.EqualWithinAbs(bb.Min.Y, -60, tol) {
		t.Errorf("bounds %+v", bb)
	}
}

func screwFor(t *testing.T, typ standard.Type, threaded bool) TappingScrew {
	spec := fasteners.Spec{Type: typ, Diameter: "ST 3.5", Length: "16", Threaded: threaded}
	b := &build{spec: spec, d: resolve(t, spec)}
	return b.screw()
}

func TestTappingScrewPoints(t *testing.T) {
	for _, threaded := range []bool{false, true} {
		shared := len(screwFor(t, standard.ISO7049C, threaded).headAndShank().Points())
		var profiles [][]r2.Vec
		for _, typ := range []standard.Type{standard.ISO7049C, standard.ISO7049F, standard.ISO7049R} {
			pb, err := screwFor(t, typ, threaded).Profile()
			if err != nil {
				t.Fatal(err)
			}
			profiles = append(profiles, pb.Points())
		}
		c, f, r := profiles[0], profiles[1], profiles[2]
		for i := 0; i < shared; i++ {
			if !vecEqual(c[i], f[i]) || !vecEqual(c[i], r[i]) {
				t.Errorf("threaded=%v: head and shank differ at point %d: %v %v %v", threaded, i, c[i], f[i], r[i])
			}
		}
		if len(c) != shared+2 || len(f) != shared+3 || len(r) != shared+3 {
			t.Errorf("threaded=%v: tip point counts %d %d %d after %d shared", threaded, len(c), len(f), len(r), shared)
		}
		if vecEqual(c[len(c)-1], r[len(r)-1]) {
			t.Errorf("threaded=%v: round point ends like conical point", threaded)
		}
	}
}

func TestTappingScrewEnvelope(t *testing.T) {
	if _, ok := screwFor(t, standard.ISO7049C, false).Envelope(); ok {
		t.Error("plain screw has a thread")
	}
	c, _ := screwFor(t, standard.ISO7049C, true).Envelope()
	f, _ := screwFor(t, standard.ISO7049F, true).Envelope()
	r, _ := screwFor(t, standard.ISO7049R, true).Envelope()
	if c.OmitTip || !f.OmitTip || r.OmitTip {
		t.Errorf("omit tip flags %v %v %v", c.OmitTip, f.OmitTip, r.OmitTip)
	}
	if c.ZEnd != -16 || f.ZEnd != -16 || !scalar.EqualWithinAbs(r.ZEnd, -16+1.3, tol) {
		t.Errorf("thread ends %v %v %v", c.ZEnd, f.ZEnd, r.ZEnd)
	}
	ri := (2.64 + 2.51) / 4
	if !scalar.EqualWithinAbs(c.InnerRadius, ri, tol) || c.OuterRadius != 1.75 || c.Pitch != 1.3 {
		t.Errorf("thread radii %v..%v pitch %v", c.InnerRadius, c.OuterRadius, c.Pitch)
	}
	if !scalar.EqualWithinAbs(c.ZStart, 1.75-ri, tol) {
		t.Errorf("full length thread starts at %v", c.ZStart)
	}
	for _, size := range standard.Sizes(standard.ISO7049C) {
		for _, typ := range []standard.Type{standard.ISO7049C, standard.ISO7049F, standard.ISO7049R} {
			spec := fasteners.Spec{Type: typ, Diameter: size, Length: "25", Threaded: true}
			e, _ := (&build{spec: spec, d: resolve(t, spec)}).screw().Envelope()
			if err := e.Validate(); err != nil {
				t.Errorf("%v: %v", spec, err)
			}
		}
	}
}

func TestTappingScrewIncompleteThread(t *testing.T) {
	s := screwFor(t, standard.ISO7049C, true)
	s.B = 10
	e, _ := s.Envelope()
	if !scalar.EqualWithinAbs(e.ZStart, -16+10+1.75-s.MinorDiameter/2, tol) {
		t.Errorf("incomplete thread starts at %v", e.ZStart)
	}
	pb, err := s.Profile()
	if err != nil {
		t.Fatal(err)
	}
	f, err := pb.Face()
	if err != nil {
		t.Fatal(err)
	}
	if !f.OnAxis(tol) {
		t.Error("incomplete thread profile is open")
	}
}

func TestClevisPin(t *testing.T) {
	spec := fasteners.Spec{Type: standard.ISO2340B, Diameter: "6 mm", Length: "30"}
	c := (&build{spec: spec, d: resolve(t, spec)}).clevis()
	if len(c.Holes) != 2 || c.Holes[0] != -3.2 || !scalar.EqualWithinAbs(c.Holes[1], -30+3.2, tol) {
		t.Errorf("ISO2340B holes %v", c.Holes)
	}
	spec.Type = standard.ISO2341B
	spec.Threaded = true
	c = (&build{spec: spec, d: resolve(t, spec)}).clevis()
	if len(c.Holes) != 1 || !scalar.EqualWithinAbs(c.Holes[0], -30+3.2, tol) {
		t.Errorf("ISO2341B holes %v", c.Holes)
	}
	e, ok := c.Envelope()
	if !ok {
		t.Fatal("threaded clevis pin has no thread")
	}
	if !scalar.EqualWithinAbs(e.InnerRadius, 3-metricThreadDepth, tol) || e.OuterRadius != 3 {
		t.Errorf("thread radii %v..%v", e.InnerRadius, e.OuterRadius)
	}
	if err := e.Validate(); err != nil {
		t.Error(err)
	}
	spec.Type = standard.ISO2340A
	spec.Threaded = false
	c = (&build{spec: spec, d: resolve(t, spec)}).clevis()
	if len(c.Holes) != 0 || c.HeadDiameter != 0 {
		t.Errorf("plain pin %+v", c)
	}
}

func TestRecessValidate(t *testing.T) {
	for _, r := range []Recess{
		{Size: 5, Diameter: 10, Depth: 2},
		{Size: -1, Diameter: 10, Depth: 2},
		{Size: 2, Diameter: 1, Depth: 2},
		{Size: 2, Diameter: 4, Depth: 0},
	} {
		if r.Validate() == nil {
			t.Errorf("invalid recess %+v accepted", r)
		}
	}
	if err := (Recess{Size: 2, Diameter: 3.9, Depth: 1.65}).Validate(); err != nil {
		t.Error(err)
	}
}

func TestUnsupportedBeforeGeometry(t *testing.T) {
	if _, err := fasteners.NewSpec("ISO9999", "3 mm", "20"); !errors.Is(err, standard.ErrNotFound) {
		t.Errorf("ISO9999: got %v", err)
	}
	if _, err := fasteners.NewSpec("ISO7049-X", "ST 3.5", "16"); !errors.Is(err, standard.ErrUnsupported) {
		t.Errorf("ISO7049-X: got %v", err)
	}
	k := &countingKernel{Kernel: sdfx.Kernel{}}
	g := New(k)
	if _, err := g.Generate(fasteners.Spec{Type: standard.Type(200), Diameter: "3 mm"}); !errors.Is(err, standard.ErrNotFound) {
		t.Errorf("invalid type: got %v", err)
	}
	_, err := g.Build(fasteners.Spec{Type: standard.Type(200), Diameter: "3 mm"}, fasteners.Dimensions{})
	if !errors.Is(err, standard.ErrUnsupported) {
		t.Errorf("invalid type build: got %v", err)
	}
	var de *fasteners.DimensionError
	_, err = g.Build(fasteners.Spec{Type: standard.ISO2338, Diameter: "3 mm"}, fasteners.Dimensions{Type: standard.ISO2338})
	if !errors.As(err, &de) || !errors.Is(err, standard.ErrNotFound) {
		t.Errorf("missing dimensions: got %v", err)
	}
	if k.calls != 0 {
		t.Errorf("%d geometry calls made for failing specs", k.calls)
	}
}

func TestGeometryErrorContext(t *testing.T) {
	boom := errors.New("boom")
	k := &countingKernel{Kernel: sdfx.Kernel{}, failCut: boom}
	_, err := New(k).Generate(fasteners.Spec{Type: standard.ISO2340B, Diameter: "6 mm", Length: "30"})
	var ge *fasteners.GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("got %v", err)
	}
	if ge.Feature != "transverse hole" || !strings.HasPrefix(ge.Spec, "ISO2340B") || !errors.Is(err, boom) {
		t.Errorf("error context %+v", ge)
	}
}

func TestDegenerateProfile(t *testing.T) {
	k := &countingKernel{Kernel: sdfx.Kernel{}}
	b := &build{g: New(k), spec: fasteners.Spec{Type: standard.ISO2338, Diameter: "3 mm", Length: "20"}}
	flat := profile.NewBuilder().AddPoint(0, 0).AddPoint(1, 0).AddPoint(2, 0)
	_, err := b.revolve("body", flat)
	var ge *fasteners.GeometryError
	if !errors.As(err, &ge) || !errors.Is(err, ErrDegenerate) || ge.Feature != "body" {
		t.Errorf("flat profile: got %v", err)
	}
	if k.calls != 0 {
		t.Errorf("%d kernel calls for a flat profile", k.calls)
	}
}

func TestGenerate(t *testing.T) {
	g := New(sdfx.Kernel{})
	for _, test := range []struct {
		spec       fasteners.Spec
		zMin, zMax float64
		rMax       float64
	}{
		{fasteners.Spec{Type: standard.ISO2338, Diameter: "3 mm", Length: "20"}, -20, 0, 1.5},
		{fasteners.Spec{Type: standard.ISO2339, Diameter: "10 mm", Length: "60"}, -60, 0, 5.1},
		{fasteners.Spec{Type: standard.ISO2340B, Diameter: "6 mm", Length: "30"}, -30, 0, 3},
		{fasteners.Spec{Type: standard.ISO2341A, Diameter: "6 mm", Length: "30", Threaded: true}, -30, 2, 5},
		{fasteners.Spec{Type: standard.ISO7049C, Diameter: "ST 3.5", Length: "16"}, -16, 2.475, 3.41},
		{fasteners.Spec{Type: standard.ISO7049F, Diameter: "ST 3.5", Length: "16", Threaded: true, LeftHanded: true}, -16, 2.475, 3.41},
		{fasteners.Spec{Type: standard.DIN1151A, Diameter: "2.2 x 50"}, -50, 2.2 / 4, 2.2},
		{fasteners.Spec{Type: standard.DIN1144A, Diameter: "3.1 x 25"}, -25, 0.6 * 3.1, 10},
	} {
		s, err := g.Generate(test.spec)
		if err != nil {
			t.Fatalf("%v: %v", test.spec, err)
		}
		bb := s.Bounds()
		if !scalar.EqualWithinAbs(bb.Min.Z, test.zMin, 1e-6) || !scalar.EqualWithinAbs(bb.Max.Z, test.zMax, 1e-6) {
			t.Errorf("%v: z from %v to %v, want %v to %v", test.spec, bb.Min.Z, bb.Max.Z, test.zMin, test.zMax)
		}
		if !scalar.EqualWithinAbs(bb.Max.X, test.rMax, 1e-6) {
			t.Errorf("%v: radius %v, want %v", test.spec, bb.Max.X, test.rMax)
		}
	}
}

func TestTSlotNut(t *testing.T) {
	s, err := New(sdfx.Kernel{}).Generate(fasteners.Spec{Type: standard.ISO299, Diameter: "M10x12"})
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	const e, h = 18.0, 14.0
	for _, got := range [][2]float64{
		{bb.Min.X, -e / 2}, {bb.Max.X, e / 2},
		{bb.Min.Y, -e / 2}, {bb.Max.Y, e / 2},
		{bb.Min.Z, -h}, {bb.Max.Z, 0},
	} {
		if !scalar.EqualWithinAbs(got[0], got[1], 1e-6) {
			t.Errorf("bounds %+v", bb)
			break
		}
	}
	m, err := (sdfx.Kernel{}).Mesh(s, 40)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	// Neck plus base, less the bore.
	want := (12*(h-7) + e*7) * e
	want -= math.Pi * (0.85 * 5) * (0.85 * 5) * h
	if got := math.Abs(m.Volume()); math.Abs(got-want)/want > 0.1 {
		t.Errorf("volume %v, want about %v", got, want)
	}
}

// distance evaluates the signed distance of s at (x, y, z). Negative is
// inside.
func distance(t *testing.T, s kernel.Solid, x, y, z float64) float64 {
	t.Helper()
	sdf, ok := sdfx.SDF3(s)
	if !ok {
		t.Fatal("solid not built by the sdfx kernel")
	}
	return sdf.Evaluate(v3.Vec{X: x, Y: y, Z: z})
}

func TestCrossRecessCut(t *testing.T) {
	spec := fasteners.Spec{Type: standard.ISO7049C, Diameter: "ST 3.5", Length: "16"}
	dims := resolve(t, spec)
	k := sdfx.Kernel{}
	pb, err := Profile(spec, dims)
	if err != nil {
		t.Fatal(err)
	}
	f, err := pb.Face()
	if err != nil {
		t.Fatal(err)
	}
	body, err := k.Revolve(f)
	if err != nil {
		t.Fatal(err)
	}
	screw, err := New(k).Build(spec, dims)
	if err != nil {
		t.Fatal(err)
	}
	// A point in the wing of the recess along X, just under the head top.
	if d := distance(t, body, 1, 0, 2.2); d >= 0 {
		t.Fatalf("head without recess is not solid at the wing: %v", d)
	}
	if d := distance(t, screw, 1, 0, 2.2); d <= 0 {
		t.Errorf("recess wing not cut: distance %v", d)
	}
	if d := distance(t, screw, 0, 1, 2.2); d <= 0 {
		t.Errorf("recess wing along Y not cut: distance %v", d)
	}
	// Between the wings, outside the recess diameter.
	if d := distance(t, screw, 2, 2, 0.5); d >= 0 {
		t.Errorf("head cut outside the recess: distance %v", d)
	}
}

func TestThreadFused(t *testing.T) {
	g := New(sdfx.Kernel{})
	for _, threaded := range []bool{false, true} {
		spec := fasteners.Spec{Type: standard.ISO7049C, Diameter: "ST 3.5", Length: "16", Threaded: threaded}
		s, err := g.Generate(spec)
		if err != nil {
			t.Fatal(err)
		}
		// r = 1.6 lies between the thread root and crest. The plain shank
		// has the crest radius.
		const r, n = 1.6, 16
		var inside, outside int
		for i := 0; i < n; i++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / n)
			if distance(t, s, r*cos, r*sin, -8) < 0 {
				inside++
			} else {
				outside++
			}
		}
		switch {
		case threaded && (inside == 0 || outside == 0):
			t.Errorf("threaded screw at r=%v: %d of %d angles inside, want a helical tooth", r, inside, n)
		case !threaded && outside > 0:
			t.Errorf("plain screw at r=%v: %d of %d angles outside the shank", r, outside, n)
		}
	}
}

func TestClevisHolesVolume(t *testing.T) {
	k := sdfx.Kernel{}
	g := New(k)
	volume := func(typ standard.Type) float64 {
		s, err := g.Generate(fasteners.Spec{Type: typ, Diameter: "6 mm", Length: "30"})
		if err != nil {
			t.Fatal(err)
		}
		m, err := k.Mesh(s, 120)
		if err != nil {
			t.Fatal(err)
		}
		return math.Abs(m.Volume())
	}
	plain, holed := volume(standard.ISO2340A), volume(standard.ISO2340B)
	// Two 1.6 mm holes straight through the 6 mm shank.
	want := 2 * math.Pi * 0.8 * 0.8 * 6
	if got := plain - holed; math.Abs(got-want)/want > 0.3 {
		t.Errorf("holes remove %v mm³, want about %v", got, want)
	}
}

func vecEqual(a, b r2.Vec) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol)
}
