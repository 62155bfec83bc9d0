package kernel

import (
	"bytes"
	"encoding/binary"
	"math"
	"runtime"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// tetrahedron returns a unit right tetrahedron with outward faces.
func tetrahedron() *Mesh {
	o := [3]float32{0, 0, 0}
	x := [3]float32{1, 0, 0}
	y := [3]float32{0, 1, 0}
	z := [3]float32{0, 0, 1}
	m := &Mesh{}
	for _, tri := range [][3][3]float32{
		{o, y, x},
		{o, x, z},
		{o, z, y},
		{x, y, z},
	} {
		for _, v := range tri {
			m.Vertices = append(m.Vertices, v[:]...)
			m.Normals = append(m.Normals, 0, 0, 0)
		}
	}
	return m
}

func TestMeshVolume(t *testing.T) {
	m := tetrahedron()
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := m.Volume(); !scalar.EqualWithinAbs(got, 1.0/6, 1e-7) {
		t.Errorf("volume %v, want 1/6", got)
	}
	bb := m.Bounds()
	if bb.Min.X != 0 || bb.Max.Z != 1 {
		t.Errorf("bounds %+v", bb)
	}
}

func TestMeshValidate(t *testing.T) {
	if err := (&Mesh{}).Validate(); err == nil {
		t.Error("empty mesh accepted")
	}
	m := tetrahedron()
	m.Vertices[4] = float32(math.NaN())
	if err := m.Validate(); err == nil {
		t.Error("NaN vertex accepted")
	}
	m = tetrahedron()
	m.Vertices = append(m.Vertices, 1, 2, 3)
	if err := m.Validate(); err == nil {
		t.Error("partial triangle accepted")
	}
}

func TestSTLRoundTrip(t *testing.T) {
	m := tetrahedron()
	var buf bytes.Buffer
	if err := m.WriteSTL(&buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.Len(), 84+4*stlTriangleSize; got != want {
		t.Fatalf("wrote %d bytes, want %d", got, want)
	}
	got, err := ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Vertices) != len(m.Vertices) {
		t.Fatalf("read %d coordinates, want %d", len(got.Vertices), len(m.Vertices))
	}
	for i := range m.Vertices {
		if got.Vertices[i] != m.Vertices[i] {
			t.Fatalf("coordinate %d: %v != %v", i, got.Vertices[i], m.Vertices[i])
		}
	}
	if _, err := ReadSTL(bytes.NewReader(make([]byte, 20))); err == nil {
		t.Error("short header accepted")
	}
	if err := (&Mesh{}).WriteSTL(&buf); err == nil {
		t.Error("empty mesh written")
	}
}

func TestSTLMissingNormals(t *testing.T) {
	m := tetrahedron()
	m.Normals = []float32{0, 0, -1, 0, 0, -1, 0, 0, -1}
	var buf bytes.Buffer
	if err := m.WriteSTL(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Normals[2] != -1 {
		t.Errorf("first normal %v, want (0, 0, -1)", got.Normals[:3])
	}
	for i := 9; i < len(got.Normals); i++ {
		if got.Normals[i] != 0 {
			t.Fatalf("triangle %d without normal written with %v", i/9, got.Normals[i/9*9:i/9*9+3])
		}
	}
}

func TestSTLHeaderCountTooLarge(t *testing.T) {
	b := make([]byte, 84)
	binary.LittleEndian.PutUint32(b[80:], 500_000_000)
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	if _, err := ReadSTL(bytes.NewReader(b)); err == nil {
		t.Fatal("STL without triangles accepted")
	}
	runtime.ReadMemStats(&after)
	if alloc := after.TotalAlloc - before.TotalAlloc; alloc > 16<<20 {
		t.Errorf("allocated %d bytes for a header without triangles", alloc)
	}
}
