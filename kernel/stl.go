package kernel

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// stlHeader is the binary STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32 // number of triangles
}

// stlTriangle is one binary STL record.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count
}

const stlTriangleSize = 50

// stlPrealloc caps the triangles allocated up front from an STL header,
// which may claim more triangles than the file holds.
const stlPrealloc = 1 << 16

// WriteSTL writes the mesh in binary STL format.
func (m *Mesh) WriteSTL(w io.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	header := stlHeader{Count: uint32(m.Triangles())}
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return err
	}
	var (
		b [stlTriangleSize]byte
		d stlTriangle
	)
	for i := 0; i < m.Triangles(); i++ {
		d.Normal = [3]float32{}
		v := m.Vertices[9*i:]
		copy(d.Vertex1[:], v[0:3])
		copy(d.Vertex2[:], v[3:6])
		copy(d.Vertex3[:], v[6:9])
		if len(m.Normals) >= 9*(i+1) {
			copy(d.Normal[:], m.Normals[9*i:9*i+3])
		}
		d.put(b[:])
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSTL reads a binary STL file.
func ReadSTL(r io.Reader) (*Mesh, error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("kernel: EOF while reading STL header")
		}
		return nil, fmt.Errorf("kernel: STL header: %w", err)
	}
	if header.Count == 0 {
		return nil, errEmptyMesh
	}
	n := 9 * min(int(header.Count), stlPrealloc)
	m := &Mesh{
		Vertices: make([]float32, 0, n),
		Normals:  make([]float32, 0, n),
	}
	var (
		b [stlTriangleSize]byte
		d stlTriangle
	)
	for i := 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("kernel: %d/%d STL triangles read: %w", i, header.Count, err)
		}
		d.get(b[:])
		m.Vertices = append(m.Vertices, d.Vertex1[:]...)
		m.Vertices = append(m.Vertices, d.Vertex2[:]...)
		m.Vertices = append(m.Vertices, d.Vertex3[:]...)
		for j := 0; j < 3; j++ {
			m.Normals = append(m.Normals, d.Normal[:]...)
		}
	}
	return m, m.Validate()
}

func (t stlTriangle) put(b []byte) {
	_ = b[stlTriangleSize-1]
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t *stlTriangle) get(b []byte) {
	_ = b[stlTriangleSize-1]
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}
