package forge

import (
	"github.com/soypat/fasteners/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// transverseHoles cuts a hole of radius r across a shank of diameter d at
// each axial position in zs. Holes run along X through the axis.
func (b *build) transverseHoles(body kernel.Solid, r, d float64, zs []float64) (kernel.Solid, error) {
	length := 2 * d
	for _, z := range zs {
		hole, err := b.cylinder("transverse hole", r, length, kernel.Placement{
			Translation: r3.Vec{X: -length / 2, Z: z},
			RotY:        90,
		})
		if err != nil {
			return nil, err
		}
		body, err = b.cut("transverse hole", body, hole)
		if err != nil {
			return nil, err
		}
	}
	return body, nil
}
