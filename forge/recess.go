package forge

import (
	"fmt"

	"github.com/soypat/fasteners/kernel"
	"github.com/soypat/fasteners/profile"
)

// recessClearance is how far recess tools stick out of the head.
const recessClearance = 1.0

// wingWidth is the wing width of type H cross recesses by recess number.
var wingWidth = [...]float64{0.61, 0.97, 1.47, 2.41, 3.48}

// Recess is a type H cross recess.
type Recess struct {
	Size     int     // recess number, 0 to 4
	Diameter float64 // m, at the head surface
	Depth    float64 // penetration q
}

func (r Recess) Validate() error {
	switch {
	case r.Size < 0 || r.Size >= len(wingWidth):
		return fmt.Errorf("forge: no cross recess number %d", r.Size)
	case r.Diameter <= wingWidth[r.Size]:
		return fmt.Errorf("forge: cross recess diameter %g too small for PH%d", r.Diameter, r.Size)
	case r.Depth <= 0:
		return fmt.Errorf("forge: cross recess depth %g must be positive", r.Depth)
	}
	return nil
}

// Cone returns the (r, z) profile of the cone bounding the recess, with the
// head surface at z = 0.
func (r Recess) Cone() *profile.Builder {
	m := r.Diameter / 2
	return profile.NewBuilder().
		AddPoint(0, -r.Depth).
		AddPoint(m, 0).
		AddPoint(m, recessClearance).
		AddPoint(0, recessClearance)
}

// Cross returns the (x, y) cross section of the recess wings.
func (r Recess) Cross() *profile.Builder {
	a := wingWidth[r.Size] / 2
	m := r.Diameter / 2
	return profile.NewBuilder().
		AddPoint(m, -a).AddPoint(m, a).
		AddPoint(a, a).AddPoint(a, m).
		AddPoint(-a, m).AddPoint(-a, a).
		AddPoint(-m, a).AddPoint(-m, -a).
		AddPoint(-a, -a).AddPoint(-a, -m).
		AddPoint(a, -m).AddPoint(a, -a)
}

// crossRecess cuts recess r into the head surface of body at z = top.
func (b *build) crossRecess(body kernel.Solid, r Recess, top float64) (kernel.Solid, error) {
	const feature = "cross recess"
	if err := r.Validate(); err != nil {
		return nil, b.fail(feature, err)
	}
	cone, err := b.revolve(feature, r.Cone())
	if err != nil {
		return nil, err
	}
	cone, err = b.g.Kernel.Transform(cone, kernel.At(0, 0, top))
	if err != nil {
		return nil, b.fail(feature, err)
	}
	wings, err := b.extrude(feature, r.Cross(), r.Depth+recessClearance, kernel.At(0, 0, top-r.Depth))
	if err != nil {
		return nil, err
	}
	tool, err := b.g.Kernel.Intersect(cone, wings)
	if err != nil {
		return nil, b.fail(feature, err)
	}
	return b.cut(feature, body, tool)
}
