package forge

import (
	"github.com/soypat/fasteners/kernel"
	"github.com/soypat/fasteners/profile"
	"github.com/soypat/fasteners/standard"
	"gonum.org/v1/gonum/spatial/r3"
)

// tapDrillRatio approximates the tap drill of a metric coarse thread as a
// fraction of its nominal diameter.
const tapDrillRatio = 0.85

// TSlotSection returns the (x, y) cross section of a T-slot nut: the neck of
// width a rises to y = 0 from a base of width e and height k, total height h.
func TSlotSection(a, e, h, k float64) *profile.Builder {
	neck := -(h - k)
	return profile.NewBuilder().
		AddPoint(-a/2, 0).
		AddPoint(a/2, 0).
		AddPoint(a/2, neck).
		AddPoint(e/2, neck).
		AddPoint(e/2, -h).
		AddPoint(-e/2, -h).
		AddPoint(-e/2, neck).
		AddPoint(-a/2, neck)
}

// tSlotNut extrudes the T section as long as the base is wide and drills
// the tapped bore down the Z axis. The top face is at z = 0.
func (b *build) tSlotNut() (kernel.Solid, error) {
	a := b.get(standard.SlotWidth)
	e := b.get(standard.BaseWidth)
	h := b.get(standard.Height)
	k := b.get(standard.BaseHeight)
	d := b.get(standard.Diameter)

	// Rotating the extrusion about X takes section y to Z.
	body, err := b.extrude("body", TSlotSection(a, e, h, k), e, kernel.Placement{
		Translation: r3.Vec{Y: e / 2},
		RotX:        90,
	})
	if err != nil {
		return nil, err
	}
	bore, err := b.cylinder("bore", tapDrillRatio*d/2, h+2, kernel.At(0, 0, -h-1))
	if err != nil {
		return nil, err
	}
	return b.cut("bore", body, bore)
}
