package forge

import (
	"math"

	"github.com/soypat/fasteners/kernel"
	"github.com/soypat/fasteners/profile"
	"github.com/soypat/fasteners/standard"
	"github.com/soypat/fasteners/thread"
)

// metricThreadDepth is the depth of an ISO 68-1 external thread per unit
// pitch.
const metricThreadDepth = 0.61343

var cos45 = math.Sqrt2 / 2

// Clevis holds the working dimensions of a clevis pin.
type Clevis struct {
	D, L, C float64 // shank diameter, length and end chamfer

	// Head. A zero HeadDiameter is a pin without head.
	HeadDiameter float64
	HeadHeight   float64
	Fillet       float64

	// Pitch of the shank thread. Zero leaves the shank plain.
	Pitch float64

	HoleDiameter float64
	Holes        []float64 // axial position of each transverse hole
}

// radii returns the shank radius of the profile and the thread crest radius.
func (c Clevis) radii() (sr, ro float64) {
	ro = c.D / 2
	if c.Pitch > 0 {
		return ro - metricThreadDepth*c.Pitch, ro
	}
	return ro, ro
}

// Profile returns the body profile. The head sits on z >= 0, the shank
// runs down to -L.
func (c Clevis) Profile() *profile.Builder {
	sr, ro := c.radii()
	pb := profile.NewBuilder()
	if c.HeadDiameter == 0 {
		pb.AddPoint(0, 0).
			AddPoint(sr-c.C, 0).
			AddPoint(sr, -c.C)
	} else {
		ch := c.C * cos45
		rk := c.HeadDiameter / 2
		pb.AddPoint(0, c.HeadHeight).
			AddPoint(rk-ch, c.HeadHeight).
			AddPoint(rk, c.HeadHeight-ch).
			AddPoint(rk, 0).
			AddPoint(ro+c.Fillet, 0)
		if c.Pitch > 0 {
			// The thread starts right under the head.
			pb.AddSplineFillet(ro, 0, sr, -(ro - sr))
		} else {
			pb.AddArc(0, -c.Fillet, 90)
		}
	}
	return pb.AddPoint(sr, -c.L+c.C).
		AddPoint(sr-c.C, -c.L).
		AddPoint(0, -c.L)
}

// Envelope returns the shank thread, if any.
func (c Clevis) Envelope() (thread.Envelope, bool) {
	if c.Pitch <= 0 {
		return thread.Envelope{}, false
	}
	sr, ro := c.radii()
	top := -c.C
	if c.HeadDiameter > 0 {
		top = ro - sr
	}
	return thread.Envelope{
		ZStart:      top,
		ZTipStart:   -c.L + c.C,
		ZEnd:        -c.L,
		InnerRadius: sr,
		OuterRadius: ro,
		Pitch:       c.Pitch,
	}, true
}

func (b *build) clevis() Clevis {
	c := Clevis{
		D: b.get(standard.Diameter),
		L: b.get(standard.Length),
		C: b.get(standard.Chamfer),
	}
	switch b.spec.Type {
	case standard.ISO2341A, standard.ISO2341B:
		c.HeadDiameter = b.get(standard.HeadDiameter)
		c.HeadHeight = b.get(standard.HeadHeight)
		c.Fillet = b.get(standard.FilletRadius)
	}
	if b.spec.Threaded {
		c.Pitch = b.get(standard.Pitch)
	}
	switch b.spec.Type {
	case standard.ISO2340B:
		le := b.get(standard.HoleEdgeDistance)
		c.HoleDiameter = b.get(standard.HoleDiameter)
		c.Holes = []float64{-le, -c.L + le}
	case standard.ISO2341B:
		c.HoleDiameter = b.get(standard.HoleDiameter)
		c.Holes = []float64{-c.L + b.get(standard.HoleEdgeDistance)}
	}
	return c
}

func (b *build) clevisPin() (kernel.Solid, error) {
	c := b.clevis()
	body, err := b.revolve("body", c.Profile())
	if err != nil {
		return nil, err
	}
	if e, ok := c.Envelope(); ok {
		body, err = b.threadOn(body, e)
		if err != nil {
			return nil, err
		}
	}
	return b.transverseHoles(body, c.HoleDiameter/2, c.D, c.Holes)
}
