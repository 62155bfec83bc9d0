package forge

import (
	"math"

	"github.com/soypat/fasteners/kernel"
	"github.com/soypat/fasteners/profile"
	"github.com/soypat/fasteners/standard"
)

// nailPointAngle is the included angle of nail points in degrees.
const nailPointAngle = 20

func nailTipLength(d float64) float64 {
	return (d / 2) / math.Tan(nailPointAngle/2*math.Pi/180)
}

// PlainHeadNail returns the profile of a nail with a flat head of width w
// and thickness th on z >= 0.
func PlainHeadNail(d, l, w, th float64) *profile.Builder {
	r := d / 10
	return profile.NewBuilder().
		AddPoint(0, th).
		AddPoint(w/2, th).
		AddPoint(w/2, 0).
		AddPoint(d/2+r, 0).
		AddArc(0, -r, 90).
		AddPoint(d/2, -l+nailTipLength(d)).
		AddPoint(0, -l)
}

// CountersunkNail returns the profile of a nail with a countersunk head of
// width w and included angle csnk in degrees. The head face is at z = 0.
func CountersunkNail(d, l, w, csnk float64) *profile.Builder {
	zz := (w - d) / (2 * math.Tan(csnk/2*math.Pi/180))
	return profile.NewBuilder().
		AddPoint(0, 0).
		AddPoint(w/2, 0).
		AddPoint(d/2, -zz).
		AddPoint(d/2, -l+zz+nailTipLength(d)).
		AddPoint(0, -l+zz)
}

func (b *build) nailProfile() (*profile.Builder, error) {
	d := b.get(standard.Diameter)
	l := b.get(standard.Length)
	switch b.spec.Type {
	case standard.DIN1143:
		return CountersunkNail(d, l, 1.1*b.get(standard.HeadDiameter), 140), nil
	case standard.DIN1144A:
		return PlainHeadNail(d, l, 20, 1), nil
	case standard.DIN1151A:
		return PlainHeadNail(d, l, 2*d, d/4), nil
	case standard.DIN1151B:
		return CountersunkNail(d, l, 3*d, 120), nil
	case standard.DIN1152:
		return PlainHeadNail(d, l, 1.25*d, 1.5*d), nil
	case standard.DIN1160A, standard.DIN1160B:
		return PlainHeadNail(d, l, b.get(standard.HeadDiameter), d/5), nil
	}
	return nil, &standard.VariantError{Type: b.spec.Type.String()}
}

func (b *build) nail() (kernel.Solid, error) {
	pb, err := b.nailProfile()
	if err != nil {
		return nil, err
	}
	body, err := b.revolve("body", pb)
	if err != nil {
		return nil, err
	}
	d := b.get(standard.Diameter)
	switch b.spec.Type {
	case standard.DIN1143:
		d2 := b.get(standard.HeadDiameter)
		ring, err := b.revolve("head groove", profile.NewBuilder().
			AddPoint(d2/2, 0).
			AddPoint(1.5*d2/2, 0).
			AddPoint(d2/2, -d2/2))
		if err != nil {
			return nil, err
		}
		return b.cut("head groove", body, ring)
	case standard.DIN1144A:
		dome, err := b.revolve("dome", profile.NewBuilder().
			AddPoint(0, 0.6*d).
			AddArc(0, -d/2, -180))
		if err != nil {
			return nil, err
		}
		return b.fuse("dome", body, dome)
	}
	return body, nil
}
