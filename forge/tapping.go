package forge

import (
	"math"

	"github.com/soypat/fasteners"
	"github.com/soypat/fasteners/kernel"
	"github.com/soypat/fasteners/profile"
	"github.com/soypat/fasteners/standard"
	"github.com/soypat/fasteners/thread"
)

// tipAngle is the included angle of conical tapping screw points in degrees.
const tipAngle = 45

// TappingScrew holds the working dimensions of a pan head tapping screw.
type TappingScrew struct {
	Point byte // 'C' conical, 'F' flat or 'R' round

	Diameter float64 // nominal thread diameter
	L        float64
	// B is the threaded length. Zero, or anything not shorter than L,
	// threads the full length.
	B float64

	HeadDiameter float64
	HeadHeight   float64
	Fillet       float64

	Pitch         float64
	MinorDiameter float64
	TipDiameter   float64 // flat point diameter
	TipRadius     float64 // round point radius

	Threaded bool
}

func (s TappingScrew) fullLength() bool { return s.B <= 0 || s.B >= s.L }

func (s TappingScrew) threadLength() float64 {
	if s.fullLength() {
		return s.L
	}
	return s.B
}

// radii returns the thread root and crest radii and the radius of the
// profile's shank.
func (s TappingScrew) radii() (ri, ro, sr float64) {
	ri = s.MinorDiameter / 2
	ro = s.Diameter / 2
	sr = ro
	if s.Threaded {
		sr = ri
	}
	return ri, ro, sr
}

// TipLength returns the axial length of the point.
func (s TappingScrew) TipLength() float64 {
	_, _, sr := s.radii()
	if s.Point == 'F' {
		return sr - s.TipDiameter/2
	}
	return sr / math.Tan(tipAngle/2*math.Pi/180)
}

// headAndShank adds everything above the point.
func (s TappingScrew) headAndShank() *profile.Builder {
	ri, ro, sr := s.radii()
	slope := ro - ri
	full := s.fullLength()
	l, b := s.L, s.threadLength()
	D, K := s.HeadDiameter, s.HeadHeight

	// Pan head as a single spline instead of two tangent arcs.
	pb := profile.NewBuilder().
		AddPoint(0, K).
		AddSplineFillet(D/2, K, D/2, 0).
		AddPoint(ro+s.Fillet, 0)
	if s.Threaded && full {
		pb.AddSplineFillet(ro, 0, sr, -slope)
	} else {
		pb.AddArc(0, -s.Fillet, 90)
	}
	if !full {
		// Incomplete thread: plain shank down to where the thread grows in.
		if s.Threaded {
			pb.AddPoint(ro, -l+b+slope)
		}
		pb.AddPoint(sr, -l+b)
	}
	return pb
}

// Profile returns the body profile of the screw. The head sits on z >= 0.
func (s TappingScrew) Profile() (*profile.Builder, error) {
	_, _, sr := s.radii()
	l, tip := s.L, s.TipLength()
	pb := s.headAndShank()
	switch s.Point {
	case 'C':
		pb.AddPoint(sr, -l+tip).
			AddPoint(0, -l)
	case 'F':
		pb.AddPoint(sr, -l+tip).
			AddPoint(s.TipDiameter/2, -l).
			AddPoint(0, -l)
	case 'R':
		rR := s.TipRadius
		pb.AddPoint(sr, -l+tip).
			AddPoint(rR*cos45, rR-l).
			AddArc(-rR*cos45, rR*cos45, -45)
	default:
		return nil, &standard.VariantError{Type: "ISO7049-" + string(s.Point)}
	}
	return pb, nil
}

// Envelope returns the thread of the screw, if threaded.
func (s TappingScrew) Envelope() (thread.Envelope, bool) {
	if !s.Threaded {
		return thread.Envelope{}, false
	}
	ri, ro, _ := s.radii()
	l := s.L
	e := thread.Envelope{
		ZStart:      -l + s.threadLength() + ro - ri,
		ZTipStart:   -l + s.TipLength(),
		ZEnd:        -l,
		InnerRadius: ri,
		OuterRadius: ro,
		Pitch:       s.Pitch,
	}
	switch s.Point {
	case 'F':
		e.OmitTip = true
	case 'R':
		// Lifted to stay inside the rounded point.
		e.ZEnd = -l + s.TipRadius
	}
	return e, true
}

func (b *build) screw() TappingScrew {
	return TappingScrew{
		Point:         b.spec.Type.Variant(),
		Diameter:      b.get(standard.Diameter),
		L:             b.get(standard.Length),
		B:             b.spec.ThreadLength,
		HeadDiameter:  b.get(standard.HeadDiameter),
		HeadHeight:    b.get(standard.HeadHeight),
		Fillet:        b.get(standard.FilletRadius),
		Pitch:         b.get(standard.Pitch),
		MinorDiameter: b.get(standard.MinorDiameter),
		TipDiameter:   b.get(standard.TipDiameter),
		TipRadius:     b.get(standard.TipRadius),
		Threaded:      b.spec.Threaded,
	}
}

func (b *build) tappingScrew() (kernel.Solid, error) {
	s := b.screw()
	pb, err := s.Profile()
	if err != nil {
		return nil, err
	}
	body, err := b.revolve("body", pb)
	if err != nil {
		return nil, err
	}
	body, err = b.crossRecess(body, recessOf(b.d), s.HeadHeight)
	if err != nil {
		return nil, err
	}
	if e, ok := s.Envelope(); ok {
		return b.threadOn(body, e)
	}
	return body, nil
}

func recessOf(d fasteners.Dimensions) Recess {
	return Recess{
		Size:     int(math.Round(d.Get(standard.RecessSize))),
		Diameter: d.Get(standard.RecessDiameter),
		Depth:    d.Get(standard.RecessDepth),
	}
}
