// Package thread synthesizes the helical thread envelopes fused onto
// fastener shanks.
//
// An envelope is a V thread swept along a helix about the Z axis. It is
// built the way screws are in sdf packages: the distance from the axis maps
// to the tooth height and the angle plus height map to a position along one
// pitch, so no mesh or sweep is needed.
package thread

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/fasteners/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Envelope describes a thread running down the Z axis from ZStart to ZEnd.
// Between ZTipStart and ZEnd the thread tapers to the axis with the point of
// the fastener.
type Envelope struct {
	ZStart      float64
	ZTipStart   float64
	ZEnd        float64
	InnerRadius float64 // root
	OuterRadius float64 // crest
	Pitch       float64
	// OmitTip stops the thread at ZTipStart, for flat tipped points.
	OmitTip  bool
	LeftHand bool
}

// Validate checks the envelope is a well formed thread.
func (e Envelope) Validate() error {
	switch {
	case e.Pitch <= 0:
		return fmt.Errorf("thread: pitch %g must be positive", e.Pitch)
	case e.InnerRadius <= 0:
		return fmt.Errorf("thread: root radius %g must be positive", e.InnerRadius)
	case e.OuterRadius <= e.InnerRadius:
		return fmt.Errorf("thread: crest radius %g must exceed root radius %g", e.OuterRadius, e.InnerRadius)
	case e.ZEnd >= e.ZStart:
		return errors.New("thread: end must be below start")
	case e.ZTipStart > e.ZStart || e.ZTipStart < e.ZEnd:
		return errors.New("thread: tip start must lie between start and end")
	case e.OmitTip && e.ZTipStart == e.ZStart:
		return errors.New("thread: no thread left above the omitted tip")
	}
	return nil
}

// Evaluate returns an approximate signed distance from p to the envelope.
func (e Envelope) Evaluate(p r3.Vec) float64 {
	rho := math.Hypot(p.X, p.Y)
	root, crest := e.radii(p.Z)
	// Position along the pitch, 0 on the crest line and ±Pitch/2 on the root.
	theta := math.Atan2(p.Y, p.X)
	z := p.Z + e.lead()*theta/(2*math.Pi)
	t := math.Abs(sawTooth(z, e.Pitch)) / (e.Pitch / 2)
	r := crest - (crest-root)*t
	d0 := (rho - r) * flankFactor(crest-root, e.Pitch/2)
	d1 := math.Max(e.bottom()-p.Z, p.Z-e.ZStart)
	return math.Max(d0, d1)
}

// Bounds returns the bounding box of the envelope.
func (e Envelope) Bounds() r3.Box {
	r := e.OuterRadius
	return r3.Box{
		Min: r3.Vec{X: -r, Y: -r, Z: e.bottom()},
		Max: r3.Vec{X: r, Y: r, Z: e.ZStart},
	}
}

// radii returns root and crest radius at height z.
func (e Envelope) radii(z float64) (root, crest float64) {
	if z >= e.ZTipStart || e.ZTipStart == e.ZEnd {
		return e.InnerRadius, e.OuterRadius
	}
	f := (z - e.ZEnd) / (e.ZTipStart - e.ZEnd)
	f = math.Max(0, math.Min(1, f))
	return e.InnerRadius * f, e.OuterRadius * f
}

func (e Envelope) bottom() float64 {
	if e.OmitTip {
		return e.ZTipStart
	}
	return e.ZEnd
}

// lead is the axial advance per turn, negative for right hand threads.
func (e Envelope) lead() float64 {
	if e.LeftHand {
		return e.Pitch
	}
	return -e.Pitch
}

// flankFactor scales radial distance to distance normal to a flank rising
// h over w.
func flankFactor(h, w float64) float64 {
	if h <= 0 {
		return 1
	}
	return w / math.Hypot(w, h)
}

func sawTooth(x, period float64) float64 {
	x += period / 2
	t := x / period
	return period*(t-math.Floor(t)) - period/2
}

// Synthesizer turns thread envelopes into solids.
type Synthesizer interface {
	ThreadEnvelope(e Envelope) (kernel.Solid, error)
}

// Helical synthesizes envelopes as implicit solids of a kernel.
type Helical struct {
	Kernel kernel.Kernel
}

func (h Helical) ThreadEnvelope(e Envelope) (kernel.Solid, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return h.Kernel.Field(e)
}
