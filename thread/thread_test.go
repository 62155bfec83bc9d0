package thread

import (
	"math"
	"testing"

	"github.com/soypat/fasteners/kernel/sdfx"
	"gonum.org/v1/gonum/spatial/r3"
)

var st35 = Envelope{
	ZStart:      0.5,
	ZTipStart:   -13,
	ZEnd:        -16,
	InnerRadius: 1.29,
	OuterRadius: 1.75,
	Pitch:       1.3,
}

func TestEnvelopeInside(t *testing.T) {
	e := st35
	// On the +X axis theta is zero, so the crest sits at multiples of the pitch.
	for _, test := range []struct {
		p      r3.Vec
		inside bool
	}{
		{r3.Vec{X: 1.7, Z: -2 * e.Pitch}, true},             // just under the crest
		{r3.Vec{X: 1.7, Z: -2*e.Pitch - e.Pitch/2}, false},  // crest radius over the root
		{r3.Vec{X: 1.2, Z: -2*e.Pitch - e.Pitch/2}, true},   // under the root
		{r3.Vec{X: 1.8, Z: -4}, false},                      // beyond the crest
		{r3.Vec{Z: -5}, true},                               // on the axis
		{r3.Vec{Z: 1}, false},                               // above the start
		{r3.Vec{Z: -16.5}, false},                           // below the end
		{r3.Vec{X: 1.2, Z: -15.5}, false},                   // tip tapers in
		{r3.Vec{X: 0.1, Z: -15.5}, true},                    // tip core
	} {
		d := e.Evaluate(test.p)
		if (d < 0) != test.inside {
			t.Errorf("%+v: distance %v, inside want %v", test.p, d, test.inside)
		}
	}
}

func TestEnvelopeOmitTip(t *testing.T) {
	e := st35
	e.OmitTip = true
	if d := e.Evaluate(r3.Vec{Z: -14}); d <= 0 {
		t.Errorf("omitted tip still threaded: %v", d)
	}
	if d := e.Evaluate(r3.Vec{Z: -12}); d >= 0 {
		t.Errorf("thread above tip missing: %v", d)
	}
	if got := e.Bounds().Min.Z; got != e.ZTipStart {
		t.Errorf("bounds bottom %v", got)
	}
}

func TestEnvelopeHandedness(t *testing.T) {
	right := st35
	left := st35
	left.LeftHand = true
	for _, p := range []r3.Vec{
		{X: 1.5, Y: 0.4, Z: -3.1},
		{X: -1.1, Y: 1.2, Z: -7.7},
		{X: 0.3, Y: -1.6, Z: -0.2},
	} {
		mirror := r3.Vec{X: p.X, Y: -p.Y, Z: p.Z}
		if dr, dl := right.Evaluate(p), left.Evaluate(mirror); math.Abs(dr-dl) > 1e-12 {
			t.Errorf("left hand thread is not a mirror image at %+v: %v != %v", p, dr, dl)
		}
	}
	p := r3.Vec{X: 1.6, Y: 0.8, Z: -3}
	if right.Evaluate(p) == left.Evaluate(p) {
		t.Error("handedness has no effect")
	}
}

func TestEnvelopeValidate(t *testing.T) {
	for _, mod := range []func(*Envelope){
		func(e *Envelope) { e.Pitch = 0 },
		func(e *Envelope) { e.InnerRadius = 0 },
		func(e *Envelope) { e.OuterRadius = e.InnerRadius },
		func(e *Envelope) { e.ZEnd = e.ZStart },
		func(e *Envelope) { e.ZTipStart = e.ZStart + 1 },
		func(e *Envelope) { e.ZTipStart = e.ZEnd - 1 },
		func(e *Envelope) { e.OmitTip = true; e.ZTipStart = e.ZStart },
	} {
		e := st35
		mod(&e)
		if e.Validate() == nil {
			t.Errorf("invalid envelope accepted: %+v", e)
		}
		if _, err := (Helical{Kernel: sdfx.Kernel{}}).ThreadEnvelope(e); err == nil {
			t.Errorf("synthesizer accepted %+v", e)
		}
	}
	if err := st35.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestHelicalVolume(t *testing.T) {
	e := Envelope{ZStart: 0, ZTipStart: -20, ZEnd: -20, InnerRadius: 4, OuterRadius: 5, Pitch: 2}
	k := sdfx.Kernel{}
	s, err := Helical{Kernel: k}.ThreadEnvelope(e)
	if err != nil {
		t.Fatal(err)
	}
	m, err := k.Mesh(s, 100)
	if err != nil {
		t.Fatal(err)
	}
	vol := math.Abs(m.Volume())
	root := math.Pi * 16 * 20
	crest := math.Pi * 25 * 20
	if vol < root*0.97 || vol > crest {
		t.Errorf("thread volume %v outside [%v, %v]", vol, root, crest)
	}
	// A V tooth fills half the annulus.
	if mid := (root + crest) / 2; math.Abs(vol-mid)/mid > 0.05 {
		t.Errorf("thread volume %v, want about %v", vol, mid)
	}
}
