// Package forge builds fastener solids from resolved dimensions.
//
// Every supported standard.Type has one generator. Dispatch is an
// exhaustive switch over the closed type set; a type without a generator is
// an unsupported variant. Generators are pure: they read the spec and its
// dimensions, build profiles and hand them to a kernel.Kernel.
package forge

import (
	"errors"
	"math"

	"github.com/soypat/fasteners"
	"github.com/soypat/fasteners/kernel"
	"github.com/soypat/fasteners/profile"
	"github.com/soypat/fasteners/standard"
	"github.com/soypat/fasteners/thread"
)

var (
	// ErrNotRevolved is returned by Profile for types that are not solids of
	// revolution.
	ErrNotRevolved = errors.New("forge: type is not a solid of revolution")
	// ErrDegenerate is wrapped by geometry errors of profiles that enclose
	// no area.
	ErrDegenerate = errors.New("forge: profile encloses no area")
)

// minArea is the smallest profile area in mm² handed to the kernel.
const minArea = 1e-9

// Generator builds fastener solids with a geometry kernel. It holds no
// mutable state and may be shared between goroutines when its Kernel and
// Threads can.
type Generator struct {
	Kernel kernel.Kernel
	// Threads synthesizes thread envelopes. Nil uses thread.Helical on Kernel.
	Threads thread.Synthesizer
	// Facets per quarter turn of curved profile segments. Zero uses
	// profile.DefaultFacets.
	Facets int
}

// New returns a Generator on k with helical threads.
func New(k kernel.Kernel) *Generator {
	return &Generator{Kernel: k, Threads: thread.Helical{Kernel: k}}
}

// Generate resolves spec and builds its solid.
func (g *Generator) Generate(spec fasteners.Spec) (kernel.Solid, error) {
	dims, err := fasteners.Resolve(spec)
	if err != nil {
		return nil, err
	}
	return g.Build(spec, dims)
}

// Build builds the solid of spec from already resolved dimensions. Missing
// dimensions fail with a *fasteners.DimensionError, kernel failures with a
// *fasteners.GeometryError naming the feature being built.
func (g *Generator) Build(spec fasteners.Spec, dims fasteners.Dimensions) (s kernel.Solid, err error) {
	defer catchDimension(&err)
	b := &build{g: g, spec: spec, d: dims}
	switch spec.Type {
	case standard.ISO2338:
		return b.revolve("body", DowelPin(b.get(standard.Diameter), b.get(standard.Length), b.get(standard.Chamfer)))
	case standard.ISO2339:
		return b.revolve("body", TaperPin(b.get(standard.Diameter), b.get(standard.Length), b.get(standard.EndRounding)))
	case standard.ISO2340A, standard.ISO2340B, standard.ISO2341A, standard.ISO2341B:
		return b.clevisPin()
	case standard.ISO7049C, standard.ISO7049F, standard.ISO7049R:
		return b.tappingScrew()
	case standard.DIN1143, standard.DIN1144A, standard.DIN1151A, standard.DIN1151B,
		standard.DIN1152, standard.DIN1160A, standard.DIN1160B:
		return b.nail()
	case standard.DIN508, standard.ISO299:
		return b.tSlotNut()
	}
	return nil, &standard.VariantError{Type: spec.Type.String()}
}

// Profile returns the body profile of spec before it is revolved. T-slot
// nuts are extruded and fail with ErrNotRevolved.
func Profile(spec fasteners.Spec, dims fasteners.Dimensions) (pb *profile.Builder, err error) {
	defer catchDimension(&err)
	b := &build{spec: spec, d: dims}
	switch spec.Type {
	case standard.ISO2338:
		return DowelPin(b.get(standard.Diameter), b.get(standard.Length), b.get(standard.Chamfer)), nil
	case standard.ISO2339:
		return TaperPin(b.get(standard.Diameter), b.get(standard.Length), b.get(standard.EndRounding)), nil
	case standard.ISO2340A, standard.ISO2340B, standard.ISO2341A, standard.ISO2341B:
		return b.clevis().Profile(), nil
	case standard.ISO7049C, standard.ISO7049F, standard.ISO7049R:
		return b.screw().Profile()
	case standard.DIN1143, standard.DIN1144A, standard.DIN1151A, standard.DIN1151B,
		standard.DIN1152, standard.DIN1160A, standard.DIN1160B:
		return b.nailProfile()
	case standard.DIN508, standard.ISO299:
		return nil, ErrNotRevolved
	}
	return nil, &standard.VariantError{Type: spec.Type.String()}
}

// catchDimension recovers the panic of fasteners.Dimensions.Get.
func catchDimension(err *error) {
	if a := recover(); a != nil {
		de, ok := a.(*fasteners.DimensionError)
		if !ok {
			panic(a)
		}
		*err = de
	}
}

// build carries one generation call.
type build struct {
	g    *Generator
	spec fasteners.Spec
	d    fasteners.Dimensions
}

func (b *build) get(r standard.Role) float64 { return b.d.Get(r) }

func (b *build) fail(feature string, err error) error {
	return &fasteners.GeometryError{Feature: feature, Spec: b.spec.String(), Err: err}
}

func (b *build) facets() int {
	if b.g.Facets > 0 {
		return b.g.Facets
	}
	return profile.DefaultFacets
}

func (b *build) face(feature string, pb *profile.Builder) (*profile.Face, error) {
	f, err := pb.Facets(b.facets()).Face()
	if err != nil {
		return nil, b.fail(feature, err)
	}
	if math.Abs(f.Area()) < minArea {
		return nil, b.fail(feature, ErrDegenerate)
	}
	return f, nil
}

func (b *build) revolve(feature string, pb *profile.Builder) (kernel.Solid, error) {
	f, err := b.face(feature, pb)
	if err != nil {
		return nil, err
	}
	s, err := b.g.Kernel.Revolve(f)
	if err != nil {
		return nil, b.fail(feature, err)
	}
	return s, nil
}

func (b *build) extrude(feature string, pb *profile.Builder, height float64, p kernel.Placement) (kernel.Solid, error) {
	f, err := b.face(feature, pb)
	if err != nil {
		return nil, err
	}
	s, err := b.g.Kernel.Extrude(f, height)
	if err == nil && !p.IsIdentity() {
		s, err = b.g.Kernel.Transform(s, p)
	}
	if err != nil {
		return nil, b.fail(feature, err)
	}
	return s, nil
}

func (b *build) cylinder(feature string, radius, height float64, p kernel.Placement) (kernel.Solid, error) {
	s, err := b.g.Kernel.Cylinder(radius, height, p)
	if err != nil {
		return nil, b.fail(feature, err)
	}
	return s, nil
}

func (b *build) cut(feature string, body, tool kernel.Solid) (kernel.Solid, error) {
	s, err := b.g.Kernel.Cut(body, tool)
	if err != nil {
		return nil, b.fail(feature, err)
	}
	return s, nil
}

func (b *build) fuse(feature string, body, tool kernel.Solid) (kernel.Solid, error) {
	s, err := b.g.Kernel.Fuse(body, tool)
	if err != nil {
		return nil, b.fail(feature, err)
	}
	return s, nil
}

// threadOn fuses the thread envelope e onto body.
func (b *build) threadOn(body kernel.Solid, e thread.Envelope) (kernel.Solid, error) {
	e.LeftHand = b.spec.LeftHanded
	synth := b.g.Threads
	if synth == nil {
		synth = thread.Helical{Kernel: b.g.Kernel}
	}
	th, err := synth.ThreadEnvelope(e)
	if err != nil {
		return nil, b.fail("thread", err)
	}
	return b.fuse("thread", body, th)
}
