package fasteners

import (
	"strings"

	"github.com/soypat/fasteners/standard"
)

// LeftHandSuffix is appended to the designation of left-handed fasteners.
const LeftHandSuffix = " - LH"

// Designate resolves spec and returns its designation.
func Designate(spec Spec) (string, error) {
	dims, err := Resolve(spec)
	if err != nil {
		return "", err
	}
	return Designation(spec, dims)
}

// Designation formats the human readable designation of a fastener, as used
// in bills of materials, from its type's template.
func Designation(spec Spec, dims Dimensions) (string, error) {
	tmpl, err := standard.Template(spec.Type.String())
	if err != nil {
		return "", err
	}
	units := UnitsOf(spec.Type)
	length := spec.Length
	if length == Custom {
		length = FormatLength(spec.CustomLength, units)
	}
	slot := ""
	if v, ok := dims.Lookup(standard.SlotWidth); ok {
		slot = FormatLength(MM(v), units)
	}
	r := strings.NewReplacer(
		standard.PlaceholderDiameter, diameterLabel(spec, units),
		standard.PlaceholderLength, length,
		standard.PlaceholderSlotWidth, slot,
		standard.PlaceholderTCode, spec.TCode,
	)
	s := r.Replace(tmpl)
	if spec.LeftHanded {
		s += LeftHandSuffix
	}
	return s, nil
}

func diameterLabel(spec Spec, units Unit) string {
	if spec.Diameter == Custom {
		return customLabel(spec.Type, FormatLength(spec.CustomDiameter, units))
	}
	switch spec.Type {
	case standard.ISO299:
		// The size key names thread and slot, the template names them apart.
		thread, _, _ := strings.Cut(spec.Diameter, "x")
		return thread
	}
	return spec.Diameter
}

// customLabel writes a custom diameter v the way the type's size keys are
// written, e.g. "ST 3.3" or "3.3 mm".
func customLabel(t standard.Type, v string) string {
	sizes := standard.Sizes(t)
	if len(sizes) == 0 {
		return v
	}
	key := sizes[0]
	for _, cat := range diameterCategories {
		if rest, ok := strings.CutPrefix(key, cat); ok {
			if strings.HasPrefix(rest, " ") {
				return cat + " " + v
			}
			return cat + v
		}
	}
	if strings.HasSuffix(key, " mm") {
		return v + " mm"
	}
	return v
}
