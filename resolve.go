package fasteners

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/soypat/fasteners/standard"
)

// Avg returns the midpoint of a tolerance interval.
func Avg(lo, hi float64) float64 { return (lo + hi) / 2 }

// Resolve looks up spec's size in the standards tables and returns its
// working dimensions. Interval dimensions are reduced to their midpoint.
// It fails before any geometry is built when a dimension the type's
// generator consumes cannot be resolved.
func Resolve(spec Spec) (Dimensions, error) {
	if err := spec.Validate(); err != nil {
		return Dimensions{}, err
	}
	t := spec.Type
	size := spec.Diameter
	if size == Custom {
		var err error
		size, err = nearestSize(t, spec.CustomDiameter.Millimetres())
		if err != nil {
			return Dimensions{}, err
		}
	}
	row, err := standard.Lookup(t, size)
	if err != nil {
		return Dimensions{}, err
	}
	dims := newDimensions(t)
	row.Each(func(c standard.Column, lo, hi float64) {
		dims.set(c.Role, Avg(lo, hi))
	})
	if ts := t.ThreadStandard(); ts != "" {
		thread, err := standard.LookupThread(ts, size)
		if err != nil {
			return Dimensions{}, err
		}
		thread.Each(func(c standard.Column, lo, hi float64) {
			dims.set(c.Role, Avg(lo, hi))
		})
	}

	switch {
	case spec.Diameter == Custom:
		dims.set(standard.Diameter, spec.CustomDiameter.Millimetres())
	case !dims.Has(standard.Diameter):
		d, err := ParseDiameter(spec.Diameter)
		if err != nil {
			return Dimensions{}, err
		}
		dims.set(standard.Diameter, d.Millimetres())
	}

	if !dims.Has(standard.Length) {
		switch spec.Length {
		case "":
			// Reported below if the generator needs it.
		case Custom:
			dims.set(standard.Length, spec.CustomLength.Millimetres())
		default:
			l, err := ParseLength(spec.Length, dims.Units)
			if err != nil {
				return Dimensions{}, err
			}
			dims.set(standard.Length, l.Millimetres())
		}
	}

	for _, r := range t.Required() {
		if !dims.Has(r) {
			return Dimensions{}, &DimensionError{Type: t, Role: r}
		}
	}
	return dims, nil
}

// nearestSize returns the largest table size not above diameter, or the
// smallest size when diameter is below every entry.
func nearestSize(t standard.Type, diameter float64) (string, error) {
	sizes := standard.Sizes(t)
	best, bestD := "", math.Inf(-1)
	smallest, smallestD := "", math.Inf(1)
	for _, size := range sizes {
		d, err := ParseDiameter(size)
		if err != nil {
			continue
		}
		v := d.Millimetres()
		if v <= diameter && v > bestD {
			best, bestD = size, v
		}
		if v < smallestD {
			smallest, smallestD = size, v
		}
	}
	switch {
	case best != "":
		return best, nil
	case smallest != "":
		return smallest, nil
	}
	return "", &standard.LookupError{Table: t.String(), Key: Custom}
}

// diameterCategories are the prefixes that name a size category rather than
// a number, as in "ST 3.5" or "M6".
var diameterCategories = []string{"ST", "M"}

// ParseDiameter parses a symbolic diameter. It accepts a category prefix
// ("ST 3.5", "M6"), a trailing second dimension ("M10x12", "2.2 x 50")
// which is ignored, and an optional unit suffix ("3 mm", "1/4in").
// Values without suffix are millimetres.
func ParseDiameter(s string) (Length, error) {
	v := strings.TrimSpace(s)
	for _, prefix := range diameterCategories {
		if strings.HasPrefix(v, prefix) {
			v = v[len(prefix):]
			break
		}
	}
	if i := strings.IndexAny(v, "xX"); i >= 0 {
		v = v[:i]
	}
	return parseLength(s, v, Millimetre)
}

// ParseLength parses a length with an optional unit suffix. Values without
// suffix are in unit u.
func ParseLength(s string, u Unit) (Length, error) {
	return parseLength(s, s, u)
}

func parseLength(orig, v string, u Unit) (Length, error) {
	v = strings.TrimSpace(v)
	switch {
	case strings.HasSuffix(v, "mm"):
		u = Millimetre
		v = strings.TrimSuffix(v, "mm")
	case strings.HasSuffix(v, "in"):
		u = Inch
		v = strings.TrimSuffix(v, "in")
	case strings.HasSuffix(v, `"`):
		u = Inch
		v = strings.TrimSuffix(v, `"`)
	}
	n, err := parseNumber(strings.TrimSpace(v))
	if err != nil {
		return Length{}, &ParseError{Input: orig, Err: err}
	}
	if n <= 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return Length{}, &ParseError{Input: orig, Err: errors.New("length must be a positive number")}
	}
	return Length{Value: n, Unit: u}, nil
}

// parseNumber parses decimals and simple fractions such as "1/4".
func parseNumber(s string) (float64, error) {
	num, den, isFrac := strings.Cut(s, "/")
	if !isFrac {
		return strconv.ParseFloat(s, 64)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, errors.New("zero denominator")
	}
	return n / d, nil
}
