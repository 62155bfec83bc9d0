package fasteners

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soypat/fasteners/standard"
)

// MillimetresPerInch is the exact inch definition.
const MillimetresPerInch = 25.4

// Unit is a length unit.
type Unit uint8

const (
	Millimetre Unit = iota
	Inch
)

func (u Unit) String() string {
	switch u {
	case Millimetre:
		return "mm"
	case Inch:
		return "in"
	}
	return fmt.Sprintf("Unit(%d)", u)
}

// Length is a physical length tagged with its unit. Lengths of different
// units never mix without an explicit conversion.
type Length struct {
	Value float64 `json:"value" validate:"gte=0"`
	Unit  Unit    `json:"unit"`
}

// MM returns a length in millimetres.
func MM(v float64) Length { return Length{Value: v, Unit: Millimetre} }

// Inches returns a length in inches.
func Inches(v float64) Length { return Length{Value: v, Unit: Inch} }

// In returns the length expressed in unit u.
func (l Length) In(u Unit) float64 {
	if l.Unit == u {
		return l.Value
	}
	if u == Inch {
		return l.Value / MillimetresPerInch
	}
	return l.Value * MillimetresPerInch
}

// Millimetres returns the length in millimetres, the unit geometry is built in.
func (l Length) Millimetres() float64 { return l.In(Millimetre) }

// IsZero reports whether the length was never set.
func (l Length) IsZero() bool { return l.Value == 0 }

// String formats the length with the display rules of its own unit.
func (l Length) String() string { return FormatLength(l, l.Unit) }

// UnitsOf returns the display units of a base type. ASME and SAE families
// are inch based, everything else (ISO, DIN, GOST, ...) is metric.
func UnitsOf(t standard.Type) Unit {
	return unitsOfName(t.String())
}

func unitsOfName(name string) Unit {
	if strings.HasPrefix(name, "ASME") || strings.HasPrefix(name, "SAE") {
		return Inch
	}
	return Millimetre
}

// FormatLength formats l in unit u: inches with 3 decimals and an "in"
// suffix, millimetres with 2 decimals and no suffix. Trailing zeros are
// dropped.
func FormatLength(l Length, u Unit) string {
	v := l.In(u)
	if u == Inch {
		return formatRounded(v, 3) + "in"
	}
	return formatRounded(v, 2)
}

func formatRounded(v float64, decimals int) string {
	p := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', -1, 64)
}
