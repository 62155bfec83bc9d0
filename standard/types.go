// Package standard holds the dimension tables of the supported fastener
// standards and the alias tables that let one standard reuse another's data.
//
// All tables are built once during package initialization and are never
// written to afterwards, so concurrent reads need no locking.
package standard

import "strings"

// Type is a fastener base type. The set is closed: adding a standard means
// adding a constant here, a table and a generator.
type Type uint8

const (
	_ Type = iota
	ISO2338
	ISO2339
	ISO2340A
	ISO2340B
	ISO2341A
	ISO2341B
	ISO7049C
	ISO7049F
	ISO7049R
	DIN1143
	DIN1144A
	DIN1151A
	DIN1151B
	DIN1152
	DIN1160A
	DIN1160B
	DIN508
	ISO299
	maxType
)

var typeNames = [maxType]string{
	ISO2338:  "ISO2338",
	ISO2339:  "ISO2339",
	ISO2340A: "ISO2340A",
	ISO2340B: "ISO2340B",
	ISO2341A: "ISO2341A",
	ISO2341B: "ISO2341B",
	ISO7049C: "ISO7049-C",
	ISO7049F: "ISO7049-F",
	ISO7049R: "ISO7049-R",
	DIN1143:  "DIN1143",
	DIN1144A: "DIN1144-A",
	DIN1151A: "DIN1151-A",
	DIN1151B: "DIN1151-B",
	DIN1152:  "DIN1152",
	DIN1160A: "DIN1160-A",
	DIN1160B: "DIN1160-B",
	DIN508:   "DIN508",
	ISO299:   "ISO299",
}

// families lists the standard numbers that come in lettered variants.
var families = []string{"ISO2340", "ISO2341", "ISO7049", "DIN1144", "DIN1151", "DIN1160"}

// String returns the canonical base type key, e.g. "ISO7049-C".
func (t Type) String() string {
	if !t.valid() {
		return "Type(invalid)"
	}
	return typeNames[t]
}

// Family returns the standard number without variant, e.g. "ISO7049".
func (t Type) Family() string {
	s := t.String()
	for _, f := range families {
		if strings.HasPrefix(s, f) {
			return f
		}
	}
	return s
}

// Variant returns the variant letter of the type or 0 if it has none.
func (t Type) Variant() byte {
	s := t.String()
	f := t.Family()
	if len(s) == len(f) {
		return 0
	}
	return s[len(s)-1]
}

func (t Type) valid() bool { return t > 0 && t < maxType }

// Types returns every supported base type in declaration order.
func Types() []Type {
	types := make([]Type, 0, maxType-1)
	for t := Type(1); t < maxType; t++ {
		types = append(types, t)
	}
	return types
}

// ParseType returns the Type named by s. A name from a known family with an
// unknown variant fails with a *VariantError, any other unknown name with a
// *LookupError.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for t := Type(1); t < maxType; t++ {
		if typeNames[t] == s {
			return t, nil
		}
	}
	for _, f := range families {
		if strings.HasPrefix(s, f) {
			return 0, &VariantError{Type: s}
		}
	}
	return 0, &LookupError{Table: "types", Key: s}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, &LookupError{Table: "types", Key: t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
