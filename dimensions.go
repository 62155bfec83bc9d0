package fasteners

import (
	"encoding/json"
	"sort"

	"github.com/soypat/fasteners/standard"
)

// Dimensions is the resolved dimension set of one fastener. All values are
// in millimetres regardless of Units, which only governs display.
type Dimensions struct {
	Type  standard.Type
	Units Unit
	vals  map[standard.Role]float64
}

func newDimensions(t standard.Type) Dimensions {
	return Dimensions{Type: t, Units: UnitsOf(t), vals: make(map[standard.Role]float64)}
}

func (d Dimensions) set(r standard.Role, v float64) { d.vals[r] = v }

// Has reports whether role r was resolved.
func (d Dimensions) Has(r standard.Role) bool {
	_, ok := d.vals[r]
	return ok
}

// Lookup returns the value of role r.
func (d Dimensions) Lookup(r standard.Role) (float64, bool) {
	v, ok := d.vals[r]
	return v, ok
}

// Get returns the value of role r. Resolve guarantees every role of
// Type.Required is present, so Get panics with a *DimensionError when
// asked for anything else that is missing.
func (d Dimensions) Get(r standard.Role) float64 {
	v, ok := d.vals[r]
	if !ok {
		panic(&DimensionError{Type: d.Type, Role: r})
	}
	return v
}

// Roles returns the resolved roles in ascending order.
func (d Dimensions) Roles() []standard.Role {
	roles := make([]standard.Role, 0, len(d.vals))
	for r := range d.vals {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Equal reports whether d and other hold exactly the same values.
func (d Dimensions) Equal(other Dimensions) bool {
	if d.Type != other.Type || d.Units != other.Units || len(d.vals) != len(other.vals) {
		return false
	}
	for r, v := range d.vals {
		if ov, ok := other.vals[r]; !ok || ov != v {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the dimensions as an object keyed by role name.
func (d Dimensions) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, len(d.vals))
	for r, v := range d.vals {
		m[r.String()] = v
	}
	return json.Marshal(m)
}
