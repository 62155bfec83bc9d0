package standard

import (
	"fmt"
	"sort"
)

// Role names what a dimension means to a generator.
type Role uint8

const (
	_                Role = iota
	Diameter              // nominal shank diameter d
	Length                // nominal length l
	Chamfer               // end chamfer c
	EndRounding           // end rounding a of taper pins
	HeadDiameter          // dk
	HeadHeight            // k
	FilletRadius          // under head fillet r
	HoleDiameter          // transverse hole d1
	HoleEdgeDistance      // le, hole axis to pin end
	RecessSize            // cross recess number
	RecessDiameter        // cross recess diameter m
	RecessDepth           // cross recess penetration q
	Pitch                 // thread pitch P
	MinorDiameter         // thread root diameter
	TipDiameter           // flat tip diameter
	TipRadius             // rounded tip radius
	SlotWidth             // T-slot neck width a
	BaseWidth             // T-slot nut base width e
	Height                // T-slot nut total height h
	BaseHeight            // T-slot nut base height k
	maxRole
)

var roleNames = [maxRole]string{
	Diameter:         "diameter",
	Length:           "length",
	Chamfer:          "chamfer",
	EndRounding:      "end rounding",
	HeadDiameter:     "head diameter",
	HeadHeight:       "head height",
	FilletRadius:     "fillet radius",
	HoleDiameter:     "hole diameter",
	HoleEdgeDistance: "hole edge distance",
	RecessSize:       "recess size",
	RecessDiameter:   "recess diameter",
	RecessDepth:      "recess depth",
	Pitch:            "pitch",
	MinorDiameter:    "minor diameter",
	TipDiameter:      "tip diameter",
	TipRadius:        "tip radius",
	SlotWidth:        "slot width",
	BaseWidth:        "base width",
	Height:           "height",
	BaseHeight:       "base height",
}

func (r Role) String() string {
	if r == 0 || r >= maxRole {
		return fmt.Sprintf("Role(%d)", r)
	}
	return roleNames[r]
}

// Column describes one field of a table row. Interval columns take two
// numbers in the row, maximum first, as the standards print them.
type Column struct {
	Role     Role
	Interval bool
}

func scalar(r Role) Column   { return Column{Role: r} }
func interval(r Role) Column { return Column{Role: r, Interval: true} }

// Table maps a nominal size key to a row of numbers laid out as Columns.
type Table struct {
	Name    string
	Columns []Column
	width   int
	rows    map[string][]float64
	order   []string
}

func newTable(name string, cols ...Column) *Table {
	t := &Table{Name: name, Columns: cols, rows: make(map[string][]float64)}
	for _, c := range cols {
		t.width++
		if c.Interval {
			t.width++
		}
	}
	return t
}

// add panics on malformed rows. It only runs during package initialization.
func (t *Table) add(size string, values ...float64) {
	if len(values) != t.width {
		panic(fmt.Sprintf("standard: %s %q has %d values, want %d", t.Name, size, len(values), t.width))
	}
	if _, ok := t.rows[size]; ok {
		panic(fmt.Sprintf("standard: duplicate size %q in %s", size, t.Name))
	}
	t.rows[size] = values
	t.order = append(t.order, size)
}

// Sizes returns the size keys in table order.
func (t *Table) Sizes() []string {
	return append([]string(nil), t.order...)
}

// Lookup returns the row for size.
func (t *Table) Lookup(size string) (Tuple, error) {
	row, ok := t.rows[size]
	if !ok {
		return Tuple{}, &LookupError{Table: t.Name, Key: size}
	}
	return Tuple{Table: t.Name, Size: size, columns: t.Columns, values: row}, nil
}

// Tuple is one raw table row.
type Tuple struct {
	Table   string
	Size    string
	columns []Column
	values  []float64
}

// Each calls fn for every column of the row. Scalar columns report lo == hi.
func (tp Tuple) Each(fn func(c Column, lo, hi float64)) {
	i := 0
	for _, c := range tp.columns {
		if c.Interval {
			fn(c, tp.values[i+1], tp.values[i])
			i += 2
			continue
		}
		fn(c, tp.values[i], tp.values[i])
		i++
	}
}

// Range returns the interval of role r. Scalars return lo == hi.
func (tp Tuple) Range(r Role) (lo, hi float64, ok bool) {
	tp.Each(func(c Column, l, h float64) {
		if c.Role == r && !ok {
			lo, hi, ok = l, h, true
		}
	})
	return lo, hi, ok
}

// Roles returns the roles present in the row, sorted.
func (tp Tuple) Roles() []Role {
	roles := make([]Role, 0, len(tp.columns))
	for _, c := range tp.columns {
		roles = append(roles, c.Role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
