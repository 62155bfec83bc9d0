package standard

import "fmt"

// Icon and type aliases. An icon alias only shares artwork, a type alias
// shares the dimension table too.
var (
	iconAliases = map[string]string{
		"ISO299":    "DIN508",
		"ISO7049-C": "GOST1144-4",
		"ISO7049-R": "GOST1144-4",
	}
	typeAliases = map[string]string{
		"ISO299": "DIN508",
	}
)

// ResolveIcon returns the name whose icon name uses, or name itself.
func ResolveIcon(name string) string {
	if alias, ok := iconAliases[name]; ok {
		return alias
	}
	return name
}

// ResolveType returns the base type whose table name uses, or name itself.
func ResolveType(name string) string {
	if alias, ok := typeAliases[name]; ok {
		return alias
	}
	return name
}

var (
	dimensionTables = initDimensionTables()
	threadTables    = initThreadTables()
)

func initDimensionTables() map[string]*Table {
	m := make(map[string]*Table)
	addPins(m)
	addClevisPins(m)
	addTappingScrews(m)
	addNails(m)
	addTSlotNuts(m)
	appendAliases(m, typeAliases)
	return m
}

func initThreadTables() map[string]*Table {
	m := make(map[string]*Table)
	addTappingThreads(m)
	addMetricThreads(m)
	return m
}

// appendAliases points every alias entry at its canonical table. It panics
// when the canonical table is missing since that is a programming error in
// this package's data.
func appendAliases(m map[string]*Table, aliases map[string]string) {
	for alias, canonical := range aliases {
		t, ok := m[canonical]
		if !ok {
			panic(fmt.Sprintf("standard: alias %q refers to missing table %q", alias, canonical))
		}
		m[alias] = t
	}
}

// Lookup returns the dimension row of base type t for size.
func Lookup(t Type, size string) (Tuple, error) {
	if !t.valid() {
		return Tuple{}, &LookupError{Table: "types", Key: t.String()}
	}
	return LookupName(t.String(), size)
}

// LookupName is Lookup keyed by standard name. Aliased names resolve to the
// canonical table.
func LookupName(standard, size string) (Tuple, error) {
	table, ok := dimensionTables[ResolveType(standard)]
	if !ok {
		return Tuple{}, &LookupError{Table: "standards", Key: standard}
	}
	return table.Lookup(size)
}

// LookupThread returns the row of thread standard name for size.
func LookupThread(name, size string) (Tuple, error) {
	table, ok := threadTables[name]
	if !ok {
		return Tuple{}, &LookupError{Table: "thread standards", Key: name}
	}
	return table.Lookup(size)
}

// Sizes returns the size keys of base type t in table order.
func Sizes(t Type) []string {
	table, ok := dimensionTables[ResolveType(t.String())]
	if !ok {
		return nil
	}
	return table.Sizes()
}

// ThreadStandard returns the name of the thread table the type's shank
// dimensions come from, or "" when the type has no separate thread table.
func (t Type) ThreadStandard() string {
	switch t {
	case ISO7049C, ISO7049F, ISO7049R:
		return "ISO1478"
	case ISO2340A, ISO2340B, ISO2341A, ISO2341B:
		return "ISO261"
	}
	return ""
}

// Required returns the roles the generator of t consumes.
func (t Type) Required() []Role {
	switch t {
	case ISO2338:
		return []Role{Diameter, Length, Chamfer}
	case ISO2339:
		return []Role{Diameter, Length, EndRounding}
	case ISO2340A:
		return []Role{Diameter, Length, Chamfer}
	case ISO2340B:
		return []Role{Diameter, Length, Chamfer, HoleDiameter, HoleEdgeDistance}
	case ISO2341A:
		return []Role{Diameter, Length, Chamfer, HeadDiameter, HeadHeight, FilletRadius}
	case ISO2341B:
		return []Role{Diameter, Length, Chamfer, HeadDiameter, HeadHeight, FilletRadius, HoleDiameter, HoleEdgeDistance}
	case ISO7049C, ISO7049F, ISO7049R:
		return []Role{Diameter, Length, HeadDiameter, HeadHeight, FilletRadius, RecessSize,
			RecessDiameter, RecessDepth, Pitch, MinorDiameter, TipDiameter, TipRadius}
	case DIN1143:
		return []Role{Diameter, Length, HeadDiameter}
	case DIN1144A, DIN1151A, DIN1151B, DIN1152:
		return []Role{Diameter, Length}
	case DIN1160A, DIN1160B:
		return []Role{Diameter, Length, HeadDiameter}
	case DIN508, ISO299:
		return []Role{Diameter, SlotWidth, BaseWidth, Height, BaseHeight}
	}
	return nil
}
