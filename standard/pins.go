package standard

// addPins adds parallel (ISO 2338) and taper (ISO 2339) pins.
func addPins(m map[string]*Table) {
	// ISO 2338 parallel pins: chamfer c.
	iso2338 := newTable("ISO2338", scalar(Chamfer))
	iso2338.add("0.6 mm", 0.12)
	iso2338.add("0.8 mm", 0.16)
	iso2338.add("1 mm", 0.2)
	iso2338.add("1.2 mm", 0.25)
	iso2338.add("1.5 mm", 0.3)
	iso2338.add("2 mm", 0.35)
	iso2338.add("2.5 mm", 0.4)
	iso2338.add("3 mm", 0.5)
	iso2338.add("4 mm", 0.63)
	iso2338.add("5 mm", 0.8)
	iso2338.add("6 mm", 1.2)
	iso2338.add("8 mm", 1.6)
	iso2338.add("10 mm", 2)
	iso2338.add("12 mm", 2.5)
	iso2338.add("16 mm", 3)
	iso2338.add("20 mm", 3.5)
	iso2338.add("25 mm", 4)
	iso2338.add("30 mm", 5)
	iso2338.add("40 mm", 6.3)
	iso2338.add("50 mm", 8)
	m[iso2338.Name] = iso2338

	// ISO 2339 taper pins: end rounding a. The size is the small diameter.
	iso2339 := newTable("ISO2339", scalar(EndRounding))
	iso2339.add("0.6 mm", 0.08)
	iso2339.add("0.8 mm", 0.1)
	iso2339.add("1 mm", 0.12)
	iso2339.add("1.2 mm", 0.16)
	iso2339.add("1.5 mm", 0.2)
	iso2339.add("2 mm", 0.25)
	iso2339.add("2.5 mm", 0.3)
	iso2339.add("3 mm", 0.4)
	iso2339.add("4 mm", 0.5)
	iso2339.add("5 mm", 0.63)
	iso2339.add("6 mm", 0.8)
	iso2339.add("8 mm", 1)
	iso2339.add("10 mm", 1.2)
	iso2339.add("12 mm", 1.6)
	iso2339.add("16 mm", 2)
	iso2339.add("20 mm", 2.5)
	iso2339.add("25 mm", 3)
	iso2339.add("30 mm", 4)
	iso2339.add("40 mm", 5)
	iso2339.add("50 mm", 6.3)
	m[iso2339.Name] = iso2339
}

// addClevisPins adds clevis pins without head (ISO 2340) and with head
// (ISO 2341). Both variants of a standard share one table.
func addClevisPins(m map[string]*Table) {
	// Without head: chamfer c, hole diameter d1 (max, min), hole edge distance le.
	iso2340 := newTable("ISO2340", scalar(Chamfer), interval(HoleDiameter), scalar(HoleEdgeDistance))
	iso2340.add("3 mm", 0.5, 0.94, 0.8, 1.6)
	iso2340.add("4 mm", 0.5, 1.14, 1, 2.2)
	iso2340.add("5 mm", 1, 1.34, 1.2, 2.9)
	iso2340.add("6 mm", 1, 1.74, 1.6, 3.2)
	iso2340.add("8 mm", 1, 2.14, 2, 3.5)
	iso2340.add("10 mm", 1, 3.38, 3.2, 4.5)
	iso2340.add("12 mm", 1.6, 3.38, 3.2, 5.5)
	iso2340.add("14 mm", 1.6, 4.18, 4, 6)
	iso2340.add("16 mm", 1.6, 4.18, 4, 6)
	iso2340.add("18 mm", 1.6, 5.18, 5, 7)
	iso2340.add("20 mm", 2, 5.18, 5, 8)
	iso2340.add("24 mm", 2, 6.38, 6.3, 9)
	m["ISO2340A"] = iso2340
	m["ISO2340B"] = iso2340

	// With head: chamfer c, hole diameter d1 (max, min), hole edge distance le,
	// head diameter dk, head height k (max, min), fillet r.
	iso2341 := newTable("ISO2341", scalar(Chamfer), interval(HoleDiameter), scalar(HoleEdgeDistance),
		scalar(HeadDiameter), interval(HeadHeight), scalar(FilletRadius))
	iso2341.add("3 mm", 0.5, 0.94, 0.8, 1.6, 5, 1.125, 0.875, 0.6)
	iso2341.add("4 mm", 0.5, 1.14, 1, 2.2, 6, 1.125, 0.875, 0.6)
	iso2341.add("5 mm", 1, 1.34, 1.2, 2.9, 8, 1.725, 1.475, 0.6)
	iso2341.add("6 mm", 1, 1.74, 1.6, 3.2, 10, 2.125, 1.875, 0.6)
	iso2341.add("8 mm", 1, 2.14, 2, 3.5, 14, 3.125, 2.875, 0.6)
	iso2341.add("10 mm", 1, 3.38, 3.2, 4.5, 18, 4.15, 3.85, 0.6)
	iso2341.add("12 mm", 1.6, 3.38, 3.2, 5.5, 20, 4.15, 3.85, 0.6)
	iso2341.add("14 mm", 1.6, 4.18, 4, 6, 22, 4.15, 3.85, 0.6)
	iso2341.add("16 mm", 1.6, 4.18, 4, 6, 25, 4.65, 4.35, 0.6)
	iso2341.add("18 mm", 1.6, 5.18, 5, 7, 28, 5.15, 4.85, 1)
	iso2341.add("20 mm", 2, 5.18, 5, 8, 30, 5.15, 4.85, 1)
	iso2341.add("24 mm", 2, 6.38, 6.3, 9, 36, 6.15, 5.85, 1)
	m["ISO2341A"] = iso2341
	m["ISO2341B"] = iso2341
}

// addMetricThreads adds the coarse pitch series of ISO 261, used when a
// clevis pin shank is threaded.
func addMetricThreads(m map[string]*Table) {
	iso261 := newTable("ISO261", scalar(Pitch))
	for _, row := range []struct {
		size string
		p    float64
	}{
		{"3 mm", 0.5}, {"4 mm", 0.7}, {"5 mm", 0.8}, {"6 mm", 1},
		{"8 mm", 1.25}, {"10 mm", 1.5}, {"12 mm", 1.75}, {"14 mm", 2},
		{"16 mm", 2}, {"18 mm", 2.5}, {"20 mm", 2.5}, {"24 mm", 3},
	} {
		iso261.add(row.size, row.p)
	}
	m[iso261.Name] = iso261
}
