package standard

// addNails adds wire nails. Nail sizes name both diameter and length, so
// the length comes from the table and not from the caller.
func addNails(m map[string]*Table) {
	// DIN 1143: shank d1, head reference diameter d2, length l.
	din1143 := newTable("DIN1143", scalar(Diameter), scalar(HeadDiameter), scalar(Length))
	din1143.add("1.8 x 35", 1.8, 3.6, 35)
	din1143.add("2 x 40", 2, 4, 40)
	din1143.add("2.2 x 50", 2.2, 4.4, 50)
	din1143.add("2.5 x 55", 2.5, 5, 55)
	din1143.add("2.8 x 60", 2.8, 5.6, 60)
	din1143.add("3.1 x 70", 3.1, 6.2, 70)
	din1143.add("3.4 x 80", 3.4, 6.8, 80)
	m[din1143.Name] = din1143

	// DIN 1144: shank d, length l. The head is a fixed 20 mm washer.
	din1144 := newTable("DIN1144", scalar(Diameter), scalar(Length))
	din1144.add("3.1 x 25", 3.1, 25)
	din1144.add("3.1 x 30", 3.1, 30)
	din1144.add("3.1 x 35", 3.1, 35)
	din1144.add("3.1 x 40", 3.1, 40)
	din1144.add("3.1 x 50", 3.1, 50)
	din1144.add("3.1 x 60", 3.1, 60)
	din1144.add("3.1 x 70", 3.1, 70)
	din1144.add("3.1 x 80", 3.1, 80)
	m["DIN1144-A"] = din1144

	// DIN 1151 plain (A) and countersunk (B) head wire nails.
	din1151 := newTable("DIN1151", scalar(Diameter), scalar(Length))
	for _, size := range []struct {
		key string
		d   float64
		l   float64
	}{
		{"1 x 15", 1, 15},
		{"1.2 x 20", 1.2, 20},
		{"1.4 x 25", 1.4, 25},
		{"1.6 x 30", 1.6, 30},
		{"1.8 x 35", 1.8, 35},
		{"2 x 40", 2, 40},
		{"2.2 x 50", 2.2, 50},
		{"2.5 x 60", 2.5, 60},
		{"2.8 x 65", 2.8, 65},
		{"3.1 x 80", 3.1, 80},
		{"3.4 x 90", 3.4, 90},
		{"3.8 x 100", 3.8, 100},
		{"4.2 x 120", 4.2, 120},
		{"4.6 x 130", 4.6, 130},
		{"5.5 x 160", 5.5, 160},
		{"6 x 180", 6, 180},
	} {
		din1151.add(size.key, size.d, size.l)
	}
	m["DIN1151-A"] = din1151
	m["DIN1151-B"] = din1151

	// DIN 1152 lost head wire nails.
	din1152 := newTable("DIN1152", scalar(Diameter), scalar(Length))
	din1152.add("1.4 x 25", 1.4, 25)
	din1152.add("1.6 x 30", 1.6, 30)
	din1152.add("1.8 x 35", 1.8, 35)
	din1152.add("2 x 40", 2, 40)
	din1152.add("2.2 x 50", 2.2, 50)
	din1152.add("2.5 x 60", 2.5, 60)
	din1152.add("2.8 x 65", 2.8, 65)
	din1152.add("3.1 x 80", 3.1, 80)
	din1152.add("3.4 x 90", 3.4, 90)
	din1152.add("3.8 x 100", 3.8, 100)
	m[din1152.Name] = din1152

	// DIN 1160 clout (A) and slate (B) nails: shank d, length l, head d2.
	din1160 := newTable("DIN1160", scalar(Diameter), scalar(Length), scalar(HeadDiameter))
	din1160.add("2 x 20", 2, 20, 4.5)
	din1160.add("2.5 x 25", 2.5, 25, 6)
	din1160.add("2.8 x 25", 2.8, 25, 7)
	din1160.add("2.8 x 32", 2.8, 32, 7)
	din1160.add("3.1 x 38", 3.1, 38, 8)
	din1160.add("3.4 x 50", 3.4, 50, 9)
	m["DIN1160-A"] = din1160
	m["DIN1160-B"] = din1160
}
