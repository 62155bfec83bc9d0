package standard

// addTappingScrews adds pan head tapping screws with cross recess (ISO 7049).
// The three point styles share a single head table.
func addTappingScrews(m map[string]*Table) {
	// dk (max, min), k (max, min), r, recess number, m, penetration q (max, min).
	iso7049 := newTable("ISO7049", interval(HeadDiameter), interval(HeadHeight), scalar(FilletRadius),
		scalar(RecessSize), scalar(RecessDiameter), interval(RecessDepth))
	iso7049.add("ST 2.2", 4.0, 3.7, 1.6, 1.4, 0.1, 0, 1.9, 1.2, 0.85)
	iso7049.add("ST 2.9", 5.6, 5.3, 2.4, 2.15, 0.1, 1, 3.0, 1.8, 1.4)
	iso7049.add("ST 3.5", 7.0, 6.64, 2.6, 2.35, 0.1, 2, 3.9, 1.9, 1.4)
	iso7049.add("ST 4.2", 8.0, 7.64, 3.1, 2.8, 0.2, 2, 4.4, 2.4, 1.9)
	iso7049.add("ST 4.8", 9.5, 9.14, 3.7, 3.4, 0.2, 2, 4.9, 2.9, 2.4)
	iso7049.add("ST 5.5", 11.0, 10.57, 4.0, 3.7, 0.25, 3, 6.4, 3.1, 2.6)
	iso7049.add("ST 6.3", 12.0, 11.57, 4.6, 4.3, 0.25, 3, 6.9, 3.6, 3.1)
	iso7049.add("ST 8", 16.0, 15.57, 6.0, 5.6, 0.4, 4, 9.0, 4.6, 4.1)
	iso7049.add("ST 9.5", 20.0, 19.48, 7.5, 7.1, 0.4, 4, 10.1, 5.8, 5.3)
	m["ISO7049-C"] = iso7049
	m["ISO7049-F"] = iso7049
	m["ISO7049-R"] = iso7049
}

// addTappingThreads adds the tapping screw thread of ISO 1478, shared by
// every tapping screw head standard.
func addTappingThreads(m map[string]*Table) {
	// P, d2 root diameter (max, min), d3 flat end diameter (max, min), round end radius.
	iso1478 := newTable("ISO1478", scalar(Pitch), interval(MinorDiameter), interval(TipDiameter), scalar(TipRadius))
	iso1478.add("ST 2.2", 0.8, 1.63, 1.52, 1.47, 1.37, 0.8)
	iso1478.add("ST 2.9", 1.1, 2.18, 2.08, 2.08, 1.9, 1.1)
	iso1478.add("ST 3.5", 1.3, 2.64, 2.51, 2.51, 2.34, 1.3)
	iso1478.add("ST 4.2", 1.4, 3.10, 2.95, 2.95, 2.72, 1.6)
	iso1478.add("ST 4.8", 1.6, 3.58, 3.43, 3.43, 3.20, 1.9)
	iso1478.add("ST 5.5", 1.8, 4.17, 3.99, 3.99, 3.73, 2.2)
	iso1478.add("ST 6.3", 1.8, 4.88, 4.70, 4.70, 4.39, 2.5)
	iso1478.add("ST 8", 2.1, 6.20, 5.99, 5.99, 5.74, 3.2)
	iso1478.add("ST 9.5", 2.1, 7.85, 7.59, 7.59, 7.24, 3.8)
	m[iso1478.Name] = iso1478
}
