package standard

// addTSlotNuts adds T-slot nuts (DIN 508). ISO 299 nuts are a type alias
// of DIN 508 and share this table.
func addTSlotNuts(m map[string]*Table) {
	// Slot width a, base width e, total height h, base height k.
	din508 := newTable("DIN508", scalar(SlotWidth), scalar(BaseWidth), scalar(Height), scalar(BaseHeight))
	din508.add("M4x5", 5, 9, 6.5, 2.5)
	din508.add("M5x6", 6, 10, 8, 4)
	din508.add("M6x8", 8, 13, 10, 6)
	din508.add("M8x10", 10, 15, 12, 6)
	din508.add("M10x12", 12, 18, 14, 7)
	din508.add("M12x14", 14, 22, 16, 8)
	din508.add("M16x18", 18, 28, 20, 10)
	din508.add("M20x22", 22, 35, 28, 14)
	din508.add("M24x28", 28, 44, 36, 18)
	m[din508.Name] = din508
}
