package standard

// Designation placeholders substituted by the caller.
const (
	PlaceholderDiameter  = "{diameter}"
	PlaceholderLength    = "{length}"
	PlaceholderSlotWidth = "{slotWidth}"
	PlaceholderTCode     = "{tcode}"
)

var designations = map[string]string{
	"ISO2338":   "Parallel pin ISO 2338 - {diameter} x {length}",
	"ISO2339":   "Taper pin ISO 2339 - {diameter} x {length}",
	"ISO2340A":  "Clevis Pin ISO 2340 - A - {diameter} x {length}",
	"ISO2340B":  "Clevis Pin ISO 2340 - B - {diameter} x {length}",
	"ISO2341A":  "Clevis Pin ISO 2341 - A - {diameter} x {length}",
	"ISO2341B":  "Clevis Pin ISO 2341 - B - {diameter} x {length}",
	"ISO7049-C": "Tapping screw ISO 7049 - {diameter} x {length} - C - H",
	"ISO7049-F": "Tapping screw ISO 7049 - {diameter} x {length} - F - H",
	"ISO7049-R": "Tapping screw ISO 7049 - {diameter} x {length} - R - H",
	"DIN1143":   "Nail DIN 1143 - {diameter} - L",
	"DIN1144-A": "Nail A {diameter} DIN 1144",
	"DIN1151-A": "Nail A {diameter} DIN 1151",
	"DIN1151-B": "Nail B {diameter} DIN 1151",
	"DIN1152":   "Nail {diameter} DIN 1152",
	"DIN1160-A": "Nail A {diameter} DIN 1160",
	"DIN1160-B": "Nail B {diameter} DIN 1160",
	"DIN508":    "T-Slot Nut DIN 508 - {diameter}",
	"ISO299":    "T-Slot Nut ISO 299 - {diameter} x {slotWidth}",
}

// Template returns the designation template of a canonical base type key.
// Templates are not aliased: ISO299 and DIN508 share a table but are
// designated differently.
func Template(key string) (string, error) {
	tmpl, ok := designations[key]
	if !ok {
		return "", &LookupError{Table: "designations", Key: key}
	}
	return tmpl, nil
}
