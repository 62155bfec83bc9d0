package forge

import (
	"math"

	"github.com/soypat/fasteners/profile"
)

// dowelChamferAngle is the chamfer angle of ISO 2338 pin ends in degrees.
const dowelChamferAngle = 15

// taperRatio is the 1:50 taper of ISO 2339 pins.
const taperRatio = 1.0 / 50

// DowelPin returns the profile of a parallel pin of diameter d and length l
// with end chamfers c.
func DowelPin(d, l, c float64) *profile.Builder {
	off := c * math.Sin(dowelChamferAngle*math.Pi/180)
	return profile.NewBuilder().
		AddPoint(0, 0).
		AddPoint(d/2-off, 0).
		AddPoint(d/2, -c).
		AddPoint(d/2, -l+c).
		AddPoint(d/2-off, -l).
		AddPoint(0, -l)
}

// TaperDiameter returns the large end diameter of a taper pin of nominal
// diameter d.
func TaperDiameter(d float64) float64 { return d * (1 + taperRatio) }

// TaperPin returns the profile of a taper pin of small end diameter d,
// length l and end rounding a.
func TaperPin(d, l, a float64) *profile.Builder {
	D := TaperDiameter(d)
	return profile.NewBuilder().
		AddPoint(0, 0).
		AddSplineFillet(d/2, 0, d/2, -a).
		AddPoint(D/2, -l+a).
		AddSplineFillet(D/2, -l, 0, -l)
}
