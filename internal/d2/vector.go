// Package d2 holds the planar vector helpers profile construction needs on
// top of gonum's r2.
package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// EqualWithin reports whether a and b differ by at most tol in each component.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Rotate returns p rotated about q by alpha radians, counter clockwise.
func Rotate(p r2.Vec, alpha float64, q r2.Vec) r2.Vec {
	s, c := math.Sincos(alpha)
	v := r2.Sub(p, q)
	return r2.Add(q, r2.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c})
}

// Angle returns the unsigned angle between a and b in radians.
func Angle(a, b r2.Vec) float64 {
	na, nb := r2.Norm(a), r2.Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return math.Acos(clamp(r2.Dot(a, b)/(na*nb), -1, 1))
}

// Clamp x between a and b, assume a <= b
func clamp(x, a, b float64) float64 {
	return math.Min(b, math.Max(x, a))
}
