package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestRotate(t *testing.T) {
	got := Rotate(r2.Vec{X: 2, Y: 1}, math.Pi/2, r2.Vec{X: 1, Y: 1})
	if !EqualWithin(got, r2.Vec{X: 1, Y: 2}, 1e-12) {
		t.Errorf("rotated to %v, want {1 2}", got)
	}
	got = Rotate(r2.Vec{X: 1}, -math.Pi, r2.Vec{})
	if !EqualWithin(got, r2.Vec{X: -1}, 1e-12) {
		t.Errorf("rotated to %v, want {-1 0}", got)
	}
}

func TestAngle(t *testing.T) {
	for _, test := range []struct {
		a, b r2.Vec
		want float64
	}{
		{r2.Vec{X: 1}, r2.Vec{Y: 3}, math.Pi / 2},
		{r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 2}, 0},
		{r2.Vec{X: 1}, r2.Vec{X: -1}, math.Pi},
		{r2.Vec{}, r2.Vec{X: 1}, 0},
	} {
		if got := Angle(test.a, test.b); !scalar.EqualWithinAbs(got, test.want, 1e-7) {
			t.Errorf("Angle(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}
