package montenbruck

import (
	"testing"

	"github.com/gonum/floats"
)

func TestCartesianPosition(t *testing.T) {
	p := PolarState{L: 0.5, B: -0.2, R: 1.5}
	s := p.Cartesian()
	x, y, z := Cart(p.R, p.B, p.L)
	if s.X != x || s.Y != y || s.Z != z {
		t.Fatalf("position mismatch with Cart: (%f,%f,%f) != (%f,%f,%f)", s.X, s.Y, s.Z, x, y, z)
	}
}

func TestCartesianZeroRates(t *testing.T) {
	s := PolarState{L: 1.1, B: 0.3, R: 2.7}.Cartesian()
	if s.VX != 0 || s.VY != 0 || s.VZ != 0 {
		t.Fatalf("zero rates produced nonzero velocity: (%g, %g, %g)", s.VX, s.VY, s.VZ)
	}
}

// The velocity columns must be the exact time derivative of the position
// columns. Rates are 1e-4 rad/day, so the velocity must match the central
// difference of the position over a small day step, scaled by 1e-4.
func TestCartesianVelocityIsDerivative(t *testing.T) {
	p := PolarState{L: 2.3, B: 0.4, R: 5.2, DL: 83, DB: -4.5, DR: 12.75}
	s := p.Cartesian()
	const h = 1e-4 // days
	at := func(d float64) (float64, float64, float64) {
		return Cart(p.R+p.DR*1e-4*d, p.B+p.DB*1e-4*d, p.L+p.DL*1e-4*d)
	}
	x1, y1, z1 := at(-h)
	x2, y2, z2 := at(h)
	for i, pair := range [][2]float64{
		{(x2 - x1) / (2 * h), s.VX * 1e-4},
		{(y2 - y1) / (2 * h), s.VY * 1e-4},
		{(z2 - z1) / (2 * h), s.VZ * 1e-4},
	} {
		if !floats.EqualWithinAbs(pair[0], pair[1], 1e-9) {
			t.Fatalf("velocity component %d is not the position derivative: %g != %g", i, pair[0], pair[1])
		}
	}
}
