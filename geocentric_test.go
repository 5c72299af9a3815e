package montenbruck

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestGeocentricZeroVelocity(t *testing.T) {
	// With every rate forced to zero the correction term vanishes and the
	// result is the plain vector sum.
	body := PolarState{L: 0.3, B: 0.1, R: 1.52}
	sun := PolarState{L: 2.9, B: 0, R: 1.01}
	x, y, z := geocentric(body, sun)
	b := body.Cartesian()
	s := sun.Cartesian()
	if !floats.EqualWithinAbs(x, b.X+s.X, 1e-15) ||
		!floats.EqualWithinAbs(y, b.Y+s.Y, 1e-15) ||
		!floats.EqualWithinAbs(z, b.Z+s.Z, 1e-15) {
		t.Fatalf("zero-rate composition is not the vector sum: (%g, %g, %g)", x, y, z)
	}
}

func TestGeocentricLightTimeStep(t *testing.T) {
	// One moving body against a motionless Sun: the correction must be
	// exactly fac·v with fac = 0.00578·delta0·1e-4.
	body := PolarState{L: 0, B: 0, R: 1, DL: 100}
	sun := PolarState{L: 0, B: 0, R: 1}
	x, y, z := geocentric(body, sun)
	fac := 0.00578 * 2 * 1e-4
	if !floats.EqualWithinAbs(x, 2, 1e-15) {
		t.Fatalf("x = %g, expected 2", x)
	}
	if !floats.EqualWithinAbs(y, -fac*100, 1e-15) {
		t.Fatalf("y = %g, expected %g", y, -fac*100)
	}
	if z != 0 {
		t.Fatalf("z = %g, expected 0", z)
	}
}

func TestGeocentricDegenerateDistance(t *testing.T) {
	// Sun and body in exact opposition at equal distance: delta0 = 0 must
	// yield the unmodified (null) vector sum, not NaN.
	body := PolarState{L: 0, B: 0, R: 1, DL: 50, DB: 3, DR: 1}
	x, y, z := Geocentric(0.21, body, math.Pi, 0, 1)
	for i, v := range []float64{x, y, z} {
		if math.IsNaN(v) {
			t.Fatalf("component %d is NaN", i)
		}
		if !floats.EqualWithinAbs(v, 0, 1e-15) {
			t.Fatalf("component %d = %g, expected 0", i, v)
		}
	}
}

func TestGeocentricExactZero(t *testing.T) {
	// delta0 exactly zero with a nonzero radial velocity: the factor must be
	// dropped instead of pulling the position off the origin.
	x, y, z := geocentric(PolarState{DR: 7}, PolarState{})
	if x != 0 || y != 0 || z != 0 {
		t.Fatalf("degenerate composition moved off origin: (%g, %g, %g)", x, y, z)
	}
}

func TestGeocentricSunRates(t *testing.T) {
	// The Sun's internally derived rate swings with its orbital phase; two
	// times half a phase apart must give measurably different corrections.
	body := PolarState{L: 1, B: 0.05, R: 1.5, DL: 80, DB: 1, DR: 2}
	x1, y1, _ := Geocentric(0, body, 2, 0, 1)
	x2, y2, _ := Geocentric(0.005, body, 2, 0, 1)
	if x1 == x2 && y1 == y2 {
		t.Fatal("sun rate approximation did not vary with time")
	}
}
