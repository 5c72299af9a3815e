package montenbruck

import (
	"math"
)

const (
	deg2rad = math.Pi / 180

	// J2000 is the Julian date of the J2000.0 epoch.
	J2000 = 2451545.0
	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
)

// frac returns the fractional part of x, in [0, 1) for any real x.
func frac(x float64) float64 {
	return x - math.Floor(x)
}

// J2000Century converts a Julian date to Julian centuries since J2000.0.
func J2000Century(jd float64) float64 {
	return (jd - J2000) / JulianCentury
}

// jdFromCentury is the inverse of J2000Century.
func jdFromCentury(t float64) float64 {
	return t*JulianCentury + J2000
}

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Cart converts ecliptic spherical coordinates (distance, latitude and
// longitude, angles in radians) to rectangular coordinates.
func Cart(r, b, l float64) (x, y, z float64) {
	sb, cb := math.Sincos(b)
	sl, cl := math.Sincos(l)
	return r * cl * cb, r * sl * cb, r * sb
}

// Polar converts rectangular coordinates to ecliptic spherical coordinates,
// with r ≥ 0, b in [−π/2, π/2] and l normalized to [0, 2π). The polar angles
// of the null vector are returned as zero.
func Polar(x, y, z float64) (r, b, l float64) {
	ρ := x*x + y*y
	r = math.Sqrt(ρ + z*z)
	if r == 0 {
		return 0, 0, 0
	}
	b = math.Atan2(z, math.Sqrt(ρ))
	l = math.Atan2(y, x)
	if l < 0 {
		l += 2 * math.Pi
	}
	return
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
