package montenbruck

import "math"

// Geocentric combines a body's heliocentric state with the Sun's geocentric
// ecliptic position (sunL, sunB in radians, sunR in AU) into the body's
// geocentric rectangular position at time t (Julian centuries since J2000.0).
//
// The Sun's own rates are approximated from its orbital phase; the returned
// vector is light-time corrected by one linear step along the combined
// velocity of Sun and body, which folds annual aberration in without an
// iterative light-time solve.
func Geocentric(t float64, body PolarState, sunL, sunB, sunR float64) (x, y, z float64) {
	m := 2 * math.Pi * frac(0.9931266+99.9973604*t)
	sun := PolarState{
		L: sunL, B: sunB, R: sunR,
		DL: 172.00 + 5.75*math.Sin(m),
		DB: 0,
		DR: 2.87 * math.Cos(m),
	}
	return geocentric(body, sun)
}

// geocentric sums the two rectangular states and applies the one-step
// light-time correction. A zero geocentric distance leaves the plain vector
// sum, since the correction factor would otherwise be meaningless.
func geocentric(body, sun PolarState) (x, y, z float64) {
	s := sun.Cartesian()
	p := body.Cartesian()
	x = p.X + s.X
	y = p.Y + s.Y
	z = p.Z + s.Z
	delta0 := math.Sqrt(x*x + y*y + z*z)
	if delta0 == 0 {
		return
	}
	fac := 0.00578 * delta0 * 1e-4
	x -= fac * (p.VX + s.VX)
	y -= fac * (p.VY + s.VY)
	z -= fac * (p.VZ + s.VZ)
	return
}
