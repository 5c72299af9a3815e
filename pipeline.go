package montenbruck

// OrbitSeries is the capability a body variant must supply: its heliocentric
// ecliptic position at t (Julian centuries since J2000.0, angles in radians,
// distance in AU) and the daily rates of that position in 1e-4 rad/day
// (1e-4 AU/day for distance). Both calls must be independently correct at any
// t; nothing is cached on their behalf.
type OrbitSeries interface {
	Heliocentric(t float64) (l, b, r float64)
	Rates(t float64) (dl, db, dr float64)
}

// Position is a geocentric ecliptic position in degrees and AU. Longitude is
// normalized to [0, 360), latitude lies in [−90, 90].
type Position struct {
	Lon, Lat float64
	Dist     float64
}

// NutationFunc maps a mean-equinox rectangular vector to the true-equinox
// vector at the time already bound into the function.
type NutationFunc func(x, y, z float64) (float64, float64, float64)

// TruePosition runs the full pipeline for one body variant: heliocentric
// polar state, geocentric composition against the Sun's position (sunL, sunB
// in radians, sunR in AU), and conversion back to polar degrees/AU. The
// result is light-time corrected but referred to the mean equinox of date;
// apply Apparent for the nutation-corrected position.
func TruePosition(t float64, series OrbitSeries, sunL, sunB, sunR float64) Position {
	l, b, r := series.Heliocentric(t)
	dl, db, dr := series.Rates(t)
	body := PolarState{L: l, B: b, R: r, DL: dl, DB: db, DR: dr}
	x, y, z := Geocentric(t, body, sunL, sunB, sunR)
	dist, lat, lon := Polar(x, y, z)
	return Position{Lon: Rad2deg(lon), Lat: lat / deg2rad, Dist: dist}
}

// Apparent rotates a true position to the apparent, equinox-of-date position
// through the supplied nutation function. The pass is a plain Cartesian round
// trip around nutate; with the identity function it is a no-op.
func Apparent(p Position, nutate NutationFunc) Position {
	x, y, z := Cart(p.Dist, p.Lat*deg2rad, p.Lon*deg2rad)
	x, y, z = nutate(x, y, z)
	dist, lat, lon := Polar(x, y, z)
	return Position{Lon: Rad2deg(lon), Lat: lat / deg2rad, Dist: dist}
}

// LightTravel returns the longitude correction in degrees for the light
// travel time over the given distance in AU.
//
// It is meant for bodies whose pipeline carries no aberration of its own
// (Moon and Sun, see Body.EmbedsAberration). The planetary pipeline already
// folds the correction into Geocentric through the combined-velocity step;
// applying LightTravel on top of it double-corrects, and that misuse cannot
// be detected here.
func LightTravel(dist float64) float64 {
	return 1.365 * dist * 15 / 3600
}
