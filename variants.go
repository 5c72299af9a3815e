package montenbruck

import (
	"math"

	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
)

// rateStep is the half-width, in days, of the central difference used to
// derive series rates.
const rateStep = 0.5

// numRates derives the daily rates of a heliocentric series by central
// difference, converted to the pipeline convention of 1e-4 rad/day
// (1e-4 AU/day for distance). Longitude differences are wrapped so the 2π
// discontinuity cannot leak into the rate.
func numRates(f func(t float64) (l, b, r float64), t float64) (dl, db, dr float64) {
	h := rateStep / JulianCentury
	l1, b1, r1 := f(t - h)
	l2, b2, r2 := f(t + h)
	k := 1e4 / (2 * rateStep)
	dl = wrapΔ(l2-l1) * k
	db = (b2 - b1) * k
	dr = (r2 - r1) * k
	return
}

// wrapΔ wraps an angle difference to (−π, π].
func wrapΔ(d float64) float64 {
	d = math.Mod(d, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// v87Series adapts a VSOP87 planet to the OrbitSeries capability.
type v87Series struct {
	planet *pp.V87Planet
}

func (s v87Series) Heliocentric(t float64) (l, b, r float64) {
	L, B, R := s.planet.Position(jdFromCentury(t))
	return L.Rad(), B.Rad(), R
}

func (s v87Series) Rates(t float64) (dl, db, dr float64) {
	return numRates(s.Heliocentric, t)
}

// plutoSeries is the self-contained Pluto series.
// Special case in Sonia Keys' Meeus: Pluto has no VSOP87 file.
type plutoSeries struct{}

func (plutoSeries) Heliocentric(t float64) (l, b, r float64) {
	L, B, R := pluto.Heliocentric(jdFromCentury(t))
	return L.Rad(), B.Rad(), R
}

func (s plutoSeries) Rates(t float64) (dl, db, dr float64) {
	return numRates(s.Heliocentric, t)
}
