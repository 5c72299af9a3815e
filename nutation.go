package montenbruck

import (
	"math"

	"github.com/gonum/matrix/mat64"
	"github.com/soniakeys/meeus/v3/nutation"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// NutationAt returns the mean-to-true equinox rotation at the given Julian
// date as a NutationFunc over ecliptic vectors. The chain is ecliptic →
// mean equator, the equatorial nutation rotation R1(−ε−Δε)·R3(−Δψ)·R1(ε),
// then back to the ecliptic of the true equinox.
func NutationAt(jde float64) NutationFunc {
	Δψ, Δε := nutation.Nutation(jde)
	ε := nutation.MeanObliquity(jde).Rad()
	nequ := mat64.NewDense(3, 3, nil)
	nequ.Mul(R3(-Δψ.Rad()), R1(ε))
	full := mat64.NewDense(3, 3, nil)
	full.Mul(R1(-ε-Δε.Rad()), nequ) // equatorial nutation rotation
	side := mat64.NewDense(3, 3, nil)
	side.Mul(full, R1(-ε)) // ecliptic to mean equator first
	rot := mat64.NewDense(3, 3, nil)
	rot.Mul(R1(ε+Δε.Rad()), side) // true equator back to the ecliptic
	return func(x, y, z float64) (float64, float64, float64) {
		v := MxV33(rot, []float64{x, y, z})
		return v[0], v[1], v[2]
	}
}
