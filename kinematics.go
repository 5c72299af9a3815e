package montenbruck

import "math"

// PolarState is an ecliptic spherical position together with its time
// derivative: angles in radians, distance in AU, rates in units of
// 1e-4 rad/day (1e-4 AU/day for DR).
type PolarState struct {
	L, B, R    float64
	DL, DB, DR float64
}

// CartesianState is a rectangular ecliptic position and velocity, in the same
// frame and units as the polar state it was derived from.
type CartesianState struct {
	X, Y, Z    float64
	VX, VY, VZ float64
}

// Cartesian expands the polar state to rectangular coordinates with the
// velocity following from the chain rule on r·(cos l·cos b, sin l·cos b, sin b).
func (p PolarState) Cartesian() CartesianState {
	sl, cl := math.Sincos(p.L)
	sb, cb := math.Sincos(p.B)
	return CartesianState{
		X:  p.R * cl * cb,
		Y:  p.R * sl * cb,
		Z:  p.R * sb,
		VX: p.DR*cl*cb - p.DL*p.R*sl*cb - p.DB*p.R*cl*sb,
		VY: p.DR*sl*cb + p.DL*p.R*cl*cb - p.DB*p.R*sl*sb,
		VZ: p.DR*sb + p.DB*p.R*cb,
	}
}
