// Package montenbruck computes geocentric apparent positions of solar-system
// bodies from heliocentric ecliptic orbital states, following the low-precision
// transformation pipeline of Montenbruck & Pfleger.
//
// The pipeline is: a body variant supplies heliocentric ecliptic longitude,
// latitude and distance (and their daily rates); Cartesian converts that polar
// state to a rectangular state with velocity; Geocentric composes it with the
// Sun's geocentric state and applies a one-step light-time correction;
// TruePosition converts back to polar degrees/AU; Apparent finally rotates the
// result from the mean to the true equinox of date through a supplied nutation
// function.
//
// All angles inside the pipeline are radians, time is Julian centuries since
// J2000.0, and rates follow the pipeline's native convention of 1e-4 rad/day
// (1e-4 AU/day for distance). Only the final Position carries degrees.
package montenbruck
