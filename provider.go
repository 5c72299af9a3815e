package montenbruck

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/moonposition"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"
)

// Provider computes true and apparent geocentric positions for every
// enumerated body. All variants are loaded and validated at construction so a
// missing capability surfaces before any position is computed.
type Provider struct {
	earth  *pp.V87Planet
	series map[Body]OrbitSeries
}

// vsopIndex maps the planetary bodies to their VSOP87 file index.
var vsopIndex = map[Body]int{
	Mercury: pp.Mercury,
	Venus:   pp.Venus,
	Mars:    pp.Mars,
	Jupiter: pp.Jupiter,
	Saturn:  pp.Saturn,
	Uranus:  pp.Uranus,
	Neptune: pp.Neptune,
}

// NewProvider loads every body variant, reading the VSOP87 data files from
// the directory named in the configuration file. See NewProviderPath.
func NewProvider() (*Provider, error) {
	return NewProviderPath(astromConfig().VSOP87Dir)
}

// NewProviderPath loads every body variant, reading the VSOP87 data files
// from dir. Any failure here is a configuration error: no position may be
// computed from a partially loaded provider.
func NewProviderPath(dir string) (*Provider, error) {
	earth, err := pp.LoadPlanetPath(pp.Earth, dir)
	if err != nil {
		return nil, fmt.Errorf("loading VSOP87 Earth: %s", err)
	}
	p := &Provider{earth: earth, series: make(map[Body]OrbitSeries, nBodies)}
	for body, idx := range vsopIndex {
		planet, err := pp.LoadPlanetPath(idx, dir)
		if err != nil {
			return nil, fmt.Errorf("loading VSOP87 %s: %s", body, err)
		}
		if err = p.Register(body, v87Series{planet}); err != nil {
			return nil, err
		}
	}
	return p, p.Register(Pluto, plutoSeries{})
}

// Register binds a variant to a body. A nil series is a contract violation
// and is rejected here rather than deep inside the pipeline.
func (p *Provider) Register(b Body, s OrbitSeries) error {
	if b >= nBodies {
		return fmt.Errorf("undefined body %s", b)
	}
	if s == nil {
		return fmt.Errorf("%s: nil orbit series", b)
	}
	p.series[b] = s
	return nil
}

// SunPosition returns the Sun's geocentric ecliptic position at jd: true
// geometric longitude and latitude of date in radians, distance in AU.
func (p *Provider) SunPosition(jd float64) (l, b, r float64) {
	s, β, R := solar.TrueVSOP87(p.earth, jd)
	return s.Rad(), β.Rad(), R
}

// True returns the body's true geocentric ecliptic position at the given
// Julian date, referred to the mean equinox of date. Planet positions run the
// full pipeline and are light-time corrected; the Moon and the Sun come
// straight from their geocentric series (callers may add LightTravel).
func (p *Provider) True(b Body, jd float64) (Position, error) {
	switch b {
	case Moon:
		λ, β, Δ := moonposition.Position(jd)
		return Position{Lon: Rad2deg(λ.Rad()), Lat: β.Deg(), Dist: Δ / AU}, nil
	case Sun:
		l, β, r := p.SunPosition(jd)
		return Position{Lon: Rad2deg(l), Lat: β / deg2rad, Dist: r}, nil
	}
	series, ok := p.series[b]
	if !ok {
		return Position{}, fmt.Errorf("no orbit series registered for %s", b)
	}
	sl, sb, sr := p.SunPosition(jd)
	return TruePosition(J2000Century(jd), series, sl, sb, sr), nil
}

// Apparent returns the body's apparent position at jd: the true position
// further rotated to the true equinox of date.
func (p *Provider) Apparent(b Body, jd float64) (Position, error) {
	pos, err := p.True(b, jd)
	if err != nil {
		return Position{}, err
	}
	return Apparent(pos, NutationAt(jd)), nil
}
