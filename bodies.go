package montenbruck

import (
	"fmt"
	"strings"
)

// Body identifies one of the fixed set of supported solar-system bodies.
// The set is closed: no member is ever added or removed at runtime.
type Body uint8

// The supported bodies.
const (
	Moon Body = iota
	Sun
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	nBodies // keep last
)

var bodyNames = [nBodies]string{
	"Moon", "Sun", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

// Bodies returns all supported bodies in enumeration order.
func Bodies() []Body {
	all := make([]Body, nBodies)
	for i := range all {
		all[i] = Body(i)
	}
	return all
}

// String implements the Stringer interface.
func (b Body) String() string {
	if b >= nBodies {
		return fmt.Sprintf("Body(%d)", uint8(b))
	}
	return bodyNames[b]
}

// EmbedsAberration reports whether the body's position pipeline already folds
// light-time and aberration in. It does for every planet, whose geocentric
// composition corrects along the combined Sun/body velocity; it does not for
// the Moon and the Sun, whose positions come straight from their series and
// may take the standalone LightTravel term instead.
func (b Body) EmbedsAberration() bool {
	return b != Moon && b != Sun
}

// BodyFromString returns the body from its name.
func BodyFromString(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(name, n) {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("undefined body '%s'", name)
}
