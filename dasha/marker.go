package dasha

import "github.com/kalachakra/ephemeris/body"

type markerKind int

const (
	markerPlanet markerKind = iota
	markerAscendant
)

// Marker names the chart point whose nakshatra seeds a Vimshottari
// schedule: a specific planet, or the ascendant. The Moon is the
// conventional choice but any planet or the ascendant is valid.
type Marker struct {
	kind   markerKind
	planet body.Body
}

// PlanetMarker seeds the schedule from b's nakshatra at birth.
func PlanetMarker(b body.Body) Marker {
	return Marker{kind: markerPlanet, planet: b}
}

// AscendantMarker seeds the schedule from the ascendant's nakshatra at birth.
func AscendantMarker() Marker {
	return Marker{kind: markerAscendant}
}

// MoonMarker is the conventional default: the Moon's nakshatra at birth.
func MoonMarker() Marker {
	return PlanetMarker(body.Moon)
}

func (m Marker) String() string {
	if m.kind == markerAscendant {
		return "Ascendant"
	}
	return m.planet.String()
}
