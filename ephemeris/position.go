package ephemeris

import "time"

// Position is a body's (or the ascendant's) ecliptic coordinates at an
// instant. Longitude is always meaningful; Latitude/Distance/Speed are
// only valid when HasMotion is set — the ascendant carries longitude
// alone.
type Position struct {
	Longitude float64 // degrees, [0, 360)
	Latitude  float64 // degrees
	Distance  float64 // astronomical units
	Speed     float64 // deg/day; negative = retrograde for ordinary bodies

	HasMotion bool
}

// TimedPosition pairs a Position with the instant it was sampled at,
// the shape positions()/positions_during() return.
type TimedPosition struct {
	Instant  time.Time
	Position Position
}

// Phase is the Moon-only illumination/phase-angle accessor façade
// spec.md declares but leaves undefined; PhaseAngle is the
// Sun-Moon elongation in degrees, Illumination the lit fraction [0,1].
type Phase struct {
	PhaseAngle   float64
	Illumination float64
}
