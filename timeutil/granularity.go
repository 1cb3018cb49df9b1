// Package timeutil provides the calendar-unit ladder and interval
// arithmetic shared by the transit finder and the daśā calculator.
package timeutil

import "time"

// Unit is one rung of the coarse-to-fine calendar ladder.
type Unit int

const (
	Year Unit = iota
	Month
	Day
	Hour
	Minute
	Second
)

// secondsInYear anchors the ladder to a Julian (365.25-day) year, the
// same anchor the ephemeris adapter uses for Vimshottari lifetime math.
const secondsInYear = 365.25 * 86400

var unitSeconds = [...]float64{
	Year:   secondsInYear,
	Month:  secondsInYear / 12,
	Day:    86400,
	Hour:   3600,
	Minute: 60,
	Second: 1,
}

var unitNames = [...]string{
	Year:   "year",
	Month:  "month",
	Day:    "day",
	Hour:   "hour",
	Minute: "minute",
	Second: "second",
}

func (u Unit) String() string {
	if u < Year || u > Second {
		return "unknown"
	}
	return unitNames[u]
}

// Seconds returns the unit's nominal width in seconds.
func (u Unit) Seconds() float64 { return unitSeconds[u] }

// Duration returns the unit's nominal width as a time.Duration.
func (u Unit) Duration() time.Duration {
	return time.Duration(u.Seconds() * float64(time.Second))
}

// Finer reports whether u is strictly finer (later in the ladder) than other.
func (u Unit) Finer(other Unit) bool { return u > other }

// NextFiner returns the next-finer unit, or Second if already finest.
func (u Unit) NextFiner() Unit {
	if u >= Second {
		return Second
	}
	return u + 1
}

// Granularity is a duration expressed as a count of the coarsest unit
// that still divides it at least once.
type Granularity struct {
	Value int
	Unit  Unit
}

// OfDuration computes the granularity of d: walking the ladder
// coarse-to-fine, the first (coarsest) unit whose nominal width still
// fits at least once into d, with Value = floor(d / unit.Seconds()).
// Year is the catch-all when d exceeds every rung (there is no coarser
// unit to promote to); a d narrower than every rung (under one second)
// gets Second with Value 0.
func OfDuration(d time.Duration) Granularity {
	secs := d.Seconds()
	if secs < 0 {
		secs = -secs
	}

	chosen := Year
	found := false
	for u := Year; u <= Second; u++ {
		if unitSeconds[u] <= secs {
			chosen = u
			found = true
			break
		}
	}
	if !found {
		chosen = Second
	}

	value := int(secs / unitSeconds[chosen])
	return Granularity{Value: value, Unit: chosen}
}

// Seconds returns the granularity's width back out as seconds.
func (g Granularity) Seconds() float64 {
	return float64(g.Value) * g.Unit.Seconds()
}
