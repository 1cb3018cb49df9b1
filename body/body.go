// Package body holds the static per-body table the transit finder and
// daśā calculator consult for speed bounds, retrograde duration,
// synodic period, and Vimshottari ratio.
package body

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Body enumerates the planets and lunar nodes this engine tracks.
// Ordinal order is canonical comparison order.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	NorthNode
	SouthNode
)

var bodyNames = map[Body]string{
	Sun:       "Sun",
	Moon:      "Moon",
	Mercury:   "Mercury",
	Venus:     "Venus",
	Mars:      "Mars",
	Jupiter:   "Jupiter",
	Saturn:    "Saturn",
	NorthNode: "Rahu",
	SouthNode: "Ketu",
}

func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Body(%d)", int(b))
}

// Table is the static data this engine relies on per body: nothing
// here varies with time, so these values don't come from the ephemeris
// oracle — they ground the adaptive-sampling step size, the
// retrograde-window corrections, and the Vimshottari schedule.
//
// Sources (per the tradition the teacher's own NakshatraData/VaraData
// tables cite): "Surya Siddhanta", "Brihat Parashara Hora Shastra" for
// the Vimshottari ratios; mean orbital elements for the speed bounds.
type Table struct {
	// AvgSpeed and MaxSpeed are degrees/day. Negative values are not
	// used here (sign is determined per-sample from the oracle); these
	// are magnitudes of the body's typical and fastest traversal rate.
	AvgSpeed float64
	MaxSpeed float64

	// RetrogradeDuration is the mean length of a retrograde episode, in
	// seconds. Zero for Sun and Moon, which never retrograde.
	RetrogradeDuration float64

	// SynodicPeriod is the mean interval between successive retrograde
	// midpoints, in seconds.
	SynodicPeriod float64

	// VimshottariRatio is the exact fraction (dasha years / 120) this
	// body rules in the Vimshottari cycle.
	VimshottariRatio float64
}

const daysToSeconds = 86400.0

// tables holds the static entry for every tracked body. Retrograde
// durations and synodic periods are mean figures in days, converted to
// seconds below.
var tables = map[Body]Table{
	Sun: {AvgSpeed: 0.9856, MaxSpeed: 1.0197, RetrogradeDuration: 0, SynodicPeriod: 0, VimshottariRatio: 6.0 / 120},
	Moon: {AvgSpeed: 13.176, MaxSpeed: 15.385, RetrogradeDuration: 0, SynodicPeriod: 0, VimshottariRatio: 10.0 / 120},
	Mercury: {AvgSpeed: 1.383, MaxSpeed: 2.2, RetrogradeDuration: 24 * daysToSeconds, SynodicPeriod: 116 * daysToSeconds, VimshottariRatio: 17.0 / 120},
	Venus: {AvgSpeed: 1.2, MaxSpeed: 1.27, RetrogradeDuration: 42 * daysToSeconds, SynodicPeriod: 584 * daysToSeconds, VimshottariRatio: 20.0 / 120},
	Mars: {AvgSpeed: 0.524, MaxSpeed: 0.79, RetrogradeDuration: 72 * daysToSeconds, SynodicPeriod: 780 * daysToSeconds, VimshottariRatio: 7.0 / 120},
	Jupiter: {AvgSpeed: 0.083, MaxSpeed: 0.243, RetrogradeDuration: 120 * daysToSeconds, SynodicPeriod: 399 * daysToSeconds, VimshottariRatio: 16.0 / 120},
	Saturn: {AvgSpeed: 0.034, MaxSpeed: 0.13, RetrogradeDuration: 140 * daysToSeconds, SynodicPeriod: 378 * daysToSeconds, VimshottariRatio: 19.0 / 120},
	// The lunar nodes move slowly and, unlike ordinary planets, are
	// "retrograde" (direction of motion treated as their dominant
	// state) when their longitudinal speed is positive: mean motion is
	// negative (regression through the zodiac), so a sign flip to
	// positive is the anomaly worth tracking the same way a planet's
	// negative-speed episode is.
	NorthNode: {AvgSpeed: 0.053, MaxSpeed: 0.21, RetrogradeDuration: 180 * daysToSeconds, SynodicPeriod: 6793 * daysToSeconds, VimshottariRatio: 18.0 / 120},
	SouthNode: {AvgSpeed: 0.053, MaxSpeed: 0.21, RetrogradeDuration: 180 * daysToSeconds, SynodicPeriod: 6793 * daysToSeconds, VimshottariRatio: 7.0 / 120},
}

// Of returns the static table entry for b.
func Of(b Body) Table {
	return tables[b]
}

// AllBodies returns every body this engine has a static table for, in
// canonical ordinal order. Seeding code that needs to initialize
// per-body state (a stub provider's longitude map, a cache's warm-up
// pass) should range over this rather than hand-enumerating bodies.
func AllBodies() []Body {
	all := maps.Keys(tables)
	slices.Sort(all)
	return all
}

// IsNode reports whether b is one of the lunar nodes, whose retrograde
// sign convention is inverted relative to ordinary planets.
func (b Body) IsNode() bool {
	return b == NorthNode || b == SouthNode
}

// MinTime returns the minimum time (seconds) this body needs to cover
// deg degrees, traveling at its maximum speed.
func (t Table) MinTime(deg float64) float64 {
	return absf(deg) / t.MaxSpeed * daysToSeconds
}

// AvgTime returns the expected time (seconds) this body needs to cover
// deg degrees at its average speed.
func (t Table) AvgTime(deg float64) float64 {
	return absf(deg) / t.AvgSpeed * daysToSeconds
}

// AvgDegrees returns the degrees this body covers in sec seconds at
// its average speed.
func (t Table) AvgDegrees(sec float64) float64 {
	return absf(sec) * t.AvgSpeed / daysToSeconds
}

// MaxDegrees returns the degrees this body covers in sec seconds at
// its maximum speed.
func (t Table) MaxDegrees(sec float64) float64 {
	return absf(sec) * t.MaxSpeed / daysToSeconds
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// VimshottariCycle is the fixed planet order the Vimshottari dasha
// subdivision walks, starting from whichever planet a marker's
// nakshatra surfaces.
var VimshottariCycle = []Body{SouthNode, Venus, Sun, Moon, Mars, NorthNode, Jupiter, Saturn, Mercury}

// NextInCycle returns the planet following b in the fixed Vimshottari
// cycle, wrapping around.
func NextInCycle(b Body) Body {
	for i, p := range VimshottariCycle {
		if p == b {
			return VimshottariCycle[(i+1)%len(VimshottariCycle)]
		}
	}
	return VimshottariCycle[0]
}
