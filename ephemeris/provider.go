package ephemeris

import (
	"fmt"
	"math"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
)

// Provider is the external ephemeris oracle: a black-box numerical
// library that, given a Julian Day and a body, returns topocentric
// sidereal longitude/latitude/distance/speed. The adapter is the only
// thing in this module that talks to it.
//
// Concurrency hazard: implementations commonly hide mutable state in
// thread-local storage (the reference oracles are C libraries wrapped
// this way). A Provider value must never be shared across goroutines;
// the parallel driver enforces this by building a fresh Provider per
// worker shard (see pardrv.MapReduce).
type Provider interface {
	// Position returns longitude/latitude/distance/speed for b at the
	// given Julian Day, under the configured ayanamsha.
	Position(jd float64, b body.Body) (longitude, latitude, distance, speed float64, warning string, err error)

	// Ascendant returns the ascendant's ecliptic longitude at the
	// given Julian Day and geographic place.
	Ascendant(jd float64, latitude, longitude float64) (ascendantLongitude float64, err error)

	// Close releases any resources (file handles, mapped data files)
	// the provider holds.
	Close() error
}

// NewFactory constructs a fresh, unshared Provider instance reading
// from cfg.DataPath. Each parallel-driver worker calls this once.
type NewFactory func(cfg config.Config) (Provider, error)

// StubProvider is a simplified, deterministic Provider used when no
// data-backed oracle is configured: it propagates each body forward
// from a fixed epoch at its table AvgSpeed on a circular, zero-latitude
// orbit. It exists so the rest of this module — and its tests — can
// run without a real ephemeris data file; it is not an accuracy claim
// (see spec.md's accuracy non-goal).
type StubProvider struct {
	// epochJD is the Julian Day the circular propagation starts from;
	// seed holds each body's longitude (degrees) at that Julian Day.
	epochJD float64
	seed    map[body.Body]float64
	closed  bool
}

// NewStubProvider builds a StubProvider anchored at the J2000.0 epoch
// (JD 2451545.0), with every tracked body seeded at longitude 0 there.
func NewStubProvider(config.Config) (Provider, error) {
	all := body.AllBodies()
	seed := make(map[body.Body]float64, len(all))
	for _, b := range all {
		seed[b] = 0
	}
	return &StubProvider{epochJD: 2451545.0, seed: seed}, nil
}

func (s *StubProvider) Position(jd float64, b body.Body) (longitude, latitude, distance, speed float64, warning string, err error) {
	if s.closed {
		return 0, 0, 0, 0, "", fmt.Errorf("ephemeris: stub provider closed")
	}
	t := body.Of(b)
	elapsedDays := jd - s.epochJD
	longitude = math.Mod(s.seed[b]+t.AvgSpeed*elapsedDays, 360)
	if longitude < 0 {
		longitude += 360
	}
	return longitude, 0, 1.0, t.AvgSpeed, "", nil
}

func (s *StubProvider) Ascendant(jd float64, latitude, longitude float64) (float64, error) {
	if s.closed {
		return 0, fmt.Errorf("ephemeris: stub provider closed")
	}
	// Rotate with sidereal time and latitude so repeated calls at the
	// same instant/place are stable but vary across both.
	siderealDegrees := math.Mod((jd-2451545.0)*360.98564736629, 360)
	asc := math.Mod(siderealDegrees+longitude+latitude, 360)
	if asc < 0 {
		asc += 360
	}
	return asc, nil
}

func (s *StubProvider) Close() error {
	s.closed = true
	return nil
}
