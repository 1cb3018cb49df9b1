// Package dasha computes Vimshottari daśā schedules: a three-level
// nested partition of a 120-year lifespan into planetary rulerships,
// keyed off a chart marker's nakshatra at birth.
package dasha

import (
	"context"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/ephemeris"
	"github.com/kalachakra/ephemeris/observability"
	"github.com/kalachakra/ephemeris/timeutil"
	"github.com/kalachakra/ephemeris/zodiac"
)

const nakshatraSpanSeconds = 48000.0

// DashaCalculator computes Vimshottari schedules against one ephemeris
// adapter's birth instant and configuration.
type DashaCalculator struct {
	ephemeris *ephemeris.Ephemeris
	config    config.Config
	observer  observability.ObserverInterface
}

// New builds a DashaCalculator over e.
func New(e *ephemeris.Ephemeris) *DashaCalculator {
	return &DashaCalculator{ephemeris: e, config: e.Config(), observer: observability.Observer()}
}

// Vimshottari computes the full prenatal and postnatal schedule seeded
// by marker's nakshatra at birth, to config.MaxDashaDepth.
func (dc *DashaCalculator) Vimshottari(ctx context.Context, marker Marker) (prenatal, postnatal []*Dasha, err error) {
	ctx, span := dc.observer.CreateSpan(ctx, "dasha.Vimshottari")
	defer span.End()

	longitude, err := dc.markerLongitude(ctx, marker)
	if err != nil {
		return nil, nil, err
	}

	nakshatra, deg, min, sec := zodiac.NakshatraFromLongitude(longitude)
	ruler := nakshatra.Ruler()

	elapsedAngleSeconds := float64(deg)*3600 + float64(min)*60 + float64(sec)
	lifetimeSeconds := 120 * timeutil.Year.Seconds()
	elapsedTime := (elapsedAngleSeconds / nakshatraSpanSeconds) * body.Of(ruler).VimshottariRatio * lifetimeSeconds

	birth := dc.ephemeris.BirthUTC()
	elapsedDuration := secondsToDuration(elapsedTime)
	lifetimeDuration := secondsToDuration(lifetimeSeconds)

	postnatalInterval := timeutil.Interval{Start: birth, End: birth.Add(lifetimeDuration - elapsedDuration)}
	postnatal = subdivide(postnatalInterval, ruler, elapsedTime, config.Maha, dc.config.MaxDashaDepth)

	prenatalStart := birth.Add(-elapsedDuration)
	prenatalInterval := timeutil.Interval{Start: prenatalStart, End: prenatalStart.Add(lifetimeDuration)}
	rawPrenatal := subdivide(prenatalInterval, ruler, 0, config.Maha, dc.config.MaxDashaDepth)
	prenatal = clipTree(rawPrenatal, timeutil.Interval{Start: prenatalStart, End: birth})

	return prenatal, postnatal, nil
}

// VimshottariOverlapping returns the postnatal schedule filtered to
// nodes (at every depth) whose period intersects overlapping.
func (dc *DashaCalculator) VimshottariOverlapping(ctx context.Context, overlapping timeutil.Interval, marker Marker) ([]*Dasha, error) {
	_, postnatal, err := dc.Vimshottari(ctx, marker)
	if err != nil {
		return nil, err
	}
	return filterOverlapping(postnatal, overlapping), nil
}

func (dc *DashaCalculator) markerLongitude(ctx context.Context, marker Marker) (float64, error) {
	if marker.kind == markerAscendant {
		pos, err := dc.ephemeris.Ascendant(ctx)
		if err != nil {
			return 0, err
		}
		return pos.Longitude, nil
	}
	pos, err := dc.ephemeris.Position(ctx, marker.planet, dc.ephemeris.BirthUTC())
	if err != nil {
		return 0, err
	}
	return pos.Longitude, nil
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
