package transit

import (
	"context"
	"math"
	"time"

	"github.com/kalachakra/ephemeris/body"
)

// MotionState is a body's instantaneous direction of travel.
type MotionState int

const (
	MotionDirect MotionState = iota
	MotionStationary
	MotionRetrograde
)

func (m MotionState) String() string {
	switch m {
	case MotionDirect:
		return "Direct"
	case MotionStationary:
		return "Stationary"
	case MotionRetrograde:
		return "Retrograde"
	default:
		return "Unknown"
	}
}

// stationaryFraction bounds the "stationary" band as a fraction of the
// body's average speed: a station (the planet appears to pause before
// reversing) is real but brief, so a small band around zero speed
// keeps it from being misreported as a direct or retrograde crossing.
const stationaryFraction = 0.02

// CurrentlyRetrograde probes b's instantaneous speed at instant
// directly, without a sweep, classifying it as Direct, Stationary, or
// Retrograde. This supplements the interval-based Retrogrades search
// for callers that only need the current state.
func (tf *TransitFinder) CurrentlyRetrograde(ctx context.Context, b body.Body, instant time.Time) (MotionState, error) {
	pos, err := tf.ephemeris.Position(ctx, b, instant)
	if err != nil {
		return MotionDirect, err
	}

	threshold := body.Of(b).AvgSpeed * stationaryFraction
	if math.Abs(pos.Speed) <= threshold {
		return MotionStationary, nil
	}
	if retrogradePredicate(b)(pos) {
		return MotionRetrograde, nil
	}
	return MotionDirect, nil
}
