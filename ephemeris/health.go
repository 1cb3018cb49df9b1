package ephemeris

import (
	"context"
	"time"

	"github.com/kalachakra/ephemeris/body"
)

// HealthStatus reports whether the configured Provider is reachable
// and how quickly it answers, without starting any background loop —
// callers poll it explicitly.
type HealthStatus struct {
	Reachable bool
	Latency   time.Duration
	Err       error
}

// HealthStatus probes the adapter's Provider with a throwaway Sun
// position request at the current moment and reports round-trip
// latency and reachability. It never mutates the cache.
func (e *Ephemeris) HealthStatus(ctx context.Context) HealthStatus {
	ctx, span := e.observer.CreateSpan(ctx, "Ephemeris.HealthStatus")
	defer span.End()

	jd := julianDay(time.Now().UTC())
	start := time.Now()
	_, _, _, _, _, err := e.provider.Position(jd, body.Sun)
	latency := time.Since(start)

	return HealthStatus{
		Reachable: err == nil,
		Latency:   latency,
		Err:       err,
	}
}
