package transit

import (
	"context"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/timeutil"
)

// Retrogrades returns every interval within overlapping during which b
// is retrograde. policy overrides config.RetrogradeFringePolicy when
// non-nil. Bodies with RetrogradeDuration == 0 (Sun, Moon) never
// retrograde and return (nil, nil).
func (tf *TransitFinder) Retrogrades(ctx context.Context, b body.Body, overlapping timeutil.Interval, policy *config.FringePolicy) ([]timeutil.Interval, error) {
	ctx, span := tf.observer.CreateSpan(ctx, "transit.Retrogrades")
	defer span.End()

	r := body.Of(b).RetrogradeDuration
	if r <= 0 {
		return nil, nil
	}
	rDur := time.Duration(r) * time.Second
	rp := retrogradePredicate(b)

	expanded := overlapping
	if startPos, err := tf.ephemeris.Position(ctx, b, overlapping.Start); err == nil && rp(startPos) {
		expanded.Start = expanded.Start.Add(-rDur)
	}
	if endPos, err := tf.ephemeris.Position(ctx, b, overlapping.End); err == nil && rp(endPos) {
		expanded.End = expanded.End.Add(rDur)
	}

	candidates, err := tf.sweep(ctx, b, rp, expanded, rDur/2)
	if err != nil {
		return nil, err
	}

	minDur := rDur / 2
	filtered := candidates[:0]
	for _, c := range candidates {
		if c.Duration() >= minDur {
			filtered = append(filtered, c)
		}
	}

	maxFringe := time.Duration(2*body.Of(b).SynodicPeriod/378) * time.Second

	var refined []timeutil.Interval
	for _, c := range filtered {
		fringeWindow := timeutil.Interval{Start: c.Start.Add(-maxFringe), End: c.End.Add(maxFringe)}
		subs, err := baselineSweep(ctx, tf.ephemeris, b, rp, fringeWindow, time.Hour, timeutil.Hour)
		if err != nil {
			return nil, err
		}
		refined = append(refined, subs...)
	}

	effectivePolicy := tf.config.RetrogradeFringePolicy
	if policy != nil {
		effectivePolicy = *policy
	}
	return collapseFringe(refined, effectivePolicy, maxFringe), nil
}
