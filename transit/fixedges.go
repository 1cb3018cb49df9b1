package transit

import (
	"context"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/log"
	"github.com/kalachakra/ephemeris/timeutil"
	"golang.org/x/exp/slices"
)

// fixEdges corrects raw transit boundaries for bodies whose retrograde
// episodes can shift where a transit actually starts or ends: a body
// can enter a degree range, regress back out of it, and re-enter
// before the baseline sweep's stride would have caught the wobble.
//
// For each raw transit, the four windows bracketing its two edges
// (2*RetrogradeDuration wide, immediately before/after each edge) are
// searched for retrograde sub-intervals. If none are found anywhere,
// the transit is reported unchanged. Otherwise explicit samples are
// forced in around the affected edges and the transit is rebuilt from
// the denser sample set.
func (tf *TransitFinder) fixEdges(ctx context.Context, b body.Body, rangeSizeDegrees float64, rng predicate, transits []timeutil.Interval) ([]timeutil.Interval, error) {
	r := body.Of(b).RetrogradeDuration
	if r <= 0 {
		return transits, nil
	}

	window := time.Duration(r) * time.Second
	roomNeeded := body.Of(b).MaxDegrees(2 * r)
	if roomNeeded > 360-rangeSizeDegrees+6 {
		log.Logger().WarnContext(ctx, "fix_edges: retrograde window too wide for range size, skipping correction",
			"body", b.String())
		return transits, nil
	}

	fixed := make([]timeutil.Interval, 0, len(transits))
	for _, t := range transits {
		windows := []timeutil.Interval{
			t.BeforeStart(2 * window),
			t.FromStart(2 * window),
			t.BeforeEnd(2 * window),
			t.FromEnd(2 * window),
		}

		rp := retrogradePredicate(b)
		forced := map[time.Time]struct{}{t.Start: {}, t.End: {}}
		foundAny := false

		for _, w := range windows {
			subs, err := baselineSweep(ctx, tf.ephemeris, b, rp, w, window/2, tf.config.TransitResolution)
			if err != nil {
				return nil, err
			}
			if len(subs) == 0 {
				continue
			}
			foundAny = true
			for _, s := range subs {
				forced[s.Start] = struct{}{}
				forced[s.End] = struct{}{}
				forced[s.Start.Add(s.Duration()/2)] = struct{}{}
			}
		}

		if !foundAny {
			fixed = append(fixed, t)
			continue
		}

		margin := 2*window + 24*time.Hour
		forced[t.Start.Add(-margin)] = struct{}{}
		forced[t.Start.Add(margin)] = struct{}{}
		forced[t.End.Add(-margin)] = struct{}{}
		forced[t.End.Add(margin)] = struct{}{}

		instants := make([]time.Time, 0, len(forced))
		for inst := range forced {
			instants = append(instants, inst)
		}
		instants = ensureSorted(instants)
		instants = slices.CompactFunc(instants, func(a, c time.Time) bool { return a.Equal(c) })

		samples, err := tf.ephemeris.Positions(ctx, b, instants)
		if err != nil {
			return nil, err
		}
		rebuilt, err := walk(ctx, tf.ephemeris, b, rng, samples, tf.config.TransitResolution)
		if err != nil {
			return nil, err
		}
		fixed = append(fixed, rebuilt...)
	}
	return fixed, nil
}
