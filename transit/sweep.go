package transit

import (
	"context"
	"sort"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/ephemeris"
	"github.com/kalachakra/ephemeris/timeutil"
	"golang.org/x/exp/slices"
)

// predicate tests a sampled position against whatever membership test
// the caller cares about (degree-range containment, retrograde sign).
type predicate func(ephemeris.Position) bool

// sampler is the subset of *ephemeris.Ephemeris the sweep needs; a
// shard's fresh adapter satisfies it just as well as the finder's own.
type sampler interface {
	Positions(ctx context.Context, b body.Body, instants []time.Time) ([]ephemeris.TimedPosition, error)
	Position(ctx context.Context, b body.Body, instant time.Time) (ephemeris.Position, error)
}

// baselineSweep walks interval at a fixed stride, detects predicate
// transitions between consecutive samples, and bisection-refines each
// edge to resolution. A run still open at the last sample is closed
// there (it extends past the search window).
func baselineSweep(ctx context.Context, e sampler, b body.Body, p predicate, interval timeutil.Interval, step time.Duration, resolution timeutil.Unit) ([]timeutil.Interval, error) {
	if step <= 0 {
		step = time.Hour
	}

	instants := make([]time.Time, 0, int(interval.Duration()/step)+2)
	for t := interval.Start; t.Before(interval.End); t = t.Add(step) {
		instants = append(instants, t)
	}
	if len(instants) == 0 || !instants[len(instants)-1].Equal(interval.End) {
		instants = append(instants, interval.End)
	}

	samples, err := e.Positions(ctx, b, instants)
	if err != nil {
		return nil, err
	}
	return walk(ctx, e, b, p, samples, resolution)
}

// walk scans already-sampled points for predicate transitions,
// refining each edge via bisection, and returns the closed intervals
// where p held.
func walk(ctx context.Context, e sampler, b body.Body, p predicate, samples []ephemeris.TimedPosition, resolution timeutil.Unit) ([]timeutil.Interval, error) {
	var result []timeutil.Interval
	var openStart *time.Time
	if len(samples) > 0 && p(samples[0].Position) {
		start := samples[0].Instant
		openStart = &start
	}

	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		prevHolds, curHolds := p(prev.Position), p(cur.Position)

		switch {
		case !prevHolds && curHolds:
			edge, ok, err := refineEdge(ctx, e, b, p, prev.Instant, cur.Instant, resolution)
			if err != nil {
				return nil, err
			}
			start := cur.Instant
			if ok {
				start = edge
			}
			openStart = &start

		case prevHolds && !curHolds:
			if openStart == nil {
				continue
			}
			notP := func(pos ephemeris.Position) bool { return !p(pos) }
			edge, ok, err := refineEdge(ctx, e, b, notP, prev.Instant, cur.Instant, resolution)
			if err != nil {
				return nil, err
			}
			end := cur.Instant
			if ok {
				end = edge
			}
			result = append(result, timeutil.Interval{Start: *openStart, End: end})
			openStart = nil
		}
	}

	if openStart != nil {
		result = append(result, timeutil.Interval{Start: *openStart, End: samples[len(samples)-1].Instant})
	}
	return result, nil
}

// refineEdge bisection-narrows the transition instant between a (where
// p does not hold) and c (where p holds) down to resolution, resampling
// at progressively finer calendar units each round.
func refineEdge(ctx context.Context, e sampler, b body.Body, p predicate, a, c time.Time, resolution timeutil.Unit) (time.Time, bool, error) {
	if c.Sub(a) <= resolution.Duration() {
		posA, err := e.Position(ctx, b, a)
		if err == nil && p(posA) {
			return a, true, nil
		}
		posC, err := e.Position(ctx, b, c)
		if err == nil && p(posC) {
			return c, true, nil
		}
		return time.Time{}, false, nil
	}

	unit := timeutil.OfDuration(c.Sub(a)).Unit
	if !unit.Finer(resolution) {
		unit = unit.NextFiner()
	}
	stride := unit.Duration()

	instants := make([]time.Time, 0)
	for t := a; t.Before(c.Add(stride)); t = t.Add(stride) {
		instants = append(instants, t)
	}
	instants = append(instants, c)
	instants = dedupeSorted(instants)

	samples, err := e.Positions(ctx, b, instants)
	if err != nil {
		return time.Time{}, false, err
	}

	for i := 1; i < len(samples); i++ {
		if p(samples[i].Position) {
			return refineEdge(ctx, e, b, p, samples[i-1].Instant, samples[i].Instant, resolution)
		}
	}
	return time.Time{}, false, nil
}

func dedupeSorted(instants []time.Time) []time.Time {
	slices.SortFunc(instants, func(a, b time.Time) int { return a.Compare(b) })
	return slices.CompactFunc(instants, func(a, b time.Time) bool { return a.Equal(b) })
}

// ensureSorted is used by callers that build instant sets from a map
// and need deterministic order before a batched Positions call.
func ensureSorted(instants []time.Time) []time.Time {
	sort.Slice(instants, func(i, j int) bool { return instants[i].Before(instants[j]) })
	return instants
}
