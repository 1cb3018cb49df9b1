// Package transit finds when a body occupies a degree range or house
// range (transits) and when it is retrograde, over an arbitrary
// window or a forward/backward occurrence count.
package transit

import (
	"context"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/ephemeris"
	"github.com/kalachakra/ephemeris/observability"
	"github.com/kalachakra/ephemeris/pardrv"
	"github.com/kalachakra/ephemeris/timeutil"
	"github.com/kalachakra/ephemeris/zodiac"
)

// TransitFinder answers transit and retrograde queries against one
// ephemeris adapter's provider and configuration.
type TransitFinder struct {
	ephemeris  *ephemeris.Ephemeris
	config     config.Config
	newAdapter func() (*ephemeris.Ephemeris, error)
	observer   observability.ObserverInterface
}

// New builds a TransitFinder over e. newAdapter constructs a fresh
// ephemeris adapter sharing e's Place and Config, used when a search
// window is wide enough to shard across goroutines (each shard needs
// its own adapter instance); pass nil to disable sharding.
func New(e *ephemeris.Ephemeris, newAdapter func() (*ephemeris.Ephemeris, error)) *TransitFinder {
	return &TransitFinder{
		ephemeris:  e,
		config:     e.Config(),
		newAdapter: newAdapter,
		observer:   observability.Observer(),
	}
}

// Transits returns every maximal interval within limit's window during
// which b's longitude falls in rng.
func (tf *TransitFinder) Transits(ctx context.Context, b body.Body, rng zodiac.DegreeRange, limit Limit) ([]timeutil.Interval, error) {
	ctx, span := tf.observer.CreateSpan(ctx, "transit.Transits")
	defer span.End()

	window, truncateTo, err := limit.window(b)
	if err != nil {
		return nil, err
	}

	step := time.Duration(body.Of(b).MinTime(rng.Size) * float64(time.Second))
	inRange := func(p ephemeris.Position) bool { return rng.Contains(p.Longitude) }

	raw, err := tf.sweep(ctx, b, inRange, window, step)
	if err != nil {
		return nil, err
	}

	fixed, err := tf.fixEdges(ctx, b, rng.Size, inRange, raw)
	if err != nil {
		return nil, err
	}

	maxGap := time.Duration(body.Of(b).RetrogradeDuration) * time.Second
	collapsed := collapseFringe(fixed, tf.config.TransitFringePolicy, maxGap)

	return limit.truncate(collapsed, truncateTo), nil
}

// TransitsInHouseRange projects hr onto the ecliptic and delegates to Transits.
func (tf *TransitFinder) TransitsInHouseRange(ctx context.Context, b body.Body, hr zodiac.HouseRange, limit Limit) ([]timeutil.Interval, error) {
	return tf.Transits(ctx, b, hr.Degrees(), limit)
}

// NextTransit returns the first transit of hr starting at or after from.
func (tf *TransitFinder) NextTransit(ctx context.Context, b body.Body, hr zodiac.HouseRange, from time.Time) (timeutil.Interval, error) {
	results, err := tf.TransitsInHouseRange(ctx, b, hr, Count(from, 1))
	if err != nil {
		return timeutil.Interval{}, err
	}
	if len(results) == 0 {
		return timeutil.Interval{}, errNoTransitFound(b, hr)
	}
	return results[0], nil
}

// PreviousTransit returns the last transit of hr ending at or before from.
func (tf *TransitFinder) PreviousTransit(ctx context.Context, b body.Body, hr zodiac.HouseRange, from time.Time) (timeutil.Interval, error) {
	results, err := tf.TransitsInHouseRange(ctx, b, hr, Count(from, -1))
	if err != nil {
		return timeutil.Interval{}, err
	}
	if len(results) == 0 {
		return timeutil.Interval{}, errNoTransitFound(b, hr)
	}
	return results[len(results)-1], nil
}

// LifetimeTransits returns every transit of hr within [birth, birth+120y),
// the conventional outer bound of a human lifetime in this tradition.
func (tf *TransitFinder) LifetimeTransits(ctx context.Context, b body.Body, hr zodiac.HouseRange) ([]timeutil.Interval, error) {
	birth := tf.ephemeris.BirthUTC()
	lifetime := timeutil.NewInterval(birth, birth.Add(120*timeutil.Year.Duration()))
	return tf.TransitsInHouseRange(ctx, b, hr, Duration(lifetime))
}

// sweep runs the baseline sweep directly, or via pardrv.MapReduce when
// the window is wide enough relative to step to warrant sharding.
func (tf *TransitFinder) sweep(ctx context.Context, b body.Body, p predicate, window timeutil.Interval, step time.Duration) ([]timeutil.Interval, error) {
	if tf.newAdapter == nil || !pardrv.ShouldShard(tf.config, window, step) {
		return baselineSweep(ctx, tf.ephemeris, b, p, window, step, tf.config.TransitResolution)
	}

	resolution := tf.config.TransitResolution
	shardResults, err := pardrv.MapReduce(
		ctx,
		tf.config,
		window,
		tf.newAdapter,
		func(ctx context.Context, adapter *ephemeris.Ephemeris, shard timeutil.Interval) ([]timeutil.Interval, error) {
			return baselineSweep(ctx, adapter, b, p, shard, step, resolution)
		},
		func(shardResult []timeutil.Interval, state *[][]timeutil.Interval) {
			*state = append(*state, shardResult)
		},
	)
	if err != nil {
		return nil, err
	}
	return stitchShards(shardResults), nil
}

// stitchShards concatenates each shard's intervals in order, fusing
// the last interval of one shard with the first interval of the next
// when they meet exactly at the shared boundary instant.
func stitchShards(shardResults [][]timeutil.Interval) []timeutil.Interval {
	var out []timeutil.Interval
	for _, shard := range shardResults {
		if len(shard) == 0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1].End.Equal(shard[0].Start) {
			out[len(out)-1].End = shard[0].End
			out = append(out, shard[1:]...)
			continue
		}
		out = append(out, shard...)
	}
	return out
}

func errNoTransitFound(b body.Body, hr zodiac.HouseRange) error {
	return &noTransitError{body: b, houseRange: hr}
}

type noTransitError struct {
	body       body.Body
	houseRange zodiac.HouseRange
}

func (e *noTransitError) Error() string {
	return "transit: no transit of " + e.body.String() + " found in the search window"
}
