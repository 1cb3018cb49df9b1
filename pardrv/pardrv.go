// Package pardrv shards a time interval across concurrent workers,
// each constructing its own ephemeris adapter (the oracle's
// thread-local state forbids sharing one across goroutines), and
// reduces their results back together in shard order.
package pardrv

import (
	"context"
	"sync"
	"time"

	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/ephemeris"
	"github.com/kalachakra/ephemeris/observability"
	"github.com/kalachakra/ephemeris/timeutil"
)

// Partition splits r into n equal shards. Integer-nanosecond remainder
// from the division is absorbed into the final shard so the shards
// exactly tile r with no gap or overlap at any boundary.
func Partition(r timeutil.Interval, n int) []timeutil.Interval {
	if n < 1 {
		n = 1
	}
	shardDur := r.Duration() / time.Duration(n)

	shards := make([]timeutil.Interval, n)
	start := r.Start
	for i := 0; i < n; i++ {
		end := start.Add(shardDur)
		if i == n-1 {
			end = r.End
		}
		shards[i] = timeutil.Interval{Start: start, End: end}
		start = end
	}
	return shards
}

// ShouldShard reports whether config.concurrency_threshold is exceeded
// by range.duration/sampling, per spec.md's parallelism threshold.
func ShouldShard(cfg config.Config, r timeutil.Interval, sampling time.Duration) bool {
	if sampling <= 0 {
		return false
	}
	ratio := int64(r.Duration() / sampling)
	return ratio >= cfg.ConcurrencyThreshold
}

// MapReduce partitions r into cfg.Concurrency shards, runs mapFn on a
// fresh *ephemeris.Ephemeris per shard (via newAdapter) concurrently,
// then folds each shard's []T into state via reduceFn strictly in
// shard order — not completion order. The first shard error by index
// wins ties; a later shard's error is discarded once an earlier one is
// recorded.
func MapReduce[T any, W any](
	ctx context.Context,
	cfg config.Config,
	r timeutil.Interval,
	newAdapter func() (*ephemeris.Ephemeris, error),
	mapFn func(ctx context.Context, adapter *ephemeris.Ephemeris, shard timeutil.Interval) ([]T, error),
	reduceFn func(shardResult []T, state *W),
) (W, error) {
	var zero W

	observer := observability.Observer()
	ctx, span := observer.CreateSpan(ctx, "pardrv.MapReduce")
	defer span.End()

	shards := Partition(r, cfg.Concurrency)
	results := make([][]T, len(shards))
	errs := make([]error, len(shards))

	var wg sync.WaitGroup
	for i, shard := range shards {
		wg.Add(1)
		go func(i int, shard timeutil.Interval) {
			defer wg.Done()

			adapter, err := newAdapter()
			if err != nil {
				errs[i] = err
				return
			}
			defer adapter.Close()

			res, err := mapFn(ctx, adapter, shard)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = res
		}(i, shard)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return zero, err
		}
	}

	var state W
	for _, shardResult := range results {
		reduceFn(shardResult, &state)
	}
	return state, nil
}
