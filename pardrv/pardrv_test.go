package pardrv

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/ephemeris"
	"github.com/kalachakra/ephemeris/timeutil"
)

func testInterval() timeutil.Interval {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return timeutil.NewInterval(start, start.Add(4*time.Hour))
}

func TestPartitionTilesExactly(t *testing.T) {
	r := testInterval()
	shards := Partition(r, 4)

	if len(shards) != 4 {
		t.Fatalf("len(shards) = %d, want 4", len(shards))
	}
	if !shards[0].Start.Equal(r.Start) {
		t.Errorf("shards[0].Start = %v, want %v", shards[0].Start, r.Start)
	}
	if !shards[len(shards)-1].End.Equal(r.End) {
		t.Errorf("last shard End = %v, want %v", shards[len(shards)-1].End, r.End)
	}
	for i := 1; i < len(shards); i++ {
		if !shards[i-1].End.Equal(shards[i].Start) {
			t.Errorf("shard %d End %v != shard %d Start %v", i-1, shards[i-1].End, i, shards[i].Start)
		}
	}
}

func TestShouldShard(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ConcurrencyThreshold = 100

	r := timeutil.NewInterval(time.Now(), time.Now().Add(time.Hour))
	if ShouldShard(cfg, r, time.Minute) {
		t.Error("ShouldShard() = true for a ratio below threshold, want false")
	}
	if !ShouldShard(cfg, r, time.Second) {
		t.Error("ShouldShard() = false for a ratio above threshold, want true")
	}
}

func newTestAdapter() (*ephemeris.Ephemeris, error) {
	place := ephemeris.NewPlace("test", 0, 0, 0, 0)
	return ephemeris.New(time.Now(), place, config.DefaultConfig(), nil)
}

func TestMapReduceOrdersByShardIndex(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Concurrency = 4
	r := testInterval()

	result, err := MapReduce(
		context.Background(),
		cfg,
		r,
		newTestAdapter,
		func(ctx context.Context, adapter *ephemeris.Ephemeris, shard timeutil.Interval) ([]int, error) {
			return []int{int(shard.Start.Unix())}, nil
		},
		func(shardResult []int, state *[]int) {
			*state = append(*state, shardResult...)
		},
	)
	if err != nil {
		t.Fatalf("MapReduce() error = %v", err)
	}
	if len(result) != 4 {
		t.Fatalf("len(result) = %d, want 4", len(result))
	}
	for i := 1; i < len(result); i++ {
		if result[i] <= result[i-1] {
			t.Errorf("result not in shard order: %v", result)
		}
	}
}

func TestMapReducePropagatesFirstShardError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Concurrency = 3
	r := testInterval()

	wantErr := fmt.Errorf("shard 0 failed")
	_, err := MapReduce(
		context.Background(),
		cfg,
		r,
		newTestAdapter,
		func(ctx context.Context, adapter *ephemeris.Ephemeris, shard timeutil.Interval) ([]int, error) {
			if shard.Start.Equal(r.Start) {
				return nil, wantErr
			}
			return []int{1}, nil
		},
		func(shardResult []int, state *[]int) {
			*state = append(*state, shardResult...)
		},
	)
	if err != wantErr {
		t.Errorf("MapReduce() error = %v, want %v", err, wantErr)
	}
}
