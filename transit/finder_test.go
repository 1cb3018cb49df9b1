package transit

import (
	"context"
	"testing"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/ephemeris"
	"github.com/kalachakra/ephemeris/timeutil"
	"github.com/kalachakra/ephemeris/zodiac"
)

// j2000Epoch matches StubProvider's anchor instant, so Mars's circular
// path starts at longitude 0 there and advances at its AvgSpeed.
var j2000Epoch = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

func marsFinder(t *testing.T) *TransitFinder {
	t.Helper()
	place := ephemeris.NewPlace("test", 0, 0, 0, 0)
	e, err := ephemeris.New(j2000Epoch, place, config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("ephemeris.New() error = %v", err)
	}
	return New(e, nil)
}

func TestTransitsFindsEntryAndExit(t *testing.T) {
	tf := marsFinder(t)
	ctx := context.Background()

	rng := zodiac.NewDegreeRange(10, 10) // [10, 20)
	window := timeutil.NewInterval(j2000Epoch, j2000Epoch.Add(90*24*time.Hour))

	results, err := tf.Transits(ctx, body.Mars, rng, Duration(window))
	if err != nil {
		t.Fatalf("Transits() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1: %v", len(results), results)
	}

	avgSpeed := body.Of(body.Mars).AvgSpeed
	wantEntryDays := 10 / avgSpeed
	wantExitDays := 20 / avgSpeed
	wantEntry := j2000Epoch.Add(time.Duration(wantEntryDays*24*3600) * time.Second)
	wantExit := j2000Epoch.Add(time.Duration(wantExitDays*24*3600) * time.Second)

	if diff := results[0].Start.Sub(wantEntry); diff > time.Hour || diff < -time.Hour {
		t.Errorf("entry = %v, want ~%v", results[0].Start, wantEntry)
	}
	if diff := results[0].End.Sub(wantExit); diff > time.Hour || diff < -time.Hour {
		t.Errorf("exit = %v, want ~%v", results[0].End, wantExit)
	}
}

func TestTransitsInHouseRangeDelegatesToDegreeRange(t *testing.T) {
	tf := marsFinder(t)
	ctx := context.Background()

	hr := zodiac.NewHouseRange(zodiac.Aries, 1)
	window := timeutil.NewInterval(j2000Epoch, j2000Epoch.Add(90*24*time.Hour))

	results, err := tf.TransitsInHouseRange(ctx, body.Mars, hr, Duration(window))
	if err != nil {
		t.Fatalf("TransitsInHouseRange() error = %v", err)
	}
	if len(results) == 0 {
		t.Error("expected at least one transit through the first house")
	}
}

func TestRetrogradesEmptyForNonRetrogradingBody(t *testing.T) {
	tf := marsFinder(t)
	ctx := context.Background()

	window := timeutil.NewInterval(j2000Epoch, j2000Epoch.Add(30*24*time.Hour))
	results, err := tf.Retrogrades(ctx, body.Sun, window, nil)
	if err != nil {
		t.Fatalf("Retrogrades() error = %v", err)
	}
	if results != nil {
		t.Errorf("Retrogrades(Sun) = %v, want nil", results)
	}
}

func TestCurrentlyRetrogradeStubNeverRetrogrades(t *testing.T) {
	tf := marsFinder(t)
	ctx := context.Background()

	state, err := tf.CurrentlyRetrograde(ctx, body.Mars, j2000Epoch.Add(10*24*time.Hour))
	if err != nil {
		t.Fatalf("CurrentlyRetrograde() error = %v", err)
	}
	if state == MotionRetrograde {
		t.Error("CurrentlyRetrograde() = Retrograde, want Direct or Stationary (stub provider never reverses)")
	}
}

func TestStitchShardsFusesExactBoundary(t *testing.T) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	shardA := []timeutil.Interval{{Start: base, End: base.Add(time.Hour)}}
	shardB := []timeutil.Interval{
		{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)},
		{Start: base.Add(5 * time.Hour), End: base.Add(6 * time.Hour)},
	}
	got := stitchShards([][]timeutil.Interval{shardA, shardB})
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if !got[0].Start.Equal(base) || !got[0].End.Equal(base.Add(2*time.Hour)) {
		t.Errorf("fused interval = %v, want %v..%v", got[0], base, base.Add(2*time.Hour))
	}
}
