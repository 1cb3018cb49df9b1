package dasha

import (
	"testing"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/timeutil"
)

func TestSubdivideChildrenSumToParentDuration(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	interval := timeutil.Interval{Start: start, End: start.Add(120 * timeutil.Year.Duration())}

	nodes := subdivide(interval, body.Moon, 0, config.Maha, config.Pratyantar)
	if len(nodes) == 0 {
		t.Fatal("subdivide() returned no nodes")
	}

	var total time.Duration
	for _, n := range nodes {
		total += n.Period.Duration()

		var childTotal time.Duration
		for _, c := range n.Children {
			childTotal += c.Period.Duration()
			if c.supraDasha != n {
				t.Errorf("child.supraDasha = %p, want parent %p", c.supraDasha, n)
			}
		}
		if diff := childTotal - n.Period.Duration(); diff > time.Millisecond || diff < -time.Millisecond {
			t.Errorf("node %s: children sum to %v, want %v", n.Planet, childTotal, n.Period.Duration())
		}
	}
	if diff := total - interval.Duration(); diff > time.Millisecond || diff < -time.Millisecond {
		t.Errorf("nodes sum to %v, want %v", total, interval.Duration())
	}
}

func TestSubdivideFollowsFixedCycle(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	interval := timeutil.Interval{Start: start, End: start.Add(120 * timeutil.Year.Duration())}

	nodes := subdivide(interval, body.Moon, 0, config.Maha, config.Maha)
	for i := 1; i < len(nodes); i++ {
		want := body.NextInCycle(nodes[i-1].Planet)
		if nodes[i].Planet != want {
			t.Errorf("nodes[%d].Planet = %s, want %s", i, nodes[i].Planet, want)
		}
	}
}

func TestSubdivideStopsAtMaxDepth(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	interval := timeutil.Interval{Start: start, End: start.Add(120 * timeutil.Year.Duration())}

	nodes := subdivide(interval, body.Moon, 0, config.Maha, config.Maha)
	for _, n := range nodes {
		if len(n.Children) != 0 {
			t.Errorf("node %s has children at max depth Maha", n.Planet)
		}
	}
}

func TestClipTreeDropsNonIntersecting(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	interval := timeutil.Interval{Start: start, End: start.Add(120 * timeutil.Year.Duration())}
	nodes := subdivide(interval, body.Moon, 0, config.Maha, config.Maha)

	clip := timeutil.Interval{Start: start, End: start.Add(5 * timeutil.Year.Duration())}
	clipped := clipTree(nodes, clip)
	for _, n := range clipped {
		if n.Period.Start.Before(clip.Start) || n.Period.End.After(clip.End) {
			t.Errorf("clipped period %v exceeds clip bound %v", n.Period, clip)
		}
	}
}
