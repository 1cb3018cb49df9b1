package body

import "testing"

func TestVimshottariRatiosSumTo120(t *testing.T) {
	var sum float64
	seen := map[Body]bool{}
	for _, b := range VimshottariCycle {
		if seen[b] {
			continue
		}
		seen[b] = true
		sum += Of(b).VimshottariRatio
	}
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("vimshottari ratios summed over the cycle = %v, want 1.0", sum)
	}
}

func TestNextInCycleWraps(t *testing.T) {
	last := VimshottariCycle[len(VimshottariCycle)-1]
	if NextInCycle(last) != VimshottariCycle[0] {
		t.Errorf("NextInCycle(%s) = %s, want %s", last, NextInCycle(last), VimshottariCycle[0])
	}
}

func TestMinTimeMonotonicWithMaxSpeed(t *testing.T) {
	moon := Of(Moon)
	saturn := Of(Saturn)
	if moon.MinTime(30) >= saturn.MinTime(30) {
		t.Errorf("moon should cross 30 degrees far faster than saturn")
	}
}

func TestAllBodiesCoversEveryTableEntry(t *testing.T) {
	all := AllBodies()
	if len(all) != len(VimshottariCycle) {
		t.Fatalf("AllBodies() has %d entries, want %d", len(all), len(VimshottariCycle))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("AllBodies() not sorted ascending at index %d: %v then %v", i, all[i-1], all[i])
		}
	}
}

func TestSouthNodeSharesKetuRatio(t *testing.T) {
	if Of(SouthNode).VimshottariRatio != 7.0/120 {
		t.Errorf("south node ratio = %v, want ketu's 7/120", Of(SouthNode).VimshottariRatio)
	}
	if Of(NorthNode).VimshottariRatio != 18.0/120 {
		t.Errorf("north node ratio = %v, want rahu's 18/120", Of(NorthNode).VimshottariRatio)
	}
}
