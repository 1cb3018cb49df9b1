package transit

import (
	"time"

	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/timeutil"
)

// collapseFringe clusters consecutive intervals separated by a gap no
// wider than maxGap and applies policy within each cluster: Strict
// leaves every sub-interval as its own entry, Largest keeps only the
// widest sub-interval per cluster, Covering merges the whole cluster
// into one interval spanning its first Start to its last End.
//
// maxGap <= 0 disables clustering entirely (Strict behavior
// regardless of policy) — used for bodies that never retrograde, where
// fused boundary fragments have no natural merge radius.
func collapseFringe(intervals []timeutil.Interval, policy config.FringePolicy, maxGap time.Duration) []timeutil.Interval {
	if len(intervals) == 0 {
		return intervals
	}
	if maxGap <= 0 || policy == config.Strict {
		return intervals
	}

	clusters := make([][]timeutil.Interval, 0)
	current := []timeutil.Interval{intervals[0]}
	for i := 1; i < len(intervals); i++ {
		gap := intervals[i].Start.Sub(current[len(current)-1].End)
		if gap <= maxGap {
			current = append(current, intervals[i])
			continue
		}
		clusters = append(clusters, current)
		current = []timeutil.Interval{intervals[i]}
	}
	clusters = append(clusters, current)

	out := make([]timeutil.Interval, 0, len(clusters))
	for _, cluster := range clusters {
		switch policy {
		case config.Largest:
			widest := cluster[0]
			for _, iv := range cluster[1:] {
				if iv.Duration() > widest.Duration() {
					widest = iv
				}
			}
			out = append(out, widest)
		case config.Covering:
			out = append(out, timeutil.Interval{Start: cluster[0].Start, End: cluster[len(cluster)-1].End})
		default:
			out = append(out, cluster...)
		}
	}
	return out
}
