package transit

import (
	"fmt"
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/timeutil"
)

type limitKind int

const (
	limitDuration limitKind = iota
	limitCount
)

// Limit bounds a transit/retrograde search: either an explicit window
// (Duration) or a forward/backward occurrence count (Count) whose
// search window is sized from the body's average speed.
type Limit struct {
	kind     limitKind
	duration timeutil.Interval
	from     time.Time
	count    int
}

// Duration searches exactly within iv.
func Duration(iv timeutil.Interval) Limit {
	return Limit{kind: limitDuration, duration: iv}
}

// Count searches forward (count > 0) or backward (count < 0) from
// `from`, truncating results to |count| entries. count == 0 is
// rejected by window as invalid input.
func Count(from time.Time, count int) Limit {
	return Limit{kind: limitCount, from: from, count: count}
}

// window resolves the limit into a concrete search interval for body
// b, plus a truncation count (0 meaning "no truncation").
func (l Limit) window(b body.Body) (timeutil.Interval, int, error) {
	switch l.kind {
	case limitDuration:
		return l.duration, 0, nil
	case limitCount:
		if l.count == 0 {
			return timeutil.Interval{}, 0, fmt.Errorf("transit: Count limit with count == 0 is invalid")
		}
		abs := l.count
		if abs < 0 {
			abs = -abs
		}
		windowSeconds := body.Of(b).AvgTime(float64(abs+2) * 360)
		windowDur := time.Duration(windowSeconds * float64(time.Second))
		if l.count > 0 {
			return timeutil.Interval{Start: l.from, End: l.from.Add(windowDur)}, abs, nil
		}
		return timeutil.Interval{Start: l.from.Add(-windowDur), End: l.from}, abs, nil
	default:
		return timeutil.Interval{}, 0, fmt.Errorf("transit: unknown limit kind")
	}
}

// truncate keeps the first (forward search) or last (backward search)
// n intervals, matching the direction implied by a Count limit.
func (l Limit) truncate(intervals []timeutil.Interval, n int) []timeutil.Interval {
	if n <= 0 || n >= len(intervals) {
		return intervals
	}
	if l.kind == limitCount && l.count < 0 {
		return intervals[len(intervals)-n:]
	}
	return intervals[:n]
}
