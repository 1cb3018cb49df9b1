package timeutil

import "time"

// Interval is a half-open span of instants [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an Interval, normalizing Start/End order.
func NewInterval(start, end time.Time) Interval {
	if end.Before(start) {
		start, end = end, start
	}
	return Interval{Start: start, End: end}
}

// Duration returns End - Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Plus returns the interval shifted forward by d.
func (iv Interval) Plus(d time.Duration) Interval {
	return Interval{Start: iv.Start.Add(d), End: iv.End.Add(d)}
}

// Minus returns the interval shifted backward by d.
func (iv Interval) Minus(d time.Duration) Interval {
	return iv.Plus(-d)
}

// Contains reports whether t falls within [Start, End).
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Intersects reports whether iv and other overlap.
func (iv Interval) Intersects(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Intersection returns the overlap of iv and other, and whether one exists.
func (iv Interval) Intersection(other Interval) (Interval, bool) {
	if !iv.Intersects(other) {
		return Interval{}, false
	}
	start := iv.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := iv.End
	if other.End.Before(end) {
		end = other.End
	}
	return Interval{Start: start, End: end}, true
}

// BeforeStart returns the slice of width d immediately preceding Start:
// [Start-d, Start).
func (iv Interval) BeforeStart(d time.Duration) Interval {
	return Interval{Start: iv.Start.Add(-d), End: iv.Start}
}

// FromStart returns the slice of width d immediately following Start:
// [Start, Start+d).
func (iv Interval) FromStart(d time.Duration) Interval {
	return Interval{Start: iv.Start, End: iv.Start.Add(d)}
}

// BeforeEnd returns the slice of width d immediately preceding End:
// [End-d, End).
func (iv Interval) BeforeEnd(d time.Duration) Interval {
	return Interval{Start: iv.End.Add(-d), End: iv.End}
}

// FromEnd returns the slice of width d immediately following End:
// [End, End+d).
func (iv Interval) FromEnd(d time.Duration) Interval {
	return Interval{Start: iv.End, End: iv.End.Add(d)}
}

// Granularity is a convenience wrapper over OfDuration(iv.Duration()).
func (iv Interval) Granularity() Granularity {
	return OfDuration(iv.Duration())
}
