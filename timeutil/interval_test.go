package timeutil

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tm
}

func TestIntervalSlices(t *testing.T) {
	start := mustParse(t, "2020-01-01T00:00:00Z")
	end := mustParse(t, "2020-01-02T00:00:00Z")
	iv := NewInterval(start, end)

	before := iv.BeforeStart(time.Hour)
	if !before.End.Equal(start) || before.Start != start.Add(-time.Hour) {
		t.Errorf("BeforeStart: got [%v, %v)", before.Start, before.End)
	}

	from := iv.FromStart(time.Hour)
	if !from.Start.Equal(start) || !from.End.Equal(start.Add(time.Hour)) {
		t.Errorf("FromStart: got [%v, %v)", from.Start, from.End)
	}

	beforeEnd := iv.BeforeEnd(time.Hour)
	if !beforeEnd.End.Equal(end) || !beforeEnd.Start.Equal(end.Add(-time.Hour)) {
		t.Errorf("BeforeEnd: got [%v, %v)", beforeEnd.Start, beforeEnd.End)
	}

	fromEnd := iv.FromEnd(time.Hour)
	if !fromEnd.Start.Equal(end) || !fromEnd.End.Equal(end.Add(time.Hour)) {
		t.Errorf("FromEnd: got [%v, %v)", fromEnd.Start, fromEnd.End)
	}
}

func TestIntervalIntersection(t *testing.T) {
	a := NewInterval(mustParse(t, "2020-01-01T00:00:00Z"), mustParse(t, "2020-01-03T00:00:00Z"))
	b := NewInterval(mustParse(t, "2020-01-02T00:00:00Z"), mustParse(t, "2020-01-04T00:00:00Z"))

	got, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected intersection")
	}
	if !got.Start.Equal(b.Start) || !got.End.Equal(a.End) {
		t.Errorf("Intersection = [%v, %v)", got.Start, got.End)
	}

	c := NewInterval(mustParse(t, "2020-02-01T00:00:00Z"), mustParse(t, "2020-02-02T00:00:00Z"))
	if _, ok := a.Intersection(c); ok {
		t.Error("expected no intersection")
	}
}

func TestIntervalContains(t *testing.T) {
	iv := NewInterval(mustParse(t, "2020-01-01T00:00:00Z"), mustParse(t, "2020-01-02T00:00:00Z"))
	if !iv.Contains(iv.Start) {
		t.Error("interval should contain its own start (closed)")
	}
	if iv.Contains(iv.End) {
		t.Error("interval should not contain its own end (open)")
	}
}
