package dasha

import (
	"time"

	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/config"
	"github.com/kalachakra/ephemeris/timeutil"
)

// Dasha is one node of a Vimshottari schedule: a planet's rulership
// over Period, at Depth (Maha/Antar/Pratyantar), with Children
// partitioning Period exactly and following the fixed cycle starting
// from Planet. supraDasha is a weak, non-owning back-reference to the
// parent — set only while building, never serialized, and ignored by
// equality/printing so it can't form a retain cycle.
type Dasha struct {
	Period   timeutil.Interval
	Planet   body.Body
	Depth    config.DashaDepth
	Children []*Dasha

	supraDasha *Dasha
}

// Supra returns the parent node, or nil at the Mahadasha level.
func (d *Dasha) Supra() *Dasha { return d.supraDasha }

// subdivide partitions interval among the fixed Vimshottari cycle
// starting from `starting`, with `elapsed` seconds already consumed
// into that planet's period before interval.Start (used to carry the
// birth-nakshatra residual down from the Mahadasha level). Recursion
// stops once depth reaches maxDepth or Pratyantar, whichever is first.
func subdivide(interval timeutil.Interval, starting body.Body, elapsed float64, depth, maxDepth config.DashaDepth) []*Dasha {
	total := interval.Duration().Seconds() + elapsed

	acc := elapsed
	cur := starting
	firstFull := body.Of(cur).VimshottariRatio * total
	firstRemainder := acc - firstFull
	for firstRemainder > 0 {
		cur = body.NextInCycle(cur)
		acc = firstRemainder
		firstFull = body.Of(cur).VimshottariRatio * total
		firstRemainder = acc - firstFull
	}
	firstDuration := -firstRemainder

	var nodes []*Dasha
	t := interval.Start
	planet := cur
	duration := firstDuration
	consumedBeforeStart := firstFull - firstDuration

	for t.Before(interval.End) {
		end := t.Add(time.Duration(duration * float64(time.Second)))
		if end.After(interval.End) {
			end = interval.End
		}
		node := &Dasha{
			Period: timeutil.Interval{Start: t, End: end},
			Planet: planet,
			Depth:  depth,
		}
		if depth < maxDepth && depth < config.Pratyantar {
			childElapsed := 0.0
			if consumedBeforeStart > 0 {
				childElapsed = consumedBeforeStart
			}
			node.Children = subdivide(node.Period, planet, childElapsed, depth.Next(), maxDepth)
			for _, child := range node.Children {
				child.supraDasha = node
			}
		}

		nodes = append(nodes, node)
		t = end
		planet = body.NextInCycle(planet)
		duration = body.Of(planet).VimshottariRatio * total
		consumedBeforeStart = 0
	}
	return nodes
}

// clipTree returns a copy of nodes with every period intersected with
// clip, dropping nodes (and their subtrees) that don't intersect at
// all, and recursively clipping children.
func clipTree(nodes []*Dasha, clip timeutil.Interval) []*Dasha {
	out := make([]*Dasha, 0, len(nodes))
	for _, n := range nodes {
		overlap, ok := n.Period.Intersection(clip)
		if !ok {
			continue
		}
		clipped := &Dasha{Period: overlap, Planet: n.Planet, Depth: n.Depth}
		clipped.Children = clipTree(n.Children, clip)
		for _, child := range clipped.Children {
			child.supraDasha = clipped
		}
		out = append(out, clipped)
	}
	return out
}

// filterOverlapping returns a copy of nodes whose periods intersect
// overlapping, recursively filtering children the same way; periods
// are left unclipped (unlike clipTree).
func filterOverlapping(nodes []*Dasha, overlapping timeutil.Interval) []*Dasha {
	out := make([]*Dasha, 0, len(nodes))
	for _, n := range nodes {
		if !n.Period.Intersects(overlapping) {
			continue
		}
		node := &Dasha{Period: n.Period, Planet: n.Planet, Depth: n.Depth}
		node.Children = filterOverlapping(n.Children, overlapping)
		for _, child := range node.Children {
			child.supraDasha = node
		}
		out = append(out, node)
	}
	return out
}
