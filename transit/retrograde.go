package transit

import (
	"github.com/kalachakra/ephemeris/body"
	"github.com/kalachakra/ephemeris/ephemeris"
)

// retrogradePredicate reports whether a sample's instantaneous speed
// marks retrograde motion. Ordinary planets retrograde at negative
// speed; the lunar nodes' mean motion is negative, so their anomalous
// (tracked) state is a positive-speed episode.
func retrogradePredicate(b body.Body) predicate {
	if b.IsNode() {
		return func(p ephemeris.Position) bool { return p.Speed > 0 }
	}
	return func(p ephemeris.Position) bool { return p.Speed < 0 }
}
