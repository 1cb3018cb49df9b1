package zodiac

// DegreeRange is a span of the ecliptic, possibly wrapping across 0°/360°.
type DegreeRange struct {
	LowerBound float64 // degrees, normalized into [0, 360)
	Size       float64 // degrees, 0 <= Size <= 360
}

// NewDegreeRange normalizes lowerBound into [0, 360) and clamps size
// into [0, 360].
func NewDegreeRange(lowerBound, size float64) DegreeRange {
	if size < 0 {
		size = 0
	}
	if size > 360 {
		size = 360
	}
	return DegreeRange{LowerBound: normalizeDegrees(lowerBound), Size: size}
}

// UpperBound returns (LowerBound + Size) mod 360.
func (r DegreeRange) UpperBound() float64 {
	return normalizeDegrees(r.LowerBound + r.Size)
}

// wraps reports whether the range crosses the 0°/360° seam.
func (r DegreeRange) wraps() bool {
	return r.LowerBound+r.Size > 360
}

// Contains reports whether d (any real degree value) falls in the range.
// A wrapping range (LowerBound > UpperBound in raw terms) is handled as
// the complement of its non-wrapped counterpart.
func (r DegreeRange) Contains(d float64) bool {
	if r.Size >= 360 {
		return true
	}
	d = normalizeDegrees(d)

	if !r.wraps() {
		// Compare against the raw upper edge, not UpperBound(): a range
		// ending exactly at 360 normalizes UpperBound() to 0, which would
		// wrongly exclude every d.
		return d >= r.LowerBound && d < r.LowerBound+r.Size
	}
	// Wraps: contains everything from LowerBound round to 360, plus
	// everything from 0 up to UpperBound.
	return d >= r.LowerBound || d < r.UpperBound()
}

// Inverted returns the complementary range: (UpperBound, 360 - Size).
func (r DegreeRange) Inverted() DegreeRange {
	return NewDegreeRange(r.UpperBound(), 360-r.Size)
}
