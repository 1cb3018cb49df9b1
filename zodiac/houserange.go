package zodiac

// HouseRange is a contiguous run of houses, Count wide, starting at
// LowerBound (mod 12).
type HouseRange struct {
	LowerBound House
	Count      int
}

// NewHouseRange builds a HouseRange, clamping count into [0, 12].
func NewHouseRange(lowerBound House, count int) HouseRange {
	if count < 0 {
		count = 0
	}
	if count > houseCount {
		count = houseCount
	}
	return HouseRange{LowerBound: lowerBound, Count: count}
}

// Contains reports whether h falls within the range.
func (hr HouseRange) Contains(h House) bool {
	offset := h.normalize() - hr.LowerBound.normalize()
	if offset < 0 {
		offset += houseCount
	}
	return offset < hr.Count
}

// Degrees projects the HouseRange onto the ecliptic as a DegreeRange.
func (hr HouseRange) Degrees() DegreeRange {
	return NewDegreeRange(hr.LowerBound.Degrees().LowerBound, float64(hr.Count)*30.0)
}

// Inverted returns the HouseRange covering the remaining houses.
func (hr HouseRange) Inverted() HouseRange {
	return NewHouseRange(hr.LowerBound.Add(hr.Count), houseCount-hr.Count)
}

// Adjoining returns the three houses {h-1, h, h+1}.
func Adjoining(h House) [3]House {
	return [3]House{h.Sub(1), h, h.Add(1)}
}
