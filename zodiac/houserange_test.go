package zodiac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHouseRangeContainsWraps(t *testing.T) {
	hr := NewHouseRange(Capricorn, 3) // Capricorn, Aquarius, Pisces
	assert.True(t, hr.Contains(Capricorn))
	assert.True(t, hr.Contains(Aquarius))
	assert.True(t, hr.Contains(Pisces))
	assert.False(t, hr.Contains(Aries))
	assert.False(t, hr.Contains(Sagittarius))
}

func TestHouseRangeDegreesEndsExactlyAt360(t *testing.T) {
	// Capricorn starts at 270; 3 houses is 90 degrees, landing the
	// upper edge exactly on the 0/360 seam.
	hr := NewHouseRange(Capricorn, 3)
	dr := hr.Degrees()
	assert.Equal(t, 270.0, dr.LowerBound)
	assert.Equal(t, 90.0, dr.Size)

	// Every degree in Capricorn/Aquarius/Pisces must be reported as
	// contained, including degrees right up against the seam.
	assert.True(t, dr.Contains(270))
	assert.True(t, dr.Contains(345))
	assert.True(t, dr.Contains(359.999))
	assert.False(t, dr.Contains(0))
	assert.False(t, dr.Contains(269.999))
}

func TestHouseRangeInvertedComplementsContains(t *testing.T) {
	hr := NewHouseRange(Capricorn, 3)
	inv := hr.Inverted()

	for h := Aries; h < Aries+12; h++ {
		assert.NotEqual(t, hr.Contains(h), inv.Contains(h), "house=%v", h)
	}
}

func TestAdjoiningWrapsAroundPiscesAries(t *testing.T) {
	adj := Adjoining(Pisces)
	assert.Equal(t, [3]House{Aquarius, Pisces, Aries}, adj)
}

func TestHouseFromLongitudeMatchesDegreesRoundTrip(t *testing.T) {
	for h := Aries; h < Aries+12; h++ {
		dr := h.Degrees()
		got := HouseFromLongitude(dr.LowerBound)
		assert.Equal(t, h.Ordinal(), got.Ordinal())

		// A point just shy of the upper edge must still resolve to h,
		// even when the upper edge sits exactly on the 360 seam.
		gotUpper := HouseFromLongitude(dr.LowerBound + dr.Size - 0.0001)
		assert.Equal(t, h.Ordinal(), gotUpper.Ordinal())
	}
}
