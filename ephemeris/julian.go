package ephemeris

import "time"

// gregorianCutover is the first instant the oracle treats as
// Gregorian; everything strictly before it is decomposed as a
// proleptic Julian calendar date instead.
var gregorianCutover = time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)

// julianDay converts a UTC instant to a Julian Day number using the
// standard Meeus algorithm, switching from the proleptic Julian to the
// proleptic Gregorian calendar at 1582-10-15 UTC — the host calendar
// (time.Time, always proleptic Gregorian) must be reinterpreted as a
// Julian-calendar date below that threshold to match what the oracle
// expects.
func julianDay(instant time.Time) float64 {
	instant = instant.UTC()

	year, month, day := instant.Date()
	hour, minute, second := instant.Clock()
	nsec := instant.Nanosecond()

	dayFraction := float64(day) +
		(float64(hour)+float64(minute)/60+float64(second)/3600+float64(nsec)/3600e9)/24

	y := year
	m := int(month)
	if m <= 2 {
		y--
		m += 12
	}

	var b float64
	if !instant.Before(gregorianCutover) {
		a := floor(float64(y) / 100)
		b = 2 - a + floor(a/4)
	}

	jd := floor(365.25*float64(y+4716)) + floor(30.6001*float64(m+1)) + dayFraction + b - 1524.5
	return jd
}

func floor(v float64) float64 {
	f := int64(v)
	if float64(f) > v {
		f--
	}
	return float64(f)
}
