package zodiac

import "github.com/kalachakra/ephemeris/body"

// nakshatraSpanSeconds is 13°20' expressed in arcseconds: 48,000".
const nakshatraSpanSeconds = 48000.0

const nakshatraSpanDegrees = nakshatraSpanSeconds / 3600.0 // 13.3333...

// Nakshatra is one of the 27 lunar mansions, 0-indexed.
type Nakshatra int

const nakshatraCount = 27

// nakshatraInfo mirrors the teacher's NakshatraData table (deity,
// symbol) generalized with the ruling body used to seed Vimshottari.
var nakshatraInfo = [nakshatraCount]struct {
	Name   string
	Deity  string
	Symbol string
	Ruler  body.Body
}{
	{"Ashwini", "Ashwini Kumaras", "Horse's Head", body.SouthNode},
	{"Bharani", "Yama", "Yoni", body.Venus},
	{"Krittika", "Agni", "Razor", body.Sun},
	{"Rohini", "Brahma", "Chariot", body.Moon},
	{"Mrigashira", "Soma", "Deer's Head", body.Mars},
	{"Ardra", "Rudra", "Teardrop", body.NorthNode},
	{"Punarvasu", "Aditi", "Bow and Quiver", body.Jupiter},
	{"Pushya", "Brihaspati", "Cow's Udder", body.Saturn},
	{"Ashlesha", "Nagas", "Serpent", body.Mercury},
	{"Magha", "Pitrs", "Throne", body.SouthNode},
	{"Purva Phalguni", "Bhaga", "Front Legs of Bed", body.Venus},
	{"Uttara Phalguni", "Aryaman", "Back Legs of Bed", body.Sun},
	{"Hasta", "Savitar", "Hand", body.Moon},
	{"Chitra", "Tvashtar", "Bright Jewel", body.Mars},
	{"Swati", "Vayu", "Young Shoot", body.NorthNode},
	{"Vishakha", "Indra-Agni", "Triumphal Arch", body.Jupiter},
	{"Anuradha", "Mitra", "Lotus", body.Saturn},
	{"Jyeshtha", "Indra", "Circular Amulet", body.Mercury},
	{"Mula", "Nirriti", "Bunch of Roots", body.SouthNode},
	{"Purva Ashadha", "Apas", "Elephant Tusk", body.Venus},
	{"Uttara Ashadha", "Vishve Devas", "Elephant Tusk", body.Sun},
	{"Shravana", "Vishnu", "Three Footprints", body.Moon},
	{"Dhanishta", "Vasus", "Drum", body.Mars},
	{"Shatabhisha", "Varuna", "Empty Circle", body.NorthNode},
	{"Purva Bhadrapada", "Aja Ekapada", "Front Legs of Funeral Cot", body.Jupiter},
	{"Uttara Bhadrapada", "Ahir Budhnya", "Back Legs of Funeral Cot", body.Saturn},
	{"Revati", "Pushan", "Fish", body.Mercury},
}

// NakshatraFromLongitude returns the Nakshatra containing an ecliptic
// longitude, plus the degrees/minutes/seconds elapsed into it.
func NakshatraFromLongitude(longitudeDeg float64) (n Nakshatra, deg, min, sec int) {
	normalized := normalizeDegrees(longitudeDeg)
	idx := int(normalized / nakshatraSpanDegrees)
	if idx >= nakshatraCount {
		idx = nakshatraCount - 1
	}
	n = Nakshatra(idx)

	elapsed := normalized - float64(idx)*nakshatraSpanDegrees
	totalSeconds := elapsed * 3600.0
	deg = int(totalSeconds / 3600.0)
	remaining := totalSeconds - float64(deg)*3600.0
	min = int(remaining / 60.0)
	sec = int(remaining - float64(min)*60.0)
	return n, deg, min, sec
}

// Name returns the nakshatra's traditional Sanskrit name.
func (n Nakshatra) Name() string { return nakshatraInfo[n.normalize()].Name }

// Deity returns the nakshatra's presiding deity.
func (n Nakshatra) Deity() string { return nakshatraInfo[n.normalize()].Deity }

// Symbol returns the nakshatra's traditional symbol.
func (n Nakshatra) Symbol() string { return nakshatraInfo[n.normalize()].Symbol }

// Ruler returns the planet that rules n, and hence seeds Vimshottari
// when this nakshatra holds the marker (usually the Moon) at birth.
func (n Nakshatra) Ruler() body.Body { return nakshatraInfo[n.normalize()].Ruler }

func (n Nakshatra) normalize() int {
	v := int(n) % nakshatraCount
	if v < 0 {
		v += nakshatraCount
	}
	return v
}
