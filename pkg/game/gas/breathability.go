package gas

import "github.com/leonelquinteros/gotext"

// dynamicGet translates a key chosen at runtime
var dynamicGet = gotext.Get

// Breathability is a habitability band derived from a room's mean gas mix
type Breathability int

const (
	Unbreathable Breathability = iota
	BarelyBreathable
	Breathable
	VeryBreathable
	O2Toxic
)

// Thresholds for the breathability bands
const (
	ToxicO2 = 350.0

	VeryBreathableMinO2 = 50.0
	VeryBreathableMaxO2 = 100.0
	VeryBreathableMax   = 4.0

	BreathableMinO2 = 30.0
	BreathableMax   = 10.0

	BarelyBreathableMinO2 = 5.0
	BarelyBreathableMax   = 20.0
)

// Classify returns the breathability band for a gas mix.
// Toxicity is checked before any breathable band.
func Classify(c Cell) Breathability {
	if c.O2 >= ToxicO2 {
		return O2Toxic
	}
	if c.O2 >= VeryBreathableMinO2 && c.O2 <= VeryBreathableMaxO2 &&
		c.CO2 < VeryBreathableMax && c.N2 < VeryBreathableMax {
		return VeryBreathable
	}
	if c.O2 >= BreathableMinO2 && c.CO2 < BreathableMax && c.N2 < BreathableMax {
		return Breathable
	}
	if c.O2 >= BarelyBreathableMinO2 && c.CO2 < BarelyBreathableMax && c.N2 < BarelyBreathableMax {
		return BarelyBreathable
	}
	return Unbreathable
}

// Label returns the untranslated band name
func (b Breathability) Label() string {
	switch b {
	case O2Toxic:
		return "O2 Toxic"
	case VeryBreathable:
		return "Very Breathable"
	case Breathable:
		return "Breathable"
	case BarelyBreathable:
		return "Barely Breathable"
	default:
		return "Unbreathable"
	}
}

// String returns the localized band name
func (b Breathability) String() string {
	return dynamicGet(b.Label())
}
