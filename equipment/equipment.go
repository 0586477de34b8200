package equipment

import "math"

// RatedFreq is the nameplate drive frequency all affinity ratios are taken against.
const RatedFreq = 60.0

// Type selects the efficiency curve and the efficiency-optimal band.
type Type string

const (
	Pump Type = "pump"
	Fan  Type = "fan"
)

// Characteristics is the rated operating point of a centrifugal pump or fan.
// Head is metres of water column for pumps and Pa for fans.
type Characteristics struct {
	Name       string
	Type       Type
	RatedFlow  float64 // m³/h
	RatedHead  float64
	RatedPower float64 // kW
}

var (
	SeawaterPump = Characteristics{
		Name:       "seawater_pump",
		Type:       Pump,
		RatedFlow:  1500,
		RatedHead:  30,
		RatedPower: 200,
	}
	FreshwaterPump = Characteristics{
		Name:       "freshwater_pump",
		Type:       Pump,
		RatedFlow:  1200,
		RatedHead:  35,
		RatedPower: 150,
	}
	EngineRoomFan = Characteristics{
		Name:       "engine_room_fan",
		Type:       Fan,
		RatedFlow:  100000,
		RatedHead:  1000,
		RatedPower: 75,
	}
)

func ratio(freq float64) float64 {
	return freq / RatedFreq
}

// Flow scales linearly with speed.
func (c Characteristics) Flow(freq float64) float64 {
	return c.RatedFlow * ratio(freq)
}

// Head scales with the square of speed.
func (c Characteristics) Head(freq float64) float64 {
	r := ratio(freq)
	return c.RatedHead * r * r
}

// Power scales with the cube of speed.
func (c Characteristics) Power(freq float64) float64 {
	return CalculatePower(freq, c.RatedPower)
}

// CalculatePower applies the cubic affinity law to an arbitrary rated power.
func CalculatePower(freq, ratedPower float64) float64 {
	r := ratio(freq)
	return ratedPower * r * r * r
}

// SavingsPercent is the energy saved against fixed 60 Hz operation.
func SavingsPercent(freq float64) float64 {
	r := ratio(freq)
	return (1 - r*r*r) * 100
}

// FrequencyForSavings inverts SavingsPercent.
func FrequencyForSavings(savings float64) float64 {
	return RatedFreq * math.Cbrt(1-savings/100)
}
