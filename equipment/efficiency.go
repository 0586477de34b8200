package equipment

import "math"

// Band is a closed interval, used for frequencies (Hz) and savings (%).
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (b Band) Mid() float64 {
	return (b.Min + b.Max) / 2
}

func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

func (b Band) Clamp(v float64) float64 {
	return math.Max(b.Min, math.Min(b.Max, v))
}

var (
	PumpOptimalBand = Band{Min: 45, Max: 50}
	FanOptimalBand  = Band{Min: 40, Max: 45}
)

// OptimalBand returns the frequency band where the drive train runs most efficiently.
func OptimalBand(t Type) Band {
	if t == Fan {
		return FanOptimalBand
	}
	return PumpOptimalBand
}

// Efficiency dispatches to the curve of the equipment type.
func Efficiency(t Type, freq float64) float64 {
	if t == Fan {
		return FanEfficiency(freq)
	}
	return PumpEfficiency(freq)
}

// PumpEfficiency peaks at 95% at 47.5 Hz.
func PumpEfficiency(freq float64) float64 {
	switch {
	case freq < PumpOptimalBand.Min:
		return math.Max(80, 80+(freq-40)*3)
	case freq > PumpOptimalBand.Max:
		return math.Max(88, 95-(freq-PumpOptimalBand.Max)*0.7)
	default:
		return 95 - math.Abs(freq-47.5)*0.6
	}
}

// FanEfficiency peaks at 92% at 42.5 Hz.
func FanEfficiency(freq float64) float64 {
	switch {
	case freq < FanOptimalBand.Min:
		return math.Max(75, 80+(freq-35)*2.4)
	case freq > FanOptimalBand.Max:
		return math.Max(82, 92-(freq-FanOptimalBand.Max)*0.67)
	default:
		return 92 - math.Abs(freq-42.5)*0.8
	}
}
