package optimizer

import "shipcool/equipment"

const (
	// MatureAgeMonths splits the initial and the mature savings targets.
	MatureAgeMonths = 6.0

	DefaultHistorySize = 1000
)

// Targets is one savings band per equipment type.
type Targets struct {
	Pump equipment.Band `json:"pump"`
	Fan  equipment.Band `json:"fan"`
}

func (t Targets) For(typ equipment.Type) equipment.Band {
	if typ == equipment.Fan {
		return t.Fan
	}
	return t.Pump
}

type Config struct {
	Initial Targets
	Mature  Targets

	TempDeadband  float64 // °C, above it temperature control wins
	TempStep      float64 // Hz per call under temperature control
	EnergyStep    float64 // Hz per call under energy optimization
	FreqLimits    equipment.Band
	HistorySize   int
	AverageWindow float64 // s
}

func DefaultConfig() Config {
	return Config{
		Initial: Targets{
			Pump: equipment.Band{Min: 42, Max: 48},
			Fan:  equipment.Band{Min: 55, Max: 62},
		},
		Mature: Targets{
			Pump: equipment.Band{Min: 48, Max: 55},
			Fan:  equipment.Band{Min: 60, Max: 66},
		},
		TempDeadband:  0.5,
		TempStep:      2,
		EnergyStep:    1,
		FreqLimits:    equipment.Band{Min: 40, Max: 60},
		HistorySize:   DefaultHistorySize,
		AverageWindow: 24 * 3600,
	}
}
