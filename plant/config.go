package plant

import (
	"shipcool/equipment"
	"shipcool/thermal"
)

// Config holds the physical constants of the cooling plant.
type Config struct {
	RatedEngineHeat float64 // kW at 100% load
	FWThermalMass   float64 // kg
	RoomThermalMass float64 // kg
	CpFW            float64 // kJ/(kg·K)
	AirDensity      float64 // kg/m³
	CpAir           float64 // kJ/(kg·K)
	RoomSelfHeat    float64 // kW
	FlowResistance  float64
	Smoothing       float64 // first-order lag factor per step
	TimeStep        float64 // s

	TempNoiseSigma     float64
	PressureNoiseSigma float64

	HeatExchanger  thermal.Params
	SeawaterPump   equipment.Characteristics
	FreshwaterPump equipment.Characteristics
	Fan            equipment.Characteristics
}

func DefaultConfig() Config {
	return Config{
		RatedEngineHeat: 24000,
		FWThermalMass:   100000,
		RoomThermalMass: 50000,
		CpFW:            4.18,
		AirDensity:      1.2,
		CpAir:           1.005,
		RoomSelfHeat:    50,
		FlowResistance:  2.0,
		Smoothing:       0.1,
		TimeStep:        1.0,

		TempNoiseSigma:     0.1,
		PressureNoiseSigma: 0.05,

		HeatExchanger:  thermal.DefaultParams(),
		SeawaterPump:   equipment.SeawaterPump,
		FreshwaterPump: equipment.FreshwaterPump,
		Fan:            equipment.EngineRoomFan,
	}
}
