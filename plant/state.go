package plant

import "math"

// State is the un-noised plant state. Temperatures in °C, pressure in bar.
type State struct {
	SeawaterInlet float64 `json:"seawater_inlet"`
	Cooler1Outlet float64 `json:"cooler1_outlet"` // seawater side
	Cooler2Outlet float64 `json:"cooler2_outlet"` // seawater side
	FWInlet       float64 `json:"fw_inlet"`
	FWOutlet      float64 `json:"fw_outlet"`
	EngineRoom    float64 `json:"engine_room"`
	OutsideAir    float64 `json:"outside_air"`
	SWPressure    float64 `json:"sw_pressure"`
}

// NominalState is the state at construction and after Reset.
func NominalState() State {
	return State{
		SeawaterInlet: 25.0,
		Cooler1Outlet: 35.0,
		Cooler2Outlet: 35.0,
		FWInlet:       45.0,
		FWOutlet:      36.0,
		EngineRoom:    35.0,
		OutsideAir:    30.0,
		SWPressure:    2.0,
	}
}

func (s *State) clampPressure() {
	s.SWPressure = math.Max(0, s.SWPressure)
}

// Inputs of one simulation step.
type Inputs struct {
	EngineLoad     float64 `json:"engine_load"` // %
	SWPumpCount    int     `json:"sw_pump_count"`
	SWPumpFreq     float64 `json:"sw_pump_freq"`
	FWPumpCount    int     `json:"fw_pump_count"`
	FWPumpFreq     float64 `json:"fw_pump_freq"`
	FanCount       int     `json:"fan_count"`
	FanFreq        float64 `json:"fan_freq"`
	SeawaterTemp   float64 `json:"seawater_temp"`
	OutsideAirTemp float64 `json:"outside_air_temp"`
}

// Snapshot is what a sensor would read after a step: state plus measurement noise.
type Snapshot struct {
	State
	EngineLoad float64 `json:"engine_load"`
	EngineHeat float64 `json:"engine_heat"` // kW, un-noised
}
