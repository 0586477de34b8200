package thermal

import "math"

// Params of a plate cooler. UA in kW/K, Cp in kJ/(kg·K), Density in kg/m³.
type Params struct {
	MaxEffectiveness float64
	UA               float64
	Cp               float64
	Density          float64
}

func DefaultParams() Params {
	return Params{
		MaxEffectiveness: 0.85,
		UA:               2000,
		Cp:               4.18,
		Density:          1000,
	}
}

// HeatExchanger computes outlet temperatures with the NTU-effectiveness method.
type HeatExchanger struct {
	params Params
}

func NewHeatExchanger(params Params) HeatExchanger {
	return HeatExchanger{params: params}
}

func (h HeatExchanger) Params() Params {
	return h.params
}

// Result of one exchange. Duty is the heat moved from hot to cold side in kW.
type Result struct {
	HotOut        float64
	ColdOut       float64
	Duty          float64
	NTU           float64
	Effectiveness float64
}

// Exchange returns both outlet temperatures. Flows are volumetric in m³/h.
func (h HeatExchanger) Exchange(hotIn, coldIn, hotFlow, coldFlow float64) (hotOut, coldOut float64) {
	r := h.Solve(hotIn, coldIn, hotFlow, coldFlow)
	return r.HotOut, r.ColdOut
}

// Solve is Exchange with the intermediate quantities kept.
func (h HeatExchanger) Solve(hotIn, coldIn, hotFlow, coldFlow float64) Result {
	cHot := h.massFlow(hotFlow) * h.params.Cp
	cCold := h.massFlow(coldFlow) * h.params.Cp
	cMin, cMax := math.Min(cHot, cCold), math.Max(cHot, cCold)

	var ntu float64
	if cMin != 0 {
		ntu = h.params.UA / cMin
	}
	eff := effectiveness(ntu, cMin, cMax)
	if eff > h.params.MaxEffectiveness {
		eff = h.params.MaxEffectiveness
	}

	q := eff * cMin * (hotIn - coldIn)

	r := Result{HotOut: hotIn, ColdOut: coldIn, Duty: q, NTU: ntu, Effectiveness: eff}
	if cHot != 0 {
		r.HotOut = hotIn - q/cHot
	}
	if cCold != 0 {
		r.ColdOut = coldIn + q/cCold
	}
	return r
}

// m³/h -> kg/s
func (h HeatExchanger) massFlow(flow float64) float64 {
	return flow * h.params.Density / 3600
}

func effectiveness(ntu, cMin, cMax float64) float64 {
	if cMin == cMax {
		return ntu / (1 + ntu)
	}
	cr := cMin / cMax
	e := math.Exp(-ntu * (1 - cr))
	return (1 - e) / (1 - cr*e)
}
