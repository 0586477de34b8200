package voyage

import "math"

const (
	DayPeriod = 86400.0 // s

	DefaultSeawaterBase   = 25.0
	DefaultOutsideAirBase = 30.0

	seawaterAmplitude   = 3.0
	outsideAirAmplitude = 5.0
)

// Phase is one leg of the daily voyage profile. Load is linear from StartLoad to EndLoad.
type Phase struct {
	Name      string  `json:"name"`
	Duration  float64 `json:"duration"` // s
	StartLoad float64 `json:"start_load"`
	EndLoad   float64 `json:"end_load"`
}

func (p Phase) loadAt(t float64) float64 {
	if p.Duration <= 0 {
		return p.EndLoad
	}
	return p.StartLoad + (p.EndLoad-p.StartLoad)*t/p.Duration
}

// Pattern repeats every 24 hours. Time left over after the four phases stays berthed.
type Pattern struct {
	Acceleration Phase `json:"acceleration"`
	Steady       Phase `json:"steady"`
	Deceleration Phase `json:"deceleration"`
	Berthed      Phase `json:"berthed"`
}

func DefaultPattern() Pattern {
	return Pattern{
		Acceleration: Phase{Name: "acceleration", Duration: 1800, StartLoad: 0, EndLoad: 70},
		Steady:       Phase{Name: "steady", Duration: 14400, StartLoad: 70, EndLoad: 70},
		Deceleration: Phase{Name: "deceleration", Duration: 5400, StartLoad: 70, EndLoad: 10},
		Berthed:      Phase{Name: "berthed", Duration: 64800, StartLoad: 10, EndLoad: 10},
	}
}

func (p Pattern) phases() [4]Phase {
	return [4]Phase{p.Acceleration, p.Steady, p.Deceleration, p.Berthed}
}

func cycle(elapsed float64) float64 {
	t := math.Mod(elapsed, DayPeriod)
	if t < 0 {
		t += DayPeriod
	}
	return t
}

// PhaseAt returns the phase active at elapsed seconds and the time spent inside it.
func (p Pattern) PhaseAt(elapsed float64) (Phase, float64) {
	t := cycle(elapsed)
	for _, ph := range p.phases() {
		if t < ph.Duration {
			return ph, t
		}
		t -= ph.Duration
	}
	return p.Berthed, p.Berthed.Duration
}

// EngineLoad returns the engine load in percent at elapsed seconds.
func (p Pattern) EngineLoad(elapsed float64) float64 {
	ph, t := p.PhaseAt(elapsed)
	return ph.loadAt(t)
}

// SeawaterTemp follows a daily sinusoid around base.
func (p Pattern) SeawaterTemp(elapsed, base float64) float64 {
	return base + seawaterAmplitude*math.Sin(2*math.Pi*elapsed/DayPeriod)
}

// OutsideAirTemp lags the seawater sinusoid by a quarter day.
func (p Pattern) OutsideAirTemp(elapsed, base float64) float64 {
	return base + outsideAirAmplitude*math.Sin(2*math.Pi*elapsed/DayPeriod-math.Pi/2)
}
