package plant

import (
	"math"
	"math/rand/v2"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"shipcool/thermal"
)

// Engine advances the cooling plant by one fixed time step per call.
// It is not safe for concurrent use.
type Engine struct {
	cfg   Config
	hx    thermal.HeatExchanger
	state State

	tempNoise     distuv.Normal
	pressureNoise distuv.Normal
}

type Option func(*Engine)

// WithRandSource replaces the measurement noise generator, e.g. with a fixed seed.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) {
		e.tempNoise.Src = src
		e.pressureNoise.Src = src
	}
}

func New(cfg Config, opts ...Option) *Engine {
	seed := uint64(time.Now().UnixNano())
	src := rand.NewPCG(seed, seed>>1)
	e := &Engine{
		cfg:           cfg,
		hx:            thermal.NewHeatExchanger(cfg.HeatExchanger),
		state:         NominalState(),
		tempNoise:     distuv.Normal{Mu: 0, Sigma: cfg.TempNoiseSigma, Src: src},
		pressureNoise: distuv.Normal{Mu: 0, Sigma: cfg.PressureNoiseSigma, Src: src},
	}
	for _, opt := range opts {
		opt(e)
	}
	log.WithFields(log.Fields{
		"ratedEngineHeat": cfg.RatedEngineHeat,
		"fwThermalMass":   cfg.FWThermalMass,
		"roomThermalMass": cfg.RoomThermalMass,
		"timeStep":        cfg.TimeStep,
	}).Debug("plant engine created")
	return e
}

func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the internal, noise-free state.
func (e *Engine) State() State {
	return e.state
}

// SetState overwrites the internal state, used to inject fault conditions.
func (e *Engine) SetState(s State) {
	s.clampPressure()
	e.state = s
}

// Reset restores the nominal state.
func (e *Engine) Reset() {
	e.state = NominalState()
	log.Debug("plant state reset")
}

// EngineHeat maps engine load (0-100%) to heat rejected into the freshwater loop, kW.
// The heat ratio rises 0.3 -> 0.5 up to 30% load and 0.5 -> 1.0 above it.
func (e *Engine) EngineHeat(load float64) float64 {
	var r float64
	if load < 30 {
		r = 0.3 + 0.2*load/30
	} else {
		r = 0.5 + 0.5*(load-30)/70
	}
	return r * e.cfg.RatedEngineHeat
}

// Step advances the state by one time step and returns a noisy snapshot of it.
func (e *Engine) Step(in Inputs) Snapshot {
	dt := e.cfg.TimeStep
	s := &e.state

	heat := e.EngineHeat(in.EngineLoad)

	s.SeawaterInlet = in.SeawaterTemp

	s.FWInlet += heat / (e.cfg.FWThermalMass * e.cfg.CpFW) * dt

	// two identical coolers in parallel share both flows equally
	fwFlow := float64(in.FWPumpCount) * e.cfg.FreshwaterPump.Flow(in.FWPumpFreq) / 2
	swFlow := float64(in.SWPumpCount) * e.cfg.SeawaterPump.Flow(in.SWPumpFreq) / 2
	fwOut1, swOut1 := e.hx.Exchange(s.FWInlet, s.SeawaterInlet, fwFlow, swFlow)
	fwOut2, swOut2 := e.hx.Exchange(s.FWInlet, s.SeawaterInlet, fwFlow, swFlow)

	a := e.cfg.Smoothing
	s.Cooler1Outlet = lag(s.Cooler1Outlet, swOut1, a)
	s.Cooler2Outlet = lag(s.Cooler2Outlet, swOut2, a)
	s.FWOutlet = lag(s.FWOutlet, (fwOut1+fwOut2)/2, a)

	s.EngineRoom += e.roomRate(in.FanCount, in.FanFreq) * dt
	s.OutsideAir = in.OutsideAirTemp

	head := float64(in.SWPumpCount) * e.cfg.SeawaterPump.Head(in.SWPumpFreq)
	s.SWPressure = head / e.cfg.FlowResistance / 10.2
	s.clampPressure()

	return e.measure(in.EngineLoad, heat)
}

// roomRate is the engine-room temperature change in K/s. Ventilation removes heat in
// proportion to the room/outside difference while the room itself keeps heating.
func (e *Engine) roomRate(fans int, freq float64) float64 {
	airflow := float64(fans) * e.cfg.Fan.Flow(freq) / 3600 // m³/s
	ua := airflow * e.cfg.AirDensity * e.cfg.CpAir         // kW/K
	cooling := ua*(e.state.EngineRoom-e.state.OutsideAir) - e.cfg.RoomSelfHeat
	return -cooling / (e.cfg.RoomThermalMass * e.cfg.CpFW)
}

func lag(prev, next, alpha float64) float64 {
	return prev*(1-alpha) + next*alpha
}

func (e *Engine) measure(load, heat float64) Snapshot {
	n := e.state
	for _, v := range []*float64{
		&n.SeawaterInlet, &n.Cooler1Outlet, &n.Cooler2Outlet,
		&n.FWInlet, &n.FWOutlet, &n.EngineRoom, &n.OutsideAir,
	} {
		*v += e.tempNoise.Rand()
	}
	n.SWPressure = math.Max(0, n.SWPressure+e.pressureNoise.Rand())
	return Snapshot{State: n, EngineLoad: load, EngineHeat: heat}
}
