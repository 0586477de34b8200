package simulator

import (
	log "github.com/sirupsen/logrus"

	"shipcool/equipment"
	"shipcool/metrics"
	"shipcool/model"
	"shipcool/optimizer"
	"shipcool/plant"
	"shipcool/voyage"
)

type Config struct {
	SWPumpCount int
	FWPumpCount int
	FanCount    int

	InitialFreq model.Frequencies

	SeawaterBase   float64
	OutsideAirBase float64

	FWTarget      float64 // °C, freshwater outlet setpoint held by the seawater pumps
	RoomTarget    float64 // °C, engine-room setpoint held by the fans
	OptimizeEvery int     // ticks between optimizer calls
}

func DefaultConfig() Config {
	return Config{
		SWPumpCount:    2,
		FWPumpCount:    2,
		FanCount:       4,
		InitialFreq:    model.Frequencies{SWPump: 60, FWPump: 60, Fan: 60},
		SeawaterBase:   voyage.DefaultSeawaterBase,
		OutsideAirBase: voyage.DefaultOutsideAirBase,
		FWTarget:       36,
		RoomTarget:     35,
		OptimizeEvery:  10,
	}
}

// Runner steps voyage -> plant -> optimizer on a simulated clock. One tick is one
// plant time step. It is not safe for concurrent use.
type Runner struct {
	cfg     Config
	engine  *plant.Engine
	opt     *optimizer.Optimizer
	pattern voyage.Pattern
	metrics *metrics.Collector

	ticks int
	freq  model.Frequencies
}

func New(cfg Config, engine *plant.Engine, opt *optimizer.Optimizer, pattern voyage.Pattern) *Runner {
	if cfg.OptimizeEvery <= 0 {
		cfg.OptimizeEvery = 1
	}
	return &Runner{
		cfg:     cfg,
		engine:  engine,
		opt:     opt,
		pattern: pattern,
		freq:    cfg.InitialFreq,
	}
}

// WithMetrics attaches a collector fed on every tick.
func (r *Runner) WithMetrics(c *metrics.Collector) *Runner {
	r.metrics = c
	return r
}

func (r *Runner) Engine() *plant.Engine {
	return r.engine
}

func (r *Runner) Optimizer() *optimizer.Optimizer {
	return r.opt
}

func (r *Runner) Elapsed() float64 {
	return float64(r.ticks) * r.engine.Config().TimeStep
}

func (r *Runner) Frequencies() model.Frequencies {
	return r.freq
}

func (r *Runner) Reset() {
	r.engine.Reset()
	r.opt.ClearHistory()
	r.ticks = 0
	r.freq = r.cfg.InitialFreq
	log.WithFields(log.Fields{
		"swPump": r.freq.SWPump,
		"fwPump": r.freq.FWPump,
		"fan":    r.freq.Fan,
	}).Info("simulation reset")
}

// Tick advances the simulation by one step.
func (r *Runner) Tick() model.Frame {
	t := r.Elapsed()
	in := plant.Inputs{
		EngineLoad:     r.pattern.EngineLoad(t),
		SWPumpCount:    r.cfg.SWPumpCount,
		SWPumpFreq:     r.freq.SWPump,
		FWPumpCount:    r.cfg.FWPumpCount,
		FWPumpFreq:     r.freq.FWPump,
		FanCount:       r.cfg.FanCount,
		FanFreq:        r.freq.Fan,
		SeawaterTemp:   r.pattern.SeawaterTemp(t, r.cfg.SeawaterBase),
		OutsideAirTemp: r.pattern.OutsideAirTemp(t, r.cfg.OutsideAirBase),
	}
	snap := r.engine.Step(in)
	r.ticks++

	frame := model.Frame{
		Elapsed:  r.Elapsed(),
		Inputs:   in,
		Snapshot: snap,
	}

	if r.ticks%r.cfg.OptimizeEvery == 0 {
		pc := r.engine.Config()
		swFreq, pump := r.opt.OptimizeFrequency(snap.FWOutlet, r.cfg.FWTarget, r.freq.SWPump,
			equipment.Pump, pc.SeawaterPump.RatedPower)
		fanFreq, fan := r.opt.OptimizeFrequency(snap.EngineRoom, r.cfg.RoomTarget, r.freq.Fan,
			equipment.Fan, pc.Fan.RatedPower)
		r.freq.SWPump, r.freq.Fan = swFreq, fanFreq
		r.opt.RecordPerformance(swFreq, fanFreq, pc.SeawaterPump.RatedPower, pc.Fan.RatedPower)

		frame.Pump, frame.Fan = &pump, &fan
		if r.metrics != nil {
			r.metrics.ObserveDecision(pc.SeawaterPump.Name, pump)
			r.metrics.ObserveDecision(pc.Fan.Name, fan)
		}
	}

	frame.Frequencies = r.freq
	frame.Savings = r.opt.Average24hSavings()
	if r.metrics != nil {
		r.metrics.ObserveFrame(frame)
	}
	return frame
}

// Run advances n ticks and returns the last frame.
func (r *Runner) Run(n int) model.Frame {
	var f model.Frame
	for i := 0; i < n; i++ {
		f = r.Tick()
	}
	return f
}
