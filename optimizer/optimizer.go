package optimizer

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"shipcool/deque"
	"shipcool/equipment"
)

// Performance is the breakdown of one OptimizeFrequency decision. Powers in kW,
// savings in percent against 60 Hz operation.
type Performance struct {
	Equipment        equipment.Type `json:"equipment"`
	Mode             Mode           `json:"mode"`
	Phase            Phase          `json:"phase"`
	CurrentFreq      float64        `json:"current_freq"`
	OptimizedFreq    float64        `json:"optimized_freq"`
	CurrentPower     float64        `json:"current_power"`
	BaselinePower    float64        `json:"baseline_power"`
	OptimizedPower   float64        `json:"optimized_power"`
	CurrentSavings   float64        `json:"current_savings"`
	OptimizedSavings float64        `json:"optimized_savings"`
	Target           equipment.Band `json:"target"`
	MeetsTarget      bool           `json:"meets_target"`
	Efficiency       float64        `json:"efficiency"`
	TempError        float64        `json:"temp_error"`
}

// Optimizer picks VFD frequencies that hold temperature and otherwise save energy.
// It is not safe for concurrent use.
type Optimizer struct {
	cfg       Config
	ageMonths float64
	phase     Phase
	history   *deque.ArrDeque[Record]
	now       func() time.Time
}

type Option func(*Optimizer)

// WithClock replaces time.Now for history timestamps and the 24 h window.
func WithClock(now func() time.Time) Option {
	return func(o *Optimizer) {
		o.now = now
	}
}

func New(cfg Config, opts ...Option) *Optimizer {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}
	o := &Optimizer{
		cfg:     cfg,
		phase:   Week1,
		history: deque.NewArrDeque[Record](cfg.HistorySize),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Optimizer) SetSystemAge(months float64) {
	o.ageMonths = months
	log.WithFields(log.Fields{
		"ageMonths": months,
		"mature":    months >= MatureAgeMonths,
	}).Info("system age set")
}

func (o *Optimizer) SystemAge() float64 {
	return o.ageMonths
}

func (o *Optimizer) SetPhase(p Phase) {
	o.phase = p
}

func (o *Optimizer) Phase() Phase {
	return o.phase
}

// CurrentTarget returns the savings band for the equipment type at the current age.
func (o *Optimizer) CurrentTarget(typ equipment.Type) equipment.Band {
	if o.ageMonths < MatureAgeMonths {
		return o.cfg.Initial.For(typ)
	}
	return o.cfg.Mature.For(typ)
}

// TargetFrequency is the band-midpoint savings turned into a frequency and kept
// inside the efficiency-optimal band.
func (o *Optimizer) TargetFrequency(typ equipment.Type) float64 {
	f := equipment.FrequencyForSavings(o.CurrentTarget(typ).Mid())
	return equipment.OptimalBand(typ).Clamp(f)
}

// OptimizeFrequency returns the next drive frequency and the reasoning behind it.
func (o *Optimizer) OptimizeFrequency(currentTemp, targetTemp, currentFreq float64, typ equipment.Type, ratedPower float64) (float64, Performance) {
	tempError := math.Abs(currentTemp - targetTemp)
	target := o.CurrentTarget(typ)

	var next float64
	var mode Mode
	if tempError > o.cfg.TempDeadband {
		mode = ModeTemperature
		if currentTemp > targetTemp {
			next = currentFreq + o.cfg.TempStep
		} else {
			next = currentFreq - o.cfg.TempStep
		}
		next = o.cfg.FreqLimits.Clamp(next)
	} else {
		mode = ModeEnergy
		next = approach(currentFreq, o.TargetFrequency(typ), o.cfg.EnergyStep)
	}

	perf := Performance{
		Equipment:        typ,
		Mode:             mode,
		Phase:            o.phase,
		CurrentFreq:      currentFreq,
		OptimizedFreq:    next,
		CurrentPower:     equipment.CalculatePower(currentFreq, ratedPower),
		BaselinePower:    ratedPower,
		OptimizedPower:   equipment.CalculatePower(next, ratedPower),
		CurrentSavings:   equipment.SavingsPercent(currentFreq),
		OptimizedSavings: equipment.SavingsPercent(next),
		Target:           target,
		Efficiency:       equipment.Efficiency(typ, next),
		TempError:        tempError,
	}
	perf.MeetsTarget = perf.OptimizedSavings >= target.Min

	log.WithFields(log.Fields{
		"equipment": typ,
		"mode":      mode,
		"from":      currentFreq,
		"to":        next,
		"tempError": tempError,
	}).Debug("frequency optimized")
	return next, perf
}

// approach moves cur toward target by at most step, snapping when close enough.
func approach(cur, target, step float64) float64 {
	d := target - cur
	if math.Abs(d) <= step {
		return target
	}
	if d > 0 {
		return cur + step
	}
	return cur - step
}
