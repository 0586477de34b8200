package optimizer

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"shipcool/equipment"
)

// Record is one entry of the performance history.
type Record struct {
	Timestamp   time.Time `json:"timestamp"`
	PumpFreq    float64   `json:"pump_freq"`
	FanFreq     float64   `json:"fan_freq"`
	PumpSavings float64   `json:"pump_savings"`
	FanSavings  float64   `json:"fan_savings"`
	PumpPower   float64   `json:"pump_power"`
	FanPower    float64   `json:"fan_power"`
}

// Averages of pump and fan savings over the rolling window.
type Averages struct {
	Pump    float64 `json:"pump"`
	Fan     float64 `json:"fan"`
	Samples int     `json:"samples"`
}

// RecordPerformance appends a timestamped record, evicting the oldest once the
// history is at capacity.
func (o *Optimizer) RecordPerformance(pumpFreq, fanFreq, pumpRatedPower, fanRatedPower float64) Record {
	r := Record{
		Timestamp:   o.now(),
		PumpFreq:    pumpFreq,
		FanFreq:     fanFreq,
		PumpSavings: equipment.SavingsPercent(pumpFreq),
		FanSavings:  equipment.SavingsPercent(fanFreq),
		PumpPower:   equipment.CalculatePower(pumpFreq, pumpRatedPower),
		FanPower:    equipment.CalculatePower(fanFreq, fanRatedPower),
	}
	for o.history.Size() >= o.cfg.HistorySize {
		o.history.RemoveFirst()
	}
	o.history.AddLast(r)
	return r
}

// Average24hSavings averages pump and fan savings over records younger than the
// averaging window (24 h by default), measured against the wall clock.
func (o *Optimizer) Average24hSavings() Averages {
	cutoff := o.now().Add(-time.Duration(o.cfg.AverageWindow * float64(time.Second)))
	var pump, fan []float64
	o.history.Traverse(func(_ int, r *Record) {
		if r.Timestamp.Before(cutoff) {
			return
		}
		pump = append(pump, r.PumpSavings)
		fan = append(fan, r.FanSavings)
	})
	if len(pump) == 0 {
		return Averages{}
	}
	return Averages{
		Pump:    stat.Mean(pump, nil),
		Fan:     stat.Mean(fan, nil),
		Samples: len(pump),
	}
}

// History returns a copy of the records, oldest first.
func (o *Optimizer) History() []Record {
	return o.history.Slice()
}

func (o *Optimizer) HistoryLen() int {
	return o.history.Size()
}

func (o *Optimizer) ClearHistory() {
	o.history.Clear()
}
