package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"shipcool/model"
	"shipcool/optimizer"
)

const namespace = "shipcool"

// Collector exposes plant and optimizer state as prometheus metrics.
type Collector struct {
	temperature *prometheus.GaugeVec
	pressure    prometheus.Gauge
	engineLoad  prometheus.Gauge
	frequency   *prometheus.GaugeVec
	savings     *prometheus.GaugeVec
	decisions   *prometheus.CounterVec
}

// New registers the collector's metrics on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "plant",
			Name:      "temperature_celsius",
			Help:      "Measured plant temperature per channel.",
		}, []string{"channel"}),
		pressure: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "plant",
			Name:      "pressure_bar",
			Help:      "Measured seawater discharge pressure.",
		}),
		engineLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "plant",
			Name:      "engine_load_percent",
			Help:      "Main engine load driving the simulation.",
		}),
		frequency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "drive_frequency_hz",
			Help:      "Commanded VFD frequency per equipment class.",
		}, []string{"equipment"}),
		savings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "optimizer",
			Name:      "savings_percent",
			Help:      "Energy savings against 60 Hz operation of the last decision.",
		}, []string{"equipment"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "optimizer",
			Name:      "decisions_total",
			Help:      "Optimizer decisions by equipment and policy.",
		}, []string{"equipment", "mode"}),
	}
	reg.MustRegister(c.temperature, c.pressure, c.engineLoad, c.frequency, c.savings, c.decisions)
	return c
}

func (c *Collector) ObserveFrame(f model.Frame) {
	s := f.Snapshot
	for ch, v := range map[string]float64{
		"seawater_inlet": s.SeawaterInlet,
		"cooler1_outlet": s.Cooler1Outlet,
		"cooler2_outlet": s.Cooler2Outlet,
		"fw_inlet":       s.FWInlet,
		"fw_outlet":      s.FWOutlet,
		"engine_room":    s.EngineRoom,
		"outside_air":    s.OutsideAir,
	} {
		c.temperature.WithLabelValues(ch).Set(v)
	}
	c.pressure.Set(s.SWPressure)
	c.engineLoad.Set(s.EngineLoad)
	c.frequency.WithLabelValues("sw_pump").Set(f.Frequencies.SWPump)
	c.frequency.WithLabelValues("fw_pump").Set(f.Frequencies.FWPump)
	c.frequency.WithLabelValues("fan").Set(f.Frequencies.Fan)
}

func (c *Collector) ObserveDecision(equipment string, p optimizer.Performance) {
	c.savings.WithLabelValues(equipment).Set(p.OptimizedSavings)
	c.decisions.WithLabelValues(equipment, string(p.Mode)).Inc()
}
