package plant

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.TempNoiseSigma = 0
	cfg.PressureNoiseSigma = 0
	return cfg
}

func nominalInputs() Inputs {
	return Inputs{
		EngineLoad:     70,
		SWPumpCount:    2,
		SWPumpFreq:     50,
		FWPumpCount:    2,
		FWPumpFreq:     50,
		FanCount:       4,
		FanFreq:        45,
		SeawaterTemp:   26,
		OutsideAirTemp: 31,
	}
}

func TestEngineHeat(t *testing.T) {
	e := New(quietConfig())
	tests := []struct {
		load float64
		want float64
	}{
		{0, 0.3 * 24000},
		{15, 0.4 * 24000},
		{30, 0.5 * 24000},
		{65, 0.75 * 24000},
		{100, 24000},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, e.EngineHeat(tt.load), 1e-9, "load %v", tt.load)
	}
}

func TestNew_NominalState(t *testing.T) {
	e := New(quietConfig())
	assert.Equal(t, NominalState(), e.State())
}

func TestStep_Deterministic(t *testing.T) {
	cfg := quietConfig()
	e := New(cfg)
	in := nominalInputs()
	before := e.State()

	snap := e.Step(in)
	s := e.State()

	assert.Equal(t, in.SeawaterTemp, s.SeawaterInlet)
	assert.Equal(t, in.OutsideAirTemp, s.OutsideAir)

	heat := e.EngineHeat(in.EngineLoad)
	assert.InDelta(t, before.FWInlet+heat/(cfg.FWThermalMass*cfg.CpFW), s.FWInlet, 1e-9)

	// the coolers see identical flows so their outlets stay equal
	assert.Equal(t, s.Cooler1Outlet, s.Cooler2Outlet)

	wantPressure := 2 * cfg.SeawaterPump.Head(50) / cfg.FlowResistance / 10.2
	assert.InDelta(t, wantPressure, s.SWPressure, 1e-9)

	// zero sigma: the snapshot is the state
	assert.Equal(t, s, snap.State)
	assert.Equal(t, in.EngineLoad, snap.EngineLoad)
	assert.Equal(t, heat, snap.EngineHeat)
}

func TestStep_SmoothingTowardsExchange(t *testing.T) {
	cfg := quietConfig()
	e := New(cfg)
	in := nominalInputs()
	before := e.State()
	e.Step(in)
	after := e.State()

	fwFlow := 2 * cfg.FreshwaterPump.Flow(in.FWPumpFreq) / 2
	swFlow := 2 * cfg.SeawaterPump.Flow(in.SWPumpFreq) / 2
	hotOut, coldOut := e.hx.Exchange(after.FWInlet, after.SeawaterInlet, fwFlow, swFlow)

	assert.InDelta(t, 0.9*before.Cooler1Outlet+0.1*coldOut, after.Cooler1Outlet, 1e-9)
	assert.InDelta(t, 0.9*before.FWOutlet+0.1*hotOut, after.FWOutlet, 1e-9)
}

func TestStep_Ventilation(t *testing.T) {
	cfg := quietConfig()

	// no fans: the room only self-heats
	e := New(cfg)
	in := nominalInputs()
	in.FanCount = 0
	before := e.State().EngineRoom
	e.Step(in)
	assert.InDelta(t, before+cfg.RoomSelfHeat/(cfg.RoomThermalMass*cfg.CpFW), e.State().EngineRoom, 1e-12)

	// fans with a hot room: it cools down
	e = New(cfg)
	s := e.State()
	s.EngineRoom = 45
	s.OutsideAir = 20
	e.SetState(s)
	in = nominalInputs()
	e.Step(in)
	assert.Less(t, e.State().EngineRoom, 45.0)
}

func TestStep_PressureNeverNegative(t *testing.T) {
	e := New(DefaultConfig(), WithRandSource(rand.NewPCG(1, 2)))
	in := nominalInputs()
	in.SWPumpCount = 0
	for i := 0; i < 500; i++ {
		snap := e.Step(in)
		require.GreaterOrEqual(t, snap.SWPressure, 0.0)
	}
	assert.Equal(t, 0.0, e.State().SWPressure)
}

func TestStep_NoiseStatistics(t *testing.T) {
	cfg := DefaultConfig()
	e := New(cfg, WithRandSource(rand.NewPCG(42, 7)))
	in := nominalInputs()

	var diffs []float64
	for i := 0; i < 2000; i++ {
		snap := e.Step(in)
		diffs = append(diffs, snap.OutsideAir-e.State().OutsideAir)
	}
	mean, std := stat.MeanStdDev(diffs, nil)
	assert.InDelta(t, 0, mean, 0.02)
	assert.InDelta(t, cfg.TempNoiseSigma, std, 0.02)
}

func TestStep_SeededNoiseReproducible(t *testing.T) {
	a := New(DefaultConfig(), WithRandSource(rand.NewPCG(3, 4)))
	b := New(DefaultConfig(), WithRandSource(rand.NewPCG(3, 4)))
	in := nominalInputs()
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Step(in), b.Step(in))
	}
}

func TestReset_Idempotent(t *testing.T) {
	e := New(quietConfig())
	for i := 0; i < 100; i++ {
		e.Step(nominalInputs())
	}
	require.NotEqual(t, NominalState(), e.State())

	e.Reset()
	once := e.State()
	e.Reset()
	assert.Equal(t, once, e.State())
	assert.Equal(t, NominalState(), once)
}

func TestSetState_FloorsPressure(t *testing.T) {
	e := New(quietConfig())
	s := NominalState()
	s.SWPressure = -1
	s.FWOutlet = 90
	e.SetState(s)
	assert.Equal(t, 0.0, e.State().SWPressure)
	assert.Equal(t, 90.0, e.State().FWOutlet)
}

func TestStep_NegativeCountsNotRejected(t *testing.T) {
	e := New(quietConfig())
	in := nominalInputs()
	in.FanCount = -2
	snap := e.Step(in)
	assert.False(t, math.IsNaN(snap.EngineRoom))
}
