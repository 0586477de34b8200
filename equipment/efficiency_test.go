package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPumpEfficiency(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		want float64
	}{
		{"peak", 47.5, 95},
		{"band low edge", 45, 93.5},
		{"band high edge", 50, 93.5},
		{"below band", 42, 86},
		{"floor at 40 Hz", 40, 80},
		{"clamped below floor", 30, 80},
		{"above band", 55, 91.5},
		{"clamped above", 70, 88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PumpEfficiency(tt.freq), 1e-9)
		})
	}
}

func TestFanEfficiency(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		want float64
	}{
		{"peak", 42.5, 92},
		{"band low edge", 40, 90},
		{"band high edge", 45, 90},
		{"80 at 35 Hz", 35, 80},
		{"between", 37.5, 86},
		{"floor", 20, 75},
		{"above band", 50, 88.65},
		{"clamped above", 70, 82},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FanEfficiency(tt.freq), 1e-9)
		})
	}
}

func TestEfficiencyDispatch(t *testing.T) {
	assert.Equal(t, PumpEfficiency(48), Efficiency(Pump, 48))
	assert.Equal(t, FanEfficiency(48), Efficiency(Fan, 48))
}

func TestBand(t *testing.T) {
	b := OptimalBand(Pump)
	assert.Equal(t, 47.5, b.Mid())
	assert.True(t, b.Contains(45))
	assert.False(t, b.Contains(51))
	assert.Equal(t, 45.0, b.Clamp(10))
	assert.Equal(t, 50.0, b.Clamp(60))
	assert.Equal(t, FanOptimalBand, OptimalBand(Fan))
}
