package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffinityLaws(t *testing.T) {
	for _, c := range []Characteristics{SeawaterPump, FreshwaterPump, EngineRoomFan} {
		for _, f := range []float64{0, 20, 40, 45, 50, 60, 66} {
			r := f / 60
			assert.InDelta(t, c.RatedFlow*r, c.Flow(f), 1e-9, "%s flow at %v", c.Name, f)
			assert.InDelta(t, c.RatedHead*r*r, c.Head(f), 1e-9, "%s head at %v", c.Name, f)
			assert.InDelta(t, c.RatedPower*r*r*r, c.Power(f), 1e-9, "%s power at %v", c.Name, f)
		}
	}
}

func TestAffinityLaws_RatedPoint(t *testing.T) {
	assert.Equal(t, SeawaterPump.RatedFlow, SeawaterPump.Flow(RatedFreq))
	assert.Equal(t, SeawaterPump.RatedHead, SeawaterPump.Head(RatedFreq))
	assert.Equal(t, SeawaterPump.RatedPower, SeawaterPump.Power(RatedFreq))
}

func TestAffinityLaws_NegativeFrequencyAccepted(t *testing.T) {
	assert.Less(t, SeawaterPump.Flow(-30), 0.0)
	assert.Greater(t, SeawaterPump.Head(-30), 0.0)
	assert.Less(t, SeawaterPump.Power(-30), 0.0)
}

func TestSavingsInversionRoundTrip(t *testing.T) {
	for s := 0.5; s < 100; s += 0.5 {
		assert.InDelta(t, s, SavingsPercent(FrequencyForSavings(s)), 1e-9)
	}
}

func TestSavingsPercent(t *testing.T) {
	assert.InDelta(t, 0, SavingsPercent(60), 1e-12)
	assert.InDelta(t, 87.5, SavingsPercent(30), 1e-12)
	assert.InDelta(t, 100, SavingsPercent(0), 1e-12)
}
