package optimizer

import "fmt"

// Phase labels how far the optimization has matured. It is reported, never used
// to choose a target: that depends on the system age only.
type Phase int

const (
	Week1 Phase = iota
	Week2
	Week3Plus
)

func (p Phase) String() string {
	switch p {
	case Week1:
		return "WEEK_1"
	case Week2:
		return "WEEK_2"
	case Week3Plus:
		return "WEEK_3_PLUS"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for _, c := range []Phase{Week1, Week2, Week3Plus} {
		if c.String() == string(text) {
			*p = c
			return nil
		}
	}
	return fmt.Errorf("unknown optimization phase %q", text)
}

// Mode tells which policy produced a frequency.
type Mode string

const (
	ModeTemperature Mode = "temperature"
	ModeEnergy      Mode = "energy"
)
