package anneal

import "math"

// DefaultTargetRatio is T_final/T0 when the caller does not choose one.
const DefaultTargetRatio = 0.01

// Schedule is geometric cooling: after steps−1 multiplications by Ratio
// the temperature reaches T0·targetRatio.
type Schedule struct {
	T0    float64
	Ratio float64
	T     float64
}

// NewSchedule computes the cooling ratio once per run. With fewer than two
// steps there is nothing to cool and Ratio is 1.
func NewSchedule(t0 float64, steps int, targetRatio float64) Schedule {
	ratio := 1.0
	if steps > 1 && targetRatio > 0 {
		ratio = math.Pow(targetRatio, 1.0/float64(steps-1))
	}
	return Schedule{T0: t0, Ratio: ratio, T: t0}
}

// Cool advances one step.
func (s *Schedule) Cool() { s.T *= s.Ratio }

// At returns the temperature used by step k (0-based).
func (s Schedule) At(k int) float64 { return s.T0 * math.Pow(s.Ratio, float64(k)) }
