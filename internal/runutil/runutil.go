// internal/runutil/runutil.go
package runutil

import "fmt"

// EffectiveDecimationSteps returns the re-simulation length used by
// incremental collation. If decimationSteps >= 0, that value is used
// as-is. Otherwise (auto): a tenth of the main run, at least 5.
func EffectiveDecimationSteps(decimationSteps, steps int) int {
	if decimationSteps >= 0 {
		return decimationSteps
	}
	if n := steps / 10; n > 5 {
		return n
	}
	return 5
}

// FinalTemperature is T0·targetRatio, the temperature of the last step.
func FinalTemperature(t0, targetRatio float64) float64 { return t0 * targetRatio }

// ValidateSchedule returns warnings for settings that run but are unlikely
// to be what the user meant. Hard errors are checked by the CLI.
// Rules:
//   - --steps 0 skips relaxation; majority vote then reads the uniform start
//   - --temp 0 is the zero-temperature limit; the cooling ratio is moot
//   - a target ratio of 1 disables cooling
//   - --threshold below 0.5 lets threshold fixing take near-ties
//   - --threshold/--decimation-steps are ignored by majority collation
func ValidateSchedule(steps int, t0, targetRatio float64, collate string, threshold float64, decimationSteps int) []string {
	var warns []string
	if steps == 0 && collate == "majority" {
		warns = append(warns, "warning: --steps 0 with majority collation returns the uniform tie (first symbol everywhere)")
	}
	if t0 == 0 && steps > 0 {
		warns = append(warns, "warning: --temp 0 runs at the zero-temperature limit; cooling has no effect")
	}
	if targetRatio == 1 && steps > 1 {
		warns = append(warns, "warning: --target-ratio 1 disables cooling")
	}
	switch collate {
	case "incremental":
		if threshold < 0.5 {
			warns = append(warns, fmt.Sprintf("warning: --threshold %.2f fixes columns on near-ties", threshold))
		}
	case "majority":
		if decimationSteps >= 0 {
			warns = append(warns, "warning: --decimation-steps only applies to --collate incremental; ignoring")
		}
	}
	return warns
}
