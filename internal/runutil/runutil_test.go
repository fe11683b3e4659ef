package runutil

import "testing"

func TestEffectiveDecimationSteps(t *testing.T) {
	if got := EffectiveDecimationSteps(7, 200); got != 7 {
		t.Fatalf("explicit → want 7, got %d", got)
	}
	if got := EffectiveDecimationSteps(0, 200); got != 0 {
		t.Fatalf("0 is explicit → want 0, got %d", got)
	}
	if got := EffectiveDecimationSteps(-1, 200); got != 20 {
		t.Fatalf("auto → want steps/10=20, got %d", got)
	}
	if got := EffectiveDecimationSteps(-1, 10); got != 5 {
		t.Fatalf("auto floor → want 5, got %d", got)
	}
}

func TestFinalTemperature(t *testing.T) {
	if got := FinalTemperature(300, 0.01); got != 3 {
		t.Fatalf("want 3, got %v", got)
	}
}

func TestValidateSchedule(t *testing.T) {
	// happy path
	if w := ValidateSchedule(200, 310, 0.01, "incremental", 0.99, -1); len(w) != 0 {
		t.Fatalf("unexpected warnings: %v", w)
	}
	// uniform tie
	if w := ValidateSchedule(0, 310, 0.01, "majority", 0.99, -1); len(w) != 1 {
		t.Fatalf("steps 0 + majority should warn: %v", w)
	}
	// zero temperature + no cooling
	if w := ValidateSchedule(10, 0, 1, "majority", 0.99, -1); len(w) != 2 {
		t.Fatalf("want 2 warnings, got %v", w)
	}
	// low threshold
	if w := ValidateSchedule(10, 300, 0.01, "incremental", 0.3, -1); len(w) != 1 {
		t.Fatalf("low threshold should warn: %v", w)
	}
	// decimation steps with majority
	if w := ValidateSchedule(10, 300, 0.01, "majority", 0.99, 4); len(w) != 1 {
		t.Fatalf("decimation-steps with majority should warn: %v", w)
	}
}
