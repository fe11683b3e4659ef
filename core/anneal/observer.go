package anneal

// StepStat is the per-step diagnostic. It never feeds back into control
// flow.
type StepStat struct {
	Step        int     // 1-based index within the current Run
	Steps       int     // steps requested for the current Run
	Temperature float64 // temperature used by this step
	MeanEntropy float64 // mean Shannon entropy (bits) over free columns
	MaxShift    float64 // largest |p_new − p_prev| over free cells
	Free        int     // columns still free
}

// Observer receives run diagnostics. Implementations must not mutate the
// matrix.
type Observer interface {
	StepDone(StepStat)
	ColumnFixed(col, row int, reason string)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) StepDone(StepStat)            {}
func (NopObserver) ColumnFixed(int, int, string) {}

// Observers fans out to each member in order.
type Observers []Observer

func (os Observers) StepDone(s StepStat) {
	for _, o := range os {
		o.StepDone(s)
	}
}

func (os Observers) ColumnFixed(col, row int, reason string) {
	for _, o := range os {
		o.ColumnFixed(col, row, reason)
	}
}
