// pkg/api/design_v1.go
package api

// DesignV1 is the stable JSON schema for one designed sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type DesignV1 struct {
	RunID     string `json:"run_id"`
	Structure string `json:"structure"` // dot-bracket
	Length    int    `json:"length"`
	Sequence  string `json:"sequence"`
	Alphabet  string `json:"alphabet"`

	// Run parameters
	Model           string     `json:"model"`   // "nn" | "nussinov"
	Collate         string     `json:"collate"` // "majority" | "incremental"
	Steps           int        `json:"steps"`
	Temperature     float64    `json:"temperature"` // T0, Kelvin
	TargetRatio     float64    `json:"target_ratio"`
	Threshold       float64    `json:"threshold,omitempty"`
	DecimationSteps int        `json:"decimation_steps,omitempty"`
	Presets         []PresetV1 `json:"presets,omitempty"`

	// Outcome
	Rounds          int       `json:"rounds,omitempty"`
	PairScore       float64   `json:"pair_score"` // sum of pair-table scores over target pairs
	MismatchedPairs int       `json:"mismatched_pairs"`
	MeanEntropy     float64   `json:"mean_entropy"`         // bits, before collation
	Confidence      []float64 `json:"confidence,omitempty"` // per column, before collation
}

// PresetV1 is a pinned column (1-based).
type PresetV1 struct {
	Col  int    `json:"col"`
	Base string `json:"base"`
}
