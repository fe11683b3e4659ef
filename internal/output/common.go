package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatFASTA = "fasta"
)

// TSVHeader is the canonical header row for text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "run_id\tlength\tmodel\tcollate\tpair_score\tmismatched_pairs\tmean_entropy\tsequence\tstructure"
