package output

import (
	"fmt"
	"io"

	"rnadesign/internal/runid"
)

// WriteFASTA writes the design as a single FASTA record. The header carries
// the run id and the settings needed to reproduce it.
func WriteFASTA(w io.Writer, r Result) error {
	score, mism := r.PairStats()
	_, err := fmt.Fprintf(w,
		">design_%s len=%d model=%s collate=%s pair_score=%.1f mismatched=%d structure=%s\n%s\n",
		runid.Short(r.RunID), len(r.Rows), r.Model, r.Collate, score, mism, r.Pairing.DotBracket(), r.Sequence,
	)
	return err
}
