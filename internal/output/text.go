// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// FormatRowTSV returns the TSV columns for r (no trailing newline).
func FormatRowTSV(r Result) string {
	score, mism := r.PairStats()
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%.1f\t%d\t%.4f\t%s\t%s",
		r.RunID, len(r.Rows), r.Model, r.Collate,
		score, mism, r.MeanEntropy,
		r.Sequence, r.Pairing.DotBracket(),
	)
}

// WriteTextWithRenderer prints the optional header, the TSV row and, when
// prettyMode is set, render(r) below it.
func WriteTextWithRenderer(w io.Writer, r Result, header, prettyMode bool, render func(Result) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
		return err
	}
	if prettyMode && render != nil {
		if _, err := io.WriteString(w, render(r)); err != nil {
			return err
		}
	}
	return nil
}
