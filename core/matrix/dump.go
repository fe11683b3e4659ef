package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Dump writes the current generation as tab-separated text, one line per
// column. It is a debugging aid; the layout is not a stable format.
// symbols labels the rows; when its length differs from R, row indices are
// used instead.
func (m *Matrix) Dump(w io.Writer, symbols []rune) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# matrix R=%d N=%d fixed=%d\n", m.rows, m.cols, m.FixedCount())
	bw.WriteString("col\tpair\tfix")
	labels := make([]string, m.rows)
	for i := range labels {
		if len(symbols) == m.rows {
			labels[i] = string(symbols[i])
		} else {
			labels[i] = strconv.Itoa(i)
		}
		bw.WriteString("\t" + labels[i])
	}
	bw.WriteByte('\n')
	for j := 0; j < m.cols; j++ {
		pair := "-"
		if k, ok := m.Partner(j); ok {
			pair = strconv.Itoa(k + 1)
		}
		fix := "-"
		if m.fixed[j] {
			fix = labels[m.pinned[j]]
		}
		fmt.Fprintf(bw, "%d\t%s\t%s", j+1, pair, fix)
		for _, p := range m.Column(j) {
			fmt.Fprintf(bw, "\t%.4f", p)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
