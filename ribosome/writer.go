package ribosome

import (
	"bytes"
	"fmt"
	"io"
)

// protein lines are indented by this prefix
const indent = "  "

// writer builds the text report in memory, it is written
// to the output in a single flush
type writer struct {
	buf *bytes.Buffer
}

func newWriter() *writer {
	return &writer{
		buf: bytes.NewBuffer(make([]byte, 0, 4096)),
	}
}

// Amino acids: M, K, $, Y
func (w *writer) writeAminos(aminos []byte) {
	w.buf.WriteString("Amino acids:")
	for i, aa := range aminos {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		w.buf.WriteByte(' ')
		w.buf.WriteByte(aa)
	}
	w.buf.WriteByte('\n')
}

func (w *writer) writeProteins(title string, proteins []string) {
	w.buf.WriteString(title)
	w.buf.WriteString(":\n")
	for _, protein := range proteins {
		w.buf.WriteString(indent)
		w.buf.WriteString(protein)
		w.buf.WriteByte('\n')
	}
}

func (w *writer) writeRemainder(title, remainder string) {
	w.buf.WriteString(title)
	w.buf.WriteByte(':')
	if remainder != "" {
		w.buf.WriteByte(' ')
		w.buf.WriteString(remainder)
	}
	w.buf.WriteByte('\n')
}

func (w *writer) writeResult(r Result) {
	w.writeProteins("Proteins", r.Proteins)
	w.writeRemainder("Remainder", r.Remainder)
}

func (w *writer) writeMutation(m Mutation, r Result, d Divergence) {
	fmt.Fprintf(w.buf, "Mutation: %v\n", m)
	w.writeProteins("Mutated proteins", r.Proteins)
	w.writeRemainder("Mutated remainder", r.Remainder)
	fmt.Fprintf(w.buf, "Different amino acids from original: %d (%.1f%%)\n", d.Count, d.Percent)
}

func (w *writer) writeSummary(mean, std float64, trials int) {
	fmt.Fprintf(w.buf, "Mean divergence: %.1f%% (sd %.1f%%) over %d trials\n", mean, std, trials)
}

func (w *writer) flush(out io.Writer) error {
	_, err := out.Write(w.buf.Bytes())
	if err != nil {
		return fmt.Errorf("fail to write report: %v", err)
	}
	w.buf.Reset()
	return nil
}
