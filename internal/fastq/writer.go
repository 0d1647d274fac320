// internal/fastq/writer.go
package fastq

import (
	"bufio"
	"io"

	"adaptrim-core/seq"
)

// Writer emits 4-line FASTQ records through a buffered writer.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w with buffering. Call Flush before closing the
// underlying stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 1<<20)}
}

// Write appends one record. Records without qualities are written with
// an empty quality line so the 4-line framing is preserved.
func (w *Writer) Write(rec seq.Record) error {
	if err := w.bw.WriteByte('@'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(rec.Name); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(rec.Sequence); err != nil {
		return err
	}
	if _, err := w.bw.WriteString("\n+\n"); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(rec.Qualities); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Flush drains the buffer to the underlying stream.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
