// internal/fastq/reader.go

// Package fastq reads and writes 4-line FASTQ records at the I/O boundary,
// converting between the stream format and seq.Record values. Transparent
// gzip and zstd compression is handled by Open/Create.
package fastq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"adaptrim-core/seq"
)

// Reader parses FASTQ records from a stream.
type Reader struct {
	br   *bufio.Reader
	line int64 // 1-based line number of the next line, for error messages
}

// NewReader wraps r with a buffered FASTQ parser.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 1<<20), line: 1}
}

func (r *Reader) readLine() ([]byte, error) {
	line, err := r.br.ReadBytes('\n')
	if len(line) == 0 && err != nil {
		return nil, err
	}
	r.line++
	line = bytes.TrimRight(line, "\r\n")
	return line, nil
}

// Next returns the next record, or io.EOF once the stream is exhausted.
// A truncated final record is an error, not a silent EOF.
func (r *Reader) Next() (seq.Record, error) {
	header, err := r.readLine()
	if err != nil {
		return seq.Record{}, err
	}
	startLine := r.line - 1
	if len(header) == 0 || header[0] != '@' {
		return seq.Record{}, fmt.Errorf("fastq line %d: header must start with '@'", startLine)
	}

	sequence, err := r.readLine()
	if err != nil {
		return seq.Record{}, fmt.Errorf("fastq line %d: truncated record: %w", startLine, err)
	}
	plus, err := r.readLine()
	if err != nil {
		return seq.Record{}, fmt.Errorf("fastq line %d: truncated record: %w", startLine, err)
	}
	if len(plus) == 0 || plus[0] != '+' {
		return seq.Record{}, fmt.Errorf("fastq line %d: separator must start with '+'", startLine+2)
	}
	quality, err := r.readLine()
	if err != nil {
		return seq.Record{}, fmt.Errorf("fastq line %d: truncated record: %w", startLine, err)
	}
	if len(quality) != len(sequence) {
		return seq.Record{}, fmt.Errorf("fastq line %d: sequence and quality lengths differ (%d vs %d)",
			startLine, len(sequence), len(quality))
	}
	return seq.New(string(header[1:]), string(sequence), string(quality)), nil
}

// NextBatch reads up to n records. It returns the records read together
// with any error; io.EOF with a non-empty batch means the stream ended
// cleanly after those records.
func (r *Reader) NextBatch(n int) ([]seq.Record, error) {
	batch := make([]seq.Record, 0, n)
	for len(batch) < n {
		rec, err := r.Next()
		if err != nil {
			return batch, err
		}
		batch = append(batch, rec)
	}
	return batch, nil
}
