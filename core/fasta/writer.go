// core/fasta/writer.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultWidth is the column the Writer wraps sequences at.
const DefaultWidth = 70

// Writer serializes records in input order, wrapping sequences at
// Width columns. Width must stay positive; it may be changed between
// Write calls.
type Writer struct {
	Width int
	buf   *bufio.Writer
}

// NewWriter writes FASTA to w, wrapping at DefaultWidth.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Width: DefaultWidth, buf: bufio.NewWriter(w)}
}

// Write emits one record. The description is omitted when empty.
func (w *Writer) Write(rec Record) error {
	if w.Width <= 0 {
		return fmt.Errorf("fasta: line width must be positive, got %d", w.Width)
	}
	if rec.Description != "" {
		if _, err := fmt.Fprintf(w.buf, ">%s %s\n", rec.ID, rec.Description); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w.buf, ">%s\n", rec.ID); err != nil {
		return err
	}
	for start := 0; start < len(rec.Seq); start += w.Width {
		end := start + w.Width
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		if _, err := w.buf.Write(rec.Seq[start:end]); err != nil {
			return err
		}
		if err := w.buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes recs in order and flushes.
func (w *Writer) WriteAll(recs []Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered output to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
