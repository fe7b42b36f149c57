// core/gff/writer.go
package gff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writer serializes features and directives in the order they are
// handed to it, re-encoding reserved characters.
type Writer struct {
	buf *bufio.Writer
}

// NewWriter writes GFF3 to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Write emits one tab-joined feature line. Absent score and phase are
// serialized as ".".
func (w *Writer) Write(f Feature) error {
	if !f.Strand.valid() {
		return fmt.Errorf("gff: invalid strand %q", byte(f.Strand))
	}
	if f.Phase != PhaseNone && (f.Phase < 0 || f.Phase > 2) {
		return fmt.Errorf("gff: invalid phase %d", f.Phase)
	}

	score := "."
	if f.Score != nil {
		score = strconv.FormatFloat(*f.Score, 'g', -1, 64)
	}
	phase := "."
	if f.Phase != PhaseNone {
		phase = strconv.Itoa(int(f.Phase))
	}

	_, err := fmt.Fprintf(w.buf, "%s\t%s\t%s\t%d\t%d\t%s\t%c\t%s\t%s\n",
		escape(f.Seqid), escape(f.Source), escape(f.Type),
		f.Start, f.End, score, byte(f.Strand), phase,
		formatAttributes(f.Attributes))
	return err
}

// WriteMetadata emits a directive line with its "##" prefix restored.
func (w *Writer) WriteMetadata(m Metadata) error {
	_, err := fmt.Fprintf(w.buf, "##%s\n", m.Directive)
	return err
}

// WriteEvent dispatches to Write or WriteMetadata.
func (w *Writer) WriteEvent(ev Event) error {
	if ev.Feature != nil {
		return w.Write(*ev.Feature)
	}
	if ev.Metadata != nil {
		return w.WriteMetadata(*ev.Metadata)
	}
	return fmt.Errorf("gff: empty event")
}

// WriteAll writes feats in order and flushes.
func (w *Writer) WriteAll(feats []Feature) error {
	for _, f := range feats {
		if err := w.Write(f); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered output to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

func formatAttributes(attrs Attributes) string {
	if len(attrs) == 0 {
		return "."
	}
	var sb strings.Builder
	for i, attr := range attrs {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(escape(attr.Key))
		sb.WriteByte('=')
		for j, v := range attr.Values {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(escape(v))
		}
	}
	return sb.String()
}
