// core/fasta/reader.go
// Package fasta parses and serializes FASTA sequence records as a pull
// stream over io.Reader/io.Writer.
package fasta

import (
	"io"
	"strings"

	"seqio-core/alphabet"
	"seqio-core/codec"
	"seqio-core/scan"
)

// Options configure a Reader.
//
// A nil Alphabet means DNA. Strict makes out-of-alphabet symbols a
// ValidationError; when false they are passed through uninterpreted.
type Options struct {
	Alphabet *alphabet.Alphabet
	Strict   bool
}

// DefaultOptions validate sequences against the DNA alphabet.
var DefaultOptions = Options{Alphabet: alphabet.DNA, Strict: true}

// Reader yields FASTA records one Next call at a time. Not safe for
// concurrent use; a fresh Reader is needed per stream.
type Reader struct {
	sc   *scan.Scanner
	opts Options

	// Header of the next record, already consumed from the stream
	// while finishing the previous one.
	pending *scan.Line
	err     error
}

// NewReader reads FASTA from r with DefaultOptions.
func NewReader(r io.Reader) *Reader {
	return NewReaderOptions(r, DefaultOptions)
}

// NewReaderOptions reads FASTA from r with the given options.
func NewReaderOptions(r io.Reader, opts Options) *Reader {
	if opts.Alphabet == nil {
		opts.Alphabet = alphabet.DNA
	}
	return &Reader{sc: scan.NewScanner(r), opts: opts}
}

// Next returns the next record, io.EOF at end of input, or the first
// error encountered. Iteration stops at the first error; later calls
// return the same error.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}

	var (
		rec  Record
		open bool
	)
	if r.pending != nil {
		id, desc, err := splitHeader(*r.pending)
		if err != nil {
			return Record{}, r.fail(err)
		}
		rec.ID, rec.Description = id, desc
		r.pending = nil
		open = true
	}

	for {
		ln, err := r.sc.Next()
		if err == io.EOF {
			if open {
				// A header immediately followed by EOF still yields a
				// record; empty sequences are permitted.
				return rec, nil
			}
			return Record{}, r.fail(io.EOF)
		}
		if err != nil {
			return Record{}, r.fail(err)
		}

		if strings.HasPrefix(ln.Text, ">") {
			if open {
				r.pending = &ln
				return rec, nil
			}
			id, desc, err := splitHeader(ln)
			if err != nil {
				return Record{}, r.fail(err)
			}
			rec.ID, rec.Description = id, desc
			open = true
			continue
		}

		body := strings.TrimSpace(ln.Text)
		if body == "" {
			continue
		}
		if !open {
			return Record{}, r.fail(codec.Formatf(ln.Num, "sequence data without header"))
		}
		if r.opts.Strict {
			for i := 0; i < len(body); i++ {
				if !r.opts.Alphabet.Valid(body[i]) {
					return Record{}, r.fail(codec.Validatef(ln.Num,
						"invalid symbol %q for %s alphabet", body[i], r.opts.Alphabet.Name()))
				}
			}
		}
		rec.Seq = append(rec.Seq, body...)
	}
}

// ReadAll drains the stream into a slice.
func (r *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

// splitHeader splits a ">id description" line at the first whitespace
// run. The identifier is required.
func splitHeader(ln scan.Line) (id, desc string, err error) {
	rest := strings.TrimSpace(ln.Text[1:])
	if rest == "" {
		return "", "", codec.Formatf(ln.Num, "empty sequence identifier")
	}
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		return rest[:i], strings.TrimSpace(rest[i+1:]), nil
	}
	return rest, "", nil
}
