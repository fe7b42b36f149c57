// core/gff/reader.go
package gff

import (
	"io"
	"strconv"
	"strings"

	"seqio-core/codec"
	"seqio-core/scan"
)

const numColumns = 9

// Reader yields GFF events one Next call at a time. Each data line is
// parsed independently; iteration stops at the first error. Not safe
// for concurrent use.
type Reader struct {
	sc  *scan.Scanner
	err error
}

// NewReader reads GFF3 from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: scan.NewScanner(r)}
}

// Next returns the next feature or directive in source order, io.EOF
// at end of input, or the first error encountered. Comments and blank
// lines are skipped.
func (r *Reader) Next() (Event, error) {
	if r.err != nil {
		return Event{}, r.err
	}
	for {
		ln, err := r.sc.Next()
		if err != nil {
			r.err = err
			return Event{}, err
		}
		text := ln.Text
		switch {
		case strings.TrimSpace(text) == "":
			continue
		case strings.HasPrefix(text, "##"):
			return Event{Metadata: &Metadata{Directive: text[2:]}}, nil
		case text[0] == '#':
			continue
		}
		f, err := parseFeature(ln)
		if err != nil {
			r.err = err
			return Event{}, err
		}
		return Event{Feature: f}, nil
	}
}

// NextFeature skips directives and returns the next feature.
func (r *Reader) NextFeature() (Feature, error) {
	for {
		ev, err := r.Next()
		if err != nil {
			return Feature{}, err
		}
		if ev.Feature != nil {
			return *ev.Feature, nil
		}
	}
}

// ReadAll drains the stream into feature and directive slices.
func (r *Reader) ReadAll() ([]Feature, []Metadata, error) {
	var (
		feats []Feature
		meta  []Metadata
	)
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return feats, meta, nil
		}
		if err != nil {
			return nil, nil, err
		}
		if ev.Feature != nil {
			feats = append(feats, *ev.Feature)
		} else {
			meta = append(meta, *ev.Metadata)
		}
	}
}

func parseFeature(ln scan.Line) (*Feature, error) {
	cols := strings.Split(ln.Text, "\t")
	if len(cols) != numColumns {
		return nil, codec.Formatf(ln.Num, "expected %d columns, got %d", numColumns, len(cols))
	}

	f := &Feature{Phase: PhaseNone}
	var err error
	if f.Seqid, err = unescape(cols[0], ln.Num); err != nil {
		return nil, err
	}
	if f.Source, err = unescape(cols[1], ln.Num); err != nil {
		return nil, err
	}
	if f.Type, err = unescape(cols[2], ln.Num); err != nil {
		return nil, err
	}

	if f.Start, err = strconv.ParseInt(cols[3], 10, 64); err != nil {
		return nil, codec.Validatef(ln.Num, "start is not an integer: %q", cols[3])
	}
	if f.End, err = strconv.ParseInt(cols[4], 10, 64); err != nil {
		return nil, codec.Validatef(ln.Num, "end is not an integer: %q", cols[4])
	}
	if f.Start < 1 {
		return nil, codec.Validatef(ln.Num, "start must be >= 1, got %d", f.Start)
	}
	if f.Start > f.End {
		return nil, codec.Validatef(ln.Num, "start %d greater than end %d", f.Start, f.End)
	}

	if cols[5] != "." {
		score, err := strconv.ParseFloat(cols[5], 64)
		if err != nil {
			return nil, codec.Validatef(ln.Num, "score is not a number: %q", cols[5])
		}
		f.Score = &score
	}

	if len(cols[6]) != 1 || !Strand(cols[6][0]).valid() {
		return nil, codec.Validatef(ln.Num, "invalid strand %q (want +, -, . or ?)", cols[6])
	}
	f.Strand = Strand(cols[6][0])

	switch cols[7] {
	case ".":
	case "0", "1", "2":
		f.Phase = Phase(cols[7][0] - '0')
	default:
		return nil, codec.Validatef(ln.Num, "invalid phase %q (want 0, 1, 2 or .)", cols[7])
	}

	if f.Attributes, err = parseAttributes(cols[8], ln.Num); err != nil {
		return nil, err
	}
	return f, nil
}

// parseAttributes decodes "key1=v1,v2;key2=v3". A bare "." marks an
// empty attribute column.
func parseAttributes(col string, line int) (Attributes, error) {
	if col == "." || col == "" {
		return nil, nil
	}
	var attrs Attributes
	seen := map[string]bool{}
	for _, pair := range strings.Split(col, ";") {
		if pair == "" {
			// tolerate a trailing semicolon
			continue
		}
		rawKey, rawValues, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, codec.Formatf(line, "attribute %q missing '='", pair)
		}
		key, err := unescape(rawKey, line)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			return nil, codec.Formatf(line, "duplicate attribute key %q", key)
		}
		seen[key] = true
		raw := strings.Split(rawValues, ",")
		values := make([]string, len(raw))
		for i, rv := range raw {
			if values[i], err = unescape(rv, line); err != nil {
				return nil, err
			}
		}
		attrs = append(attrs, Attribute{Key: key, Values: values})
	}
	return attrs, nil
}
