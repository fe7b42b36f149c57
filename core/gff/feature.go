// core/gff/feature.go
// Package gff parses and serializes GFF3 annotation lines as a pull
// stream of events: one Feature per data line, one Metadata per "##"
// directive. Single-"#" comments and blank lines are dropped.
package gff

// Strand is the orientation of a feature on the reference.
type Strand byte

const (
	StrandForward Strand = '+'
	StrandReverse Strand = '-'
	StrandNone    Strand = '.' // unstranded
	StrandUnknown Strand = '?' // relevant but unknown
)

func (s Strand) valid() bool {
	switch s {
	case StrandForward, StrandReverse, StrandNone, StrandUnknown:
		return true
	}
	return false
}

// Phase is the reading-frame offset of a CDS feature. PhaseNone marks
// absence; the library does not require a phase on CDS lines.
type Phase int8

const PhaseNone Phase = -1

// Attribute is one key with its ordered values. Multi-valued keys are
// comma-separated on the wire.
type Attribute struct {
	Key    string
	Values []string
}

// Attributes preserve insertion order; keys are unique per feature.
type Attributes []Attribute

// Get returns the values stored under key.
func (a Attributes) Get(key string) ([]string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Values, true
		}
	}
	return nil, false
}

// First returns the first value stored under key, or "".
func (a Attributes) First(key string) string {
	if vs, ok := a.Get(key); ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Set appends values under key, creating the key if absent.
func (a *Attributes) Set(key string, values ...string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Values = append((*a)[i].Values, values...)
			return
		}
	}
	*a = append(*a, Attribute{Key: key, Values: values})
}

// Feature is one annotated region: a decoded GFF data line.
// Coordinates are 1-based inclusive with Start <= End. A nil Score
// means the score column was ".".
type Feature struct {
	Seqid      string
	Source     string
	Type       string
	Start      int64
	End        int64
	Score      *float64
	Strand     Strand
	Phase      Phase
	Attributes Attributes
}

// Metadata is one "##" directive line without the prefix, e.g.
// "gff-version 3".
type Metadata struct {
	Directive string
}

// Event is one element of the parsed stream: exactly one of Feature or
// Metadata is non-nil.
type Event struct {
	Feature  *Feature
	Metadata *Metadata
}
