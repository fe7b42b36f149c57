// core/codec/errors.go
// Package codec holds the error taxonomy shared by the fasta and gff
// parsers. I/O failures are not represented here: readers propagate
// them as wrapped stdlib errors.
package codec

import "fmt"

// FormatError reports a structural violation of a wire grammar, e.g. a
// wrong column count or a malformed attribute pair. Line is 1-based.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ValidationError reports a well-formed but semantically invalid field,
// e.g. an out-of-alphabet symbol or start > end. Line is 1-based.
type ValidationError struct {
	Line int
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Formatf builds a FormatError for the given line.
func Formatf(line int, format string, args ...any) error {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Validatef builds a ValidationError for the given line.
func Validatef(line int, format string, args ...any) error {
	return &ValidationError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Line extracts the 1-based line number from a FormatError or
// ValidationError, or 0 when err carries no position.
func Line(err error) int {
	switch e := err.(type) {
	case *FormatError:
		return e.Line
	case *ValidationError:
		return e.Line
	}
	return 0
}
