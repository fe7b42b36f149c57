// core/scan/scan.go
// Package scan splits a byte stream into numbered logical lines. Both
// the fasta and gff readers sit on top of it so their diagnostics can
// point at the offending input line.
package scan

import (
	"bufio"
	"fmt"
	"io"
)

// Line is one logical input line with its line-ending stripped.
// Num is 1-based.
type Line struct {
	Num  int
	Text string
}

// Scanner yields lines from an io.Reader one pull at a time. It is not
// restartable: once the underlying stream is exhausted every further
// Next returns io.EOF. Not safe for concurrent use.
type Scanner struct {
	sc  *bufio.Scanner
	num int
	err error
}

// NewScanner wraps r. Both "\n" and "\r\n" endings are accepted.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Scanner{sc: sc}
}

// Next returns the next line, io.EOF at end of input, or a wrapped
// error if the underlying read fails. A failed Scanner stays failed.
func (s *Scanner) Next() (Line, error) {
	if s.err != nil {
		return Line{}, s.err
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			s.err = fmt.Errorf("line scan: %w", err)
		} else {
			s.err = io.EOF
		}
		return Line{}, s.err
	}
	s.num++
	return Line{Num: s.num, Text: s.sc.Text()}, nil
}
