// core/alphabet/alphabet.go
// Package alphabet defines the symbol sets sequence records are
// validated against. Membership is case-insensitive; sequences keep
// their original case.
package alphabet

import (
	"fmt"
	"strings"
)

// Alphabet is a fixed set of allowed sequence symbols.
type Alphabet struct {
	name  string
	valid [256]bool
}

// IUPAC nucleotide codes including the ambiguity set.
const (
	dnaSymbols     = "ACGTRYSWKMBDHVN"
	rnaSymbols     = "ACGURYSWKMBDHVN"
	proteinSymbols = "ACDEFGHIKLMNPQRSTVWYBJZXUO*-"
)

var (
	DNA     = New("dna", dnaSymbols)
	RNA     = New("rna", rnaSymbols)
	Protein = New("protein", proteinSymbols)
)

// New builds an alphabet from its symbol set. Both cases of every
// symbol are admitted.
func New(name, symbols string) *Alphabet {
	a := &Alphabet{name: name}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		a.valid[c] = true
		a.valid[c|0x20] = true // ASCII lower case; no-op for non-letters
	}
	return a
}

// Name returns the alphabet's short name ("dna", "rna", "protein").
func (a *Alphabet) Name() string { return a.name }

// Valid reports whether b is a member of the alphabet.
func (a *Alphabet) Valid(b byte) bool { return a.valid[b] }

// Parse maps a user-facing name to one of the built-in alphabets.
func Parse(name string) (*Alphabet, error) {
	switch strings.ToLower(name) {
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "protein":
		return Protein, nil
	}
	return nil, fmt.Errorf("unknown alphabet %q (want dna, rna or protein)", name)
}
