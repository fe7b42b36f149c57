// internal/report/report.go
// Package report defines the summary payloads the stats command
// renders through the writers registry.
package report

// Stats summarizes one scanned file. FASTA and GFF inputs fill
// different field groups; empty fields are omitted from JSON output.
type Stats struct {
	File   string `json:"file"`
	Format string `json:"format"`

	// FASTA
	Records     int   `json:"records,omitempty"`
	Residues    int64 `json:"residues,omitempty"`
	ShortestSeq int   `json:"shortest_seq,omitempty"`
	LongestSeq  int   `json:"longest_seq,omitempty"`

	// GFF
	Features   int            `json:"features,omitempty"`
	Directives int            `json:"directives,omitempty"`
	Types      map[string]int `json:"types,omitempty"`
}
