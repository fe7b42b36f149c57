// core/fasta/record.go
package fasta

// Record is one FASTA entry: the header line split into identifier and
// free-text description, plus the concatenated sequence lines. Records
// are plain values; readers never retain them after yielding.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}
