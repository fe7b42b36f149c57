// internal/app/app.go
// Package app wires the seqio command tree: fmt, check and stats over
// the core FASTA/GFF codecs.
package app

import (
	"context"
	"io"
)

// Run executes argv against the command tree and returns the process
// exit code. All output goes through the supplied writers, which keeps
// the tree testable without touching os.Stdout/Stderr.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRoot(stdout, stderr)
	root.SetArgs(argv)
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
