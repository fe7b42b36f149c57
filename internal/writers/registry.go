// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqio/internal/report"
)

// Stats writer registry (format → handler). Registration is
// idempotent, last-wins.
var statsWriters = map[string]func(w io.Writer, s report.Stats) error{}

// RegisterStats adds or replaces the handler for a format name.
func RegisterStats(format string, fn func(io.Writer, report.Stats) error) {
	statsWriters[format] = fn
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(statsWriters))
	for name := range statsWriters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteStats dispatches s to the handler registered for format.
func WriteStats(format string, w io.Writer, s report.Stats) error {
	fn, ok := statsWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, s)
}
