package writers

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"seqio/internal/report"
)

func init() {
	RegisterStats("text", writeText)
}

func writeText(w io.Writer, s report.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "file\t%s\n", s.File)
	fmt.Fprintf(tw, "format\t%s\n", s.Format)
	switch s.Format {
	case "fasta":
		fmt.Fprintf(tw, "records\t%d\n", s.Records)
		fmt.Fprintf(tw, "residues\t%d\n", s.Residues)
		if s.Records > 0 {
			fmt.Fprintf(tw, "shortest\t%d\n", s.ShortestSeq)
			fmt.Fprintf(tw, "longest\t%d\n", s.LongestSeq)
		}
	case "gff":
		fmt.Fprintf(tw, "features\t%d\n", s.Features)
		fmt.Fprintf(tw, "directives\t%d\n", s.Directives)
		for _, typ := range sortedKeys(s.Types) {
			fmt.Fprintf(tw, "type %s\t%d\n", typ, s.Types[typ])
		}
	}
	return tw.Flush()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
