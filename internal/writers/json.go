package writers

import (
	"encoding/json"
	"io"

	"seqio/internal/report"
)

func init() {
	RegisterStats("json", writeJSON)
}

func writeJSON(w io.Writer, s report.Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
