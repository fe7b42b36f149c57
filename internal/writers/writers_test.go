package writers

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"seqio/internal/report"
)

func TestWriteStatsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStats("json", &buf, report.Stats{
		File:     "x.fa",
		Format:   "fasta",
		Records:  2,
		Residues: 8,
	})
	require.NoError(t, err)

	var got report.Stats
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "x.fa", got.File)
	require.Equal(t, 2, got.Records)
}

func TestWriteStatsText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStats("text", &buf, report.Stats{
		File:       "y.gff",
		Format:     "gff",
		Features:   3,
		Directives: 1,
		Types:      map[string]int{"gene": 1, "exon": 2},
	})
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "features")
	require.Contains(t, out, "type exon")
	require.Contains(t, out, "type gene")
}

func TestWriteStatsUnknownFormat(t *testing.T) {
	err := WriteStats("yaml", io.Discard, report.Stats{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown output format "yaml"`)
}

func TestRegisterStatsLastWins(t *testing.T) {
	RegisterStats("probe", func(w io.Writer, s report.Stats) error {
		_, err := w.Write([]byte("first"))
		return err
	})
	RegisterStats("probe", func(w io.Writer, s report.Stats) error {
		_, err := w.Write([]byte("second"))
		return err
	})
	var buf bytes.Buffer
	require.NoError(t, WriteStats("probe", &buf, report.Stats{}))
	require.Equal(t, "second", buf.String())
}
