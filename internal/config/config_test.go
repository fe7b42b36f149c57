package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 70, cfg.Width)
	require.Equal(t, "dna", cfg.Alphabet)
	require.False(t, cfg.Lenient)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".seqio.yaml"),
		[]byte("width: 80\nalphabet: protein\nlenient: true\n"), 0o644)
	require.NoError(t, err)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	require.Equal(t, 80, cfg.Width)
	require.Equal(t, "protein", cfg.Alphabet)
	require.True(t, cfg.Lenient)
}

func TestLoadFromPartialFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".seqio.yaml"), []byte("width: 50\n"), 0o644)
	require.NoError(t, err)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Width)
	require.Equal(t, "dna", cfg.Alphabet)
}
