package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, 50, opts.SamplingBlock)
	require.Equal(t, 200, opts.Repeat)
	require.Equal(t, 1000, opts.Thermalization)
	require.Equal(t, 1, opts.SizeMultiplier)
	require.EqualValues(t, 0, opts.Seed)
}

func TestParseOptionsPartial(t *testing.T) {
	opts, err := ParseOptions([]byte("repeat: 500\nseed: 42\n"))
	require.NoError(t, err)

	// Overridden fields take, everything else keeps its default.
	require.Equal(t, 500, opts.Repeat)
	require.EqualValues(t, 42, opts.Seed)
	require.Equal(t, 50, opts.SamplingBlock)
	require.Equal(t, 1000, opts.Thermalization)
}

func TestParseOptionsInvalid(t *testing.T) {
	_, err := ParseOptions([]byte("repeat: [not, a, number]\n"))
	require.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	content := "sampling_block: 25\nthermalization: 2000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	require.Equal(t, 25, opts.SamplingBlock)
	require.Equal(t, 2000, opts.Thermalization)
	require.Equal(t, 200, opts.Repeat)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestOptionsRNG(t *testing.T) {
	seeded := &Options{Seed: 9}
	require.NotNil(t, seeded.rng())

	unseeded := &Options{}
	require.Nil(t, unseeded.rng())
}
