package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeproj/gomcboot/series"
)

func writeTestDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	readme := "Number of MCS: 6\n" +
		"Lattice Size: 2\n" +
		"K,T\n" +
		"0.5,5.0\n" +
		"0.25,2.5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte(readme), 0o644))

	data := "E, E2\n" +
		"-1.0, 1.0\n" +
		"-2.0, 4.0\n" +
		"-3.0, 9.0\n" +
		"-1.0, 1.0\n" +
		"-2.0, 4.0\n" +
		"-3.0, 9.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cold0.csv"), []byte(data), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cold1.csv"), []byte(data), 0o644))

	// Equilibration companions and notes are not runs.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hot0.csv"), []byte(data), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n/a\n"), 0o644))

	return dir
}

func TestDirLoaderListRuns(t *testing.T) {
	dir := writeTestDataset(t)
	loader, err := NewDirLoader(dir, 1)
	require.NoError(t, err)

	ids, err := loader.ListRuns()
	require.NoError(t, err)
	require.Equal(t, []string{"cold0.csv", "cold1.csv"}, ids)
}

func TestDirLoaderLoadRun(t *testing.T) {
	dir := writeTestDataset(t)
	loader, err := NewDirLoader(dir, 3)
	require.NoError(t, err)

	run, err := loader.LoadRun("cold1.csv")
	require.NoError(t, err)

	want := Params{Size: 24, Beta: 2.5, K: 0.25, T: 2.5} // 2^3 sites * 3
	require.Equal(t, want, run.Params)
	require.Equal(t, 6, run.Series.Len())
	require.Equal(t, -3.0, run.Series.Column("E")[2])
}

func TestDirLoaderMeta(t *testing.T) {
	dir := writeTestDataset(t)
	loader, err := NewDirLoader(dir, 1)
	require.NoError(t, err)

	require.Equal(t, 6, loader.Meta().MCS)
	require.Equal(t, 2, loader.Meta().LatticeSize)
	require.Equal(t, 8, loader.SystemSize())
}

func TestDirLoaderBadRunIndex(t *testing.T) {
	dir := writeTestDataset(t)
	loader, err := NewDirLoader(dir, 1)
	require.NoError(t, err)

	// No digits in the filename: the sweep row cannot be resolved.
	_, err = loader.LoadRun("cold.csv")
	if !errors.Is(err, ErrMissingMetadata) {
		t.Errorf("expected ErrMissingMetadata for indexless filename, got %v", err)
	}

	// Index beyond the sweep table.
	_, err = loader.LoadRun("cold7.csv")
	if !errors.Is(err, ErrMissingMetadata) {
		t.Errorf("expected ErrMissingMetadata for out-of-range index, got %v", err)
	}
}

func TestDirLoaderMalformedData(t *testing.T) {
	dir := writeTestDataset(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cold1.csv"),
		[]byte("E,E2\n1.0,oops\n"), 0o644))

	loader, err := NewDirLoader(dir, 1)
	require.NoError(t, err)

	_, err = loader.LoadRun("cold1.csv")
	if !errors.Is(err, series.ErrMalformedInput) {
		t.Errorf("expected series.ErrMalformedInput, got %v", err)
	}
}

func TestNewDirLoaderNoMetadata(t *testing.T) {
	_, err := NewDirLoader(t.TempDir(), 1)
	if !errors.Is(err, ErrMissingMetadata) {
		t.Errorf("expected ErrMissingMetadata, got %v", err)
	}
}
