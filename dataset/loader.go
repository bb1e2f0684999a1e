package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/latticeproj/gomcboot/series"
)

// Params holds the immutable parameters of one run.
type Params struct {
	Size int     // number of sites entering the fluctuation relations
	Beta float64 // inverse temperature
	K    float64 // coupling
	T    float64 // temperature
}

// Run pairs one run's parameters with its raw series.
type Run struct {
	Params Params
	Series *series.Series
}

// Loader supplies runs to the aggregator. Implementations own all
// file-format and naming-convention knowledge; the aggregation core only
// sees opaque identifiers and loaded runs.
type Loader interface {
	ListRuns() ([]string, error)
	LoadRun(id string) (Run, error)
}

var (
	dataFilePattern = regexp.MustCompile(`^cold.*\.csv$`)
	runIndexPattern = regexp.MustCompile(`[0-9]+`)
)

// DirLoader implements Loader over a dataset directory: cold<index>.csv
// data files next to a readme.txt metadata sidecar. The first integer
// embedded in each filename indexes the metadata sweep table.
type DirLoader struct {
	Dir            string
	SizeMultiplier int // observable sites per lattice site (1 for Ising, 3 for LGT)

	meta *Meta
}

// NewDirLoader opens a dataset directory and parses its metadata sidecar.
func NewDirLoader(dir string, sizeMultiplier int) (*DirLoader, error) {
	if sizeMultiplier < 1 {
		sizeMultiplier = 1
	}
	meta, err := LoadMeta(filepath.Join(dir, "readme.txt"))
	if err != nil {
		return nil, err
	}
	return &DirLoader{Dir: dir, SizeMultiplier: sizeMultiplier, meta: meta}, nil
}

// Meta returns the parsed dataset metadata.
func (l *DirLoader) Meta() *Meta {
	return l.meta
}

// SystemSize returns the number of sites, L^3 times the multiplier.
func (l *DirLoader) SystemSize() int {
	ls := l.meta.LatticeSize
	return ls * ls * ls * l.SizeMultiplier
}

// ListRuns returns the dataset's data filenames in lexical order.
func (l *DirLoader) ListRuns() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !dataFilePattern.MatchString(entry.Name()) {
			continue
		}
		ids = append(ids, entry.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadRun loads one run: parameters resolved from the sweep table row
// named by the filename's embedded index, series from the CSV contents.
func (l *DirLoader) LoadRun(id string) (Run, error) {
	digits := runIndexPattern.FindString(id)
	if digits == "" {
		return Run{}, fmt.Errorf("%w: no run index in filename %q", ErrMissingMetadata, id)
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return Run{}, fmt.Errorf("%w: run index %q: %v", ErrMissingMetadata, digits, err)
	}
	if index >= len(l.meta.Sweep) {
		return Run{}, fmt.Errorf("%w: run index %d outside sweep table of %d rows",
			ErrMissingMetadata, index, len(l.meta.Sweep))
	}
	point := l.meta.Sweep[index]

	s, err := series.LoadCSV(filepath.Join(l.Dir, id))
	if err != nil {
		return Run{}, err
	}

	return Run{
		Params: Params{
			Size: l.SystemSize(),
			Beta: point.T, // k_B = 1
			K:    point.K,
			T:    point.T,
		},
		Series: s,
	}, nil
}
