// Package dataset discovers simulation runs, resolves their parameters
// from sweep metadata, and aggregates bootstrap estimates into run tables.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrMissingMetadata indicates run parameters that cannot be resolved
// from the dataset's sidecar metadata.
var ErrMissingMetadata = errors.New("dataset: missing metadata")

// SweepPoint is one row of the metadata sweep table: the coupling and
// temperature simulated for one numbered run.
type SweepPoint struct {
	K float64
	T float64
}

// Meta describes a dataset: global run information from the sidecar
// header plus the per-index sweep table.
type Meta struct {
	MCS         int // Monte Carlo sweeps recorded per run
	LatticeSize int // linear lattice extent L
	Sweep       []SweepPoint
}

var (
	mcsPattern     = regexp.MustCompile(`Number of MCS: ([0-9]+)`)
	latticePattern = regexp.MustCompile(`Lattice Size: ([0-9]+)`)
)

// LoadMeta reads a dataset's readme.txt sidecar.
func LoadMeta(path string) (*Meta, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingMetadata, err)
	}
	defer file.Close()

	m, err := ParseMeta(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseMeta parses the metadata sidecar: two leading lines matching
// "Number of MCS: <n>" and "Lattice Size: <n>", followed by a CSV table
// (header plus rows) with at least K and T columns, addressed by
// zero-based row index.
func ParseMeta(r io.Reader) (*Meta, error) {
	br := bufio.NewReader(r)

	mcs, err := matchHeaderLine(br, mcsPattern)
	if err != nil {
		return nil, err
	}
	lattice, err := matchHeaderLine(br, latticePattern)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(br)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: sweep table: %v", ErrMissingMetadata, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sweep table is empty", ErrMissingMetadata)
	}

	kIdx, tIdx := -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case "K":
			kIdx = i
		case "T":
			tIdx = i
		}
	}
	if kIdx < 0 || tIdx < 0 {
		return nil, fmt.Errorf("%w: sweep table needs K and T columns, got %v",
			ErrMissingMetadata, records[0])
	}

	sweep := make([]SweepPoint, 0, len(records)-1)
	for row, rec := range records[1:] {
		k, err := parseSweepField(rec, kIdx)
		if err != nil {
			return nil, fmt.Errorf("%w: sweep row %d, column K: %v", ErrMissingMetadata, row, err)
		}
		t, err := parseSweepField(rec, tIdx)
		if err != nil {
			return nil, fmt.Errorf("%w: sweep row %d, column T: %v", ErrMissingMetadata, row, err)
		}
		sweep = append(sweep, SweepPoint{K: k, T: t})
	}

	return &Meta{MCS: mcs, LatticeSize: lattice, Sweep: sweep}, nil
}

func matchHeaderLine(br *bufio.Reader, pattern *regexp.Regexp) (int, error) {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("%w: truncated header: %v", ErrMissingMetadata, err)
	}
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return 0, fmt.Errorf("%w: header line %q does not match %q",
			ErrMissingMetadata, strings.TrimSpace(line), pattern)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: header value %q: %v", ErrMissingMetadata, m[1], err)
	}
	return n, nil
}

func parseSweepField(rec []string, idx int) (float64, error) {
	if idx >= len(rec) {
		return 0, fmt.Errorf("row has %d fields, need index %d", len(rec), idx)
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
}
