// Package series provides raw Monte Carlo observable time-series containers.
package series

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates raw series data without the expected
// structure, such as records with inconsistent columns or values that do
// not parse as numbers.
var ErrMalformedInput = errors.New("series: malformed input")

// Series holds one run's raw time series: one column per recorded
// observable ("E", "E2", "M", "M2", ...), one entry per recorded sweep.
// All columns have the same length. A Series is immutable once loaded;
// transformations return fresh copies.
type Series struct {
	Keys    []string
	Columns map[string][]float64
}

// New creates a series from named columns. Every key must have a column
// and all columns must share the same length.
func New(keys []string, columns map[string][]float64) (*Series, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no observable columns", ErrMalformedInput)
	}
	n := -1
	for _, key := range keys {
		col, ok := columns[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedInput, key)
		}
		if n == -1 {
			n = len(col)
		}
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %q has %d records, want %d",
				ErrMalformedInput, key, len(col), n)
		}
	}
	return &Series{Keys: keys, Columns: columns}, nil
}

// Len returns the number of recorded sweeps.
func (s *Series) Len() int {
	if len(s.Keys) == 0 {
		return 0
	}
	return len(s.Columns[s.Keys[0]])
}

// HasKey reports whether the series records the named observable.
func (s *Series) HasKey(key string) bool {
	_, ok := s.Columns[key]
	return ok
}

// Column returns the values recorded for one observable, or nil if the
// observable is unknown. The returned slice is the series' own storage
// and must not be modified.
func (s *Series) Column(key string) []float64 {
	return s.Columns[key]
}

// Trim returns a copy of the series with the first n records dropped.
// This is the thermalization cutoff: data taken before the system
// equilibrated must not enter the estimates. Trimming more records than
// exist yields an empty series.
func (s *Series) Trim(n int) *Series {
	if n < 0 {
		n = 0
	}
	if n > s.Len() {
		n = s.Len()
	}

	columns := make(map[string][]float64, len(s.Keys))
	for _, key := range s.Keys {
		col := make([]float64, s.Len()-n)
		copy(col, s.Columns[key][n:])
		columns[key] = col
	}

	keys := make([]string, len(s.Keys))
	copy(keys, s.Keys)

	return &Series{Keys: keys, Columns: columns}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	return s.Trim(0)
}
