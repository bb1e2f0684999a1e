// Package bootstrap implements block-bootstrap estimation of Monte Carlo
// observables.
package bootstrap

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/latticeproj/gomcboot/series"
)

// ErrInsufficientData indicates a series too short for the requested
// sampling block, or a nonsensical repeat count.
var ErrInsufficientData = errors.New("bootstrap: insufficient data")

// Block holds one averaged observation per observable, produced by
// averaging a randomly drawn subset of recorded sweeps.
type Block map[string]float64

// Sampler draws random sampling blocks from a raw series.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler using the given random source. Passing a
// seeded source makes every draw reproducible; a nil rng falls back to a
// time-seeded source.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// Sample draws blockSize distinct records uniformly at random and reduces
// them to per-observable arithmetic means. Indices are distinct within one
// call; successive calls draw fresh subsets, so across repeats the series
// is sampled with replacement. The input series is never modified.
func (sp *Sampler) Sample(s *series.Series, blockSize int) (Block, error) {
	n := s.Len()
	if blockSize < 1 || blockSize > n {
		return nil, fmt.Errorf("%w: sampling block of %d from %d records",
			ErrInsufficientData, blockSize, n)
	}

	indices := sp.rng.Perm(n)[:blockSize]

	block := make(Block, len(s.Keys))
	for _, key := range s.Keys {
		col := s.Column(key)
		sum := 0.0
		for _, i := range indices {
			sum += col[i]
		}
		block[key] = sum / float64(blockSize)
	}
	return block, nil
}
