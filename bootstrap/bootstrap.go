package bootstrap

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/latticeproj/gomcboot/series"
)

// Observable is a bootstrap point estimate with its uncertainty.
type Observable struct {
	Mean float64
	Err  float64
}

// Estimates maps observable names to their bootstrap estimates. Every
// observable that appeared in any sampling block has an entry.
type Estimates map[string]Observable

// Estimator resamples a raw series and aggregates the repeated block
// estimates into a mean and standard deviation per observable.
type Estimator struct {
	BlockSize int
	Repeats   int
	sampler   *Sampler
}

// NewEstimator creates an estimator drawing blocks of blockSize records,
// repeated repeats times, from the given random source (nil for a
// time-seeded one).
func NewEstimator(blockSize, repeats int, rng *rand.Rand) *Estimator {
	return &Estimator{
		BlockSize: blockSize,
		Repeats:   repeats,
		sampler:   NewSampler(rng),
	}
}

// Estimate runs the block bootstrap over a thermalized series: Repeats
// times it draws a sampling block, derives C and X, and collects every
// block entry; the point estimate of each observable is the mean of its
// collected values and the uncertainty their population standard
// deviation.
//
// C and X are nonlinear functions of the primary moments, so naive error
// propagation on the full-series moments would not capture their sampling
// distribution; resampling sub-blocks approximates that distribution
// directly.
func (e *Estimator) Estimate(s *series.Series, systemSize int, beta float64) (Estimates, error) {
	if e.Repeats < 1 {
		return nil, fmt.Errorf("%w: %d bootstrap repeats requested", ErrInsufficientData, e.Repeats)
	}

	collected := make(map[string][]float64)
	for r := 0; r < e.Repeats; r++ {
		block, err := e.sampler.Sample(s, e.BlockSize)
		if err != nil {
			return nil, err
		}
		Derive(block, systemSize, beta)
		for name, v := range block {
			collected[name] = append(collected[name], v)
		}
	}

	est := make(Estimates, len(collected))
	for name, vals := range collected {
		est[name] = Observable{Mean: mean(vals), Err: stddev(vals)}
	}
	return est, nil
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stddev is the population standard deviation: a single repeat has zero
// spread by definition.
func stddev(vals []float64) float64 {
	m := mean(vals)
	sumSq := 0.0
	for _, v := range vals {
		diff := v - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(vals)))
}
