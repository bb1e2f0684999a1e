// Package stats provides autocorrelation diagnostics for Monte Carlo series.
package stats

import (
	"errors"
	"fmt"

	"github.com/latticeproj/gomcboot/series"
)

// ErrInvalidLag indicates an autocorrelation lag outside [0, len(series)).
var ErrInvalidLag = errors.New("stats: invalid lag")

// Autocorrelation computes the biased lag-t autocovariance of one raw
// observable:
//
//	norm*sum(x[i]*x[i+t]) - norm^2 * sum(x[i]) * sum(x[i+t])
//
// with norm = 1/(n-t), summing i over [0, n-t). At lag 0 this is the
// biased population variance of the column.
func Autocorrelation(s *series.Series, key string, lag int) (float64, error) {
	col := s.Column(key)
	if col == nil {
		return 0, fmt.Errorf("%w: unknown observable %q", series.ErrMalformedInput, key)
	}
	n := len(col)
	if lag < 0 || lag >= n {
		return 0, fmt.Errorf("%w: lag %d for %d records", ErrInvalidLag, lag, n)
	}

	var sum1, sum2, sum3 float64
	for i := 0; i < n-lag; i++ {
		sum1 += col[i] * col[i+lag]
		sum2 += col[i]
		sum3 += col[i+lag]
	}
	norm := 1.0 / float64(n-lag)
	return norm*sum1 - norm*norm*sum2*sum3, nil
}

// AutocorrelationFunction returns the autocovariance at lags 0..maxLag,
// normalized by the lag-0 value, so the result starts at exactly 1 and
// decays toward 0 for an equilibrated, well-sampled observable.
func AutocorrelationFunction(s *series.Series, key string, maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, fmt.Errorf("%w: max lag %d", ErrInvalidLag, maxLag)
	}
	c0, err := Autocorrelation(s, key, 0)
	if err != nil {
		return nil, err
	}
	if c0 == 0 {
		return nil, fmt.Errorf("stats: observable %q has zero variance", key)
	}
	if maxLag >= s.Len() {
		maxLag = s.Len() - 1
	}

	acf := make([]float64, maxLag+1)
	for lag := 0; lag <= maxLag; lag++ {
		c, err := Autocorrelation(s, key, lag)
		if err != nil {
			return nil, err
		}
		acf[lag] = c / c0
	}
	return acf, nil
}

// IntegratedTime estimates the integrated autocorrelation time of one
// observable over a fixed window:
//
//	tau = 1/2 + sum_{t=1..window} rho(t)
//
// Successive sweeps separated by much more than tau are effectively
// independent, so tau is the yardstick for judging whether a sampling
// block is large enough. This is a diagnostic only; it never feeds back
// into block-size selection.
func IntegratedTime(s *series.Series, key string, window int) (float64, error) {
	acf, err := AutocorrelationFunction(s, key, window)
	if err != nil {
		return 0, err
	}

	tau := 0.5
	for _, rho := range acf[1:] {
		tau += rho
	}
	return tau, nil
}
