// Package stats provides autocorrelation diagnostics for Monte Carlo series.
//
// Successive Monte Carlo sweeps are correlated, so the effective number of
// independent observations in a run is smaller than its length. These
// diagnostics quantify that correlation; use them to judge whether the
// thermalization cutoff and the bootstrap sampling block are adequate.
//
// # Autocovariance
//
// The raw, unnormalized lag-t autocovariance of one observable:
//
//	chi, err := stats.Autocorrelation(s, "E", 10)
//
// At lag 0 this equals the biased population variance of the column.
//
// # Normalized ACF and integrated time
//
//	acf, err := stats.AutocorrelationFunction(s, "E", 50) // acf[0] == 1
//	tau, err := stats.IntegratedTime(s, "E", 50)
//
// A sampling block much longer than tau averages over effectively
// independent data. The diagnostics are read-only; nothing here feeds
// back into the estimation pipeline.
package stats
