// Package series provides raw Monte Carlo observable time-series containers.
//
// A Series holds the per-sweep record of one simulation run: one column
// per raw observable (conventionally "E", "E2", "M", "M2"), one entry per
// recorded sweep. All columns within a run share the same length;
// violations surface as ErrMalformedInput.
//
// # Loading from CSV
//
// Raw data files are delimited text with a header row of observable names
// (surrounding whitespace is tolerated and trimmed):
//
//	s, err := series.LoadCSV("cold3.csv")
//
// # Thermalization
//
// Sweeps recorded before the system equilibrated must be discarded before
// any estimation:
//
//	equilibrated := s.Trim(1000) // drop the first 1000 sweeps
//
// # Access
//
//	n := s.Len()              // recorded sweeps
//	energies := s.Column("E") // one observable's values
package series
