// Package gomcboot provides bootstrap post-processing of Monte Carlo
// simulation output.
//
// GoMCBoot turns raw per-sweep time series of thermodynamic observables
// (energy, magnetization and their squares, recorded once per temperature
// or coupling point) into equilibrium estimates with statistical
// uncertainty, ready for plotting heat capacity and susceptibility as a
// function of temperature.
//
// # Features
//
//   - Block-bootstrap resampling with injectable random sources
//   - Derived observables via the fluctuation-dissipation relation
//     (heat capacity C, magnetic susceptibility X)
//   - Thermalization trimming and per-dataset aggregation into a
//     temperature-sorted results table
//   - Autocorrelation diagnostics for judging sampling-block adequacy
//   - CSV data loading and readme.txt sweep-metadata parsing
//
// # Quick Start
//
// Process a dataset directory of cold*.csv files with a readme.txt sidecar:
//
//	loader, _ := dataset.NewDirLoader("runs/ising_L16", 1)
//	table, _ := dataset.NewAggregator(loader, dataset.DefaultOptions()).Aggregate()
//	temps := table.Column("T")
//	heatCap := table.Column("C")
//	heatCapErr := table.Column("Cerr")
//
// Bootstrap a single run directly:
//
//	s, _ := series.LoadCSV("runs/ising_L16/cold3.csv")
//	est := bootstrap.NewEstimator(50, 200, nil)
//	observables, _ := est.Estimate(s.Trim(1000), 4096, beta)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - series: raw observable time-series containers and CSV loading
//   - bootstrap: block sampling, derived observables, bootstrap estimation
//   - stats: autocorrelation diagnostics
//   - dataset: run discovery, sweep metadata, aggregation into run tables
//
// # References
//
//   - Newman, M. E. J., & Barkema, G. T. (1999). Monte Carlo Methods in
//     Statistical Physics
//   - Efron, B., & Tibshirani, R. J. (1993). An Introduction to the Bootstrap
package gomcboot
