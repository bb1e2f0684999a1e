// Package bootstrap implements block-bootstrap estimation of Monte Carlo
// observables.
//
// Monte Carlo time series are autocorrelated, and the physically
// interesting quantities (heat capacity C, susceptibility X) are
// nonlinear functions of the raw moments. Both facts rule out simple
// error propagation on full-series averages. This package instead
// resamples: it repeatedly draws a random sampling block of sweeps,
// averages it, derives C and X from the block averages, and reads the
// point estimate and uncertainty off the distribution of block results.
//
// # Estimating a run
//
//	rng := rand.New(rand.NewSource(7)) // fixed seed for reproducibility
//	est := bootstrap.NewEstimator(50, 200, rng)
//	observables, err := est.Estimate(s, systemSize, beta)
//	c := observables["C"]
//	fmt.Printf("C = %.4f +- %.4f\n", c.Mean, c.Err)
//
// # Sampling blocks
//
// A block is a uniform random subset of distinct sweeps, reduced to one
// averaged value per observable. Blocks are drawn without replacement
// within one draw and with replacement across repeats:
//
//	sampler := bootstrap.NewSampler(rng)
//	block, err := sampler.Sample(s, 50)
//	bootstrap.Derive(block, systemSize, beta) // adds C and X in place
//
// # Derived observables
//
// Derive applies the fluctuation-dissipation relation:
//
//	C = beta^2 * N * (<E2> - <E>^2)
//	X = beta   * N * (<M2> - <M>^2)
//
// Runs that never recorded magnetization simply produce no X entry.
package bootstrap
