package dataset

import (
	"fmt"

	"github.com/latticeproj/gomcboot/bootstrap"
)

// Aggregator runs the bootstrap estimator over every run of a dataset
// and assembles the per-temperature results table.
type Aggregator struct {
	loader Loader
	opts   *Options
}

// NewAggregator creates an aggregator over the given run source. A nil
// opts uses DefaultOptions.
func NewAggregator(loader Loader, opts *Options) *Aggregator {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Aggregator{loader: loader, opts: opts}
}

// Aggregate processes every run the loader lists, strictly in sequence,
// and returns the table sorted by ascending temperature. Any failing run
// aborts the whole aggregation: silently dropping a temperature point
// would corrupt the plotted series without warning, so the call either
// returns a complete, consistent table or an error.
func (a *Aggregator) Aggregate() (*Table, error) {
	ids, err := a.loader.ListRuns()
	if err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(ids))
	for _, id := range ids {
		run, err := a.loader.LoadRun(id)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", id, err)
		}
		runs = append(runs, run)
	}
	return a.AggregateRuns(runs)
}

// AggregateRuns bootstraps a set of already-loaded runs. Each run's series
// is trimmed by the thermalization cutoff before estimation. An empty run
// set yields an empty table, not an error.
func (a *Aggregator) AggregateRuns(runs []Run) (*Table, error) {
	estimator := bootstrap.NewEstimator(a.opts.SamplingBlock, a.opts.Repeat, a.opts.rng())

	table := &Table{}
	for _, run := range runs {
		trimmed := run.Series.Trim(a.opts.Thermalization)
		estimates, err := estimator.Estimate(trimmed, run.Params.Size, run.Params.Beta)
		if err != nil {
			return nil, fmt.Errorf("run at T=%g: %w", run.Params.T, err)
		}
		table.Rows = append(table.Rows, newRow(run.Params, estimates))
	}

	table.sortByTemperature()
	return table, nil
}
