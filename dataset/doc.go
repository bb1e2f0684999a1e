// Package dataset discovers simulation runs, resolves their parameters
// from sweep metadata, and aggregates bootstrap estimates into run tables.
//
// A dataset directory holds one cold<index>.csv data file per simulated
// temperature/coupling point and a readme.txt sidecar whose first two
// lines name the sweep globals:
//
//	Number of MCS: 100000
//	Lattice Size: 16
//
// followed by a CSV sweep table with at least K and T columns; the
// integer embedded in each data filename selects its row.
//
// # Aggregating a dataset
//
//	loader, err := dataset.NewDirLoader("runs/ising_L16", 1)
//	opts := dataset.DefaultOptions()
//	opts.Seed = 42 // reproducible estimates
//	table, err := dataset.NewAggregator(loader, opts).Aggregate()
//
// The resulting table has one row per run, sorted by ascending
// temperature, with each observable flattened into a value column and a
// name+"err" column:
//
//	temps := table.Column("T")
//	heatCap := table.Column("C")
//	heatCapErr := table.Column("Cerr")
//	table.WriteCSV(os.Stdout)
//
// Aggregation is fail-fast: a run whose parameters cannot be resolved or
// whose series is too short aborts the whole call rather than silently
// dropping a temperature point.
//
// # Options files
//
// Pipeline parameters load from YAML, with omitted fields keeping their
// defaults:
//
//	sampling_block: 50
//	repeat: 200
//	thermalization: 1000
//	seed: 42
//
// # Custom loaders
//
// Any source of runs can drive the aggregator by implementing Loader;
// DirLoader is the conventional directory-of-CSVs implementation.
package dataset
