package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/latticeproj/gomcboot/bootstrap"
)

// Row is one processed run: its parameters plus the flattened bootstrap
// estimates. Each observable contributes a value column and an error
// column named value+"err".
type Row struct {
	Params Params
	Values map[string]float64
}

func newRow(p Params, est bootstrap.Estimates) Row {
	values := make(map[string]float64, 2*len(est))
	for name, obs := range est {
		values[name] = obs.Mean
		values[name+"err"] = obs.Err
	}
	return Row{Params: p, Values: values}
}

// Table is the final artifact of an aggregation: one row per run, sorted
// by ascending temperature. Plotting consumers read it through Column
// lookups by observable name and name+"err".
type Table struct {
	Rows []Row
}

// Len returns the number of runs in the table.
func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) sortByTemperature() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Params.T < t.Rows[j].Params.T
	})
}

// Columns returns the table's column names in a deterministic order: the
// parameter columns K and T first, then every observable in sorted order,
// each followed by its error column.
func (t *Table) Columns() []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range t.Rows {
		for name := range row.Values {
			if strings.HasSuffix(name, "err") {
				continue
			}
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	cols := []string{"K", "T"}
	for _, name := range names {
		cols = append(cols, name, name+"err")
	}
	return cols
}

// Column returns one column across all rows. K and T resolve to the run
// parameters; anything else is looked up in the flattened estimates, with
// NaN for rows that never produced the observable.
func (t *Table) Column(name string) []float64 {
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = rowValue(row, name)
	}
	return out
}

func rowValue(row Row, name string) float64 {
	switch name {
	case "K":
		return row.Params.K
	case "T":
		return row.Params.T
	}
	if v, ok := row.Values[name]; ok {
		return v
	}
	return math.NaN()
}

// WriteCSV renders the table for external plotting tools, one header row
// followed by one row per run.
func (t *Table) WriteCSV(w io.Writer) error {
	cols := t.Columns()

	writer := csv.NewWriter(w)
	if err := writer.Write(cols); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for _, row := range t.Rows {
		for i, name := range cols {
			record[i] = strconv.FormatFloat(rowValue(row, name), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
