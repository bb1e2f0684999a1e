package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV loads one run's raw time series from a CSV file. The header row
// names the raw observables (surrounding whitespace is trimmed), and each
// data row holds one recorded sweep.
func LoadCSV(filename string) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// LoadCSVFromReader loads a raw time series from an io.Reader.
func LoadCSVFromReader(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	keys := make([]string, len(header))
	columns := make(map[string][]float64, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: blank column name at index %d", ErrMalformedInput, i)
		}
		keys[i] = name
		columns[name] = nil
	}
	if len(columns) != len(keys) {
		return nil, fmt.Errorf("%w: duplicate column names", ErrMalformedInput)
	}

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// encoding/csv already rejects ragged rows via FieldsPerRecord.
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		row++
		for i, field := range record {
			val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %q: %v",
					ErrMalformedInput, row, keys[i], err)
			}
			columns[keys[i]] = append(columns[keys[i]], val)
		}
	}

	return New(keys, columns)
}
