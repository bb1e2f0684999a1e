package bootstrap

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/latticeproj/gomcboot/series"
)

func testSeries(t *testing.T, columns map[string][]float64) *series.Series {
	t.Helper()
	keys := make([]string, 0, len(columns))
	for _, k := range []string{"E", "E2", "M", "M2"} {
		if _, ok := columns[k]; ok {
			keys = append(keys, k)
		}
	}
	s, err := series.New(keys, columns)
	if err != nil {
		t.Fatalf("series.New returned error: %v", err)
	}
	return s
}

func TestSampleFullBlock(t *testing.T) {
	// A block covering every record must reproduce the column means
	// regardless of the random source.
	s := testSeries(t, map[string][]float64{
		"E":  {1, 3, 5, 7},
		"E2": {1, 9, 25, 49},
	})

	sp := NewSampler(rand.New(rand.NewSource(1)))
	block, err := sp.Sample(s, 4)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}

	if block["E"] != 4 {
		t.Errorf("block E = %f, want 4", block["E"])
	}
	if block["E2"] != 21 {
		t.Errorf("block E2 = %f, want 21", block["E2"])
	}
}

func TestSampleOneValuePerKey(t *testing.T) {
	s := testSeries(t, map[string][]float64{
		"E":  {1, 2, 3, 4, 5, 6},
		"E2": {1, 4, 9, 16, 25, 36},
		"M":  {0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
		"M2": {0.01, 0.04, 0.09, 0.16, 0.25, 0.36},
	})

	sp := NewSampler(rand.New(rand.NewSource(2)))
	block, err := sp.Sample(s, 3)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}

	if len(block) != 4 {
		t.Errorf("block has %d entries, want 4", len(block))
	}
	for name, v := range block {
		if math.IsNaN(v) {
			t.Errorf("block %s is NaN", name)
		}
	}
}

func TestSampleDoesNotMutate(t *testing.T) {
	values := []float64{5, 4, 3, 2, 1}
	s := testSeries(t, map[string][]float64{"E": values})

	sp := NewSampler(rand.New(rand.NewSource(3)))
	for i := 0; i < 20; i++ {
		if _, err := sp.Sample(s, 3); err != nil {
			t.Fatalf("Sample returned error: %v", err)
		}
	}

	want := []float64{5, 4, 3, 2, 1}
	for i, v := range s.Column("E") {
		if v != want[i] {
			t.Fatalf("series mutated at %d: got %f, want %f", i, v, want[i])
		}
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	s := testSeries(t, map[string][]float64{
		"E": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})

	a, err := NewSampler(rand.New(rand.NewSource(11))).Sample(s, 4)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	b, err := NewSampler(rand.New(rand.NewSource(11))).Sample(s, 4)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}

	if a["E"] != b["E"] {
		t.Errorf("same seed gave different blocks: %f vs %f", a["E"], b["E"])
	}
}

func TestSampleBlockTooLarge(t *testing.T) {
	s := testSeries(t, map[string][]float64{"E": {1, 2, 3}})

	sp := NewSampler(rand.New(rand.NewSource(4)))
	if _, err := sp.Sample(s, 4); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
	if _, err := sp.Sample(s, 0); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for zero block, got %v", err)
	}
}

func TestNewSamplerNilSource(t *testing.T) {
	s := testSeries(t, map[string][]float64{"E": {1, 2, 3}})
	if _, err := NewSampler(nil).Sample(s, 2); err != nil {
		t.Errorf("nil-source sampler failed: %v", err)
	}
}
