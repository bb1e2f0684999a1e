package dataset

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures the post-processing pipeline.
type Options struct {
	SamplingBlock  int   `yaml:"sampling_block"`  // records averaged per bootstrap block
	Repeat         int   `yaml:"repeat"`          // bootstrap repeats per run
	Thermalization int   `yaml:"thermalization"`  // leading sweeps dropped per run
	SizeMultiplier int   `yaml:"size_multiplier"` // observable sites per lattice site
	Seed           int64 `yaml:"seed"`            // 0 draws a fresh random seed
}

// DefaultOptions returns the conventional analysis parameters.
func DefaultOptions() *Options {
	return &Options{
		SamplingBlock:  50,
		Repeat:         200,
		Thermalization: 1000,
		SizeMultiplier: 1,
	}
}

// LoadOptions reads pipeline options from a YAML file. Fields omitted
// from the file keep their defaults.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions parses YAML option data over the defaults.
func ParseOptions(data []byte) (*Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

// rng builds the bootstrap random source. A fixed seed makes the whole
// aggregation bit-reproducible; seed 0 leaves seeding to the sampler.
func (o *Options) rng() *rand.Rand {
	if o.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(o.Seed))
}
