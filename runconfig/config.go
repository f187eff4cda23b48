package runconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilewave/heuristic"
	"github.com/katalvlaran/tilewave/propagator"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("runconfig: invalid configuration")

// NoiseSample describes a generated terrain sample.
type NoiseSample struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Levels int   `yaml:"levels"`
	Seed   int64 `yaml:"seed"`
}

// Config is one generation run. Exactly one of Sample, SampleFile and Noise
// selects the training sample.
type Config struct {
	// Sample is an inline text sample, one row per line.
	Sample string `yaml:"sample,omitempty"`
	// SampleFile is the path of a text sample.
	SampleFile string `yaml:"sample_file,omitempty"`
	// Noise generates a terrain sample instead.
	Noise *NoiseSample `yaml:"noise,omitempty"`

	PatternSize int  `yaml:"pattern_size"`
	Periodic    bool `yaml:"periodic"`
	Symmetry    bool `yaml:"symmetry"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed of the first attempt; later attempts derive theirs from it.
	Seed       int64  `yaml:"seed"`
	Propagator string `yaml:"propagator"`
	Heuristic  string `yaml:"heuristic"`
	Attempts   int    `yaml:"attempts"`
}

// Default returns the demo run: no sample source (callers fall back to the
// built-in box), 3×3 periodic patterns, a 50×25 output, AC4 with optimized
// entropy, up to 10 attempts.
func Default() Config {
	return Config{
		PatternSize: 3,
		Periodic:    true,
		Width:       50,
		Height:      25,
		Seed:        1,
		Propagator:  "ac4",
		Heuristic:   "optimized",
		Attempts:    10,
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("runconfig: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes data over Default and validates the result. An empty
// document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and algorithm names.
func (c Config) Validate() error {
	sources := 0
	for _, set := range []bool{c.Sample != "", c.SampleFile != "", c.Noise != nil} {
		if set {
			sources++
		}
	}
	switch {
	case sources > 1:
		return fmt.Errorf("%w: sample, sample_file and noise are mutually exclusive", ErrInvalidConfig)
	case c.PatternSize < 2:
		return fmt.Errorf("%w: pattern_size must be at least 2, got %d", ErrInvalidConfig, c.PatternSize)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: output size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Attempts < 1:
		return fmt.Errorf("%w: attempts must be at least 1, got %d", ErrInvalidConfig, c.Attempts)
	}
	if n := c.Noise; n != nil && (n.Width < 1 || n.Height < 1 || n.Levels < 2) {
		return fmt.Errorf("%w: noise needs a positive size and at least 2 levels", ErrInvalidConfig)
	}
	if _, err := propagator.ByName(c.Propagator); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := heuristic.ByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
