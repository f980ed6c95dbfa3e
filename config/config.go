// Package config loads the training configuration of the counter-propagation commands
package config

import "os"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

import "github.com/neurlang/counterprop/datasets"
import "github.com/neurlang/counterprop/datasets/xor"
import "github.com/neurlang/counterprop/net/cpn"
import "github.com/neurlang/counterprop/trainer"

// ErrInvalid is returned for configurations which cannot be trained.
var ErrInvalid = errors.New("invalid configuration")

// Seeding strategies.
const (
	SeedExemplar = "exemplar" // one exemplar per unit, done by the instar trainer
	SeedKMeans   = "kmeans"   // kmeans centroids, corpus may be larger than the unit count
	SeedNone     = "none"     // keep current weights, e.g. resumed ones
)

// Activations.
const (
	ActivationDot      = "dot"
	ActivationDistance = "distance"
)

// Config is the training configuration.
type Config struct {
	InputCount       int         `yaml:"input_count"`
	InstarCount      int         `yaml:"instar_count"`
	LearningRate     float64     `yaml:"learning_rate"`
	RateDecay        float64     `yaml:"rate_decay"`
	Seed             string      `yaml:"seed"`
	KMeansIterations int         `yaml:"kmeans_iterations"`
	Activation       string      `yaml:"activation"`
	MaxIterations    int         `yaml:"max_iterations"`
	TargetError      float64     `yaml:"target_error"`
	Workers          int         `yaml:"workers"`
	Model            string      `yaml:"model"`
	Corpus           [][]float64 `yaml:"corpus"`
}

// Default returns the xor demonstration configuration.
func Default() Config {
	return Config{
		InputCount:       xor.Inputs,
		InstarCount:      xor.Classes,
		LearningRate:     0.5,
		Seed:             SeedExemplar,
		KMeansIterations: 100,
		Activation:       ActivationDot,
		MaxIterations:    100,
		TargetError:      0.01,
	}
}

// Load reads a yaml file over the defaults and validates the result. An empty path
// yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, c.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parse %s", path)
	}
	return c, c.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch {
	case c.InputCount <= 0 || c.InstarCount <= 0:
		return errors.Wrapf(ErrInvalid, "network must have inputs and instar units, got %dx%d", c.InputCount, c.InstarCount)
	case c.Seed != SeedExemplar && c.Seed != SeedKMeans && c.Seed != SeedNone:
		return errors.Wrapf(ErrInvalid, "unknown seed %q", c.Seed)
	case c.Activation != ActivationDot && c.Activation != ActivationDistance:
		return errors.Wrapf(ErrInvalid, "unknown activation %q", c.Activation)
	case c.MaxIterations < 0 || c.KMeansIterations < 0 || c.Workers < 0:
		return errors.Wrap(ErrInvalid, "iteration and worker counts must not be negative")
	case c.RateDecay < 0 || c.RateDecay > 1:
		return errors.Wrapf(ErrInvalid, "rate decay %v outside [0, 1]", c.RateDecay)
	}
	for i, in := range c.Corpus {
		if len(in) != c.InputCount {
			return errors.Wrapf(ErrInvalid, "corpus vector %d has %d values, want %d", i, len(in), c.InputCount)
		}
	}
	return nil
}

// Dataset returns the configured corpus, or the xor dataset when none is configured.
func (c Config) Dataset() datasets.Slice {
	if len(c.Corpus) == 0 {
		return xor.Dataset()
	}
	return datasets.FromInputs(c.Corpus)
}

// ActivationFunc returns the configured instar activation.
func (c Config) ActivationFunc() cpn.Activation {
	if c.Activation == ActivationDistance {
		return cpn.NegativeDistance
	}
	return cpn.DotProduct
}

// Strategy returns the host loop stopping strategy.
func (c Config) Strategy() trainer.Strategy {
	return trainer.Strategy{
		MaxIterations: c.MaxIterations,
		TargetError:   c.TargetError,
		RateDecay:     c.RateDecay,
	}
}
