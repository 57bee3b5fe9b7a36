// SPDX-License-Identifier: MIT
//
// Package config loads routebench settings from ROUTELAB_* environment
// variables, optionally seeded from a .env file, and validates them.
//
// Variables already present in the environment win over .env entries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/chaithanyamandadi/routelab/astar"
	"github.com/chaithanyamandadi/routelab/genetic"
)

// Prefix is prepended to every variable name.
const Prefix = "ROUTELAB_"

// Dataset names.
const (
	DatasetHyderabad = "hyderabad"
	DatasetGrid      = "grid"
	DatasetRandom    = "random"
)

// Heuristic names.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicHaversine = "haversine"
	HeuristicZero      = "zero"
)

// Coordinate kinds stored by a dataset.
const (
	coordsNone       = "none"
	coordsPlanar     = "planar"
	coordsGeographic = "geographic"
)

// datasetCoords records what each built-in dataset stores in core.Coord.
// Hyderabad and grid use planar map units; random graphs carry none.
var datasetCoords = map[string]string{
	DatasetHyderabad: coordsPlanar,
	DatasetGrid:      coordsPlanar,
	DatasetRandom:    coordsNone,
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full routebench configuration.
type Config struct {
	// Source and Goal default to the dataset's natural corners when empty.
	Source  string `env:"SOURCE"`
	Goal    string `env:"GOAL"`
	Dataset string `env:"DATASET" envDefault:"hyderabad" validate:"oneof=hyderabad grid random"`

	Grid struct {
		Rows    int     `env:"ROWS" envDefault:"5" validate:"gte=1"`
		Cols    int     `env:"COLS" envDefault:"5" validate:"gte=1"`
		Spacing float64 `env:"SPACING" envDefault:"1" validate:"gt=0"`
	} `envPrefix:"GRID_"`

	Random struct {
		Nodes int     `env:"NODES" envDefault:"20" validate:"gte=2"`
		P     float64 `env:"P" envDefault:"0.25" validate:"gte=0,lte=1"`
		Seed  int64   `env:"SEED" envDefault:"1"`
	} `envPrefix:"RANDOM_"`

	Heuristic     string `env:"HEURISTIC" envDefault:"euclidean" validate:"oneof=euclidean haversine zero"`
	K             int    `env:"K" envDefault:"5" validate:"gte=1"`
	MaxDeviations int    `env:"MAX_DEVIATIONS" envDefault:"0" validate:"gte=0"`
	Parallel      bool   `env:"PARALLEL" envDefault:"false"`

	GA struct {
		PopulationSize  int     `env:"POPULATION_SIZE" envDefault:"100" validate:"gte=2"`
		Generations     int     `env:"GENERATIONS" envDefault:"500" validate:"gte=0"`
		EliteCount      int     `env:"ELITE_COUNT" envDefault:"10" validate:"gte=0,ltefield=PopulationSize"`
		MatingPoolSize  int     `env:"MATING_POOL_SIZE" envDefault:"50" validate:"gte=2"`
		MutationRate    float64 `env:"MUTATION_RATE" envDefault:"0.1" validate:"gte=0,lte=1"`
		MaxInitAttempts int     `env:"MAX_INIT_ATTEMPTS" envDefault:"1000" validate:"gte=1"`
		Workers         int     `env:"WORKERS" envDefault:"0" validate:"gte=0"`
		Seed            int64   `env:"SEED" envDefault:"1"`
	} `envPrefix:"GA_"`

	Log struct {
		Level  string `env:"LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error disabled"`
		Format string `env:"FORMAT" envDefault:"json" validate:"oneof=json console"`
	} `envPrefix:"LOG_"`

	// MetricsAddr, when set, serves /metrics on that address.
	MetricsAddr string `env:"METRICS_ADDR" validate:"omitempty,hostname_port"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the given .env files (or ./.env when none are named; a
// missing ./.env is ignored), parses ROUTELAB_* variables and validates
// the result.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: dotenv: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		var agg env.AggregateError
		if errors.As(err, &agg) && len(agg.Errors) > 0 {
			// The first error is enough to point at the bad variable.
			return nil, fmt.Errorf("config: %w", agg.Errors[0])
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints and that the heuristic suits the
// dataset's coordinates. Haversine reads X, Y as latitude and longitude in
// degrees; on planar coordinates it overestimates and A* loses optimality.
func (c *Config) Validate() error {
	if err := c.validateFields(); err != nil {
		return err
	}
	if c.Heuristic == HeuristicHaversine && datasetCoords[c.Dataset] != coordsGeographic {
		return fmt.Errorf("%w: heuristic %q needs latitude/longitude coordinates, dataset %q has %s coordinates",
			ErrInvalidConfig, c.Heuristic, c.Dataset, datasetCoords[c.Dataset])
	}

	return nil
}

func (c *Config) validateFields() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// GeneticOptions maps the GA_* settings onto genetic.Options.
func (c *Config) GeneticOptions() genetic.Options {
	o := genetic.DefaultOptions()
	o.PopulationSize = c.GA.PopulationSize
	o.Generations = c.GA.Generations
	o.EliteCount = c.GA.EliteCount
	o.MatingPoolSize = c.GA.MatingPoolSize
	o.MutationRate = c.GA.MutationRate
	o.MaxInitAttempts = c.GA.MaxInitAttempts
	o.Workers = c.GA.Workers
	o.Seed = c.GA.Seed

	return o
}

// HeuristicFunc returns the configured A* heuristic. Haversine assumes
// kilometre edge weights and is only accepted by Validate for datasets with
// geographic coordinates.
func (c *Config) HeuristicFunc() astar.Heuristic {
	switch c.Heuristic {
	case HeuristicHaversine:
		return astar.Haversine(1)
	case HeuristicZero:
		return astar.Zero
	default:
		return astar.Euclidean
	}
}

// LogLevel parses Log.Level. Validate guarantees it is well-formed.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
