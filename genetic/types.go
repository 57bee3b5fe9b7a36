// SPDX-License-Identifier: MIT
//
// Package genetic defines options, individuals, results and sentinel errors
// for the route-ordering genetic algorithm.
//
// Options (validated before any work starts):
//
//	– PopulationSize:  individuals per generation (≥ 2).
//	– Generations:     generation budget (≥ 0; 0 returns the best initial individual).
//	– EliteCount:      individuals copied unchanged into the next generation (≤ PopulationSize).
//	– MatingPoolSize:  parents are drawn from this many top-ranked individuals (≥ 2, clamped to PopulationSize).
//	– MutationRate:    per-child swap-mutation probability in [0,1].
//	– Epsilon:         fitness = 1/(distance+Epsilon); must be > 0.
//	– MaxInitAttempts: rejection-sampling budget per initial individual (≥ 1).
//	– Workers:         >1 evaluates fitness concurrently with that many goroutines.
//	– Seed:            RNG seed; 0 selects the fixed default seed.
//	– Source / Goal:   optional anchors; their edges to the first/last gene count.
//	– Seeds:           orderings injected into the initial population (repaired).
//	– Logger:          optional zerolog logger (nil ⇒ disabled).
//
// Errors (sentinel):
//
//	– ErrNilGraph             if the graph pointer is nil.
//	– ErrBadOptions           if Options fail validation.
//	– ErrDuplicateGene        if the interior lists a vertex twice or includes an anchor.
//	– ErrOptimizationCollapse if no valid individual can be built or kept.
//	– core.ErrVertexNotFound  (wrapped) for unknown interior or anchor vertices.
package genetic

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors.
var (
	ErrNilGraph             = errors.New("genetic: graph is nil")
	ErrBadOptions           = errors.New("genetic: invalid options")
	ErrDuplicateGene        = errors.New("genetic: duplicate interior vertex")
	ErrOptimizationCollapse = errors.New("genetic: optimization collapse")
)

// Default parameters.
const (
	DefaultPopulationSize  = 100
	DefaultGenerations     = 500
	DefaultEliteCount      = 10
	DefaultMatingPoolSize  = 50
	DefaultMutationRate    = 0.1
	DefaultEpsilon         = 1e-6
	DefaultMaxInitAttempts = 1000
)

// Options configures Optimize. Start from DefaultOptions and override fields.
type Options struct {
	PopulationSize  int     `validate:"gte=2"`
	Generations     int     `validate:"gte=0"`
	EliteCount      int     `validate:"gte=0,ltefield=PopulationSize"`
	MatingPoolSize  int     `validate:"gte=2"`
	MutationRate    float64 `validate:"gte=0,lte=1"`
	Epsilon         float64 `validate:"gt=0"`
	MaxInitAttempts int     `validate:"gte=1"`
	Workers         int     `validate:"gte=0"`
	Seed            int64

	Source string
	Goal   string
	Seeds  [][]string

	Logger *zerolog.Logger `validate:"-"`
}

// DefaultOptions returns the reference parameters: 100 individuals, 500
// generations, 10 elites, a top-50 mating pool, 0.1 mutation rate and
// ε = 1e-6, sequential evaluation and seed 1.
func DefaultOptions() Options {
	return Options{
		PopulationSize:  DefaultPopulationSize,
		Generations:     DefaultGenerations,
		EliteCount:      DefaultEliteCount,
		MatingPoolSize:  DefaultMatingPoolSize,
		MutationRate:    DefaultMutationRate,
		Epsilon:         DefaultEpsilon,
		MaxInitAttempts: DefaultMaxInitAttempts,
		Seed:            defaultRNGSeed,
	}
}

// Individual is one candidate ordering of the interior vertices.
type Individual struct {
	Genes    []string
	Fitness  float64 // 1/(Distance+ε), or 0 when invalid
	Distance float64 // anchored route distance, +Inf when invalid
}

// Valid reports whether the individual scored above the fitness floor.
func (ind Individual) Valid() bool { return ind.Fitness > 0 }

func (ind Individual) clone() Individual {
	genes := make([]string, len(ind.Genes))
	copy(genes, ind.Genes)
	ind.Genes = genes

	return ind
}

// Result is the outcome of Optimize.
type Result struct {
	// Best is the fittest valid individual observed.
	Best Individual

	// Route is Best.Genes with Source/Goal attached when set.
	Route []string

	// Generations counts completed generations.
	Generations int

	// History holds the best distance at the start of each generation,
	// followed by the final population's best.
	History []float64

	// Collapsed reports an early stop because the population fell to the
	// fitness floor; Best is then the last valid individual seen.
	Collapsed bool
}
