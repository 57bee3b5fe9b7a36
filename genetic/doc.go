// Package genetic orders a fixed set of interior locations into a short,
// fully connected route with a generational genetic algorithm.
//
// What it does:
//
//   - Optimize(g, interior, opts) permutes interior; optional Source/Goal
//     anchors are attached for validity and distance but never moved.
//   - Fitness is 1/(distance+ε) for valid routes and 0 for any route with a
//     missing edge.
//   - The initial population is always valid: seeds are repaired, random
//     permutations are rejection-sampled under a budget, and a
//     Warnsdorff-biased constructive walk fills the rest. When nothing valid
//     exists the call returns ErrOptimizationCollapse.
//   - Order crossover and swap mutation never let an invalid route through:
//     a bad child falls back to its first parent, a bad swap is undone.
//   - With EliteCount ≥ 1 the best distance never increases across
//     generations (Result.History).
//
// Determinism:
//
//   - All randomness comes from Options.Seed. Equal inputs and seed give an
//     identical Result, with or without parallel fitness evaluation
//     (Options.Workers).
//
// Logging:
//
//   - Options.Logger (zerolog) receives per-generation best fitness at debug
//     level, plus warnings for dropped seeds and population collapse.
package genetic
