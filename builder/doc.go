// Package builder assembles deterministic location graphs for tests, examples
// and the routebench CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): create a core.Graph, resolve options,
//     apply constructors in order.
//     – Constructor: func(g, cfg) error, one topology per closure.
//   - Topologies:
//     – Cycle(n), Path(n), Complete(n): index-addressed shapes via cfg.idFn.
//     – Grid(rows, cols): "r,c" IDs with planar coordinates (X=c, Y=r).
//     – RandomSparse(n, p): Erdős–Rényi-like sampling, requires WithSeed/WithRand.
//     – Hyderabad(): the ten-location city dataset with coordinates.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn(prefix).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with context.
//   - Grid weights drawn from a WeightFn that never returns less than 1 keep
//     the Euclidean heuristic admissible.
package builder
