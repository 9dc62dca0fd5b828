// Package builder generates graphkit graphs for tests, benchmarks, examples
// and the `graphkit generate` command.
//
// Generators:
//
//	Path(n)                 - chain, n ≥ 1
//	Cycle(n)                - ring, n ≥ 3
//	Star(n)                 - hub 0 plus n-1 leaves, n ≥ 2
//	Complete(n)             - K_n, n ≥ 1
//	Grid(rows, cols)        - row-major lattice, rows, cols ≥ 1
//	RandomConnected(n, k)   - random spanning tree plus k chords, needs an RNG
//
// Options (functional, applied in order):
//
//	WithSeed / WithRand     - RNG for randomized topology and weights
//	WithWeightFn            - any WeightFn; ConstantWeightFn and UniformWeightFn ship here
//	WithRandomWeights       - UniformWeightFn(lo, hi) with an up-front RNG check
//	WithLabels              - node label scheme
//	WithDirected            - one-way edges in each generator's documented orientation
//
// Guarantees:
//
//   - Parameter errors are returned, never panicked, and wrap ErrTooFewVertices,
//     ErrTooManyEdges or ErrNeedRandSource.
//   - Option constructors panic on nil arguments.
//   - Edge insertion order is fixed per generator, so a seed reproduces the
//     same graph, edge ids and weights.
//
// Example:
//
//	g, err := builder.RandomConnected[int](100, 250,
//		builder.WithSeed[int](7),
//		builder.WithRandomWeights(1, 20))
package builder
