// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// options.go - functional options shared by every generator.
//
// Contract:
//   - Options are applied in order; later options override earlier ones.
//   - Option constructors panic on nil arguments (programmer error).
//   - Defaults: constant weight DefaultEdgeWeight, no RNG, no labels,
//     bidirectional edges.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphkit/core"
)

// Option customizes a generator run.
type Option[W core.Weight] func(*config[W])

type config[W core.Weight] struct {
	rng      *rand.Rand
	weightFn WeightFn[W]
	labelFn  func(int) string
	directed bool
	// needsRNG is set by options whose WeightFn draws randomness.
	needsRNG bool
}

func newConfig[W core.Weight](opts []Option[W]) config[W] {
	cfg := config[W]{weightFn: ConstantWeightFn(W(DefaultEdgeWeight))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed[W core.Weight](seed int64) Option[W] {
	return func(c *config[W]) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. Panics if r is nil.
func WithRand[W core.Weight](r *rand.Rand) Option[W] {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config[W]) { c.rng = r }
}

// WithWeightFn sets the edge-weight distribution. Panics if fn is nil.
// Randomized distributions require WithSeed or WithRand.
func WithWeightFn[W core.Weight](fn WeightFn[W]) Option[W] {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config[W]) { c.weightFn = fn }
}

// WithRandomWeights draws weights from UniformWeightFn(lo, hi) and marks the
// run as requiring an RNG.
func WithRandomWeights[W core.Weight](lo, hi W) Option[W] {
	fn := UniformWeightFn(lo, hi)

	return func(c *config[W]) {
		c.weightFn = fn
		c.needsRNG = true
	}
}

// WithLabels names node i with fn(i). Panics if fn is nil.
func WithLabels[W core.Weight](fn func(int) string) Option[W] {
	if fn == nil {
		panic("builder: WithLabels(nil)")
	}

	return func(c *config[W]) { c.labelFn = fn }
}

// WithDirected generates one-way edges in the orientation each generator
// documents (e.g. i → i+1 for Path).
func WithDirected[W core.Weight]() Option[W] {
	return func(c *config[W]) { c.directed = true }
}
