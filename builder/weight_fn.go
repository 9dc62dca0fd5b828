// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// weight_fn.go - edge-weight distributions for generators.
//
// Contract:
//   - A WeightFn draws one weight per generated edge, in edge insertion order.
//   - Constructors validate their parameters and panic on misuse; the
//     generators themselves never panic.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphkit/core"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight = 1

// WeightFn returns the weight of the next generated edge. rng may be nil for
// deterministic distributions.
type WeightFn[W core.Weight] func(rng *rand.Rand) W

// ConstantWeightFn always returns w.
func ConstantWeightFn[W core.Weight](w W) WeightFn[W] {
	return func(*rand.Rand) W { return w }
}

// UniformWeightFn draws uniformly from [lo, hi]. Integer weights include hi;
// floating-point weights draw from the half-open [lo, hi).
//
// Panics if lo > hi. The returned function dereferences rng; prefer
// WithRandomWeights, which makes the generator check for an RNG up front.
func UniformWeightFn[W core.Weight](lo, hi W) WeightFn[W] {
	if lo > hi {
		panic(fmt.Sprintf("builder: UniformWeightFn(%v, %v): lo > hi", lo, hi))
	}
	if isFloat[W]() {
		return func(rng *rand.Rand) W {
			return lo + W(rng.Float64())*(hi-lo)
		}
	}

	return func(rng *rand.Rand) W {
		span := int64(hi-lo) + 1
		if span <= 0 { // full int64 range
			return lo + W(rng.Int63())
		}

		return lo + W(rng.Int63n(span))
	}
}

// isFloat reports whether W is a floating-point type: integer division
// truncates 1/2 to zero.
func isFloat[W core.Weight]() bool {
	one := W(1)

	return one/(one+one) != 0
}
