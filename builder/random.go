// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// random.go - RandomConnected(n, extra): a random spanning tree plus extra chords.
//
// Contract:
//   - n ≥ MinRandomNodes (else ErrTooFewVertices).
//   - 0 ≤ extra ≤ n(n-1)/2 - (n-1) (else ErrTooManyEdges).
//   - Requires WithSeed or WithRand (else ErrNeedRandSource).
//   - The result is connected, simple (no loops, no parallel edges) and has
//     exactly n-1+extra edges. Tree edges come first.
//
// Determinism:
//   - For a fixed seed the node permutation, tree attachments, chord picks
//     and drawn weights are identical across runs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// RandomConnected returns a connected simple graph on n nodes with n-1+extra edges.
// Directed orientation: tree edges point from the earlier-attached node to the
// later one; chords from the smaller id to the larger.
func RandomConnected[W core.Weight](n, extra int, opts ...Option[W]) (*core.Graph[W], error) {
	if n < MinRandomNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, MinRandomNodes, ErrTooFewVertices)
	}
	maxExtra := n*(n-1)/2 - (n - 1)
	if extra < 0 || extra > maxExtra {
		return nil, fmt.Errorf("%s: extra=%d not in [0,%d]: %w", methodRandomConnected, extra, maxExtra, ErrTooManyEdges)
	}
	cfg := newConfig(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
	}
	rng := cfg.rng

	return build(methodRandomConnected, n, cfg, func(add func(u, v int) error) error {
		type pair struct{ a, b int }
		used := make(map[pair]bool, n-1+extra)
		key := func(u, v int) pair {
			if u > v {
				u, v = v, u
			}

			return pair{u, v}
		}

		// attach perm[i] to a uniformly chosen earlier node
		perm := rng.Perm(n)
		for i := 1; i < n; i++ {
			u, v := perm[rng.Intn(i)], perm[i]
			used[key(u, v)] = true
			if err := add(u, v); err != nil {
				return err
			}
		}

		// sample chords; switch to enumeration once the graph gets dense
		for extra > 0 {
			if len(used)*2 < n*(n-1)/2 {
				u, v := rng.Intn(n), rng.Intn(n)
				if u == v || used[key(u, v)] {
					continue
				}
				k := key(u, v)
				used[k] = true
				if err := add(k.a, k.b); err != nil {
					return err
				}
				extra--
				continue
			}

			free := make([]pair, 0, n*(n-1)/2-len(used))
			for a := 0; a < n; a++ {
				for b := a + 1; b < n; b++ {
					if !used[pair{a, b}] {
						free = append(free, pair{a, b})
					}
				}
			}
			rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
			for _, p := range free[:extra] {
				if err := add(p.a, p.b); err != nil {
					return err
				}
			}
			extra = 0
		}

		return nil
	})
}
