// Package dfs defines types and options for depth-first search traversal,
// including cancellation, a pre-order hook and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// Visitation states of a node.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // node and all its descendants explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; checked once per discovered node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(node int) error

	// FullTraversal runs DFS from every unvisited node in ascending order,
	// covering disconnected components. The start argument is then ignored.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hook and
// single-source traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFullTraversal enables forest traversal over all nodes.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result collects a DFS run.
//   - Order: post-order (a node appears after all its descendants).
//   - Depth: tree depth, -1 for nodes never visited.
//   - Parent: DFS-tree parent, core.NoNode for roots and unvisited nodes.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}
