package core

// Decision classifies an algorithm checkpoint reported to an Observer.
type Decision uint8

const (
	// DecisionAccepted: an edge joined a spanning tree.
	DecisionAccepted Decision = iota + 1

	// DecisionRejected: an edge was discarded (would close a cycle, or a stale frontier entry).
	DecisionRejected

	// DecisionFinalized: a node's shortest distance became final.
	DecisionFinalized

	// DecisionRelaxed: a node's tentative distance improved through a finalized node.
	DecisionRelaxed
)

// String returns the lower-case name of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionAccepted:
		return "accepted"
	case DecisionRejected:
		return "rejected"
	case DecisionFinalized:
		return "finalized"
	case DecisionRelaxed:
		return "relaxed"
	default:
		return "unknown"
	}
}

// Step is one checkpoint of an algorithm run.
//
// For edge decisions (MST engines) From/To/Weight describe the edge and Total
// is the accumulated tree weight after the decision. For node decisions
// (shortest paths) To is the node, From its predecessor (NoNode for the
// source), Weight the connecting edge weight and Total the node's distance.
type Step[W Weight] struct {
	Index    int // 1-based, counts every step of the run
	Decision Decision
	From     int
	To       int
	Weight   W
	Total    W
}

// Observer receives steps synchronously from the running algorithm.
// It must not mutate the graph being processed.
type Observer[W Weight] func(Step[W])

// Tracer numbers steps and forwards them to an optional Observer.
// The zero value with a nil Observer is a no-op.
type Tracer[W Weight] struct {
	obs   Observer[W]
	index int
}

// NewTracer wraps obs; obs may be nil.
func NewTracer[W Weight](obs Observer[W]) *Tracer[W] {
	return &Tracer[W]{obs: obs}
}

// Emit assigns the next index to s and delivers it.
func (t *Tracer[W]) Emit(s Step[W]) {
	if t == nil || t.obs == nil {
		return
	}
	t.index++
	s.Index = t.index
	t.obs(s)
}
