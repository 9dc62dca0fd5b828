package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Dijkstra computes shortest distances from source to every node of g.
// Directed edges are followed in their direction only; bidirectional edges both ways.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. source must be in [0, g.Order()) (core.ErrNodeOutOfRange).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Relaxation uses strict "<", so among equal-length paths the first one found
// keeps its predecessor. The frontier is a lazy-deletion min-heap: a node may
// be pushed several times, and entries popped after the node is finalized are
// skipped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[W core.Weight](g *core.Graph[W], source int, opts ...Option[W]) (*Result[W], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate source is a node of g
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %d not in [0, %d)", core.ErrNodeOutOfRange, source, g.Order())
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner[W]{
		g:       g,
		options: cfg,
		inf:     core.Infinity[W](),
		trace:   core.NewTracer(cfg.Observer),
	}
	r.init(source)
	r.process()

	return &Result[W]{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[W core.Weight] struct {
	g       *core.Graph[W] // read-only within Dijkstra
	options Options[W]
	inf     W
	dist    []W    // current best distance from source
	prev    []int  // predecessor on the best known path
	visited []bool // distance finalized
	pq      nodePQ[W]
	seq     int
	trace   *core.Tracer[W]
}

// init sets dist to +∞ everywhere except the source and seeds the heap.
func (r *runner[W]) init(source int) {
	n := r.g.Order()
	r.dist = make([]W, n)
	r.prev = make([]int, n)
	r.visited = make([]bool, n)
	for v := 0; v < n; v++ {
		r.dist[v] = r.inf
		r.prev[v] = core.NoNode
	}
	r.dist[source] = 0
	r.pq = make(nodePQ[W], 0, n)
	heap.Init(&r.pq)
	r.push(source, 0, 0)
}

// process is the core loop: pop the closest unfinalized node, finalize it and
// relax its outgoing edges until the heap is empty.
func (r *runner[W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[W])
		u := item.id

		// stale entry from an earlier, superseded push
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.trace.Emit(core.Step[W]{
			Decision: core.DecisionFinalized,
			From:     r.prev[u], To: u, Weight: item.via, Total: item.dist,
		})
		r.relax(u)
	}
}

// relax examines each edge leaving u and improves the distance of its
// unfinalized endpoints. Assumes r.dist[u] is final.
func (r *runner[W]) relax(u int) {
	neighbors, _ := r.g.Neighbors(u) // u is in range
	du := r.dist[u]
	for _, e := range neighbors {
		v, w := e.To, e.Weight
		if r.visited[v] {
			continue
		}
		// impassable edge
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// du + w would reach or pass the infinity sentinel
		if w >= r.inf-du {
			continue
		}
		cand := du + w
		if cand > r.options.MaxDistance {
			continue
		}
		if cand >= r.dist[v] {
			continue
		}
		r.dist[v] = cand
		r.prev[v] = u
		r.trace.Emit(core.Step[W]{
			Decision: core.DecisionRelaxed,
			From:     u, To: v, Weight: w, Total: cand,
		})
		r.push(v, cand, w)
	}
}

func (r *runner[W]) push(v int, d, via W) {
	heap.Push(&r.pq, nodeItem[W]{id: v, dist: d, via: via, seq: r.seq})
	r.seq++
}

// nodeItem represents a node and a tentative distance from the source.
type nodeItem[W core.Weight] struct {
	id   int
	dist W
	via  W   // weight of the edge that produced dist
	seq  int // push order, breaks distance ties
}

// nodePQ is a min-heap of nodeItem ordered by (dist, seq).
type nodePQ[W core.Weight] []nodeItem[W]

func (pq nodePQ[W]) Len() int { return len(pq) }

func (pq nodePQ[W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(nodeItem[W])) }

func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
