// Package disjointset implements a disjoint-set forest (union-find) over the
// dense node range [0, n), with path compression and union by rank.
//
// The forest detects would-be cycles for sort-and-union MST construction: a
// Union between two nodes that already share a root returns false and leaves
// the structure untouched.
//
// Complexity: Find and Union run in amortized O(α(n)) time, where α is the
// inverse Ackermann function. Memory: O(n).
package disjointset

// Forest is a partition of [0, n) into disjoint groups.
// A Forest is not safe for concurrent use; each caller owns its own instance.
type Forest struct {
	parent []int
	rank   []int
	count  int // number of groups (roots)
}

// New returns a forest of n singleton groups: every node is its own root with rank 0.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// Len returns the number of elements n.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of disjoint groups.
func (f *Forest) Count() int { return f.count }

// Find returns the canonical root of x's group.
//
// Two passes: walk up to the root, then rewrite every node on the walked path
// to point directly at it. Out-of-range x panics.
func (f *Forest) Find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root
}

// Union merges the groups of x and y.
//
// It returns false, changing nothing, when x and y already share a root.
// Otherwise the lower-rank root is attached under the higher-rank one; on equal
// ranks y's root goes under x's root and x's root rank grows by one.
func (f *Forest) Union(x, y int) bool {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
	default:
		f.parent[ry] = rx
		f.rank[rx]++
	}
	f.count--

	return true
}

// Connected reports whether x and y belong to the same group.
func (f *Forest) Connected(x, y int) bool {
	return f.Find(x) == f.Find(y)
}

// Groups returns every group as an ascending list of members. Groups are
// ordered by their smallest member.
// Complexity: O(n·α(n)).
func (f *Forest) Groups() [][]int {
	index := make(map[int]int, f.count)
	groups := make([][]int, 0, f.count)
	for x := range f.parent {
		root := f.Find(x)
		i, ok := index[root]
		if !ok {
			i = len(groups)
			index[root] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], x)
	}

	return groups
}
