package dijkstra

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// Destination pairs a node with its shortest distance from the source.
type Destination[W core.Weight] struct {
	Node int
	Dist W
}

// Destinations lists every node except the source, nearest first.
// Ties keep ascending node order; unreachable nodes come last.
func Destinations[W core.Weight](res *Result[W]) []Destination[W] {
	if res == nil {
		return nil
	}
	out := make([]Destination[W], 0, len(res.Dist))
	for v, d := range res.Dist {
		if v == res.Source {
			continue
		}
		out = append(out, Destination[W]{Node: v, Dist: d})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Dist < out[j].Dist
	})

	return out
}

// Summary aggregates a shortest-path tree from the source's point of view.
// Nearest and Farthest are core.NoNode when nothing besides the source is reachable.
type Summary[W core.Weight] struct {
	Source        int
	Reachable     int // destinations with a finite distance, source excluded
	Unreachable   int
	Nearest       int
	NearestDist   W
	Farthest      int
	FarthestDist  W
	TotalDistance W // sum of finite distances, i.e. the cost of serving each destination by a separate trip
}

// Summarize computes a Summary in O(V log V).
func Summarize[W core.Weight](res *Result[W]) Summary[W] {
	s := Summary[W]{Nearest: core.NoNode, Farthest: core.NoNode}
	if res == nil {
		return s
	}
	s.Source = res.Source
	for _, d := range Destinations(res) {
		if core.IsInf(d.Dist) {
			s.Unreachable++
			continue
		}
		if s.Reachable == 0 {
			s.Nearest, s.NearestDist = d.Node, d.Dist
		}
		s.Reachable++
		s.Farthest, s.FarthestDist = d.Node, d.Dist
		s.TotalDistance += d.Dist
	}

	return s
}
