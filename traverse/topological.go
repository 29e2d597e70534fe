package traverse

import (
	"iter"

	"github.com/katalvlaran/pgraph/core"
)

// TopoSort returns a lazy topological ordering of g: a (key, node) sequence
// in which every edge's source is emitted strictly before its target.
//
// The walk is seeded with g.Sources() and expands forward. Fully consumed,
// the sequence has exactly g.NodeCount() entries iff g is acyclic; a node
// inside (or only reachable through) a cycle never becomes ready and is
// silently omitted, so a short sequence is the cycle signal (see HasCycles).
// Order among simultaneously-ready nodes is unspecified.
//
// Each range starts a fresh traversal of the same Graph version.
func TopoSort[K comparable, N, E any](g *core.Graph[K, N, E]) iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		// Seed with every source node (no incoming edges). Isolated nodes
		// are sources too, so they are always emitted.
		seeds := make([]K, 0)
		for k := range g.Sources() {
			seeds = append(seeds, k)
		}
		for k, n := range Walk(g, Forward, seeds...) {
			if !yield(k, n) {
				return
			}
		}
	}
}

// HasCycles reports whether g contains a directed cycle, by draining
// TopoSort and comparing its length against the node count. Forces a full
// O(N + E) traversal.
//
// An edge retained after DeleteNode keeps its target unready the same way a
// cycle would, so a graph with dangling edges also reports true.
func HasCycles[K comparable, N, E any](g *core.Graph[K, N, E]) bool {
	emitted := 0
	for range TopoSort(g) {
		emitted++
	}

	return emitted != g.NodeCount()
}
