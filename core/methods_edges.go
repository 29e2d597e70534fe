// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge catalog — point queries and copy-on-write edge mutators.

package core

import "iter"

// HasEdge reports whether the directed edge (src, tgt) exists.
// Complexity: O(log n).
func (g *Graph[K, N, E]) HasEdge(src, tgt K) bool {
	_, ok := g.edges.Get(EdgeKey[K]{Source: src, Target: tgt})

	return ok
}

// Edge returns the value of the directed edge (src, tgt) and whether it
// exists. An absent edge yields the zero E and false.
// Complexity: O(log n).
func (g *Graph[K, N, E]) Edge(src, tgt K) (E, bool) {
	return g.edges.Get(EdgeKey[K]{Source: src, Target: tgt})
}

// EdgeOr returns the value of the directed edge (src, tgt), or def when the
// edge is absent. Complexity: O(log n).
func (g *Graph[K, N, E]) EdgeOr(src, tgt K, def E) E {
	if e, ok := g.edges.Get(EdgeKey[K]{Source: src, Target: tgt}); ok {
		return e
	}

	return def
}

// Connect returns a new Graph with edge stored under (src, tgt), inserting
// or overwriting, iff both src and tgt are present nodes. If either endpoint
// is absent the receiver is returned unchanged — a no-op, not an error.
// A second edge between the same ordered pair overwrites the first.
// Complexity: O(log n).
func (g *Graph[K, N, E]) Connect(src, tgt K, edge E) *Graph[K, N, E] {
	if !g.HasNode(src) || !g.HasNode(tgt) {
		return g
	}

	return g.with(g.nodes, g.edges.Set(EdgeKey[K]{Source: src, Target: tgt}, edge))
}

// Disconnect returns a new Graph without the directed edge (src, tgt).
// If either endpoint is absent as a node the receiver is returned unchanged,
// mirroring Connect's tolerance; an absent edge between present endpoints is
// likewise a no-op.
// Complexity: O(log n).
func (g *Graph[K, N, E]) Disconnect(src, tgt K) *Graph[K, N, E] {
	if !g.HasNode(src) || !g.HasNode(tgt) {
		return g
	}
	if !g.HasEdge(src, tgt) {
		return g
	}

	return g.with(g.nodes, g.edges.Delete(EdgeKey[K]{Source: src, Target: tgt}))
}

// ConnectAll returns a new Graph holding an edge for every (src, tgt) pair
// in the cross product of srcs and tgts, after filtering each slice to keys
// that are present nodes. Each edge's value is valueFn(src, tgt); existing
// edges between a pair are overwritten. Equivalent to repeated Connect,
// batched into one derived version.
// Complexity: O(S·T·log n) for S, T surviving source/target keys.
func (g *Graph[K, N, E]) ConnectAll(srcs, tgts []K, valueFn func(src, tgt K) E) *Graph[K, N, E] {
	// 1. Filter both endpoint slices to present nodes.
	liveSrcs := g.presentKeys(srcs)
	liveTgts := g.presentKeys(tgts)
	if len(liveSrcs) == 0 || len(liveTgts) == 0 {
		return g
	}

	// 2. Fold the cross product into the edge mapping.
	edges := g.edges
	for _, s := range liveSrcs {
		for _, t := range liveTgts {
			edges = edges.Set(EdgeKey[K]{Source: s, Target: t}, valueFn(s, t))
		}
	}

	return g.with(g.nodes, edges)
}

// presentKeys returns the subsequence of keys that are present nodes.
func (g *Graph[K, N, E]) presentKeys(keys []K) []K {
	out := make([]K, 0, len(keys))
	for _, k := range keys {
		if g.HasNode(k) {
			out = append(out, k)
		}
	}

	return out
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph[K, N, E]) EdgeCount() int {
	return g.edges.Len()
}

// Edges returns a lazy sequence over every (EdgeKey, edge) entry.
// Enumeration order is unspecified. Each range starts a fresh pass.
func (g *Graph[K, N, E]) Edges() iter.Seq2[EdgeKey[K], E] {
	return func(yield func(EdgeKey[K], E) bool) {
		for itr := g.edges.Iterator(); !itr.Done(); {
			k, e, _ := itr.Next()
			if !yield(k, e) {
				return
			}
		}
	}
}
