// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node catalog — point queries and copy-on-write node mutators.

package core

import "iter"

// HasNode reports whether key is present in the node mapping.
// Complexity: O(log n).
func (g *Graph[K, N, E]) HasNode(key K) bool {
	_, ok := g.nodes.Get(key)

	return ok
}

// Node returns the node stored under key and whether it exists.
// An absent key yields the zero N and false.
// Complexity: O(log n).
func (g *Graph[K, N, E]) Node(key K) (N, bool) {
	return g.nodes.Get(key)
}

// NodeOr returns the node stored under key, or def when key is absent.
// Complexity: O(log n).
func (g *Graph[K, N, E]) NodeOr(key K, def N) N {
	if n, ok := g.nodes.Get(key); ok {
		return n
	}

	return def
}

// SetNode returns a new Graph with node stored under key, inserting or
// overwriting. Always succeeds; the receiver is untouched.
// Complexity: O(log n) time, O(log n) fresh structure.
func (g *Graph[K, N, E]) SetNode(key K, node N) *Graph[K, N, E] {
	return g.with(g.nodes.Set(key, node), g.edges)
}

// DeleteNode returns a new Graph without the node entry for key.
// An absent key is a no-op returning the receiver.
//
// Only the node entry is removed: edges incident to key are retained, so an
// edge may afterwards reference an endpoint with no stored node. Adjacency
// queries then yield the zero node value for that endpoint, and traversals
// still count such an edge as a dependency. Callers wanting a clean cut
// Disconnect the incident edges first (Predecessors/Successors list them).
// Complexity: O(log n).
func (g *Graph[K, N, E]) DeleteNode(key K) *Graph[K, N, E] {
	if !g.HasNode(key) {
		return g
	}

	return g.with(g.nodes.Delete(key), g.edges)
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[K, N, E]) NodeCount() int {
	return g.nodes.Len()
}

// Nodes returns a lazy sequence over every (key, node) entry.
// Enumeration order is unspecified. Each range starts a fresh pass.
func (g *Graph[K, N, E]) Nodes() iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		for itr := g.nodes.Iterator(); !itr.Done(); {
			k, n, _ := itr.Next()
			if !yield(k, n) {
				return
			}
		}
	}
}
