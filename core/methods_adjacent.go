// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries — lazy edge-scan sequences over one Graph version.

package core

import "iter"

// Predecessors returns a lazy sequence of (key, node) for every edge whose
// target is key, yielding each edge's source. A source whose node entry was
// deleted yields the zero N. Order is unspecified.
// Complexity: O(E) scan per full consumption, O(log n) per node lookup.
func (g *Graph[K, N, E]) Predecessors(key K) iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		for itr := g.edges.Iterator(); !itr.Done(); {
			ek, _, _ := itr.Next()
			if !g.hasher.Equal(ek.Target, key) {
				continue
			}
			node, _ := g.nodes.Get(ek.Source)
			if !yield(ek.Source, node) {
				return
			}
		}
	}
}

// Successors returns a lazy sequence of (key, node) for every edge whose
// source is key, yielding each edge's target. Symmetric to Predecessors.
func (g *Graph[K, N, E]) Successors(key K) iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		for itr := g.edges.Iterator(); !itr.Done(); {
			ek, _, _ := itr.Next()
			if !g.hasher.Equal(ek.Source, key) {
				continue
			}
			node, _ := g.nodes.Get(ek.Target)
			if !yield(ek.Target, node) {
				return
			}
		}
	}
}

// Neighbors returns Predecessors(key) followed by Successors(key) with
// duplicates removed: a node adjacent in both directions appears once, on
// the predecessor side. Complexity: O(E) per full consumption.
func (g *Graph[K, N, E]) Neighbors(key K) iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		seen := make(map[K]struct{})
		for k, n := range g.Predecessors(key) {
			seen[k] = struct{}{}
			if !yield(k, n) {
				return
			}
		}
		for k, n := range g.Successors(key) {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(k, n) {
				return
			}
		}
	}
}

// Sources returns a lazy sequence of the nodes whose key never appears as
// any edge's target (no incoming edges). Order is unspecified.
// Complexity: O(E + N); the edge scan runs once, on first pull.
func (g *Graph[K, N, E]) Sources() iter.Seq2[K, N] {
	return g.boundary(func(ek EdgeKey[K]) K { return ek.Target })
}

// Sinks returns a lazy sequence of the nodes whose key never appears as any
// edge's source (no outgoing edges). Symmetric to Sources.
func (g *Graph[K, N, E]) Sinks() iter.Seq2[K, N] {
	return g.boundary(func(ek EdgeKey[K]) K { return ek.Source })
}

// boundary yields every node whose key is never produced by side over the
// edge mapping — the shared body of Sources and Sinks.
func (g *Graph[K, N, E]) boundary(side func(EdgeKey[K]) K) iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		occupied := make(map[K]struct{}, g.edges.Len())
		for itr := g.edges.Iterator(); !itr.Done(); {
			ek, _, _ := itr.Next()
			occupied[side(ek)] = struct{}{}
		}
		for itr := g.nodes.Iterator(); !itr.Done(); {
			k, n, _ := itr.Next()
			if _, hit := occupied[k]; hit {
				continue
			}
			if !yield(k, n) {
				return
			}
		}
	}
}
