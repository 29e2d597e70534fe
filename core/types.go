// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Central persistent Graph and EdgeKey types, construction options,
//       and the New constructor. No algorithms live here.

package core

import (
	"github.com/benbjohnson/immutable"
)

// EdgeKey is the composite, order-sensitive identity of a directed edge:
// the ordered pair (Source, Target). Equality is structural and pairwise,
// so EdgeKey{a, b} != EdgeKey{b, a} whenever a != b.
type EdgeKey[K comparable] struct {
	// Source is the key of the edge's origin node.
	Source K

	// Target is the key of the edge's destination node.
	Target K
}

// Reverse returns the flipped pair (Target, Source).
// Complexity: O(1).
func (k EdgeKey[K]) Reverse() EdgeKey[K] {
	return EdgeKey[K]{Source: k.Target, Target: k.Source}
}

// Graph is a persistent directed graph value.
//
// A Graph is immutable: every mutator returns a new *Graph sharing unchanged
// structure with its receiver, and the receiver keeps answering queries
// exactly as before. Concurrent reads of one Graph value need no locking.
//
// The zero Graph is not usable; construct with New or From.
type Graph[K comparable, N, E any] struct {
	hasher immutable.Hasher[K]
	nodes  *immutable.Map[K, N]
	edges  *immutable.Map[EdgeKey[K], E]
}

// config collects construction-time settings before the maps are allocated.
type config[K comparable] struct {
	hasher immutable.Hasher[K]
}

// Option configures a Graph at construction time.
type Option[K comparable] func(*config[K])

// WithHasher sets the hasher used for node keys. The edge-key hasher is
// always derived from it by the order-sensitive pair combiner, so both
// mappings hash consistently.
//
// The hasher's Equal must agree with Go's == on K: traversal-local state in
// this module indexes keys with native maps, and a hasher that equates keys
// == distinguishes would make the two disagree. A custom hasher is a hashing
// strategy, not an equality override.
//
// Passing a nil hasher has no effect (the default comparable hasher is kept).
func WithHasher[K comparable](h immutable.Hasher[K]) Option[K] {
	return func(c *config[K]) {
		if h != nil {
			c.hasher = h
		}
	}
}

// newConfig applies opts over the default settings.
func newConfig[K comparable](opts []Option[K]) config[K] {
	cfg := config[K]{hasher: newComparableHasher[K]()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// New creates an empty persistent Graph.
// Complexity: O(len(opts)).
func New[K comparable, N, E any](opts ...Option[K]) *Graph[K, N, E] {
	cfg := newConfig(opts)

	return &Graph[K, N, E]{
		hasher: cfg.hasher,
		nodes:  immutable.NewMap[K, N](cfg.hasher),
		edges:  immutable.NewMap[EdgeKey[K], E](edgeKeyHasher[K]{node: cfg.hasher}),
	}
}

// with derives a new Graph version around replacement maps, carrying the
// receiver's hasher. The receiver is never modified.
func (g *Graph[K, N, E]) with(nodes *immutable.Map[K, N], edges *immutable.Map[EdgeKey[K], E]) *Graph[K, N, E] {
	return &Graph[K, N, E]{hasher: g.hasher, nodes: nodes, edges: edges}
}
