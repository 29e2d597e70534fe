// SPDX-License-Identifier: MIT
//
// File: from.go
// Role: Bulk construction facade — build a Graph from node/edge entry slices.

package core

import "github.com/benbjohnson/immutable"

// NodeEntry is one row of bulk node input for From.
type NodeEntry[K comparable, N any] struct {
	Key  K
	Node N
}

// EdgeEntry is one row of bulk edge input for From.
type EdgeEntry[K comparable, E any] struct {
	Source K
	Target K
	Edge   E
}

// From builds a Graph from bulk node and edge entries in one structural
// update. Duplicate node keys overwrite left-to-right, as do duplicate
// (Source, Target) edge pairs.
//
// Unlike Connect, From does NOT validate edge endpoints: an entry referencing
// a key that appears in no NodeEntry is stored as-is, producing an edge whose
// endpoint has no node value (the same dangling state DeleteNode can leave
// behind). Pre-filter the edge slice against the node keys if you need the
// Connect guarantee.
// Complexity: O((len(nodes) + len(edges))·log n).
func From[K comparable, N, E any](nodes []NodeEntry[K, N], edges []EdgeEntry[K, E], opts ...Option[K]) *Graph[K, N, E] {
	cfg := newConfig(opts)

	// 1. Load the node mapping through a builder (transient trie, one pass).
	nb := immutable.NewMapBuilder[K, N](cfg.hasher)
	for _, entry := range nodes {
		nb.Set(entry.Key, entry.Node)
	}

	// 2. Load the edge mapping the same way, keyed by the ordered pair.
	eb := immutable.NewMapBuilder[EdgeKey[K], E](edgeKeyHasher[K]{node: cfg.hasher})
	for _, entry := range edges {
		eb.Set(EdgeKey[K]{Source: entry.Source, Target: entry.Target}, entry.Edge)
	}

	return &Graph[K, N, E]{hasher: cfg.hasher, nodes: nb.Map(), edges: eb.Map()}
}
