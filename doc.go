// Package pgraph is a persistent (immutable, structurally shared) directed
// graph for Go — build graphs incrementally while every prior version stays
// valid and observable.
//
// 🚀 What is pgraph?
//
//	A small, generic library built around two ideas:
//		• Persistence: every mutator returns a new Graph value; the receiver is
//		  untouched and keeps answering queries exactly as before. Unchanged
//		  structure is shared between versions, never copied.
//		• Lazy traversal: adjacency queries, topological order, ancestor and
//		  descendant closures are all demand-driven sequences — take a prefix,
//		  pay for a prefix.
//
// ✨ Why choose pgraph?
//
//   - Undo, snapshots, memoized derivations — keep any number of versions alive
//   - Lock-free concurrent reads: a Graph value never changes under you
//   - Generic over node key, node value, and edge value types
//
// Everything is organized under two subpackages:
//
//	core/     — the persistent Graph store: node/edge maps, EdgeKey identity,
//	            copy-on-write mutators, adjacency queries, bulk construction
//	traverse/ — the wavefront traversal engine: Walk, TopoSort, HasCycles,
//	            Ancestors, Descendants
//
// Quick ASCII example:
//
//	    A──▶B──▶D──▶F──▶G
//	    │       ▲   ▲└─▶H
//	    └──▶C───┘   E
//
//	a DAG whose topological order starts at the sources {A, E}.
//
// Dive into the package docs for full examples and the traversal contract.
//
//	go get github.com/katalvlaran/pgraph
package pgraph
