// Package core defines the persistent Graph store: a generic, immutable
// directed graph whose mutators return new Graph values via structural
// sharing, leaving every prior version valid and independently queryable.
//
// A Graph[K, N, E] is an aggregate of two persistent hash-trie mappings:
//
//	nodes: K          → N   (node key → node value)
//	edges: EdgeKey[K] → E   (ordered (source, target) pair → edge value)
//
// K is any comparable key type; N and E are arbitrary caller-supplied
// payloads. Both mappings give O(log n) point operations, and a mutator
// copies only the trie path it touches — old and new versions share the rest.
//
// Mutation policy ("tolerant core"):
//
//	SetNode     - always succeeds (insert or overwrite).
//	DeleteNode  - removes the node entry only; incident edges are retained
//	              and may afterwards reference an absent endpoint.
//	Connect     - inserts/overwrites the edge iff both endpoints are present
//	              nodes; otherwise returns the receiver unchanged.
//	Disconnect  - mirrors Connect's endpoint tolerance.
//	From        - bulk load; does NOT validate edge endpoints (see From).
//
// No operation in this package returns an error: absence is reported through
// comma-ok results (Node, Edge) or caller-supplied defaults (NodeOr, EdgeOr),
// and an inadmissible mutation is a no-op returning the unchanged receiver.
// Callers wanting strict behavior check HasNode/HasEdge first.
//
// Adjacency queries (Predecessors, Successors, Neighbors, Sources, Sinks)
// and the Nodes/Edges enumerations are lazy iter.Seq2 sequences over a fixed
// Graph version; because the version can never change, they are safe to
// consume from any number of goroutines without locking.
package core
