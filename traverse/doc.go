// Package traverse provides the wavefront traversal engine over a persistent
// core.Graph: topological order, cycle detection, and ancestor/descendant
// closures, all as lazy sequences.
//
// One algorithm powers everything: a direction-parameterized Kahn-style
// expansion. A traversal keeps a frontier of ready keys and a residual count
// of unprocessed direction-incoming edges per key; emitting a key retires its
// direction-outgoing edges, which may make neighbors ready. A key is emitted
// only after every direction-predecessor reachable within the same walk has
// been emitted. Order among simultaneously-ready keys is unspecified — the
// contract is "a valid topological order", nothing stronger.
//
// Every function returns an iter.Seq2[K, N]. The sequences are lazy (take a
// prefix, pay for a prefix) and each range over one starts a fresh,
// independent traversal with private state; the source Graph is read-only
// throughout and may be walked concurrently from any number of goroutines,
// one traversal each. Stopping early is simply ceasing to pull — no
// background work continues, so no context or cancellation hook is needed.
//
// Cycles are a queryable condition, not an error: TopoSort silently emits
// only the nodes that can reach readiness, and HasCycles compares that count
// against the node total.
//
// Complexity: O(N + E) time and O(N + E) private state per full traversal.
package traverse
