package traverse

import (
	"iter"

	"github.com/katalvlaran/pgraph/core"
)

// Ancestors returns the backward closure of key in g as a lazy (key, node)
// sequence: every node from which key is reachable along edge direction,
// emitted in a valid reverse-topological order. key itself is excluded,
// even when a cycle routes back through it. A key absent from the graph
// (with no retained edges naming it) yields an empty sequence.
func Ancestors[K comparable, N, E any](g *core.Graph[K, N, E], key K) iter.Seq2[K, N] {
	return closure(g, Backward, key)
}

// Descendants returns the forward closure of key in g, symmetric to
// Ancestors: nodes reachable from key whose every other dependency is also
// reachable from key, key itself excluded.
func Descendants[K comparable, N, E any](g *core.Graph[K, N, E], key K) iter.Seq2[K, N] {
	return closure(g, Forward, key)
}

// closure walks from seed in dir and drops the seed, which Walk always
// emits first by construction.
func closure[K comparable, N, E any](g *core.Graph[K, N, E], dir Direction, seed K) iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		for k, n := range Walk(g, dir, seed) {
			if k == seed {
				continue
			}
			if !yield(k, n) {
				return
			}
		}
	}
}
