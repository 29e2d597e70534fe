package traverse_test

import (
	"iter"

	"github.com/katalvlaran/pgraph/core"
)

// fixture builds the reference DAG:
//
//	A→B, A→C, B→D, C→D, D→F, E→F, F→G, F→H
func fixture() *core.Graph[string, string, int] {
	return core.From(
		entries("A", "B", "C", "D", "E", "F", "G", "H"),
		[]core.EdgeEntry[string, int]{
			{Source: "A", Target: "B", Edge: 1},
			{Source: "A", Target: "C", Edge: 2},
			{Source: "B", Target: "D", Edge: 3},
			{Source: "C", Target: "D", Edge: 4},
			{Source: "D", Target: "F", Edge: 5},
			{Source: "E", Target: "F", Edge: 6},
			{Source: "F", Target: "G", Edge: 7},
			{Source: "F", Target: "H", Edge: 8},
		},
	)
}

// entries makes node entries whose value is the key itself.
func entries(keys ...string) []core.NodeEntry[string, string] {
	out := make([]core.NodeEntry[string, string], len(keys))
	for i, k := range keys {
		out[i] = core.NodeEntry[string, string]{Key: k, Node: k}
	}

	return out
}

// chain builds k1→k2→...→kn.
func chain(keys ...string) *core.Graph[string, string, int] {
	edges := make([]core.EdgeEntry[string, int], 0, len(keys)-1)
	for i := 1; i < len(keys); i++ {
		edges = append(edges, core.EdgeEntry[string, int]{Source: keys[i-1], Target: keys[i], Edge: i})
	}

	return core.From(entries(keys...), edges)
}

// keysOf drains a (key, node) sequence into emission order.
func keysOf(seq iter.Seq2[string, string]) []string {
	out := make([]string, 0)
	for k := range seq {
		out = append(out, k)
	}

	return out
}
