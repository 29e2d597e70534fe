package core_test

import (
	"iter"
	"sort"

	"github.com/katalvlaran/pgraph/core"
)

// fixture builds the reference DAG used across query tests:
//
//	A→B, A→C, B→D, C→D, D→F, E→F, F→G, F→H
//
// Node values are the lowercase keys; edge values are sequential ints.
func fixture() *core.Graph[string, string, int] {
	nodes := []core.NodeEntry[string, string]{
		{Key: "A", Node: "a"}, {Key: "B", Node: "b"}, {Key: "C", Node: "c"},
		{Key: "D", Node: "d"}, {Key: "E", Node: "e"}, {Key: "F", Node: "f"},
		{Key: "G", Node: "g"}, {Key: "H", Node: "h"},
	}
	edges := []core.EdgeEntry[string, int]{
		{Source: "A", Target: "B", Edge: 1},
		{Source: "A", Target: "C", Edge: 2},
		{Source: "B", Target: "D", Edge: 3},
		{Source: "C", Target: "D", Edge: 4},
		{Source: "D", Target: "F", Edge: 5},
		{Source: "E", Target: "F", Edge: 6},
		{Source: "F", Target: "G", Edge: 7},
		{Source: "F", Target: "H", Edge: 8},
	}

	return core.From(nodes, edges)
}

// keysOf drains a (key, node) sequence into the emitted key order.
func keysOf(seq iter.Seq2[string, string]) []string {
	out := make([]string, 0)
	for k := range seq {
		out = append(out, k)
	}

	return out
}

// sortedKeysOf drains a sequence and sorts the keys for stable comparison.
func sortedKeysOf(seq iter.Seq2[string, string]) []string {
	out := keysOf(seq)
	sort.Strings(out)

	return out
}
