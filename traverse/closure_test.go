package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pgraph/core"
	"github.com/katalvlaran/pgraph/traverse"
)

// TestAncestors_Fixture pins the reference backward closure of F.
func TestAncestors_Fixture(t *testing.T) {
	g := fixture()

	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, keysOf(traverse.Ancestors(g, "F")))
	assert.Empty(t, keysOf(traverse.Ancestors(g, "A")), "sources have no ancestors")
}

// TestDescendants_Fixture pins the reference forward closure of F.
func TestDescendants_Fixture(t *testing.T) {
	g := fixture()

	assert.ElementsMatch(t, []string{"G", "H"}, keysOf(traverse.Descendants(g, "F")))
	assert.Empty(t, keysOf(traverse.Descendants(g, "G")), "sinks have no descendants")
}

// TestDescendants_GatedByForeignDependency documents the wavefront gating:
// a node joins the forward closure only when every one of its dependencies
// lies inside the wavefront. F depends on E, which A cannot reach, so F and
// everything behind it stay out of Descendants(A).
func TestDescendants_GatedByForeignDependency(t *testing.T) {
	g := fixture()

	assert.ElementsMatch(t, []string{"B", "C", "D"}, keysOf(traverse.Descendants(g, "A")))
}

// TestClosures_ExcludeSeedThroughCycle: a cycle routing back into the seed
// must not re-emit it, and the walk must terminate.
func TestClosures_ExcludeSeedThroughCycle(t *testing.T) {
	g := core.From(
		entries("U", "V"),
		[]core.EdgeEntry[string, int]{
			{Source: "U", Target: "V", Edge: 1},
			{Source: "V", Target: "U", Edge: 2},
		},
	)

	assert.Equal(t, []string{"V"}, keysOf(traverse.Descendants(g, "U")))
	assert.Equal(t, []string{"V"}, keysOf(traverse.Ancestors(g, "U")))
}

// TestClosures_AbsentKeyEmpty: a key with no node entry and no adjacency
// yields empty closures.
func TestClosures_AbsentKeyEmpty(t *testing.T) {
	g := fixture()

	assert.Empty(t, keysOf(traverse.Ancestors(g, "nope")))
	assert.Empty(t, keysOf(traverse.Descendants(g, "nope")))
}

// TestClosures_OrderRespectsEdges: ancestors arrive in reverse-topological
// order relative to the fixture's edges on the emitted subset.
func TestClosures_OrderRespectsEdges(t *testing.T) {
	g := fixture()
	order := keysOf(traverse.Ancestors(g, "F"))

	// For a backward walk, an edge u→v inside the closure means v is
	// emitted before u (the walk moves against edge direction).
	for _, pair := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		u, v := pair[0], pair[1]
		assert.Greater(t, position(order, u), position(order, v), "%s must follow %s backward", u, v)
	}
}

// TestClosures_LazyPrefix takes one element and abandons the walk.
func TestClosures_LazyPrefix(t *testing.T) {
	g := chain("A", "B", "C", "D", "E")

	for k := range traverse.Descendants(g, "A") {
		assert.Equal(t, "B", k)

		break
	}
}
