package traverse

import (
	"iter"

	"github.com/katalvlaran/pgraph/core"
)

// walker encapsulates the mutable state of one wavefront traversal.
// All fields are private to a single Walk activation; the Graph is only read.
type walker[K comparable, N, E any] struct {
	graph   *core.Graph[K, N, E]
	queue   []K            // frontier, FIFO among ready keys
	seen    map[K]struct{} // frontier ∪ emitted; absorbs duplicate discoveries
	pending map[K]int      // residual count of direction-incoming edges per key
	next    map[K][]K      // direction-outgoing adjacency, indexed once per walk
}

// Walk runs a wavefront traversal of g in the given direction, seeded with
// seeds, and returns it as a lazy (key, node) sequence.
//
// Seeds are emitted first, whether or not they are ready by edge count; a
// seed with no stored node yields the zero N. From there a key is emitted
// once its last residual direction-incoming edge is retired, i.e. after all
// of its direction-predecessors within the walk. Keys only reachable through
// a cycle never become ready and are never emitted; every key is emitted at
// most once.
//
// Each range over the result starts a fresh traversal with its own frontier
// and residual state. A single range activation is single-pass: stop pulling
// and the walk is abandoned with no residue.
func Walk[K comparable, N, E any](g *core.Graph[K, N, E], dir Direction, seeds ...K) iter.Seq2[K, N] {
	return func(yield func(K, N) bool) {
		w := newWalker(g, dir, seeds)
		for {
			key, node, ok := w.step()
			if !ok {
				return
			}
			if !yield(key, node) {
				return
			}
		}
	}
}

// newWalker indexes the edge mapping for dir and seeds the frontier.
func newWalker[K comparable, N, E any](g *core.Graph[K, N, E], dir Direction, seeds []K) *walker[K, N, E] {
	w := &walker[K, N, E]{
		graph:   g,
		queue:   make([]K, 0, len(seeds)),
		seen:    make(map[K]struct{}),
		pending: make(map[K]int),
		next:    make(map[K][]K),
	}

	// 1. One scan of the edge mapping builds the residual incoming counts
	//    and the outgoing adjacency index, both oriented by dir.
	for key := range g.Edges() {
		origin, dest := key.Source, key.Target
		if dir == Backward {
			origin, dest = dest, origin
		}
		w.next[origin] = append(w.next[origin], dest)
		w.pending[dest]++
	}

	// 2. Seed the frontier.
	for _, s := range seeds {
		w.enqueue(s)
	}

	return w
}

// enqueue adds key to the frontier unless it was already discovered.
func (w *walker[K, N, E]) enqueue(key K) {
	if _, dup := w.seen[key]; dup {
		return
	}
	w.seen[key] = struct{}{}
	w.queue = append(w.queue, key)
}

// step emits one ready key: pops it from the frontier, retires its residual
// direction-outgoing edges, and promotes any neighbor whose last remaining
// incoming edge that was. Returns ok=false when the frontier is exhausted.
func (w *walker[K, N, E]) step() (K, N, bool) {
	// 1. Exhausted frontier terminates the sequence.
	if len(w.queue) == 0 {
		var k K
		var n N

		return k, n, false
	}

	// 2. Pop the next ready key.
	key := w.queue[0]
	w.queue = w.queue[1:]

	// 3. Retire the residual edges out of key; a neighbor whose residual
	//    incoming count reaches zero becomes ready.
	for _, nb := range w.next[key] {
		w.pending[nb]--
		if w.pending[nb] == 0 {
			w.enqueue(nb)
		}
	}

	// 4. Emit key with its node value (zero N when the entry is absent).
	node, _ := w.graph.Node(key)

	return key, node, true
}
