// SPDX-License-Identifier: MIT
//
// File: hasher.go
// Role: Default node-key hasher and the order-sensitive EdgeKey combiner.

package core

import (
	"hash/maphash"

	"github.com/benbjohnson/immutable"
)

// Combiner parameters for EdgeKey hashing (FNV offset basis and prime).
// The multiply-then-add fold is non-commutative, so hash(a,b) and hash(b,a)
// differ in general while equal keys always hash equally.
const (
	edgeHashSeed       uint32 = 2166136261
	edgeHashMultiplier uint32 = 16777619
)

// comparableHasher hashes any comparable key type via hash/maphash.
// The seed is fixed at construction, so one Graph lineage (a graph and every
// version derived from it) hashes consistently.
type comparableHasher[K comparable] struct {
	seed maphash.Seed
}

func newComparableHasher[K comparable]() comparableHasher[K] {
	return comparableHasher[K]{seed: maphash.MakeSeed()}
}

// Hash folds maphash's 64-bit value into the 32 bits the trie consumes.
func (h comparableHasher[K]) Hash(key K) uint32 {
	v := maphash.Comparable(h.seed, key)

	return uint32(v>>32) ^ uint32(v)
}

// Equal is Go's native == for comparable keys.
func (h comparableHasher[K]) Equal(a, b K) bool { return a == b }

// edgeKeyHasher derives EdgeKey hashing and equality from the node-key
// hasher, keeping the two mappings of a Graph consistent.
type edgeKeyHasher[K comparable] struct {
	node immutable.Hasher[K]
}

// Hash combines the component hashes order-sensitively: source is folded in
// before target with a fixed multiplier.
func (h edgeKeyHasher[K]) Hash(key EdgeKey[K]) uint32 {
	v := edgeHashSeed
	v = v*edgeHashMultiplier + h.node.Hash(key.Source)
	v = v*edgeHashMultiplier + h.node.Hash(key.Target)

	return v
}

// Equal is pairwise: both components must match, in order.
func (h edgeKeyHasher[K]) Equal(a, b EdgeKey[K]) bool {
	return h.node.Equal(a.Source, b.Source) && h.node.Equal(a.Target, b.Target)
}
