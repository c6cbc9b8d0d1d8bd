// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

package gst

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// maxEdgeFanout is the number of distinct code-unit values a node's edge
// map can be indexed by when keys are treated as byte strings (the
// common case). It bounds the popcount-compressed bitset the same way
// bart bounds its per-octet children bitset to 256.
const maxEdgeFanout = 256

// valueSetThreshold is the largest value-bag size kept as a linear-scan
// slice; a node promotes its bag to a hash set once it grows past it,
// mirroring the Java original's
// singleton -> pair -> small-list -> set growth schedule.
const valueSetThreshold = 16

// node is a node of the generalized suffix tree: an edge map keyed by
// the first code unit of each outgoing label, a bag of values, and one
// suffix link.
//
// edges uses the same popcount-compressed bitset-plus-slice technique
// bart's node.go uses for its per-octet children: a *bitset.BitSet
// records which code units have an outgoing edge, and edges holds the
// corresponding Edge values in bitset-rank order, so most nodes (fanout
// 1-4) pay for only a handful of slice slots instead of a fixed 256-ary
// array.
type node[T comparable] struct {
	edgesBitset *bitset.BitSet
	edges       []edge[T]

	// value bag: linear-scan slice up to valueSetThreshold, then a set.
	values   []T
	valueSet map[T]struct{}

	suffixLink *node[T]

	// root is set only on the tree's designated root node (C4). A root
	// node absorbs addValue as a no-op and reports contains as always
	// true, so the suffix-link walk in addRef terminates there naturally
	// without ever storing the universe of values at the root.
	root bool
}

func newNode[T comparable]() *node[T] {
	return &node[T]{edgesBitset: bitset.New(maxEdgeFanout)}
}

func newRootNode[T comparable]() *node[T] {
	n := newNode[T]()
	n.root = true
	return n
}

// edgeRank maps a code unit to its slice index among this node's edges,
// via the bitset's popcount (Rank).
func (n *node[T]) edgeRank(c byte) int {
	return int(n.edgesBitset.Rank(uint(c))) - 1
}

// getEdge returns the edge stored under code unit c, if any.
func (n *node[T]) getEdge(c byte) (edge[T], bool) {
	if !n.edgesBitset.Test(uint(c)) {
		return edge[T]{}, false
	}
	return n.edges[n.edgeRank(c)], true
}

// getEdgeForString returns the edge whose first code unit matches s's
// first code unit. Returns false if s is empty.
func (n *node[T]) getEdgeForString(s SubString) (edge[T], bool) {
	if s.IsEmpty() {
		return edge[T]{}, false
	}
	c, err := s.CharAt(0)
	if err != nil {
		panic("gst: invariant violated: " + err.Error())
	}
	return n.getEdge(c)
}

// addEdge inserts e, keyed by the first code unit of e.label. If an edge
// already exists under that code unit it is overwritten (used when
// splitting replaces the first half of an existing edge in place).
func (n *node[T]) addEdge(e edge[T]) {
	c, err := e.label.CharAt(0)
	if err != nil {
		panic("gst: invariant violated: edge with empty label: " + err.Error())
	}
	if n.edgesBitset.Test(uint(c)) {
		n.edges[n.edgeRank(c)] = e
		return
	}
	n.edgesBitset.Set(uint(c))
	n.edges = slices.Insert(n.edges, n.edgeRank(c), e)
}

// contains reports whether v is already present in this node's value
// bag. The root absorbs every value, so it always reports true.
func (n *node[T]) contains(v T) bool {
	if n.root {
		return true
	}
	if n.valueSet != nil {
		_, ok := n.valueSet[v]
		return ok
	}
	for _, x := range n.values {
		if x == v {
			return true
		}
	}
	return false
}

// addValue appends v to this node's value bag, promoting the bag to a
// set once it grows past valueSetThreshold. The root's addValue is a
// no-op: storing values there would balloon to the universe, and
// Search never reads values off the root directly.
func (n *node[T]) addValue(v T) {
	if n.root {
		return
	}
	if n.valueSet != nil {
		n.valueSet[v] = struct{}{}
		return
	}
	n.values = append(n.values, v)
	if len(n.values) > valueSetThreshold {
		n.valueSet = make(map[T]struct{}, len(n.values))
		for _, x := range n.values {
			n.valueSet[x] = struct{}{}
		}
		n.values = nil
	}
}

// addRef adds v to this node's value bag and propagates it up the suffix
// link chain until it reaches a node that already contains v (or the
// root, which always "contains" everything). This is the subtle part of
// the construction: every node on the suffix-link chain from a
// newly-populated node up to the point where v is already recorded gets
// v added too, so that a search terminating partway up that chain still
// finds v.
func (n *node[T]) addRef(v T) {
	if n.contains(v) {
		return
	}
	n.addValue(v)
	for cur := n.suffixLink; cur != nil; cur = cur.suffixLink {
		if cur.contains(v) {
			break
		}
		cur.addValue(v)
	}
}

// readValues pushes this node's own values, then recursively every
// descendant's values, to sink. Search calls this on the node reached by
// walking the query string so that any key for which the query is only
// an implicit (mid-edge) substring is still included, via the deeper
// nodes that spell that key's remainder.
func (n *node[T]) readValues(sink func([]T)) {
	switch {
	case n.valueSet != nil:
		vs := make([]T, 0, len(n.valueSet))
		for v := range n.valueSet {
			vs = append(vs, v)
		}
		sink(vs)
	case len(n.values) > 0:
		sink(slices.Clone(n.values))
	}
	for _, e := range n.edges {
		e.dest.readValues(sink)
	}
}

// valueCount returns the number of distinct values stored at this node,
// without descending into children.
func (n *node[T]) valueCount() int {
	if n.valueSet != nil {
		return len(n.valueSet)
	}
	return len(n.values)
}
