// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

package gst

import "fmt"

// EnumerateCommon finds every distinct substring of at least minLength
// code units that occurs in at least minKeys distinct keys, and invokes
// visitor once per substring with the substring and the deduplicated set
// of values whose key contains it. minLength and minKeys must both be
// strictly positive.
//
// The traversal is a single depth-first walk that computes, for each
// node, the union of values reachable from it (its descendants' value
// sets plus its own) while it descends, rather than the original
// design's two-pass collectKeys-then-dfs split: memoizing the key sets
// during one pass cuts the cost from quadratic in tree size to linear
// in tree size times fanout, and a single pass is the natural way to
// express that in Go without a second recursive helper.
//
// The same path string can only be reached along more than one walk if
// a node ever has two edges sharing a first code unit, which the edge
// map's construction forbids; the emitted-substring dedup set is kept
// anyway as a defensive measure.
func (t *GeneralizedSuffixTree[T]) EnumerateCommon(minLength, minKeys int, visitor func(substring string, values []T)) error {
	if minLength <= 0 {
		return fmt.Errorf("%w: minLength must be > 0, got %d", ErrInvalidArgument, minLength)
	}
	if minKeys <= 0 {
		return fmt.Errorf("%w: minKeys must be > 0, got %d", ErrInvalidArgument, minKeys)
	}

	m := &commonSubstringMiner[T]{
		minLength: minLength,
		minKeys:   minKeys,
		visitor:   visitor,
		seen:      make(map[string]struct{}),
	}
	m.dfs(t.root)
	return nil
}

// commonSubstringMiner carries the mutable state of one EnumerateCommon
// traversal: the growing path buffer and the set of substrings already
// reported, so the same string is never visited twice by visitor.
type commonSubstringMiner[T comparable] struct {
	minLength int
	minKeys   int
	visitor   func(substring string, values []T)
	seen      map[string]struct{}
	path      []byte
}

// dfs visits node, appending each outgoing edge's label to the shared
// path buffer for the duration of the recursive call into that edge's
// destination, and returns the set of values reachable from node (its
// own plus every descendant's).
func (m *commonSubstringMiner[T]) dfs(n *node[T]) map[T]struct{} {
	keys := make(map[T]struct{})
	for _, v := range n.values {
		keys[v] = struct{}{}
	}
	for v := range n.valueSet {
		keys[v] = struct{}{}
	}

	for _, e := range n.edges {
		pathLenBefore := len(m.path)
		m.path = append(m.path, e.label.String()...)

		for v := range m.dfs(e.dest) {
			keys[v] = struct{}{}
		}

		m.path = m.path[:pathLenBefore]
	}

	if len(keys) >= m.minKeys && len(m.path) >= m.minLength {
		s := string(m.path)
		if _, dup := m.seen[s]; !dup {
			m.seen[s] = struct{}{}
			vs := make([]T, 0, len(keys))
			for v := range keys {
				vs = append(vs, v)
			}
			m.visitor(s, vs)
		}
	}

	return keys
}
