// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

package gst

// SearchFunc walks query through the tree and invokes sink one or more
// times with subsets of values whose union is exactly the set of values
// whose key contains query as a substring. An empty query never walks
// any edge, so sink is never called.
func (t *GeneralizedSuffixTree[T]) SearchFunc(query string, sink func([]T)) {
	w := NewSubString(query)
	current := t.root

	for !w.IsEmpty() {
		e, ok := current.getEdgeForString(w)
		if !ok {
			return
		}

		n := min(w.Len(), e.label.Len())
		if !e.label.StartsWith(w, n) {
			return
		}

		current = e.dest
		if n == w.Len() {
			current.readValues(sink)
			return
		}

		w = must(w.From(n))
	}
}

// Search returns the deduplicated set of values whose key contains query
// as a substring. The returned order is not defined.
func (t *GeneralizedSuffixTree[T]) Search(query string) []T {
	var out []T
	seen := make(map[T]struct{})
	t.SearchFunc(query, func(vs []T) {
		for _, v := range vs {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	})
	return out
}

// EnumerateAllFunc invokes sink one or more times with subsets of every
// value stored in the tree, whose union is the full set of values ever
// inserted.
func (t *GeneralizedSuffixTree[T]) EnumerateAllFunc(sink func([]T)) {
	t.root.readValues(sink)
}

// EnumerateAll returns the deduplicated set of every value stored in the
// tree. The returned order is not defined.
func (t *GeneralizedSuffixTree[T]) EnumerateAll() []T {
	var out []T
	seen := make(map[T]struct{})
	t.EnumerateAllFunc(func(vs []T) {
		for _, v := range vs {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	})
	return out
}
