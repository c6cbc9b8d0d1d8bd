// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

// Package gst implements a Generalized Suffix Tree (GST): an in-memory
// index built from a set of (key, value) insertions that answers
// substring-containment queries in time proportional to the length of
// the query, not the size of the index.
//
// Unlike a suffix tree built over a single string, a GST is built over
// many independent keys. After Insert(key, value), Search(sub) returns
// value for every sub that is a substring of key.
//
// Construction follows Ukkonen's on-line algorithm (active point, suffix
// links, edge splitting), extended so that every implicit substring
// carries a set of values rather than a single position, and so that
// values are propagated along suffix links as they are discovered. See
// GeneralizedSuffixTree.Insert for the construction walk-through.
//
// The tree also supports mining: EnumerateCommon reports every distinct
// substring of a minimum length that occurs in at least a minimum number
// of distinct keys.
//
// A Tree is not safe for concurrent use; Insert must not run concurrently
// with Search, EnumerateAll, or EnumerateCommon. There is no internal
// locking, so callers that need concurrent access must provide their
// own mutual exclusion.
package gst
