// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

package gst

// Root node (C4) is a node with the root flag set (see node.root);
// newRootNode constructs one. Go favors composition over subtyping, so
// the "RootNode extends Node" relationship from the original design is
// expressed here as a flag checked by node.contains and node.addValue
// rather than as a distinct type with overridden methods: every other
// node operation (addRef, readValues, getEdge, addEdge) is identical for
// the root and for ordinary nodes, so a flag avoids a parallel method
// set that would differ in exactly two places.
