// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

package gst

import "fmt"

// SubString is a zero-copy window over a backing string: a
// (backing, offset, length) triple. It never copies the bytes it views;
// every derived SubString shares the same backing string, which lets
// StartsWith fast-path on pointer-and-offset identity instead of a byte
// comparison.
//
// The alphabet is opaque: operations address code units (bytes) of the
// backing string by position, and make no assumption about how many
// distinct code units occur.
type SubString struct {
	backing string
	offset  int
	length  int
}

// NewSubString returns a SubString covering the whole of s.
func NewSubString(s string) SubString {
	return SubString{backing: s, length: len(s)}
}

// NewSubStringAt returns the SubString covering s[offset:].
func NewSubStringAt(s string, offset int) (SubString, error) {
	return NewSubStringRange(s, offset, len(s)-offset)
}

// NewSubStringRange returns the SubString covering
// s[offset : offset+length]. It fails if offset or length is negative, or
// if offset+length exceeds len(s).
func NewSubStringRange(s string, offset, length int) (SubString, error) {
	if offset < 0 {
		return SubString{}, fmt.Errorf("%w: offset %d must be >= 0", ErrInvalidArgument, offset)
	}
	if length < 0 {
		return SubString{}, fmt.Errorf("%w: length %d must be >= 0", ErrInvalidArgument, length)
	}
	if offset+length > len(s) {
		return SubString{}, fmt.Errorf("%w: offset %d plus length %d exceeds backing length %d", ErrOutOfBounds, offset, length, len(s))
	}
	return SubString{backing: s, offset: offset, length: length}, nil
}

// Len returns the number of code units this SubString covers.
func (ss SubString) Len() int { return ss.length }

// IsEmpty reports whether this SubString covers zero code units.
func (ss SubString) IsEmpty() bool { return ss.length == 0 }

// CharAt returns the code unit at position i within this SubString.
func (ss SubString) CharAt(i int) (byte, error) {
	if i < 0 || i >= ss.length {
		return 0, fmt.Errorf("%w: index %d for length %d", ErrOutOfBounds, i, ss.length)
	}
	return ss.backing[ss.offset+i], nil
}

// SubSlice returns the SubString covering [start, end) of this one,
// sharing the same backing. When start==0 and end==Len(), the receiver
// itself is returned.
func (ss SubString) SubSlice(start, end int) (SubString, error) {
	if end < start && start >= 0 && start <= ss.length {
		return SubString{}, fmt.Errorf("%w: start %d is after end %d", ErrInvalidArgument, start, end)
	}
	if start < 0 || end < start || end > ss.length {
		return SubString{}, fmt.Errorf("%w: start %d end %d length %d", ErrOutOfBounds, start, end, ss.length)
	}
	if start == 0 && end == ss.length {
		return ss, nil
	}
	return SubString{backing: ss.backing, offset: ss.offset + start, length: end - start}, nil
}

// From returns the SubString covering [start, Len()) of this one.
func (ss SubString) From(start int) (SubString, error) {
	return ss.SubSlice(start, ss.length)
}

// Extend returns a SubString one code unit longer than this one, by
// including the code unit immediately following it in the backing
// string. It fails unless that next code unit exists and equals c; this
// is the contract the construction algorithm relies on to reason about
// the active point without copying.
func (ss SubString) Extend(c byte) (SubString, error) {
	if ss.offset+ss.length >= len(ss.backing) {
		return SubString{}, fmt.Errorf("%w: cannot extend past backing length %d", ErrOutOfBounds, len(ss.backing))
	}
	next := ss.backing[ss.offset+ss.length]
	if next != c {
		return SubString{}, fmt.Errorf("%w: extend expected %q, got %q", ErrInvalidArgument, next, c)
	}
	return SubString{backing: ss.backing, offset: ss.offset, length: ss.length + 1}, nil
}

// Shorten returns a SubString with its length reduced by k code units,
// clamped at zero.
func (ss SubString) Shorten(k int) (SubString, error) {
	if k < 0 {
		return SubString{}, fmt.Errorf("%w: amount %d must be >= 0", ErrInvalidArgument, k)
	}
	if ss.length == 0 || k == 0 {
		return ss, nil
	}
	newLength := ss.length - k
	if newLength < 0 {
		newLength = 0
	}
	return SubString{backing: ss.backing, offset: ss.offset, length: newLength}, nil
}

// StartsWith reports whether this SubString starts with prefix. If n is
// given, only the first n code units are compared; otherwise all of
// prefix is compared.
func (ss SubString) StartsWith(prefix SubString, n ...int) bool {
	lenToMatch := prefix.length
	if len(n) > 0 {
		lenToMatch = n[0]
	}
	if lenToMatch > ss.length || lenToMatch > prefix.length {
		return false
	}
	if ss.backing == prefix.backing && ss.offset == prefix.offset {
		return true
	}
	return ss.backing[ss.offset:ss.offset+lenToMatch] == prefix.backing[prefix.offset:prefix.offset+lenToMatch]
}

// String returns the code units this SubString covers.
func (ss SubString) String() string {
	return ss.backing[ss.offset : ss.offset+ss.length]
}
