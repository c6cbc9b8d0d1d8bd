// Copyright (c) 2024 The gst Authors
// SPDX-License-Identifier: MIT

package gst

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedInts(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)
	return out
}

func TestInsertSingleKeySearchAllSubstrings(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("banana", 1)

	for _, sub := range []string{"b", "a", "n", "ba", "an", "na", "ana", "anan", "banana", "nana"} {
		got := tr.Search(sub)
		assert.Equal(t, []int{1}, got, "substring %q", sub)
	}

	assert.Empty(t, tr.Search("xyz"))
	assert.Empty(t, tr.Search("bananas"))
}

func TestSearchEmptyQueryYieldsNothing(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("banana", 1)

	assert.Empty(t, tr.Search(""))
}

func TestInsertOverlappingKeysShareStructure(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("banana", 1)
	tr.Insert("ananas", 2)

	require.ElementsMatch(t, []int{1, 2}, tr.Search("ana"))
	require.ElementsMatch(t, []int{1}, tr.Search("banana"))
	require.ElementsMatch(t, []int{2}, tr.Search("ananas"))
	require.ElementsMatch(t, []int{1, 2}, tr.Search("an"))
	require.ElementsMatch(t, []int{1, 2}, tr.Search("na"))
}

func TestInsertSameKeyMultipleValues(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("cacao", 1)
	tr.Insert("cacao", 2)

	assert.Equal(t, []int{1, 2}, sortedInts(tr.Search("cacao")))
	assert.Equal(t, []int{1, 2}, sortedInts(tr.Search("ca")))
}

func TestReinsertSameValueIsIdempotentForResults(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("banana", 1)
	tr.Insert("banana", 1)

	assert.Equal(t, []int{1}, tr.Search("ban"))
	assert.Equal(t, []int{1}, tr.EnumerateAll())
}

func TestInsertEmptyKeyIsNoOp(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("", 1)

	assert.Empty(t, tr.EnumerateAll())
	assert.Empty(t, tr.Search(""))
}

func TestEnumerateAllReturnsEveryValue(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("apple", 1)
	tr.Insert("maple", 2)
	tr.Insert("ample", 3)

	assert.ElementsMatch(t, []int{1, 2, 3}, tr.EnumerateAll())
}

func TestManyKeysCommonPrefix(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	keys := []string{"aa", "ab", "ac", "ad", "ae"}
	for i, k := range keys {
		tr.Insert(k, i)
	}

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, tr.Search("a"))
	assert.ElementsMatch(t, []int{0}, tr.Search("aa"))
	assert.Empty(t, tr.Search("z"))
}

func TestScenarioShorterKeyInsertedAfterLonger(t *testing.T) {
	// Inserting a key that is a prefix of an already-indexed key must
	// not disturb the longer key's results.
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("ab", 0)
	tr.Insert("a", 1)

	assert.ElementsMatch(t, []int{0, 1}, tr.Search("a"))
	assert.ElementsMatch(t, []int{0}, tr.Search("b"))
	assert.ElementsMatch(t, []int{0}, tr.Search("ab"))
}

func TestScenarioBananaSubstringOfSubstring(t *testing.T) {
	// Each key shares a prefix with the one before it but diverges at a
	// different point, exercising repeated edge splitting on "ba"/"ban".
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("banana", 0)
	tr.Insert("bano", 1)
	tr.Insert("ba", 2)

	assert.ElementsMatch(t, []int{0, 1, 2}, tr.Search("ba"))
	assert.ElementsMatch(t, []int{0, 1}, tr.Search("ban"))
	assert.ElementsMatch(t, []int{0}, tr.Search("bana"))
	assert.ElementsMatch(t, []int{0}, tr.Search("nana"))
}

func TestScenarioNestedKeys(t *testing.T) {
	// A later, longer key ("abcabxabcd") contains an earlier key ("ab")
	// as a strict substring, and an unrelated key ("cab") shares a
	// suffix with it.
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("ab", 0)
	tr.Insert("cab", 2)
	tr.Insert("abcabxabcd", 3)

	assert.ElementsMatch(t, []int{0, 2, 3}, tr.Search("a"))
	assert.ElementsMatch(t, []int{0, 2, 3}, tr.Search("ab"))
	assert.ElementsMatch(t, []int{2, 3}, tr.Search("cab"))
	assert.ElementsMatch(t, []int{3}, tr.Search("x"))
	assert.ElementsMatch(t, []int{3}, tr.Search("d"))
	assert.ElementsMatch(t, []int{3}, tr.Search("abcabxabcd"))
	assert.Empty(t, tr.Search("aoca"))
}

func TestSearchMidEdgeSubstring(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("abcdef", 1)

	// "bcd" only ever occurs in the middle of a single edge label; the
	// tree is never split there unless a second key forces it.
	assert.Equal(t, []int{1}, tr.Search("bcd"))
	assert.Equal(t, []int{1}, tr.Search("cde"))
}

func TestStatisticsDoesNotPanicOnEmptyTree(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	assert.Contains(t, tr.Statistics(), "GeneralizedSuffixTree")
}

func TestStatisticsOnPopulatedTree(t *testing.T) {
	t.Parallel()
	tr := NewTree[int]()
	tr.Insert("banana", 1)
	tr.Insert("ananas", 2)
	assert.Contains(t, tr.Statistics(), "node value-bag sizes")
	assert.Contains(t, tr.Statistics(), "node edge-fanout sizes")
}
