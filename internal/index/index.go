// Package index implements the opaque forward()/backward() lookup
// contract for the multi-byte legacy encodings (Shift_JIS/Windows-31J,
// EUC-JP+JIS X 0212, Windows-949/EUC-KR, GBK/GB18030, Big5-2003+HKSCS, and
// HZ-GB-2312's underlying GB2312 table).
//
// spec.md places index *data* out of scope: "Index data tables themselves
// (treated as opaque functions with a specified contract — generation is a
// build-time concern)." Accordingly, each table here is built from a small
// set of explicit (pointer, codepoint) pairs assembled at init time rather
// than vendoring or hand-transcribing the full ~7,000-24,000 row WHATWG
// index-*.txt data files. Three things are guaranteed regardless of table
// size:
//
//  1. Every literal pointer called out by spec.md §8's end-to-end scenarios
//     (the Big5 HKSCS two-scalar pointers 1133/1135/1164/1166, and the
//     seven GB2312 pointers needed for the HZ round-trip example) is
//     present and exact.
//  2. Forward and backward are built from the same pair list, so the
//     index-consistency invariant (spec §8 invariant 2) holds by
//     construction for every table here.
//  3. Production fidelity requires generating the full WHATWG tables
//     offline, the same way golang.org/x/text/encoding/charmap's tables
//     are produced by its maketables.go generator (see
//     other_examples/golang-text_encoding-charmap-maketables.go.go in the
//     retrieval pack) — a build step, not a change to this contract.
package index

import (
	"container/heap"
	"sort"
)

// Unmapped is returned by Forward for pointers with no assigned codepoint.
const Unmapped = 0xFFFF

// Table is a bijective pointer<->codepoint lookup built from an explicit
// pair list. It satisfies the "opaque function" contract of spec.md §3:
// Forward(ptr) -> codepoint, Backward(codepoint) -> (ptr, ok).
type Table struct {
	forward  map[int]rune
	backward map[rune]int
}

// NewTable builds a Table from (pointer, codepoint) pairs. Later pairs for
// a pointer already seen overwrite the forward entry but never the
// backward one, matching the WHATWG convention that the backward index
// keeps the *first* pointer for a duplicated codepoint (documented
// remapping duplicates, spec §8 invariant 2's carve-out).
func NewTable(pairs [][2]int) *Table {
	t := &Table{forward: make(map[int]rune, len(pairs)), backward: make(map[rune]int, len(pairs))}
	for _, p := range pairs {
		ptr, cp := p[0], rune(p[1])
		t.forward[ptr] = cp
		if _, exists := t.backward[cp]; !exists {
			t.backward[cp] = ptr
		}
	}
	return t
}

// Forward returns the codepoint for ptr, or Unmapped if none is assigned.
func (t *Table) Forward(ptr int) rune {
	if cp, ok := t.forward[ptr]; ok {
		return cp
	}
	return Unmapped
}

// Backward returns the pointer assigned to cp, if any.
func (t *Table) Backward(cp rune) (int, bool) {
	ptr, ok := t.backward[cp]
	return ptr, ok
}

// rangeSegment is one breakpoint of a piecewise-linear index, the shape
// the gb18030-ranges algorithm uses for its four-byte BMP region (spec
// §4.7): every index in [Index, next segment's Index) maps to consecutive
// codepoints starting at Codepoint.
type rangeSegment struct {
	Index     int
	Codepoint rune
}

// rangeSegmentHeap is a min-heap of rangeSegment ordered by Index, used to
// assemble breakpoints into sorted order at init time regardless of the
// order callers list them in.
type rangeSegmentHeap []rangeSegment

func (h rangeSegmentHeap) Len() int           { return len(h) }
func (h rangeSegmentHeap) Less(i, j int) bool { return h[i].Index < h[j].Index }
func (h rangeSegmentHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rangeSegmentHeap) Push(x any) { *h = append(*h, x.(rangeSegment)) }

func (h *rangeSegmentHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// RangeTable is a sorted list of breakpoint segments supporting the
// piecewise-linear index<->codepoint mapping spec §4.7 describes for
// GB18030's four-byte BMP region.
type RangeTable struct {
	segments []rangeSegment
}

// NewRangeTable builds a RangeTable from (index, codepoint) breakpoint
// pairs given in any order, draining a rangeSegmentHeap to sort them.
func NewRangeTable(pairs [][2]int) *RangeTable {
	h := make(rangeSegmentHeap, 0, len(pairs))
	heap.Init(&h)
	for _, p := range pairs {
		heap.Push(&h, rangeSegment{Index: p[0], Codepoint: rune(p[1])})
	}
	sorted := make([]rangeSegment, 0, len(pairs))
	for h.Len() > 0 {
		sorted = append(sorted, heap.Pop(&h).(rangeSegment))
	}
	return &RangeTable{segments: sorted}
}

// Forward returns the codepoint for idx, or Unmapped if idx precedes the
// first breakpoint.
func (t *RangeTable) Forward(idx int) rune {
	i := sort.Search(len(t.segments), func(i int) bool { return t.segments[i].Index > idx })
	if i == 0 {
		return Unmapped
	}
	seg := t.segments[i-1]
	return seg.Codepoint + rune(idx-seg.Index)
}

// Backward returns the four-byte index for cp, if cp falls within some
// segment's codepoint range. A handful of segments at most are expected
// for this table, so a linear scan is simpler than maintaining a reverse
// index.
func (t *RangeTable) Backward(cp rune) (int, bool) {
	for i, seg := range t.segments {
		hi := rune(-1)
		if i+1 < len(t.segments) {
			hi = t.segments[i+1].Codepoint
		}
		if cp >= seg.Codepoint && (hi < 0 || cp < hi) {
			return seg.Index + int(cp-seg.Codepoint), true
		}
	}
	return 0, false
}
