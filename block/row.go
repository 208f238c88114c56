// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

// AlignmentRow maps between a fragment's own positions and alignment
// columns. '-' denotes a gap column in the string form consumed by Grow.
// All rows of a block must share the same Length (spec §3 invariant).
type AlignmentRow interface {
	Length() int
	// MapToFragment returns the fragment-position offset at column c, or
	// gap=true if c is a gap column.
	MapToFragment(c int) (pos int, gap bool)
	// MapToAlignment returns the column holding fragment-position pos.
	MapToAlignment(pos int) (c int)
	// Grow appends s ('-' for gap, any other byte for one more residue)
	// to the row.
	Grow(s string)
}

// BitsetRow is the compact AlignmentRow representation: a gap flag per
// column plus two position tables (column to fragment offset, fragment
// offset to column), so MapToFragment and MapToAlignment are both O(1).
type BitsetRow struct {
	gap    []bool
	toFrag []int // toFrag[c] = fragment offset at column c, -1 if gap
	toCol  []int // toCol[pos] = column holding fragment offset pos
}

// NewBitsetRow returns an empty BitsetRow.
func NewBitsetRow() *BitsetRow {
	return &BitsetRow{}
}

func (r *BitsetRow) Length() int { return len(r.gap) }

func (r *BitsetRow) MapToFragment(c int) (int, bool) {
	if c < 0 || c >= len(r.gap) {
		panic("block: column out of range")
	}
	if r.gap[c] {
		return 0, true
	}
	return r.toFrag[c], false
}

func (r *BitsetRow) MapToAlignment(pos int) int {
	if pos < 0 || pos >= len(r.toCol) {
		panic("block: fragment position out of range")
	}
	return r.toCol[pos]
}

// Grow appends one column per byte of s: '-' for a gap column, any other
// byte for one more residue (its value is not otherwise inspected;
// BitsetRow records structure only, residue identity lives in the
// Fragment).
func (r *BitsetRow) Grow(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			r.gap = append(r.gap, true)
			r.toFrag = append(r.toFrag, -1)
		} else {
			r.gap = append(r.gap, false)
			pos := len(r.toCol)
			r.toFrag = append(r.toFrag, pos)
			r.toCol = append(r.toCol, len(r.gap)-1)
		}
	}
}

// MapRow is the sparse AlignmentRow representation, a plain map from
// column to fragment position, used when a block's rows are short-lived
// or mostly gap and the bitset's O(1) lookup tables aren't worth the
// allocation.
type MapRow struct {
	length int
	toFrag map[int]int
	toCol  map[int]int
}

// NewMapRow returns an empty MapRow.
func NewMapRow() *MapRow {
	return &MapRow{toFrag: map[int]int{}, toCol: map[int]int{}}
}

func (r *MapRow) Length() int { return r.length }

func (r *MapRow) MapToFragment(c int) (int, bool) {
	if c < 0 || c >= r.length {
		panic("block: column out of range")
	}
	pos, ok := r.toFrag[c]
	return pos, !ok
}

func (r *MapRow) MapToAlignment(pos int) int {
	c, ok := r.toCol[pos]
	if !ok {
		panic("block: fragment position out of range")
	}
	return c
}

func (r *MapRow) Grow(s string) {
	for i := 0; i < len(s); i++ {
		c := r.length
		r.length++
		if s[i] != '-' {
			pos := len(r.toFrag)
			r.toFrag[c] = pos
			r.toCol[pos] = c
		}
	}
}
