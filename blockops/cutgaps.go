// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockops

import (
	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
)

// CutMode selects how CutGaps finds the column range to keep.
type CutMode int

const (
	// Strict requires every row to be gapless at both boundary columns.
	Strict CutMode = iota
	// Permissive keeps the columns that lie inside every row's own
	// first-to-last non-gap span (the intersection of those spans).
	Permissive
)

// CutGaps trims a block's alignment to the widest column range free of
// terminal gaps, per spec §4.6. It is grounded on original_source
// CutGaps.cpp's find_boundaries_strict/find_boundaries_permissive and
// slice_fragment.
type CutGaps struct {
	Mode   CutMode
	NewRow RowFactory
}

// NewCutGaps returns a CutGaps in the given mode, producing BitsetRows.
func NewCutGaps(mode CutMode) *CutGaps {
	return &CutGaps{Mode: mode, NewRow: defaultRowFactory}
}

// Apply trims blk in place against arena, reporting whether anything
// changed. blk must carry a full alignment (HasAlignment); a block with
// no rows, or with fewer than one fragment, is left untouched.
func (c *CutGaps) Apply(blk *block.Block, arena *frag.Arena) bool {
	if blk.Size() == 0 || !blk.HasAlignment() {
		return false
	}
	length := blk.AlignmentLength()

	var from, to int
	switch c.Mode {
	case Strict:
		from, to = findBoundariesStrict(blk, length)
	default:
		from, to = findBoundariesPermissive(blk, length)
	}
	if from == 0 && to == length-1 {
		return false
	}

	newRow := c.NewRow
	if newRow == nil {
		newRow = defaultRowFactory
	}

	if to < from {
		for _, fid := range append([]frag.ID(nil), blk.Fragments...) {
			removeFragment(blk, arena, fid)
		}
		return true
	}

	cols := make([]int, to-from+1)
	for i := range cols {
		cols[i] = from + i
	}
	for _, fid := range append([]frag.ID(nil), blk.Fragments...) {
		old := blk.Row(fid)
		if !rebuildRow(arena, blk, fid, newRow, old, cols, nil) {
			removeFragment(blk, arena, fid)
		}
	}
	return true
}

// ApplyBlockSet runs Apply over every block of bs, removing any block
// left empty, and returns the number of blocks changed.
func (c *CutGaps) ApplyBlockSet(bs *block.BlockSet) int {
	touched := 0
	for _, id := range bs.Blocks() {
		blk := bs.Block(id)
		if c.Apply(blk, bs.Fragments) {
			touched++
		}
		if blk.Size() == 0 {
			bs.RemoveBlock(id)
		}
	}
	return touched
}

// findBoundariesStrict returns the widest [from, to] such that every row
// is gapless at both from and to.
func findBoundariesStrict(blk *block.Block, length int) (from, to int) {
	from, to = 0, length-1
	for from <= to && !columnGapless(blk, from) {
		from++
	}
	for to >= from && !columnGapless(blk, to) {
		to--
	}
	return from, to
}

func columnGapless(blk *block.Block, col int) bool {
	for _, fid := range blk.Fragments {
		if _, gap := blk.Row(fid).MapToFragment(col); gap {
			return false
		}
	}
	return true
}

// findBoundariesPermissive returns the [from, to] that is within every
// row's own first-to-last non-gap column span.
func findBoundariesPermissive(blk *block.Block, length int) (from, to int) {
	from, to = 0, length-1
	for _, fid := range blk.Fragments {
		row := blk.Row(fid)
		for i := 0; i < length; i++ {
			if _, gap := row.MapToFragment(i); !gap {
				if i > from {
					from = i
				}
				break
			}
		}
		for i := length - 1; i >= 0; i-- {
			if _, gap := row.MapToFragment(i); !gap {
				if i < to {
					to = i
				}
				break
			}
		}
	}
	return from, to
}
