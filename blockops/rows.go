// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockops provides the alignment-aware block predicates and
// transformations of spec §4.6: Filter, CutGaps, MoveGaps, Joiner/Union,
// Stem and Rest, plus the self-overlap fixer of spec §8.
package blockops

import (
	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
)

// RowFactory returns a fresh, empty AlignmentRow. CutGaps and MoveGaps take
// one so callers can choose BitsetRow (the default, O(1) lookups) or
// MapRow (cheaper for short-lived, mostly-gap rows) per spec §3.
type RowFactory func() block.AlignmentRow

// defaultRowFactory matches the teacher's own default: a compact row.
func defaultRowFactory() block.AlignmentRow { return block.NewBitsetRow() }

// removeFragment detaches fid from blk and, unless blk is a weak view,
// from the arena too, mirroring BlockSet.RemoveBlock's per-fragment
// cleanup but for a single fragment leaving a surviving block.
func removeFragment(blk *block.Block, arena *frag.Arena, fid frag.ID) {
	blk.Remove(fid)
	if !blk.Weak && arena.Live(fid) {
		arena.Remove(fid)
	}
}

// identityCols returns [0, n).
func identityCols(n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}
	return cols
}

// rebuildRow replaces fid's row with a fresh one covering the old row's
// columns named by cols, in order, optionally forcing some of them to gap
// (forceGap, nil if none), and advances fid's sequence coordinates to the
// first and last surviving (non-gap) column. It reports whether fid
// survived (has at least one non-gap column left); the caller removes fid
// if it did not.
//
// CutGaps calls this with cols = [from, to] to shrink the alignment
// window; MoveGaps calls it with cols = [0, length) and forceGap marking
// the clipped terminal residues, keeping the window's width unchanged.
func rebuildRow(arena *frag.Arena, blk *block.Block, fid frag.ID, newRow RowFactory, old block.AlignmentRow, cols []int, forceGap []bool) bool {
	gap := make([]bool, len(cols))
	pos := make([]int, len(cols))
	for i, c := range cols {
		p, g := old.MapToFragment(c)
		if forceGap != nil && forceGap[i] {
			g = true
		}
		gap[i], pos[i] = g, p
	}

	frFrom, frTo := -1, -1
	for i, g := range gap {
		if !g {
			if frFrom == -1 {
				frFrom = pos[i]
			}
			frTo = pos[i]
		}
	}
	if frFrom == -1 {
		return false
	}

	nr := newRow()
	for _, g := range gap {
		if g {
			nr.Grow("-")
		} else {
			nr.Grow("N")
		}
	}

	f := arena.Get(fid)
	begin := f.BeginPos() + frFrom*int(f.Ori)
	last := f.BeginPos() + frTo*int(f.Ori)
	var newMin, newMax int
	if f.Ori == 1 {
		newMin, newMax = begin, last
	} else {
		newMin, newMax = last, begin
	}
	nf := frag.New(f.Seq, newMin, newMax, f.Ori)
	nf.Prev, nf.Next, nf.Block = f.Prev, f.Next, f.Block
	arena.Set(fid, nf)
	blk.SetRow(fid, nr)
	return true
}
