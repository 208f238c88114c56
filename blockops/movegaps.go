// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockops

import (
	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
)

// MoveGaps clips short dangling tails of residues that sit right before a
// run of gap columns at either edge of a row, per spec §4.6. It is
// grounded on original_source CutGaps.cpp's gap-moving companion logic,
// referred to in AreBlocksGood.cpp as blocks having "short tails in
// alignment".
type MoveGaps struct {
	// MaxTail is the largest leading/trailing run of non-gap residues
	// that still gets clipped (T in spec §4.6). A run longer than this
	// is left alone.
	MaxTail int
	NewRow  RowFactory
}

// NewMoveGaps returns a MoveGaps with the given tail threshold.
func NewMoveGaps(maxTail int) *MoveGaps {
	return &MoveGaps{MaxTail: maxTail, NewRow: defaultRowFactory}
}

// Apply clips short terminal tails in every row of blk, reporting whether
// any row changed.
func (m *MoveGaps) Apply(blk *block.Block, arena *frag.Arena) bool {
	if blk.Size() == 0 || !blk.HasAlignment() {
		return false
	}
	newRow := m.NewRow
	if newRow == nil {
		newRow = defaultRowFactory
	}

	changed := false
	for _, fid := range append([]frag.ID(nil), blk.Fragments...) {
		if m.clip(blk, arena, fid, newRow) {
			changed = true
		}
	}
	return changed
}

// ApplyBlockSet runs Apply over every block of bs and returns the number
// of blocks changed. A fragment whose row has every residue clipped is
// removed from its block (see clip); unlike CutGaps.ApplyBlockSet, this
// does not remove blocks left empty that way.
func (m *MoveGaps) ApplyBlockSet(bs *block.BlockSet) int {
	touched := 0
	for _, id := range bs.Blocks() {
		if m.Apply(bs.Block(id), bs.Fragments) {
			touched++
		}
	}
	return touched
}

func (m *MoveGaps) clip(blk *block.Block, arena *frag.Arena, fid frag.ID, newRow RowFactory) bool {
	row := blk.Row(fid)
	if row == nil {
		return false
	}
	length := row.Length()

	lead := leadingNonGapRun(row, length, 1)
	trail := leadingNonGapRun(row, length, -1)
	if lead == 0 && trail == 0 {
		return false
	}

	force := make([]bool, length)
	clipped := false
	if lead > 0 && lead <= m.MaxTail {
		for i := 0; i < lead; i++ {
			force[i] = true
		}
		clipped = true
	}
	if trail > 0 && trail <= m.MaxTail {
		for i := 0; i < trail; i++ {
			force[length-1-i] = true
		}
		clipped = true
	}
	if !clipped {
		return false
	}

	if !rebuildRow(arena, blk, fid, newRow, row, identityCols(length), force) {
		removeFragment(blk, arena, fid)
	}
	return true
}

// leadingNonGapRun counts the run of non-gap columns from the edge chosen
// by dir (+1 = start, -1 = end) up to (not including) the first gap
// column encountered. It returns 0 if the row has no gap at all (there is
// no terminal gap run to move residues into).
func leadingNonGapRun(row block.AlignmentRow, length int, dir int) int {
	begin, step := 0, 1
	if dir == -1 {
		begin, step = length-1, -1
	}
	n := 0
	for i := 0; i < length; i++ {
		c := begin + i*step
		if _, gap := row.MapToFragment(c); gap {
			return n
		}
		n++
	}
	return 0
}
