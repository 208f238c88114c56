// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockops

import (
	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
)

// HasSelfOverlaps reports whether two fragments of blk share the same
// sequence and overlap in position, per original_source hit.hpp's
// has_self_overlaps. A block with fragments from distinct genomes
// aligned against one another (the common case) never has self
// overlaps; they arise only when a genome's own repeat ends up aligned
// against itself within one block.
func HasSelfOverlaps(blk *block.Block, arena *frag.Arena) bool {
	frags := make([]frag.Fragment, len(blk.Fragments))
	for i, fid := range blk.Fragments {
		frags[i] = arena.Get(fid)
	}
	for i := 0; i < len(frags); i++ {
		for j := i + 1; j < len(frags); j++ {
			if frags[i].Seq == frags[j].Seq && frag.CommonPositions(frags[i], frags[j]) > 0 {
				return true
			}
		}
	}
	return false
}

// SelfOverlapFixer resolves same-sequence fragment overlaps within a
// block (spec §8 Scenarios 1-3), grounded on original_source hit.hpp's
// fix_self_overlaps and its test file src/test/hit.cpp. Same-orientation
// pairs have their shared region trimmed away from both fragments;
// opposite-orientation pairs (inverted repeats) have it split at its
// midpoint, the forward-strand fragment keeping the first half and the
// reverse-strand fragment the second half.
type SelfOverlapFixer struct {
	NewRow RowFactory
}

// NewSelfOverlapFixer returns a SelfOverlapFixer producing BitsetRows for
// any row it has to rebuild.
func NewSelfOverlapFixer() *SelfOverlapFixer {
	return &SelfOverlapFixer{NewRow: defaultRowFactory}
}

// FixSelfOverlaps repeatedly resolves same-sequence overlapping fragment
// pairs in blk until none remain, reporting whether anything changed.
// Fragments that no longer occupy any position are removed from blk.
func (s *SelfOverlapFixer) FixSelfOverlaps(blk *block.Block, arena *frag.Arena) bool {
	changed := false
	for {
		fixedOne := false
		frags := blk.Fragments
		for i := 0; i < len(frags); i++ {
			for j := i + 1; j < len(frags); j++ {
				a, b := arena.Get(frags[i]), arena.Get(frags[j])
				if a.Seq != b.Seq || frag.CommonPositions(a, b) == 0 {
					continue
				}
				s.fixPair(blk, arena, frags[i], frags[j])
				fixedOne = true
				changed = true
				break
			}
			if fixedOne {
				break
			}
		}
		if !fixedOne {
			break
		}
	}
	return changed
}

// fixPair resolves the overlap between fid1 and fid2, which must share a
// sequence and overlap in position.
func (s *SelfOverlapFixer) fixPair(blk *block.Block, arena *frag.Arena, fid1, fid2 frag.ID) {
	a, b := arena.Get(fid1), arena.Get(fid2)
	lo := a.MinPos
	if b.MinPos > lo {
		lo = b.MinPos
	}
	hi := a.MaxPos
	if b.MaxPos < hi {
		hi = b.MaxPos
	}

	if a.Ori == b.Ori {
		s.trimOverlap(blk, arena, fid1, a, lo, hi)
		s.trimOverlap(blk, arena, fid2, b, lo, hi)
		return
	}

	mid := lo + (hi-lo+1)/2
	fwd, rev := fid1, fid2
	fwdF, revF := a, b
	if fwdF.Ori != 1 {
		fwd, rev = fid2, fid1
		fwdF, revF = b, a
	}
	s.clipFragment(blk, arena, fwd, fwdF, lo, mid-1)
	s.clipFragment(blk, arena, rev, revF, mid, hi)
}

// trimOverlap removes the portion of f (id fid) within [lo, hi] entirely:
// whichever side of f the overlap sits on is cut away. If f is wholly
// contained in [lo, hi] (the full-duplicate scenario), fid is dropped.
func (s *SelfOverlapFixer) trimOverlap(blk *block.Block, arena *frag.Arena, fid frag.ID, f frag.Fragment, lo, hi int) {
	if f.MinPos >= lo && f.MaxPos <= hi {
		removeFragment(blk, arena, fid)
		return
	}
	var newMin, newMax int
	if f.MinPos < lo {
		newMin, newMax = f.MinPos, lo-1
	} else {
		newMin, newMax = hi+1, f.MaxPos
	}
	s.setCoords(blk, arena, fid, f, newMin, newMax)
}

// clipFragment narrows f (id fid) to [newMin, newMax], used for the
// inverted-repeat midpoint split; newMin/newMax are always within f's
// existing span. If the requested window is empty, fid is dropped.
func (s *SelfOverlapFixer) clipFragment(blk *block.Block, arena *frag.Arena, fid frag.ID, f frag.Fragment, newMin, newMax int) {
	lo, hi := f.MinPos, f.MaxPos
	if newMin > lo {
		lo = newMin
	}
	if newMax < hi {
		hi = newMax
	}
	if hi < lo {
		removeFragment(blk, arena, fid)
		return
	}
	s.setCoords(blk, arena, fid, f, lo, hi)
}

// setCoords rebuilds fid's row (if any) to the sub-window [newMin,
// newMax] of f's own span, then replaces its arena entry, preserving
// Prev/Next/Block.
func (s *SelfOverlapFixer) setCoords(blk *block.Block, arena *frag.Arena, fid frag.ID, f frag.Fragment, newMin, newMax int) {
	if row := blk.Row(fid); row != nil {
		newRow := s.NewRow
		if newRow == nil {
			newRow = defaultRowFactory
		}
		fromOffset := newMin - f.MinPos
		toOffset := newMax - f.MinPos
		var fromCol, toCol int
		if f.Ori == 1 {
			fromCol, toCol = row.MapToAlignment(fromOffset), row.MapToAlignment(toOffset)
		} else {
			fromCol, toCol = row.MapToAlignment(f.Length()-1-toOffset), row.MapToAlignment(f.Length()-1-fromOffset)
		}
		cols := make([]int, toCol-fromCol+1)
		for i := range cols {
			cols[i] = fromCol + i
		}
		if !rebuildRow(arena, blk, fid, newRow, row, cols, nil) {
			removeFragment(blk, arena, fid)
			return
		}
		return
	}

	nf := frag.New(f.Seq, newMin, newMax, f.Ori)
	nf.Prev, nf.Next, nf.Block = f.Prev, f.Next, f.Block
	arena.Set(fid, nf)
}
