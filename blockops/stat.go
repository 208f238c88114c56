// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockops

import (
	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
)

// Stat summarizes a block's alignment columns, grounded on
// original_source block_stat.cpp's AlignmentStat/make_stat/test_column.
// Every column is classified into exactly one of the five counts below;
// Filter's identity/gaps thresholds are both derived from these counts.
type Stat struct {
	IdentNoGap   int // every row agrees, no gap present
	IdentGap     int // every present row agrees, at least one gap
	NoIdentNoGap int // rows disagree, no gap present
	NoIdentGap   int // rows disagree, at least one gap
	PureGap      int // every row is a gap
	Spreading    float64
}

// Total is the number of alignment columns counted.
func (s Stat) Total() int {
	return s.IdentNoGap + s.IdentGap + s.NoIdentNoGap + s.NoIdentGap + s.PureGap
}

// Identity is block_identity: ident columns count fully, half-identical
// (gapped but otherwise agreeing) columns count half, pure-gap columns
// are excluded from both numerator and denominator.
func (s Stat) Identity() float64 {
	total := s.IdentNoGap + s.IdentGap + s.NoIdentNoGap + s.NoIdentGap
	if total == 0 {
		return 0
	}
	accepted := float64(s.IdentNoGap) + float64(s.IdentGap)/2
	return accepted / float64(total)
}

// GapFraction is the proportion of all counted columns that contain at
// least one gap (ident_gap + noident_gap + pure_gap, over total).
func (s Stat) GapFraction() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.IdentGap+s.NoIdentGap+s.PureGap) / float64(total)
}

// ComputeStat walks every alignment column of blk, classifying each by
// comparing the actual residues (read back through arena) of every row
// that is not a gap there, and computes fragment-length spreading
// ((max-min)/avg), per make_stat. blk must carry a full alignment.
func ComputeStat(blk *block.Block, arena *frag.Arena) Stat {
	var s Stat
	length := blk.AlignmentLength()
	for col := 0; col < length; col++ {
		ident, gap, pureGap := testColumn(blk, arena, col)
		switch {
		case pureGap:
			s.PureGap++
		case ident && !gap:
			s.IdentNoGap++
		case ident && gap:
			s.IdentGap++
		case !ident && !gap:
			s.NoIdentNoGap++
		default:
			s.NoIdentGap++
		}
	}

	if len(blk.Fragments) > 0 {
		min, max, sum := -1, -1, 0
		for _, fid := range blk.Fragments {
			l := arena.Get(fid).Length()
			if min == -1 || l < min {
				min = l
			}
			if l > max {
				max = l
			}
			sum += l
		}
		avg := float64(sum) / float64(len(blk.Fragments))
		if avg > 0 {
			s.Spreading = float64(max-min) / avg
		}
	}
	return s
}

// testColumn classifies one alignment column: pureGap is true iff every
// row is a gap there; gap is true iff at least one row is a gap there;
// ident is true iff every non-gap row's residue (read through arena via
// the row's fragment-offset mapping) agrees.
func testColumn(blk *block.Block, arena *frag.Arena, col int) (ident, gap, pureGap bool) {
	ident = true
	var seenLetter byte
	seenAny := false
	for _, fid := range blk.Fragments {
		pos, g := blk.Row(fid).MapToFragment(col)
		if g {
			gap = true
			continue
		}
		seenAny = true
		letter := arena.Get(fid).RawAt(pos)
		if seenLetter == 0 {
			seenLetter = letter
		} else if letter != seenLetter {
			ident = false
		}
	}
	pureGap = !seenAny
	return ident, gap, pureGap
}
