// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockops

import (
	"fmt"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
)

// Limits is the threshold option set of spec §4.6's Filter, grounded on
// original_source SizeLimits.cpp's add_size_limits_options. -1 on a
// *Fragment/*Block bound means unbounded, matching the original's
// convention.
type Limits struct {
	MinFragment, MaxFragment int
	MinBlock, MaxBlock       int
	MinSpreading, MaxSpreading float64
	MinIdentity, MaxIdentity   float64
	MinGaps, MaxGaps           float64
}

// DefaultLimits returns the maximally permissive limits of
// SizeLimits.cpp's allow_everything, except MinBlock, which keeps the
// file's one literal (non-global-option) default of 2.
func DefaultLimits() Limits {
	return Limits{
		MinFragment: 0, MaxFragment: -1,
		MinBlock: 2, MaxBlock: -1,
		MinSpreading: 0, MaxSpreading: 999999.9,
		MinIdentity: 0, MaxIdentity: 1,
		MinGaps: 0, MaxGaps: 1,
	}
}

// Validate checks the add_opt_rule bounds from SizeLimits.cpp.
func (l Limits) Validate() error {
	switch {
	case l.MinFragment < 0:
		return fmt.Errorf("blockops: min-fragment must be >= 0")
	case l.MaxFragment < -1:
		return fmt.Errorf("blockops: max-fragment must be >= -1")
	case l.MinBlock < 0:
		return fmt.Errorf("blockops: min-block must be >= 0")
	case l.MaxBlock < -1:
		return fmt.Errorf("blockops: max-block must be >= -1")
	case l.MinSpreading < 0 || l.MaxSpreading < 0:
		return fmt.Errorf("blockops: spreading bounds must be >= 0")
	case l.MinIdentity < 0 || l.MinIdentity > 1 || l.MaxIdentity < 0 || l.MaxIdentity > 1:
		return fmt.Errorf("blockops: identity bounds must be within [0,1]")
	case l.MinGaps < 0 || l.MinGaps > 1 || l.MaxGaps < 0 || l.MaxGaps > 1:
		return fmt.Errorf("blockops: gaps bounds must be within [0,1]")
	}
	return nil
}

// Filter is spec §4.6's block quality predicate, grounded on
// original_source AreBlocksGood.cpp's use of Filter and SizeLimits.cpp's
// option registry.
type Filter struct {
	Limits Limits
}

// NewFilter returns a Filter with the default (maximally permissive
// except min-block) limits.
func NewFilter() *Filter {
	return &Filter{Limits: DefaultLimits()}
}

// IsGood reports whether blk passes every configured threshold. Identity
// and gaps thresholds are only evaluated when blk carries a full
// alignment (spec: "only if alignment is known"); a block with no
// alignment is judged on fragment/block size and spreading alone.
func (f *Filter) IsGood(blk *block.Block, arena *frag.Arena) bool {
	n := blk.Size()
	if f.Limits.MinBlock != -1 && n < f.Limits.MinBlock {
		return false
	}
	if f.Limits.MaxBlock != -1 && n > f.Limits.MaxBlock {
		return false
	}
	for _, fid := range blk.Fragments {
		l := arena.Get(fid).Length()
		if f.Limits.MinFragment != -1 && l < f.Limits.MinFragment {
			return false
		}
		if f.Limits.MaxFragment != -1 && l > f.Limits.MaxFragment {
			return false
		}
	}

	if n > 0 {
		view := blk
		if !blk.HasAlignment() {
			// A row-less view of the same fragments: ComputeStat then
			// counts no columns and yields spreading only.
			view = &block.Block{Fragments: blk.Fragments}
		}
		stat := ComputeStat(view, arena)
		if stat.Spreading < f.Limits.MinSpreading || stat.Spreading > f.Limits.MaxSpreading {
			return false
		}
		if blk.HasAlignment() && stat.Total() > 0 {
			id := stat.Identity()
			if id < f.Limits.MinIdentity || id > f.Limits.MaxIdentity {
				return false
			}
			g := stat.GapFraction()
			if g < f.Limits.MinGaps || g > f.Limits.MaxGaps {
				return false
			}
		}
	}
	return true
}

// ApplyBlockSet removes every block of bs that does not pass IsGood and
// returns the number removed.
func (f *Filter) ApplyBlockSet(bs *block.BlockSet) int {
	removed := 0
	for _, id := range bs.Blocks() {
		if !f.IsGood(bs.Block(id), bs.Fragments) {
			bs.RemoveBlock(id)
			removed++
		}
	}
	return removed
}
