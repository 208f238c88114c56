// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

import (
	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/fragcol"
	"github.com/starius/npge/seq"
)

// Expander grows every fragment of a block simultaneously by one base on
// both sides while the newly exposed bases agree (within MaxMismatches),
// per spec §4.3. It operates strictly on raw sequence content — no
// alignment row is consulted or produced.
type Expander struct {
	MaxMismatches int
	MaxOverlap    int
}

// NewExpander returns an Expander with exact-match extension and no
// tolerated overlap.
func NewExpander() *Expander {
	return &Expander{}
}

// Expand extends b's fragments in bs as far as agreement (and, on the
// overlap side, fc) allows, mutating their arena entries in place, and
// reports whether any extension occurred.
func (ex *Expander) Expand(b *block.Block, bs *block.BlockSet, fc *fragcol.Collection) bool {
	// orig holds each fragment as it stood when Expand began, which is how
	// fc indexes it.
	orig := make(map[frag.ID]frag.Fragment, len(b.Fragments))
	for _, fid := range b.Fragments {
		orig[fid] = bs.Fragments.Get(fid)
	}
	grew := false
	for ex.extendOnce(b, bs, fc, 1, orig) {
		grew = true
	}
	for ex.extendOnce(b, bs, fc, -1, orig) {
		grew = true
	}
	return grew
}

// extendOnce attempts to grow every fragment of b by one base in the
// given direction (+1 = downstream, -1 = upstream, in each fragment's own
// orientation), and commits the extension only if every fragment agrees
// on the new base (within MaxMismatches) and none would violate its
// sequence boundary or exceed MaxOverlap with an existing neighbour.
func (ex *Expander) extendOnce(b *block.Block, bs *block.BlockSet, fc *fragcol.Collection, dir int8, orig map[frag.ID]frag.Fragment) bool {
	if len(b.Fragments) == 0 {
		return false
	}

	letters := make([]byte, len(b.Fragments))
	for i, fid := range b.Fragments {
		f := bs.Fragments.Get(fid)
		pos := f.EndPos()
		if dir == -1 {
			pos = f.BeginPos() - int(f.Ori)
		}
		if pos < 0 || pos >= f.Seq.Size() {
			return false
		}
		nb := f.Seq.CharAt(pos)
		if f.Ori == -1 {
			nb = seq.Complement(nb)
		}
		letters[i] = nb
	}

	counts := map[byte]int{}
	for _, l := range letters {
		counts[l]++
	}
	best := -1
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	if len(letters)-best > ex.MaxMismatches {
		return false
	}

	grown := make([]frag.Fragment, len(b.Fragments))
	for i, fid := range b.Fragments {
		f := bs.Fragments.Get(fid)
		newMin, newMax := f.MinPos, f.MaxPos
		if (dir == 1) == (f.Ori == 1) {
			newMax++
		} else {
			newMin--
		}
		if newMin < 0 || newMax >= f.Seq.Size() {
			return false
		}
		candidate := frag.New(f.Seq, newMin, newMax, f.Ori)
		if fc != nil {
			overlap := 0
			self := orig[fid]
			for _, o := range fc.FindOverlapFragments(candidate) {
				if o.MinPos == self.MinPos && o.MaxPos == self.MaxPos && o.Ori == self.Ori {
					continue // this fragment itself, pre-extension
				}
				overlap += frag.CommonPositions(candidate, o)
			}
			if overlap > ex.MaxOverlap {
				return false
			}
		}
		grown[i] = candidate
	}

	for i, fid := range b.Fragments {
		bs.Fragments.Set(fid, grown[i])
	}
	return true
}
