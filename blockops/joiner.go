// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockops

import (
	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// Joiner merges pairs of blocks whose fragments are pairwise adjacent and
// mergeable across every sequence they share, per spec §4.6. It runs
// before alignment (it discards any existing rows on the blocks it
// merges, like the anchor-stage blocks it is meant for) and requires
// both blocks to cover exactly the same set of sequences with one
// fragment each.
type Joiner struct{}

// NewJoiner returns a ready Joiner.
func NewJoiner() *Joiner { return &Joiner{} }

// ApplyBlockSet repeatedly merges joinable block pairs of bs until no
// more merges apply, and returns how many merges were performed. This is
// also the behaviour spec §4.6 calls Union: Joiner run to a fixed point.
func (j *Joiner) ApplyBlockSet(bs *block.BlockSet) int {
	merges := 0
	for {
		if !j.mergeOnePair(bs) {
			return merges
		}
		merges++
	}
}

func (j *Joiner) mergeOnePair(bs *block.BlockSet) bool {
	ids := bs.Blocks()
	for i := 0; i < len(ids); i++ {
		for k := i + 1; k < len(ids); k++ {
			b1, b2 := bs.Block(ids[i]), bs.Block(ids[k])
			if pairs := matchFragments(bs, b1, b2); pairs != nil {
				mergeBlocks(bs, b2, pairs)
				for fid1 := range pairs {
					b1.RemoveRow(fid1)
				}
				return true
			}
		}
	}
	return false
}

// matchFragments returns, for every fragment of b1, the fragment of b2 on
// the same sequence that it is mergeable with, or nil if b1 and b2 do not
// cover exactly the same sequences one-for-one and mergeably.
func matchFragments(bs *block.BlockSet, b1, b2 *block.Block) map[frag.ID]frag.ID {
	if b1.Size() == 0 || b1.Size() != b2.Size() {
		return nil
	}
	bySeq2 := map[seq.Sequence]frag.ID{}
	for _, fid := range b2.Fragments {
		f := bs.Fragments.Get(fid)
		if _, dup := bySeq2[f.Seq]; dup {
			return nil
		}
		bySeq2[f.Seq] = fid
	}
	pairs := make(map[frag.ID]frag.ID, b1.Size())
	for _, fid1 := range b1.Fragments {
		f1 := bs.Fragments.Get(fid1)
		fid2, ok := bySeq2[f1.Seq]
		if !ok {
			return nil
		}
		f2 := bs.Fragments.Get(fid2)
		if !frag.Mergeable(f1, f2) {
			return nil
		}
		pairs[fid1] = fid2
	}
	return pairs
}

// mergeBlocks extends each fid1 in pairs to also span its paired fid2,
// drops fid2, then removes the now-empty b2 from bs.
func mergeBlocks(bs *block.BlockSet, b2 *block.Block, pairs map[frag.ID]frag.ID) {
	for fid1, fid2 := range pairs {
		f1 := bs.Fragments.Get(fid1)
		f2 := bs.Fragments.Get(fid2)
		minPos, maxPos := f1.MinPos, f1.MaxPos
		if f2.MinPos < minPos {
			minPos = f2.MinPos
		}
		if f2.MaxPos > maxPos {
			maxPos = f2.MaxPos
		}
		merged := frag.New(f1.Seq, minPos, maxPos, f1.Ori)
		merged.Prev, merged.Next, merged.Block = f1.Prev, f1.Next, f1.Block
		bs.Fragments.Set(fid1, merged)
		b2.Remove(fid2)
		if bs.Fragments.Live(fid2) {
			bs.Fragments.Remove(fid2)
		}
	}
	var b2ID block.ID
	for _, id := range bs.Blocks() {
		if bs.Block(id) == b2 {
			b2ID = id
			break
		}
	}
	bs.RemoveBlock(b2ID)
}

// Stem keeps only blocks whose fragments cover every genome in the block
// set exactly once, per spec §4.6.
type Stem struct{}

// NewStem returns a ready Stem.
func NewStem() *Stem { return &Stem{} }

// ApplyBlockSet removes every block of bs that is not a stem block and
// returns the number removed.
func (st *Stem) ApplyBlockSet(bs *block.BlockSet) int {
	genomes := map[string]bool{}
	for _, s := range bs.Sequences {
		genomes[genomeOf(s)] = true
	}

	removed := 0
	for _, id := range bs.Blocks() {
		blk := bs.Block(id)
		counts := map[string]int{}
		for _, fid := range blk.Fragments {
			f := bs.Fragments.Get(fid)
			counts[genomeOf(f.Seq)]++
		}
		good := len(counts) == len(genomes)
		if good {
			for _, c := range counts {
				if c != 1 {
					good = false
					break
				}
			}
		}
		if !good {
			bs.RemoveBlock(id)
			removed++
		}
	}
	return removed
}

func genomeOf(s seq.Sequence) string {
	if g := seq.Genome(s.Name()); g != "" {
		return g
	}
	return s.Name()
}
