// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockops

import (
	"math/rand"
	"sort"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// Rest computes the complement of a block set's coverage, per spec
// §4.6 and Scenarios 4-5, grounded directly on original_source
// src/test/rest.cpp: every maximal interval of a sequence not covered by
// any fragment of any block in source becomes a single-fragment block
// inserted into target.
type Rest struct {
	Rand *rand.Rand
}

// NewRest returns a Rest with a deterministic block-naming source.
func NewRest() *Rest {
	return &Rest{Rand: rand.New(rand.NewSource(1))}
}

// Apply inserts into target one block per uncovered interval of each of
// source's sequences, and returns how many were added. target may be
// source itself (Scenario 5's "applied in place"); coverage is always
// read from source's blocks as they stood before this call.
func (r *Rest) Apply(source, target *block.BlockSet) int {
	covered := map[seq.Sequence][][2]int{}
	for _, id := range source.Blocks() {
		blk := source.Block(id)
		for _, fid := range blk.Fragments {
			f := source.Fragments.Get(fid)
			covered[f.Seq] = append(covered[f.Seq], [2]int{f.MinPos, f.MaxPos})
		}
	}

	added := 0
	for _, s := range source.Sequences {
		intervals := covered[s]
		sort.Slice(intervals, func(i, j int) bool { return intervals[i][0] < intervals[j][0] })
		pos := 0
		for _, iv := range intervals {
			if iv[0] > pos {
				r.addBlock(target, s, pos, iv[0]-1)
				added++
			}
			if iv[1]+1 > pos {
				pos = iv[1] + 1
			}
		}
		if pos < s.Size() {
			r.addBlock(target, s, pos, s.Size()-1)
			added++
		}
	}
	return added
}

// ApplyInPlace is Apply(bs, bs).
func (r *Rest) ApplyInPlace(bs *block.BlockSet) int {
	return r.Apply(bs, bs)
}

func (r *Rest) addBlock(target *block.BlockSet, s seq.Sequence, from, to int) {
	b := block.New(r.Rand)
	fid := target.Fragments.Add(frag.New(s, from, to, 1))
	b.Add(fid)
	target.AddBlock(b)
}
