// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlaps

import (
	"math/rand"
	"testing"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// randomOther builds a BlockSet of randomly placed, possibly overlapping
// fragments on s1 and s2, exercising the full range of cases Resolve's
// point-graph construction has to disentangle.
func randomOther(rnd *rand.Rand, s1, s2 seq.Sequence, seqLen int) *block.BlockSet {
	other := block.NewBlockSet([]seq.Sequence{s1, s2})
	sequences := []seq.Sequence{s1, s2}
	n := rnd.Intn(6)
	for i := 0; i < n; i++ {
		width := 1 + rnd.Intn(6)
		start := rnd.Intn(seqLen - width + 1)
		b := block.NewNamed("")
		nfrags := 1 + rnd.Intn(2) // 1 or 2 fragments per block
		for j := 0; j < nfrags; j++ {
			s := sequences[rnd.Intn(len(sequences))]
			ori := int8(1)
			if rnd.Intn(2) == 0 {
				ori = -1
			}
			b.Add(other.Fragments.Add(frag.New(s, start, start+width-1, ori)))
		}
		other.AddBlock(b)
	}
	return other
}

// TestResolveOutputNeverOverlapsOnASequence is a randomized check of
// invariant 3 of spec §8: across many random candidate block sets,
// Resolve must never emit two fragments on the same sequence that share
// a position.
func TestResolveOutputNeverOverlapsOnASequence(t *testing.T) {
	const seqLen = 30
	base := make([]byte, seqLen)
	for i := range base {
		base[i] = "ACGT"[i%4]
	}
	s1, err := seq.NewDense("s1", "", "", base)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := seq.NewDense("s2", "", "", base)
	if err != nil {
		t.Fatal(err)
	}

	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		other := randomOther(rnd, s1, s2, seqLen)

		target := block.NewBlockSet([]seq.Sequence{s1, s2})
		r := NewResolver(1)
		r.Resolve(target, other)

		bySeq := map[seq.Sequence][]frag.Fragment{}
		for _, id := range target.Blocks() {
			blk := target.Block(id)
			for _, fid := range blk.Fragments {
				f := target.Fragments.Get(fid)
				bySeq[f.Seq] = append(bySeq[f.Seq], f)
			}
		}
		for s, frags := range bySeq {
			for i := 0; i < len(frags); i++ {
				for j := i + 1; j < len(frags); j++ {
					if frag.CommonPositions(frags[i], frags[j]) > 0 {
						t.Fatalf("trial %d: fragments %+v and %+v on %v overlap", trial, frags[i], frags[j], s)
					}
				}
			}
		}
	}
}
