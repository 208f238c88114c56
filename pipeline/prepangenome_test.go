// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"testing"

	"github.com/starius/npge/block"
	"github.com/starius/npge/blockops"
	"github.com/starius/npge/seq"
)

func mustSeq(t *testing.T, name, s string) seq.Sequence {
	t.Helper()
	d, err := seq.NewDense(name, "", "", []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestMakePrePangenomeRunsEveryStageWithoutError(t *testing.T) {
	s1 := mustSeq(t, "s1", "ACGTACGTACGTACGTACGTACGTACGTACGT")
	s2 := mustSeq(t, "s2", "ACGTACGTACGTACGTACGTACGTACGTACGT")
	bs := block.NewBlockSet([]seq.Sequence{s1, s2})

	opts := DefaultOptions()
	opts.K = 8
	opts.Limits = blockops.DefaultLimits()
	opts.Limits.MinBlock = 2

	pipe := MakePrePangenome(bs, opts)
	if err := pipe.Run(); err != nil {
		t.Fatal(err)
	}

	// Rest guarantees the whole of every sequence ends up covered by
	// some block, regardless of what the earlier stages found.
	covered := 0
	for _, id := range bs.Blocks() {
		blk := bs.Block(id)
		for _, fid := range blk.Fragments {
			covered += bs.Fragments.Get(fid).Length()
		}
	}
	if covered == 0 {
		t.Fatal("expected at least some coverage after the full pipeline")
	}
}
