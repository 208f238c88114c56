// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlaps

import (
	"testing"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
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

func TestResolveReciprocalMatchStaysWhole(t *testing.T) {
	s1 := mustSeq(t, "s1", "ACGTACGTAA")
	s2 := mustSeq(t, "s2", "ACGTACGTAA")

	other := block.NewBlockSet([]seq.Sequence{s1, s2})
	b := block.NewNamed("whole")
	b.Add(other.Fragments.Add(frag.New(s1, 0, 9, 1)))
	b.Add(other.Fragments.Add(frag.New(s2, 0, 9, 1)))
	other.AddBlock(b)

	target := block.NewBlockSet([]seq.Sequence{s1, s2})
	r := NewResolver(1)
	r.Resolve(target, other)

	if target.Size() != 1 {
		t.Fatalf("got %d blocks, want 1", target.Size())
	}
	for _, id := range target.Blocks() {
		blk := target.Block(id)
		if blk.Size() != 2 {
			t.Fatalf("got %d fragments, want 2", blk.Size())
		}
		for _, fid := range blk.Fragments {
			f := target.Fragments.Get(fid)
			if f.MinPos != 0 || f.MaxPos != 9 {
				t.Errorf("fragment %+v does not span the whole sequence", f)
			}
		}
	}
}

func TestResolveSplitsUnlinkedRegionsIntoSeparateBlocks(t *testing.T) {
	seqStr := "ACGTACGTACGTACGTACGT" // 20 bases
	s1 := mustSeq(t, "s1", seqStr)
	s2 := mustSeq(t, "s2", seqStr)

	other := block.NewBlockSet([]seq.Sequence{s1, s2})

	a := block.NewNamed("a")
	a.Add(other.Fragments.Add(frag.New(s1, 0, 4, 1)))
	a.Add(other.Fragments.Add(frag.New(s2, 0, 4, 1)))
	other.AddBlock(a)

	c := block.NewNamed("c")
	c.Add(other.Fragments.Add(frag.New(s1, 10, 14, 1)))
	c.Add(other.Fragments.Add(frag.New(s2, 10, 14, 1)))
	other.AddBlock(c)

	target := block.NewBlockSet([]seq.Sequence{s1, s2})
	r := NewResolver(1)
	r.Resolve(target, other)

	if target.Size() != 2 {
		t.Fatalf("got %d blocks, want 2", target.Size())
	}
	total := 0
	for _, id := range target.Blocks() {
		blk := target.Block(id)
		if blk.Size() != 2 {
			t.Errorf("block has %d fragments, want 2", blk.Size())
		}
		for _, fid := range blk.Fragments {
			f := target.Fragments.Get(fid)
			if f.Length() != 5 {
				t.Errorf("fragment %+v has length %d, want 5", f, f.Length())
			}
			total++
		}
	}
	if total != 4 {
		t.Fatalf("got %d total fragments, want 4", total)
	}
}
