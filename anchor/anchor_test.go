// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

import (
	"math/rand"
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

func TestFinderFindsRepeatedKmer(t *testing.T) {
	// Two identical 30nt sequences, so every 10-mer of s1 recurs at the
	// same position in s2 — scenario 6 of spec §8.
	base := "ACGTACGTACGTGGGGCCCCTTTTAAAAGG"
	s1 := mustSeq(t, "s1", base)
	s2 := mustSeq(t, "s2", base)

	f := NewFinder(10)
	f.Rand = rand.New(rand.NewSource(1))
	bs := f.Find([]seq.Sequence{s1, s2}, nil)

	if bs.Size() == 0 {
		t.Fatal("expected at least one anchor block")
	}
	for _, id := range bs.Blocks() {
		b := bs.Block(id)
		if b.Size() < 2 {
			t.Errorf("block %s has only %d fragments, want >= 2", b.Name, b.Size())
		}
	}
}

func TestExpanderGrowsOnAgreement(t *testing.T) {
	s1 := mustSeq(t, "s1", "AACGTACGTAA")
	s2 := mustSeq(t, "s2", "AACGTACGTAA")

	bs := block.NewBlockSet([]seq.Sequence{s1, s2})
	b := block.NewNamed("anchor")
	b.Add(bs.Fragments.Add(frag.New(s1, 2, 8, 1)))
	b.Add(bs.Fragments.Add(frag.New(s2, 2, 8, 1)))
	id := bs.AddBlock(b)

	ex := NewExpander()
	grew := ex.Expand(bs.Block(id), bs, nil)
	if !grew {
		t.Fatal("expected expansion on flanking agreement")
	}
	for _, fid := range bs.Block(id).Fragments {
		fr := bs.Fragments.Get(fid)
		if fr.Length() <= 7 {
			t.Errorf("fragment did not grow: length %d", fr.Length())
		}
	}
}
