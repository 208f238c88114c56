// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fragcol

import (
	"testing"

	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

func mustSeq(t *testing.T, s string) seq.Sequence {
	t.Helper()
	d, err := seq.NewDense("s", "", "", []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestHasOverlapVector(t *testing.T) {
	s := mustSeq(t, "TGGTCCGAGCGGACGGCC")
	c := NewVector()
	c.Add(frag.New(s, 0, 4, 1))
	c.Add(frag.New(s, 10, 14, 1))
	c.Prepare()

	if !c.HasOverlap(frag.New(s, 3, 6, 1)) {
		t.Error("expected overlap with [0,4]")
	}
	if c.HasOverlap(frag.New(s, 5, 9, 1)) {
		t.Error("expected no overlap in the gap [5,9]")
	}
}

func TestFindOverlapFragmentsOrdered(t *testing.T) {
	s := mustSeq(t, "TGGTCCGAGCGGACGGCC")
	c := NewOrdered()
	c.Add(frag.New(s, 0, 4, 1))
	c.Add(frag.New(s, 4, 8, 1))
	c.Add(frag.New(s, 9, 12, 1))

	found := c.FindOverlapFragments(frag.New(s, 3, 5, 1))
	if len(found) != 2 {
		t.Fatalf("found %d overlapping fragments, want 2", len(found))
	}
}

func TestNextPrev(t *testing.T) {
	s := mustSeq(t, "TGGTCCGAGCGGACGGCC")
	c := NewOrdered()
	a := frag.New(s, 0, 4, 1)
	b := frag.New(s, 5, 9, 1)
	c.Add(a)
	c.Add(b)

	next, ok := c.Next(a)
	if !ok || next.MinPos != b.MinPos {
		t.Errorf("Next(a) = %+v, %v; want %+v, true", next, ok, b)
	}
	prev, ok := c.Prev(b)
	if !ok || prev.MinPos != a.MinPos {
		t.Errorf("Prev(b) = %+v, %v; want %+v, true", prev, ok, a)
	}
}
