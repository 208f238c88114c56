// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"strings"
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

func TestBlockHashIsOrderIndependent(t *testing.T) {
	s1 := mustSeq(t, "s1", "ACGTACGT")
	s2 := mustSeq(t, "s2", "ACGTACGT")
	bs := block.NewBlockSet([]seq.Sequence{s1, s2})

	id1 := bs.Fragments.Add(frag.New(s1, 0, 3, 1))
	id2 := bs.Fragments.Add(frag.New(s2, 0, 3, 1))

	a := block.NewNamed("a")
	a.Add(id1)
	a.Add(id2)

	b := block.NewNamed("b")
	b.Add(id2)
	b.Add(id1)

	if BlockHash(a, bs.Fragments) != BlockHash(b, bs.Fragments) {
		t.Fatal("BlockHash depends on fragment addition order")
	}
}

func TestSummaryStatsComputesMeanAndPercentile(t *testing.T) {
	s := mustSeq(t, "s", "ACGTACGTACGT")
	bs := block.NewBlockSet([]seq.Sequence{s})

	for i := 0; i < 3; i++ {
		b := block.NewNamed("b")
		b.Add(bs.Fragments.Add(frag.New(s, i, i, 1)))
		bs.AddBlock(b)
	}

	summary := SummaryStats(bs, []float64{0.5})
	if summary.NumBlocks != 3 {
		t.Fatalf("got %d blocks, want 3", summary.NumBlocks)
	}
	if summary.MeanLength != 1 {
		t.Fatalf("got mean length %v, want 1", summary.MeanLength)
	}
}

func TestFindMutationsReportsSubstitutionAndDeletion(t *testing.T) {
	s1 := mustSeq(t, "s1", "ACGT")
	s2 := mustSeq(t, "s2", "AGGT")
	bs := block.NewBlockSet([]seq.Sequence{s1, s2})

	fid1 := bs.Fragments.Add(frag.New(s1, 0, 3, 1))
	fid2 := bs.Fragments.Add(frag.New(s2, 0, 3, 1))

	b := block.NewNamed("b")
	b.Add(fid1)
	b.Add(fid2)

	row1 := block.NewBitsetRow()
	row1.Grow("ACGT")
	b.SetRow(fid1, row1)

	row2 := block.NewBitsetRow()
	row2.Grow("AGGT")
	b.SetRow(fid2, row2)

	muts := FindMutations(b, bs.Fragments)
	if len(muts) == 0 {
		t.Fatal("expected at least one mutation")
	}
	found := false
	for _, m := range muts {
		if m.Fragment == fid2 && m.Start == 1 && m.Change == 'G' {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a substitution at column 1 in fragment %v, got %+v", fid2, muts)
	}
}

func TestPrintMutationsWritesHeader(t *testing.T) {
	s := mustSeq(t, "s", "ACGT")
	bs := block.NewBlockSet([]seq.Sequence{s})
	fid := bs.Fragments.Add(frag.New(s, 0, 3, 1))
	b := block.NewNamed("b")
	b.Add(fid)
	row := block.NewBitsetRow()
	row.Grow("ACGT")
	b.SetRow(fid, row)

	var buf bytes.Buffer
	if err := PrintMutations(b, bs.Fragments, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "block\tfragment\tstart\tstop\tconsensus\tchange\n") {
		t.Fatalf("missing expected header, got %q", buf.String())
	}
}
