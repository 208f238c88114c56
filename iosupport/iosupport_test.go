// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iosupport

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

func TestFastaRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewFastaWriter(&buf, 60)
	s := mustSeq(t, "chr1", "ACGTACGTAA")
	if err := w.Write(s); err != nil {
		t.Fatal(err)
	}

	src := NewFastaSource(&buf)
	got, ok := src.Next()
	if !ok {
		t.Fatalf("expected a sequence, got none (err=%v)", src.Err())
	}
	if got.Name() != "chr1" {
		t.Errorf("got name %q, want chr1", got.Name())
	}
	if got.Get(0, got.Size()) == nil {
		t.Fatal("expected sequence bytes")
	}
	if _, ok := src.Next(); ok {
		t.Fatal("expected only one record")
	}
}

func TestBlockFileRoundTrip(t *testing.T) {
	s := mustSeq(t, "s", "ACGTACGTAA")
	bs := block.NewBlockSet([]seq.Sequence{s})
	blk := block.NewNamed("b")
	fid := bs.Fragments.Add(frag.New(s, 0, 3, 1))
	blk.Add(fid)
	row := block.NewBitsetRow()
	row.Grow("AC-GT")
	blk.SetRow(fid, row)
	bs.AddBlock(blk)

	var buf bytes.Buffer
	if err := WriteBlockFile(&buf, bs); err != nil {
		t.Fatal(err)
	}

	sequences := map[string]seq.Sequence{"s": s}
	got, err := ReadBlockFile(strings.NewReader(buf.String()), sequences)
	if err != nil {
		t.Fatal(err)
	}
	if got.Size() != 1 {
		t.Fatalf("got %d blocks, want 1", got.Size())
	}
	ids := got.Blocks()
	readBlk := got.Block(ids[0])
	if readBlk.Size() != 1 {
		t.Fatalf("got %d fragments, want 1", readBlk.Size())
	}
	readFid := readBlk.Fragments[0]
	if l := readBlk.Row(readFid).Length(); l != 5 {
		t.Errorf("got row length %d, want 5", l)
	}
}

func TestBSAFileRoundTrip(t *testing.T) {
	s := mustSeq(t, "s", "ACGTACGTAA")
	bs := block.NewBlockSet([]seq.Sequence{s})
	blk := block.NewNamed("b")
	fid := bs.Fragments.Add(frag.New(s, 0, 3, 1))
	blk.Add(fid)
	bs.AddBlock(blk)

	a := bs.AddBSA("main")
	a.Rows[s] = &block.BSARow{Ori: 1, Fragments: []*frag.ID{&fid, nil}}

	var buf bytes.Buffer
	if err := WriteBSAFile(&buf, bs); err != nil {
		t.Fatal(err)
	}

	bs2 := block.NewBlockSet([]seq.Sequence{s})
	blk2 := block.NewNamed("b")
	fid2 := bs2.Fragments.Add(frag.New(s, 0, 3, 1))
	blk2.Add(fid2)
	bs2.AddBlock(blk2)

	sequences := map[string]seq.Sequence{"s": s}
	if err := ReadBSAFile(strings.NewReader(buf.String()), bs2, sequences); err != nil {
		t.Fatal(err)
	}
	got := bs2.BSA("main")
	if got == nil {
		t.Fatal("expected BSA \"main\" to be present after read")
	}
	row := got.Rows[s]
	if row == nil || len(row.Fragments) != 2 {
		t.Fatalf("got row %+v, want 2 tokens", row)
	}
	if row.Fragments[1] != nil {
		t.Error("expected second token to be a gap (nil)")
	}
}
