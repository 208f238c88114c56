// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockops

import (
	"testing"

	"gopkg.in/check.v1"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func mustSeqCheck(c *check.C, name, s string) seq.Sequence {
	d, err := seq.NewDense(name, "", "", []byte(s))
	c.Assert(err, check.IsNil)
	return d
}

func (s *S) TestFilterDefaultLimitsAllowEverythingButMinBlock(c *check.C) {
	l := DefaultLimits()
	c.Check(l.MinBlock, check.Equals, 2)
	c.Check(l.MaxBlock, check.Equals, -1)
	c.Check(l.Validate(), check.IsNil)
}

func (s *S) TestFilterRejectsLowLimits(c *check.C) {
	l := DefaultLimits()
	l.MinFragment = -5
	c.Check(l.Validate(), check.NotNil)
}

func (s *S) TestCutGapsStrictTrimsTerminalGapColumns(c *check.C) {
	sq := mustSeqCheck(c, "s", "ACGTACGTAA")
	bs := block.NewBlockSet([]seq.Sequence{sq})
	blk := block.NewNamed("b")
	fid := bs.Fragments.Add(frag.New(sq, 0, 1, 1))
	blk.Add(fid)

	row := block.NewBitsetRow()
	row.Grow("--AT")
	blk.SetRow(fid, row)
	bs.AddBlock(blk)

	cg := NewCutGaps(Strict)
	changed := cg.Apply(blk, bs.Fragments)
	c.Check(changed, check.Equals, true)
	c.Check(blk.AlignmentLength(), check.Equals, 2)
}
