// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"math/rand"
	"testing"

	"gopkg.in/check.v1"

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

func (s *S) TestNewGivesRandomEightCharacterName(c *check.C) {
	r := rand.New(rand.NewSource(1))
	b := New(r)
	c.Check(len(b.Name), check.Equals, 8)
	c.Check(b.Weak, check.Equals, false)
	c.Check(b.Size(), check.Equals, 0)
}

func (s *S) TestAddBlockMarksPreviousOwnerWeak(c *check.C) {
	sq := mustSeqCheck(c, "s", "ACGTACGTAA")
	bs := NewBlockSet([]seq.Sequence{sq})
	fid := bs.Fragments.Add(frag.New(sq, 0, 3, 1))

	b1 := NewNamed("b1")
	b1.Add(fid)
	bs.AddBlock(b1)
	c.Check(b1.Weak, check.Equals, false)

	b2 := NewNamed("b2")
	b2.Add(fid)
	bs.AddBlock(b2)
	c.Check(b1.Weak, check.Equals, true)
	c.Check(b2.Weak, check.Equals, false)
}

func (s *S) TestRemoveBlockDetachesFromSet(c *check.C) {
	sq := mustSeqCheck(c, "s", "ACGTACGTAA")
	bs := NewBlockSet([]seq.Sequence{sq})
	fid := bs.Fragments.Add(frag.New(sq, 0, 3, 1))

	b := NewNamed("b")
	b.Add(fid)
	id := bs.AddBlock(b)
	bs.RemoveBlock(id)

	c.Check(bs.Block(id), check.IsNil)
	c.Check(bs.Size(), check.Equals, 0)
}
