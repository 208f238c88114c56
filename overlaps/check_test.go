// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlaps

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

func (s *S) TestNewResolverDefaultsToDeterministicNaming(c *check.C) {
	r := NewResolver(50)
	c.Check(r.MinDistance, check.Equals, 50)
	c.Assert(r.Rand, check.NotNil)
}

func (s *S) TestResolveEmptyOtherClearsTarget(c *check.C) {
	sq := mustSeqCheck(c, "s", "ACGTACGTAA")
	other := block.NewBlockSet([]seq.Sequence{sq})

	target := block.NewBlockSet([]seq.Sequence{sq})
	stale := block.NewNamed("stale")
	stale.Add(target.Fragments.Add(frag.New(sq, 0, 3, 1)))
	target.AddBlock(stale)

	r := NewResolver(1)
	r.Resolve(target, other)

	c.Check(target.Size(), check.Equals, 0)
}
