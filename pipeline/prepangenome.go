// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline wires the individual algorithm packages into the
// ordered processor chains spec §2's data-flow table describes, via the
// proc.Pipe composition mechanism.
package pipeline

import (
	"fmt"

	"github.com/starius/npge/anchor"
	"github.com/starius/npge/block"
	"github.com/starius/npge/blockops"
	"github.com/starius/npge/fragcol"
	"github.com/starius/npge/overlaps"
	"github.com/starius/npge/proc"
)

// Options collects the tunables of every stage MakePrePangenome wires,
// mirroring the option names original_source's MakePrePangenome.cpp
// threads through its own processor chain.
type Options struct {
	K           int
	MinDistance int
	Limits      blockops.Limits
	CutMode     blockops.CutMode
	MaxTail     int
}

// DefaultOptions returns the option set original_source's
// MakePrePangenome.cpp uses when none are overridden.
func DefaultOptions() Options {
	return Options{
		K:           15,
		MinDistance: 100,
		Limits:      blockops.DefaultLimits(),
		CutMode:     blockops.Strict,
		MaxTail:     10,
	}
}

// buildCollection indexes every fragment currently held by bs's blocks —
// the query structure the AnchorFinder and Expander stages consult for
// overlap queries over already-placed fragments.
func buildCollection(bs *block.BlockSet) *fragcol.Collection {
	fc := fragcol.NewVector()
	for _, id := range bs.Blocks() {
		blk := bs.Block(id)
		for _, fid := range blk.Fragments {
			fc.Add(bs.Fragments.Get(fid))
		}
	}
	fc.Prepare()
	return fc
}

// anchorStage runs anchor.Finder against target's sequences and current
// fragment coverage, copying every discovered block into target.
type anchorStage struct {
	*proc.Base
	finder *anchor.Finder
}

func newAnchorStage(k int) *anchorStage {
	return &anchorStage{Base: proc.NewBase("AnchorFinder"), finder: anchor.NewFinder(k)}
}

func (a *anchorStage) Run() error {
	target := a.Slot("target")
	if target == nil {
		return fmt.Errorf("pipeline: %s: no target slot", a.Name())
	}
	fc := buildCollection(target)
	found := a.finder.Find(target.Sequences, fc)
	for _, id := range found.Blocks() {
		blk := found.Block(id)
		nb := block.NewNamed(blk.Name)
		for _, fid := range blk.Fragments {
			nb.Add(target.Fragments.Add(found.Fragments.Get(fid)))
		}
		target.AddBlock(nb)
	}
	return nil
}

// expanderStage grows every block of target to a fixed point, per spec
// §4.3: each pass rebuilds the overlap index and asks anchor.Expander to
// extend every block on both ends as far as agreement and that index
// allow, stopping when a full pass changes nothing.
type expanderStage struct {
	*proc.Base
	expander *anchor.Expander
}

func newExpanderStage() *expanderStage {
	return &expanderStage{Base: proc.NewBase("Expander"), expander: anchor.NewExpander()}
}

func (e *expanderStage) Run() error {
	target := e.Slot("target")
	if target == nil {
		return fmt.Errorf("pipeline: %s: no target slot", e.Name())
	}
	for {
		fc := buildCollection(target)
		changed := false
		for _, id := range target.Blocks() {
			blk := target.Block(id)
			if blk == nil {
				continue
			}
			if e.expander.Expand(blk, target, fc) {
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}

// resolverStage runs overlaps.Resolver, splitting target's blocks along
// every boundary any block of target itself introduces (so resolution
// acts on the blocks discovered so far, matching OverlapsResolver2's
// "other" argument usage in original_source).
type resolverStage struct {
	*proc.Base
	resolver *overlaps.Resolver
}

func newResolverStage(minDistance int) *resolverStage {
	return &resolverStage{Base: proc.NewBase("OverlapsResolver2"), resolver: overlaps.NewResolver(minDistance)}
}

func (r *resolverStage) Run() error {
	target := r.Slot("target")
	if target == nil {
		return fmt.Errorf("pipeline: %s: no target slot", r.Name())
	}
	r.resolver.Resolve(target, target)
	return nil
}

// filterStage applies blockops.Filter to target in place.
type filterStage struct {
	*proc.Base
	filter *blockops.Filter
}

func newFilterStage(limits blockops.Limits) *filterStage {
	f := blockops.NewFilter()
	f.Limits = limits
	return &filterStage{Base: proc.NewBase("Filter"), filter: f}
}

func (f *filterStage) Run() error {
	target := f.Slot("target")
	if target == nil {
		return fmt.Errorf("pipeline: %s: no target slot", f.Name())
	}
	f.filter.ApplyBlockSet(target)
	return nil
}

// cutGapsStage applies blockops.CutGaps to every block of target.
type cutGapsStage struct {
	*proc.Base
	cutGaps *blockops.CutGaps
}

func newCutGapsStage(mode blockops.CutMode) *cutGapsStage {
	return &cutGapsStage{Base: proc.NewBase("CutGaps"), cutGaps: blockops.NewCutGaps(mode)}
}

func (c *cutGapsStage) Run() error {
	target := c.Slot("target")
	if target == nil {
		return fmt.Errorf("pipeline: %s: no target slot", c.Name())
	}
	c.cutGaps.ApplyBlockSet(target)
	return nil
}

// moveGapsStage applies blockops.MoveGaps to every block of target.
type moveGapsStage struct {
	*proc.Base
	moveGaps *blockops.MoveGaps
}

func newMoveGapsStage(maxTail int) *moveGapsStage {
	return &moveGapsStage{Base: proc.NewBase("MoveGaps"), moveGaps: blockops.NewMoveGaps(maxTail)}
}

func (m *moveGapsStage) Run() error {
	target := m.Slot("target")
	if target == nil {
		return fmt.Errorf("pipeline: %s: no target slot", m.Name())
	}
	m.moveGaps.ApplyBlockSet(target)
	return nil
}

// restStage applies blockops.Rest in place over target, turning every
// remaining gap in genome coverage into its own one-fragment block.
type restStage struct {
	*proc.Base
	rest *blockops.Rest
}

func newRestStage() *restStage {
	return &restStage{Base: proc.NewBase("Rest"), rest: blockops.NewRest()}
}

func (r *restStage) Run() error {
	target := r.Slot("target")
	if target == nil {
		return fmt.Errorf("pipeline: %s: no target slot", r.Name())
	}
	r.rest.ApplyInPlace(target)
	return nil
}

// MakePrePangenome wires AnchorFinder → Expander → OverlapsResolver2 →
// Filter → CutGaps → MoveGaps → Rest into one proc.Pipe operating on bs
// in place, in the order spec §2's data-flow table and
// original_source's MakePrePangenome.cpp both give.
func MakePrePangenome(bs *block.BlockSet, opts Options) *proc.Pipe {
	stages := []proc.Processor{
		newAnchorStage(opts.K),
		newExpanderStage(),
		newResolverStage(opts.MinDistance),
		newFilterStage(opts.Limits),
		newCutGapsStage(opts.CutMode),
		newMoveGapsStage(opts.MaxTail),
		newRestStage(),
	}
	pipe := proc.NewPipe("MakePrePangenome", stages...)
	for _, s := range stages {
		s.SetSlot("target", bs)
	}
	return pipe
}
