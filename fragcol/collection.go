// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fragcol indexes fragments per sequence to support overlap,
// neighbour and containment queries (spec §4.4): a per-sequence sorted
// slice for Next/Prev/All, and a per-sequence github.com/biogo/store
// interval.IntTree for HasOverlap/FindOverlapFragments, following the
// Insert/AdjustRanges/Get discipline biogo-examples/igor's
// flattenFamily and kortschak-ins's cullContained both use to query
// overlapping genomic ranges.
package fragcol

import (
	"sort"

	"github.com/biogo/store/interval"

	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// fragInterval adapts a frag.Fragment to interval.IntInterface, treating
// MinPos/MaxPos as an inclusive range, matching frag.Fragment's own
// inclusive MaxPos convention.
type fragInterval struct {
	f  frag.Fragment
	id uintptr
}

func (fi fragInterval) Overlap(b interval.IntRange) bool {
	return fi.f.MaxPos >= b.Start && fi.f.MinPos <= b.End
}

func (fi fragInterval) Range() interval.IntRange {
	return interval.IntRange{Start: fi.f.MinPos, End: fi.f.MaxPos}
}

func (fi fragInterval) ID() uintptr { return fi.id }

// Collection indexes fragments per sequence, sorted by (MinPos, MaxPos,
// Ori). Vector mode requires an explicit Prepare() call after bulk
// insertion; Ordered mode keeps the index sorted as fragments are added.
type Collection struct {
	bySeq   map[seq.Sequence][]frag.Fragment
	trees   map[seq.Sequence]*interval.IntTree
	ordered bool
	dirty   bool
	nextID  uintptr
}

// NewVector returns a Collection that must be Prepare()'d before queries
// after any Add call.
func NewVector() *Collection {
	return &Collection{
		bySeq: map[seq.Sequence][]frag.Fragment{},
		trees: map[seq.Sequence]*interval.IntTree{},
	}
}

// NewOrdered returns a Collection that stays sorted after every Add.
func NewOrdered() *Collection {
	return &Collection{
		bySeq:   map[seq.Sequence][]frag.Fragment{},
		trees:   map[seq.Sequence]*interval.IntTree{},
		ordered: true,
	}
}

// Add inserts f into the collection.
func (c *Collection) Add(f frag.Fragment) {
	list := c.bySeq[f.Seq]
	if c.ordered {
		i := sort.Search(len(list), func(i int) bool { return frag.Less(f, list[i]) })
		list = append(list, frag.Fragment{})
		copy(list[i+1:], list[i:])
		list[i] = f
	} else {
		list = append(list, f)
		c.dirty = true
	}
	c.bySeq[f.Seq] = list

	tree := c.trees[f.Seq]
	if tree == nil {
		tree = &interval.IntTree{}
		c.trees[f.Seq] = tree
	}
	id := c.nextID
	c.nextID++
	if err := tree.Insert(fragInterval{f: f, id: id}, true); err != nil {
		// id is generated fresh for every Add, so a collision here would
		// mean the tree itself is corrupt.
		panic(err)
	}
	tree.AdjustRanges()
}

// Prepare sorts all per-sequence lists. Required before queries in Vector
// mode when fragments were added since the last Prepare; a no-op in
// Ordered mode.
func (c *Collection) Prepare() {
	if c.ordered || !c.dirty {
		return
	}
	for s, list := range c.bySeq {
		sort.Slice(list, func(i, j int) bool { return frag.Less(list[i], list[j]) })
		c.bySeq[s] = list
	}
	c.dirty = false
}

func (c *Collection) lowerBound(f frag.Fragment) int {
	list := c.bySeq[f.Seq]
	return sort.Search(len(list), func(i int) bool { return !frag.Less(list[i], f) })
}

// HasOverlap reports whether any fragment in the collection shares a
// sequence position with f, via a range query over f's span against
// f.Seq's interval tree.
func (c *Collection) HasOverlap(f frag.Fragment) bool {
	tree := c.trees[f.Seq]
	if tree == nil {
		return false
	}
	return len(tree.Get(fragInterval{f: f})) > 0
}

// FindOverlapFragments returns every fragment in the collection that
// shares a sequence position with f, via f.Seq's interval tree.
func (c *Collection) FindOverlapFragments(f frag.Fragment) []frag.Fragment {
	tree := c.trees[f.Seq]
	if tree == nil {
		return nil
	}
	hits := tree.Get(fragInterval{f: f})
	if len(hits) == 0 {
		return nil
	}
	out := make([]frag.Fragment, len(hits))
	for i, h := range hits {
		out[i] = h.(fragInterval).f
	}
	return out
}

// Next returns the fragment immediately after f in sorted order on f's
// sequence, and whether one exists.
func (c *Collection) Next(f frag.Fragment) (frag.Fragment, bool) {
	list := c.bySeq[f.Seq]
	i := c.lowerBound(f)
	for ; i < len(list); i++ {
		if frag.Less(f, list[i]) {
			return list[i], true
		}
	}
	return frag.Fragment{}, false
}

// Prev returns the fragment immediately before f in sorted order on f's
// sequence, and whether one exists.
func (c *Collection) Prev(f frag.Fragment) (frag.Fragment, bool) {
	list := c.bySeq[f.Seq]
	i := c.lowerBound(f)
	if i > 0 {
		return list[i-1], true
	}
	return frag.Fragment{}, false
}

// All returns every fragment on s, in sorted order.
func (c *Collection) All(s seq.Sequence) []frag.Fragment {
	return c.bySeq[s]
}

// Sequences returns every sequence with at least one indexed fragment.
func (c *Collection) Sequences() []seq.Sequence {
	out := make([]seq.Sequence, 0, len(c.bySeq))
	for s := range c.bySeq {
		out = append(out, s)
	}
	return out
}
