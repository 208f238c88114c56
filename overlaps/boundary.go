// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlaps resolves overlapping fragments across a set of
// candidate blocks into disjoint blocks over the regions those candidates
// cover; regions no candidate covers are not emitted (spec §4.5, OverlapsResolver2), following the same "stick nearby
// boundaries, propagate through block correspondences, then take
// connected components" approach as the original OverlapsResolver2, with
// the point graph and fragment graph modeled as adjacency-map graphs in
// the style of biogo/graph's undirected-graph/connected-components
// support.
package overlaps

import (
	"sort"

	"github.com/starius/npge/seq"
)

// Point is a single boundary position on a sequence: the column between
// base pos-1 and base pos (so pos ranges over [0, Size()]).
type Point struct {
	Seq seq.Sequence
	Pos int
}

// boundarySet keeps, per sequence, a sorted set of distinct boundary
// positions, with "sticking" merging positions within a minimum distance
// of one another into a single representative.
type boundarySet struct {
	bySeq map[seq.Sequence][]int
}

func newBoundarySet() *boundarySet {
	return &boundarySet{bySeq: map[seq.Sequence][]int{}}
}

func (b *boundarySet) list(s seq.Sequence) []int { return b.bySeq[s] }

func (b *boundarySet) sequences() []seq.Sequence {
	out := make([]seq.Sequence, 0, len(b.bySeq))
	for s := range b.bySeq {
		out = append(out, s)
	}
	return out
}

// nearest returns the boundary on s closest to pos, and whether s has any
// boundaries at all.
func (b *boundarySet) nearest(s seq.Sequence, pos int) (int, bool) {
	list := b.bySeq[s]
	if len(list) == 0 {
		return 0, false
	}
	i := sort.SearchInts(list, pos)
	if i == len(list) {
		return list[len(list)-1], true
	}
	if i == 0 {
		return list[0], true
	}
	if list[i]-pos <= pos-list[i-1] {
		return list[i], true
	}
	return list[i-1], true
}

// hasNear reports whether s already has a boundary within minDistance of
// pos (strictly closer, matching the original's "new boundary redundant
// with an old one" test).
func (b *boundarySet) hasNear(s seq.Sequence, pos, minDistance int) bool {
	n, ok := b.nearest(s, pos)
	if !ok {
		return false
	}
	d := n - pos
	if d < 0 {
		d = -d
	}
	return d < minDistance
}

// add inserts pos into s's boundary list, keeping it sorted and unique.
// It reports whether pos was not already present.
func (b *boundarySet) add(s seq.Sequence, pos int) bool {
	list := b.bySeq[s]
	i := sort.SearchInts(list, pos)
	if i < len(list) && list[i] == pos {
		return false
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = pos
	b.bySeq[s] = list
	return true
}

// neighbour returns the boundary adjacent to pos on s in the given
// direction (+1 or -1), and whether one exists.
func (b *boundarySet) neighbour(s seq.Sequence, pos int, dir int8) (int, bool) {
	list := b.bySeq[s]
	i := sort.SearchInts(list, pos)
	if i >= len(list) || list[i] != pos {
		return 0, false
	}
	if dir == 1 {
		if i+1 >= len(list) {
			return 0, false
		}
		return list[i+1], true
	}
	if i == 0 {
		return 0, false
	}
	return list[i-1], true
}
