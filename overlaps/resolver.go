// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlaps

import (
	"math/rand"
	"sort"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// Resolver is OverlapsResolver2 (spec §4.5): given a candidate set of
// (possibly overlapping) blocks, it produces a disjoint partition of
// every covered sequence into non-overlapping blocks, preserving every
// adjacency the candidates agree on and splitting everywhere they
// disagree.
//
// Resolver assumes its input blocks are ungapped (true of anchor blocks,
// and of every block before CutGaps runs, per the pipeline order in
// spec §4) so that block correspondence is a plain same-offset mapping;
// it does not consult alignment rows.
type Resolver struct {
	// MinDistance is the minimum separation between two boundaries for
	// them to be treated as distinct rather than stuck together.
	MinDistance int
	Rand        *rand.Rand
}

// NewResolver returns a Resolver with the given minimum boundary
// distance and a deterministic name generator.
func NewResolver(minDistance int) *Resolver {
	return &Resolver{MinDistance: minDistance, Rand: rand.New(rand.NewSource(1))}
}

// Resolve replaces target's blocks with the overlap-free partition implied
// by other's blocks, per spec §4.5 steps 1-6.
func (r *Resolver) Resolve(target *block.BlockSet, other *block.BlockSet) {
	pg, all := r.buildPointGraph(other)
	edges := buildFragmentGraph(all, pg)
	edges = filterFragmentGraph(edges, other)
	target.Clear()
	addBlocks(target, edges, func() *block.Block { return block.New(r.Rand) })
}

// buildPointGraph seeds boundaries from every fragment of other, then
// iteratively expands them through block correspondences (mapping a
// boundary inside one fragment to the matching offset in every other
// fragment of the same block) until no sequence gains a new boundary,
// per spec §4.5 steps 1-3.
func (r *Resolver) buildPointGraph(other *block.BlockSet) (*pointGraph, *boundarySet) {
	raw := map[seq.Sequence][]int{}
	for _, id := range other.Blocks() {
		blk := other.Block(id)
		for _, fid := range blk.Fragments {
			f := other.Fragments.Get(fid)
			raw[f.Seq] = append(raw[f.Seq], f.MinPos, f.MaxPos+1)
		}
	}
	all := clusterBoundaries(raw, r.MinDistance)
	g := newPointGraph()

	var frontier []Point
	for _, s := range all.sequences() {
		for _, p := range all.list(s) {
			frontier = append(frontier, Point{s, p})
		}
	}

	type rawEdge struct{ from, to Point }

	for len(frontier) > 0 {
		frontierSet := map[Point]bool{}
		for _, p := range frontier {
			frontierSet[p] = true
		}

		var newEdges []rawEdge
		for _, id := range other.Blocks() {
			blk := other.Block(id)
			frags := make([]frag.Fragment, len(blk.Fragments))
			for i, fid := range blk.Fragments {
				frags[i] = other.Fragments.Get(fid)
			}
			if len(frags) == 0 {
				continue
			}
			for fi, from := range frags {
				for pos := from.MinPos; pos <= from.MaxPos+1; pos++ {
					p := Point{from.Seq, pos}
					if !frontierSet[p] {
						continue
					}
					offset := seqToFragOffset(from, pos)
					for ti, to := range frags {
						if fi == ti && len(frags) != 1 {
							continue
						}
						if offset > to.Length() {
							continue
						}
						toPos := fragOffsetToSeq(to, offset)
						newEdges = append(newEdges, rawEdge{p, Point{to.Seq, toPos}})
					}
				}
			}
		}

		candRaw := map[seq.Sequence][]int{}
		for _, e := range newEdges {
			candRaw[e.to.Seq] = append(candRaw[e.to.Seq], e.to.Pos)
		}
		candClustered := clusterBoundaries(candRaw, r.MinDistance)

		var nextFrontier []Point
		for _, s := range candClustered.sequences() {
			for _, pos := range candClustered.list(s) {
				if all.hasNear(s, pos, r.MinDistance) {
					continue
				}
				all.add(s, pos)
				nextFrontier = append(nextFrontier, Point{s, pos})
			}
		}

		for _, e := range newEdges {
			stuckPos, ok := all.nearest(e.to.Seq, e.to.Pos)
			if !ok {
				continue
			}
			g.addEdge(e.from, Point{e.to.Seq, stuckPos})
		}

		frontier = nextFrontier
	}

	return g, all
}

// seqToFragOffset converts an absolute sequence position within
// [f.MinPos, f.MaxPos+1] into f's own-orientation column offset in
// [0, f.Length()].
func seqToFragOffset(f frag.Fragment, pos int) int {
	d := pos - f.MinPos
	if f.Ori == 1 {
		return d
	}
	return f.Length() - d
}

// fragOffsetToSeq is the inverse of seqToFragOffset.
func fragOffsetToSeq(f frag.Fragment, offset int) int {
	var d int
	if f.Ori == 1 {
		d = offset
	} else {
		d = f.Length() - offset
	}
	return f.MinPos + d
}

// clusterBoundaries sorts and deduplicates each sequence's raw boundary
// positions, merging any that fall within minDistance of a predecessor
// into that predecessor's position, matching stick_boundaries.
func clusterBoundaries(raw map[seq.Sequence][]int, minDistance int) *boundarySet {
	bs := newBoundarySet()
	for s, positions := range raw {
		sorted := append([]int(nil), positions...)
		sort.Ints(sorted)
		haveLast := false
		last := 0
		for _, p := range sorted {
			if haveLast && p-last < minDistance {
				continue
			}
			bs.add(s, p)
			last, haveLast = p, true
		}
	}
	return bs
}
