// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlaps

import (
	"sort"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// fragNode is a minimal, non-overlapping candidate fragment: the span
// between two consecutive stuck boundaries on a sequence. Its own
// orientation is always nominally +1; the relative orientation between
// two adjacent fragments lives on the fragEdge that connects them.
type fragNode struct {
	Seq      seq.Sequence
	Min, Max int
}

// fragEdge records that, walking from From in the direction that
// discovered it, To is the neighbouring minimal fragment, Ori apart in
// orientation. Confirmed is set once some input block is found containing
// both endpoints as sub-spans of two of its fragments (spec §4.5 step 5).
type fragEdge struct {
	From, To fragNode
	Ori      int8
	Confirmed bool
}

// buildFragmentGraph derives every minimal fragment implied by all's
// boundaries and links adjacent ones whose boundary points the point
// graph pg considers connected, mirroring build_fragment_graph.
func buildFragmentGraph(all *boundarySet, pg *pointGraph) []*fragEdge {
	var edges []*fragEdge
	for _, s := range all.sequences() {
		list := all.list(s)
		for i := 0; i+1 < len(list); i++ {
			minPos, maxPos := list[i], list[i+1]-1
			if minPos > maxPos {
				continue
			}
			f := fragNode{s, minPos, maxPos}
			minFriends := pg.component(Point{s, minPos})
			maxFriends := pg.component(Point{s, maxPos + 1})
			for mf := range minFriends {
				for _, ori := range [2]int8{1, -1} {
					nbPos, ok := all.neighbour(mf.Seq, mf.Pos, ori)
					if !ok {
						continue
					}
					neighbour := Point{mf.Seq, nbPos}
					if !maxFriends[neighbour] {
						continue
					}
					var f2Min, f2Max int
					if ori == 1 {
						f2Min, f2Max = mf.Pos, neighbour.Pos-1
					} else {
						f2Min, f2Max = neighbour.Pos, mf.Pos-1
					}
					if f2Min > f2Max {
						continue
					}
					edges = append(edges, &fragEdge{
						From: f,
						To:   fragNode{mf.Seq, f2Min, f2Max},
						Ori:  ori,
					})
				}
			}
		}
	}
	return edges
}

type seqPos struct {
	s   seq.Sequence
	pos int
}

// filterFragmentGraph keeps only edges confirmed by an input block (both
// endpoints are sub-spans of two distinct fragments of the same block; a
// self-loop is confirmed by one fragment containing its span), discarding
// every other candidate edge (spec §4.5 step 5).
func filterFragmentGraph(edges []*fragEdge, other *block.BlockSet) []*fragEdge {
	bySeq := map[seq.Sequence][]*fragEdge{}
	for _, e := range edges {
		bySeq[e.From.Seq] = append(bySeq[e.From.Seq], e)
	}

	for _, id := range other.Blocks() {
		blk := other.Block(id)
		frags := make([]frag.Fragment, len(blk.Fragments))
		for i, fid := range blk.Fragments {
			frags[i] = other.Fragments.Get(fid)
		}
		for i, f1 := range frags {
			candidates := bySeq[f1.Seq]
			for j, f2 := range frags {
				for _, e := range candidates {
					if (i != j || e.From == e.To) &&
						e.From.Min >= f1.MinPos && e.From.Max <= f1.MaxPos &&
						e.To.Seq == f2.Seq && e.To.Min >= f2.MinPos && e.To.Max <= f2.MaxPos {
						e.Confirmed = true
					}
				}
			}
		}
	}

	out := edges[:0]
	for _, e := range edges {
		if e.Confirmed {
			out = append(out, e)
		}
	}
	return out
}

// addBlocks groups the filtered fragment graph into connected components,
// assigns each a consistent relative orientation by propagating edge
// signs from an arbitrary root, and inserts one new block per component
// into target (spec §4.5 step 6).
func addBlocks(target *block.BlockSet, edges []*fragEdge, newBlock func() *block.Block) {
	adj := map[fragNode][]*fragEdge{}
	nodes := map[fragNode]bool{}
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], &fragEdge{From: e.To, To: e.From, Ori: e.Ori})
		nodes[e.From] = true
		nodes[e.To] = true
	}

	ordered := make([]fragNode, 0, len(nodes))
	for n := range nodes {
		ordered = append(ordered, n)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Seq.Name() != b.Seq.Name() {
			return a.Seq.Name() < b.Seq.Name()
		}
		if a.Min != b.Min {
			return a.Min < b.Min
		}
		return a.Max < b.Max
	})

	visited := map[fragNode]bool{}
	ori := map[fragNode]int8{}
	for _, start := range ordered {
		if visited[start] {
			continue
		}
		visited[start] = true
		ori[start] = 1
		queue := []fragNode{start}
		component := []fragNode{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range adj[cur] {
				if visited[e.To] {
					continue
				}
				visited[e.To] = true
				ori[e.To] = ori[cur] * e.Ori
				queue = append(queue, e.To)
				component = append(component, e.To)
			}
		}

		b := newBlock()
		for _, n := range component {
			fr := frag.New(n.Seq, n.Min, n.Max, ori[n])
			fid := target.Fragments.Add(fr)
			b.Add(fid)
		}
		target.AddBlock(b)
	}
}
