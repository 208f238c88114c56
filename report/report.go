// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report computes and prints the summary and diagnostic
// statistics of spec §4.8: an order-independent block fingerprint,
// per-block alignment column statistics, block-set-wide summary
// statistics, and a per-fragment mutation listing against a block's
// consensus.
package report

import (
	"fmt"
	"hash/fnv"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/starius/npge/block"
	"github.com/starius/npge/blockops"
	"github.com/starius/npge/frag"
)

// BlockHash is an order-independent fingerprint of b: the XOR of a
// per-fragment hash over sequence name, coordinates and orientation, per
// spec §4.8 — two blocks holding the same fragments added in a different
// order hash identically.
func BlockHash(b *block.Block, arena *frag.Arena) uint32 {
	var h uint32
	hh := fnv.New32a()
	for _, fid := range b.Fragments {
		f := arena.Get(fid)
		hh.Reset()
		fmt.Fprintf(hh, "%s:%d:%d:%d", f.Seq.Name(), f.MinPos, f.MaxPos, f.Ori)
		h ^= hh.Sum32()
	}
	return h
}

// BlockStat is a block's column-level classification, per spec §4.8.
type BlockStat = blockops.Stat

// MakeStat computes b's alignment column statistics against arena.
func MakeStat(b *block.Block, arena *frag.Arena) BlockStat {
	return blockops.ComputeStat(b, arena)
}

// Summary aggregates SummaryStats over a whole block set.
type Summary struct {
	NumBlocks        int
	MeanLength       float64
	StDevLength      float64
	MeanIdentity     float64
	LengthPercentile map[float64]float64
}

// SummaryStats reports block count, mean/stdev block length (in
// fragments), mean identity across aligned blocks, and the requested
// length percentiles (e.g. []float64{0.5, 0.95}), via gonum/stat —
// grounded on kmerdist's mean/stdev/percentile summary-statistics
// report, with the ad hoc Rank type there replaced by gonum's Quantile.
func SummaryStats(bs *block.BlockSet, percentiles []float64) Summary {
	ids := bs.Blocks()
	lengths := make([]float64, 0, len(ids))
	var identities []float64
	for _, id := range ids {
		blk := bs.Block(id)
		lengths = append(lengths, float64(blk.Size()))
		if blk.HasAlignment() {
			identities = append(identities, blockops.ComputeStat(blk, bs.Fragments).Identity())
		}
	}
	sort.Float64s(lengths)

	s := Summary{NumBlocks: len(ids), LengthPercentile: map[float64]float64{}}
	if len(lengths) > 0 {
		s.MeanLength = stat.Mean(lengths, nil)
	}
	if len(lengths) > 1 {
		s.StDevLength = stat.StdDev(lengths, nil)
	}
	if len(identities) > 0 {
		s.MeanIdentity = stat.Mean(identities, nil)
	}
	for _, p := range percentiles {
		if len(lengths) > 0 {
			s.LengthPercentile[p] = stat.Quantile(p, stat.Empirical, lengths, nil)
		}
	}
	return s
}

// Mutation is one fragment-vs-consensus difference, per original_source
// PrintMutations.cpp: either a run of gap columns in the fragment (an
// indel, Change == '-', Consensus holding the deleted run) or a single
// substituted base (Consensus and Change both length-1 differing
// bytes).
type Mutation struct {
	Block      string
	Fragment   frag.ID
	Start, Stop int
	Consensus  string
	Change     byte
}

// consensusOf returns, for every column of b's alignment, the most common
// non-gap residue among its rows (the first-seen residue wins ties, in
// b.Fragments order — a deterministic but otherwise arbitrary
// tie-break, matching PrintMutations.cpp's reliance on a single
// consensus_string independent of column order), or 0 where every row
// is a gap.
func consensusOf(b *block.Block, arena *frag.Arena) []byte {
	length := b.AlignmentLength()
	cons := make([]byte, length)
	for col := 0; col < length; col++ {
		counts := map[byte]int{}
		order := []byte{}
		for _, fid := range b.Fragments {
			pos, gap := b.Row(fid).MapToFragment(col)
			if gap {
				continue
			}
			letter := arena.Get(fid).RawAt(pos)
			if counts[letter] == 0 {
				order = append(order, letter)
			}
			counts[letter]++
		}
		best, bestN := byte(0), 0
		for _, letter := range order {
			if counts[letter] > bestN {
				best, bestN = letter, counts[letter]
			}
		}
		cons[col] = best
	}
	return cons
}

// FindMutations reports every mutation of every fragment in b against
// b's consensus, per PrintMutations.cpp's find_mutations: a maximal run
// of gap columns is one deletion mutation, and every non-gap column
// whose residue differs from the consensus is one substitution
// mutation.
func FindMutations(b *block.Block, arena *frag.Arena) []Mutation {
	cons := consensusOf(b, arena)
	var muts []Mutation
	for _, fid := range b.Fragments {
		row := b.Row(fid)
		gapStart := -1
		for col := 0; col < len(cons); col++ {
			pos, gap := row.MapToFragment(col)
			if gap {
				if gapStart == -1 {
					gapStart = col
				}
				continue
			}
			if gapStart != -1 {
				muts = append(muts, Mutation{
					Block:      b.Name,
					Fragment:   fid,
					Start:      gapStart,
					Stop:       col - 1,
					Consensus:  string(cons[gapStart:col]),
					Change:     '-',
				})
				gapStart = -1
			}
			letter := arena.Get(fid).RawAt(pos)
			if letter != cons[col] {
				muts = append(muts, Mutation{
					Block:     b.Name,
					Fragment:  fid,
					Start:     col,
					Stop:      col,
					Consensus: string(cons[col]),
					Change:    letter,
				})
			}
		}
		if gapStart != -1 {
			muts = append(muts, Mutation{
				Block:     b.Name,
				Fragment:  fid,
				Start:     gapStart,
				Stop:      len(cons) - 1,
				Consensus: string(cons[gapStart:]),
				Change:    '-',
			})
		}
	}
	return muts
}

// PrintMutations writes FindMutations(b, arena) to w as tab-separated
// rows, preceded by a header row, matching PrintMutations.cpp's
// print_header/print_change column order.
func PrintMutations(b *block.Block, arena *frag.Arena, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "block\tfragment\tstart\tstop\tconsensus\tchange"); err != nil {
		return err
	}
	for _, m := range FindMutations(b, arena) {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%c\n",
			m.Block, m.Fragment, m.Start, m.Stop, m.Consensus, m.Change); err != nil {
			return err
		}
	}
	return nil
}
