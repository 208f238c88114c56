// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchor finds short exact repeats shared across sequences via a
// two-pass bloom-filtered k-mer scan (spec §4.2), and grows them with a
// consensus-guided Expander (spec §4.3).
package anchor

import (
	"math/rand"

	"github.com/starius/npge/block"
	"github.com/starius/npge/bloom"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/fragcol"
	"github.com/starius/npge/seq"
)

// Finder discovers anchor blocks: exact, multi-copy k-mer matches, found
// by first prefiltering candidates through a bloom filter (pass one) and
// then confirming them in an exact map (pass two), per spec §4.2.
type Finder struct {
	K                 int
	FalsePositiveRate float64
	Rand              *rand.Rand
}

// NewFinder returns a Finder with the given k-mer length and a default
// bloom false-positive target of 1%.
func NewFinder(k int) *Finder {
	return &Finder{K: k, FalsePositiveRate: 0.01, Rand: rand.New(rand.NewSource(1))}
}

// kmerOccurrence records one k-mer window seen by scan: its sequence and
// start position, the strand whose hash is the canonical one, and that
// canonical hash.
type kmerOccurrence struct {
	s    seq.Sequence
	pos  int
	ori  int8
	hash uint64
}

// Find scans every sequence and returns one block per distinct k-mer seen
// at two or more positions (across all strands of all sequences), whose
// exact k-mer text matches within the bucket (eliminating hash
// collisions). Occurrences that overlap any fragment already in fc are
// dropped, and a bucket left with fewer than two occurrences yields no
// block.
//
// Failure semantics per spec §4.2: if the bloom filter saturates, Find
// still returns correct (if slower) results — pass two's bucket-equality
// check is what guarantees correctness, not the filter.
func (fi *Finder) Find(sequences []seq.Sequence, fc *fragcol.Collection) *block.BlockSet {
	total := 0
	for _, s := range sequences {
		n := s.Size() - fi.K + 1
		if n > 0 {
			total += 2 * n // forward and reverse-complement occurrences
		}
	}
	bits, k := bloom.EstimateParams(total, fi.FalsePositiveRate)
	filter := bloom.New(bits, k)

	// Pass one: build the filter; track hashes seen a second time in an
	// exact set, so pass two only has to build full occurrence lists for
	// k-mers that are genuinely repeated (modulo false positives).
	seenTwice := map[uint64]bool{}
	fi.scan(sequences, func(occ kmerOccurrence) {
		if filter.Test(occ.hash) {
			seenTwice[occ.hash] = true
		} else {
			filter.Add(occ.hash)
		}
	})

	// Pass two: collect occurrences for candidate hashes, by exact k-mer
	// text (not just canonical hash) to eliminate collisions.
	buckets := map[string][]kmerOccurrence{}
	fi.scan(sequences, func(occ kmerOccurrence) {
		if !seenTwice[occ.hash] {
			return
		}
		text := kmerText(occ.s, occ.pos, fi.K, occ.ori)
		buckets[text] = append(buckets[text], occ)
	})

	bs := block.NewBlockSet(sequences)
	for _, occs := range buckets {
		if len(occs) < 2 {
			continue
		}
		fragments := make([]frag.Fragment, 0, len(occs))
		for _, occ := range occs {
			f := frag.New(occ.s, occ.pos, occ.pos+fi.K-1, occ.ori)
			if fc != nil && fc.HasOverlap(f) {
				continue
			}
			fragments = append(fragments, f)
		}
		if len(fragments) < 2 {
			continue
		}
		b := block.New(fi.Rand)
		for _, f := range fragments {
			fid := bs.Fragments.Add(f)
			b.Add(fid)
		}
		bs.AddBlock(b)
	}
	return bs
}

// scan calls emit for every forward and reverse-complement k-mer
// occurrence across all sequences, using the rolling hash update from
// package bloom so each window after the first is O(1).
func (fi *Finder) scan(sequences []seq.Sequence, emit func(kmerOccurrence)) {
	k := fi.K
	for _, s := range sequences {
		n := s.Size()
		if n < k {
			continue
		}
		bytes := s.Get(0, n)
		h := bloom.Hash(bytes, 0, k, 1)
		emitCanonical(emit, s, 0, k, h)
		for start := 1; start+k <= n; start++ {
			h = bloom.Reuse(h, k, bytes[start-1], bytes[start+k-1], true)
			emitCanonical(emit, s, start, k, h)
		}
	}
}

func emitCanonical(emit func(kmerOccurrence), s seq.Sequence, pos, k int, fwdHash uint64) {
	rcHash := bloom.Complement(fwdHash, k)
	if rcHash < fwdHash {
		emit(kmerOccurrence{s: s, pos: pos, ori: -1, hash: rcHash})
	} else {
		emit(kmerOccurrence{s: s, pos: pos, ori: 1, hash: fwdHash})
	}
}

func kmerText(s seq.Sequence, pos, k int, ori int8) string {
	f := frag.New(s, pos, pos+k-1, ori)
	return f.Str()
}
