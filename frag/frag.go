// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frag provides oriented, positioned intervals over sequences.
//
// Fragments are addressed by ID into a per-BlockSet arena rather than by
// pointer, so that prev/next/block back-references (spec §3, §9 Design
// Notes) are plain ints instead of a weak-reference graph — the same
// index-not-pointer discipline used by pals/dp hits and by compressed
// sequence links in the wider pack.
package frag

import "github.com/starius/npge/seq"

// ID addresses a Fragment within an Arena. IDs count up from 0 in the
// order fragments are added; None is used for "no fragment".
type ID int

// None is the absence of a Fragment/Block reference.
const None ID = -1

// Fragment is a closed, oriented interval on a sequence: both MinPos and
// MaxPos belong to it.
type Fragment struct {
	Seq    seq.Sequence
	MinPos int
	MaxPos int // inclusive
	Ori    int8 // +1 or -1

	Prev, Next ID // None if no neighbour
	Block      ID // None if unattached
}

// New constructs a Fragment. It panics if the coordinates or orientation
// violate spec invariant 1 (0 ≤ MinPos ≤ MaxPos < Seq.Size(), Ori ∈ {+1,-1}).
func New(s seq.Sequence, minPos, maxPos int, ori int8) Fragment {
	if minPos < 0 || minPos > maxPos || maxPos >= s.Size() {
		panic("frag: invalid coordinates")
	}
	if ori != 1 && ori != -1 {
		panic("frag: invalid orientation")
	}
	return Fragment{Seq: s, MinPos: minPos, MaxPos: maxPos, Ori: ori, Prev: None, Next: None, Block: None}
}

// Length returns the number of bases spanned by f.
func (f Fragment) Length() int { return f.MaxPos - f.MinPos + 1 }

// BeginPos is the sequence position of the fragment's first base in its
// own orientation.
func (f Fragment) BeginPos() int {
	if f.Ori == 1 {
		return f.MinPos
	}
	return f.MaxPos
}

// LastPos is the sequence position of the fragment's last base in its own
// orientation.
func (f Fragment) LastPos() int {
	if f.Ori == 1 {
		return f.MaxPos
	}
	return f.MinPos
}

// EndPos is one past LastPos in the fragment's own orientation.
func (f Fragment) EndPos() int {
	return f.BeginPos() + int(f.Ori)*f.Length()
}

// RawAt returns the base at offset i (0 ≤ i < Length()) in the fragment's
// own orientation, complemented iff Ori == -1.
func (f Fragment) RawAt(i int) byte {
	if i < 0 || i >= f.Length() {
		panic("frag: offset out of range")
	}
	b := f.Seq.CharAt(f.BeginPos() + int(f.Ori)*i)
	if f.Ori == -1 {
		return seq.Complement(b)
	}
	return b
}

// Str returns the fragment's sequence content in its own orientation.
func (f Fragment) Str() string {
	out := make([]byte, f.Length())
	for i := range out {
		out[i] = f.RawAt(i)
	}
	return string(out)
}

// Less orders fragments by (MinPos, MaxPos, Ori), matching spec §3.
func Less(a, b Fragment) bool {
	if a.MinPos != b.MinPos {
		return a.MinPos < b.MinPos
	}
	if a.MaxPos != b.MaxPos {
		return a.MaxPos < b.MaxPos
	}
	return a.Ori < b.Ori
}

// CommonPositions returns the number of sequence positions shared by a and
// b. It is zero when the fragments are on different sequences.
func CommonPositions(a, b Fragment) int {
	if a.Seq != b.Seq {
		return 0
	}
	lo := a.MinPos
	if b.MinPos > lo {
		lo = b.MinPos
	}
	hi := a.MaxPos
	if b.MaxPos < hi {
		hi = b.MaxPos
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// Mergeable reports whether a and b are on the same sequence, share an
// orientation, and are positionally adjacent.
func Mergeable(a, b Fragment) bool {
	if a.Seq != b.Seq || a.Ori != b.Ori {
		return false
	}
	return a.MaxPos+1 == b.MinPos || b.MaxPos+1 == a.MinPos
}
