// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block provides blocks of homologous fragments, their
// alignments, and owning block sets.
package block

import (
	"math/rand"

	"github.com/starius/npge/frag"
)

// ID addresses a Block within a BlockSet's arena.
type ID int

// None is the absence of a Block reference.
const None ID = -1

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomName returns a random 8-character name, matching the default
// naming scheme described in spec §3/§6.
func randomName(r *rand.Rand) string {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = nameAlphabet[r.Intn(len(nameAlphabet))]
	}
	return string(buf)
}

// Block is a set of fragments asserted homologous, with an optional
// multiple alignment and an optional name.
type Block struct {
	Fragments []frag.ID
	Name      string
	// Weak marks a block that does not own its fragments: a view over
	// fragments that may belong to another block as well.
	Weak bool

	// rows holds each fragment's AlignmentRow, keyed by its ID. A
	// fragment with no entry has no alignment yet (spec §3: every row
	// of a block must share the same Length once all are present).
	rows map[frag.ID]AlignmentRow
}

// New returns an empty, non-weak Block with a random name.
func New(r *rand.Rand) *Block {
	return &Block{Name: randomName(r)}
}

// NewNamed returns an empty, non-weak Block with the given name.
func NewNamed(name string) *Block {
	return &Block{Name: name}
}

// Size returns the number of fragments in b.
func (b *Block) Size() int { return len(b.Fragments) }

// Add appends id to b's fragment list. Callers that maintain the
// non-weak-block invariant (every contained fragment's Block field points
// back to this block) must update the arena's Fragment.Block field
// themselves via the owning BlockSet — Block itself holds only IDs.
func (b *Block) Add(id frag.ID) {
	b.Fragments = append(b.Fragments, id)
}

// Remove deletes the first occurrence of id from b's fragment list. It
// reports whether id was found.
func (b *Block) Remove(id frag.ID) bool {
	for i, f := range b.Fragments {
		if f == id {
			b.Fragments = append(b.Fragments[:i], b.Fragments[i+1:]...)
			delete(b.rows, id)
			return true
		}
	}
	return false
}

// Row returns the AlignmentRow for fragment id, or nil if b has no
// alignment for it yet.
func (b *Block) Row(id frag.ID) AlignmentRow {
	return b.rows[id]
}

// SetRow records row as fragment id's AlignmentRow.
func (b *Block) SetRow(id frag.ID, row AlignmentRow) {
	if b.rows == nil {
		b.rows = map[frag.ID]AlignmentRow{}
	}
	b.rows[id] = row
}

// RemoveRow drops any AlignmentRow recorded for id, matching Remove when a
// fragment leaves an aligned block.
func (b *Block) RemoveRow(id frag.ID) {
	delete(b.rows, id)
}

// HasAlignment reports whether every fragment currently in b has a row
// recorded (spec §3: alignment is all-or-nothing per block).
func (b *Block) HasAlignment() bool {
	if len(b.rows) != len(b.Fragments) {
		return false
	}
	for _, fid := range b.Fragments {
		if b.rows[fid] == nil {
			return false
		}
	}
	return true
}

// AlignmentLength returns the shared column count of b's rows, or 0 if b
// has no alignment.
func (b *Block) AlignmentLength() int {
	for _, fid := range b.Fragments {
		if r := b.rows[fid]; r != nil {
			return r.Length()
		}
	}
	return 0
}

// Contains reports whether id is a member of b.
func (b *Block) Contains(id frag.ID) bool {
	for _, f := range b.Fragments {
		if f == id {
			return true
		}
	}
	return false
}
