// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// BlockSet owns a collection of blocks, the fragment arena they draw
// from, a shared sequence list, and zero or more named block-set
// alignments.
type BlockSet struct {
	Fragments *frag.Arena

	blocks    map[ID]*Block
	nextBlock ID
	Sequences []seq.Sequence

	bsas map[string]*BSA
}

// NewBlockSet returns an empty BlockSet over the given sequences.
func NewBlockSet(sequences []seq.Sequence) *BlockSet {
	return &BlockSet{
		Fragments: frag.NewArena(),
		blocks:    map[ID]*Block{},
		Sequences: sequences,
		bsas:      map[string]*BSA{},
	}
}

// AddBlock inserts b, reparenting its fragments (setting each fragment's
// Block field) when b is not weak, per spec §3's Block invariant. Any
// previous owner of a reparented fragment is marked weak, matching the
// original's "adding a fragment to a non-weak block reparents it (and
// marks its previous block weak)".
func (bs *BlockSet) AddBlock(b *Block) ID {
	id := bs.nextBlock
	bs.nextBlock++
	bs.blocks[id] = b
	if !b.Weak {
		for _, fid := range b.Fragments {
			f := bs.Fragments.Get(fid)
			if f.Block != frag.None && f.Block != frag.ID(id) {
				if prev, ok := bs.blocks[ID(f.Block)]; ok {
					prev.Weak = true
				}
			}
			f.Block = frag.ID(id)
			bs.Fragments.Set(fid, f)
		}
	}
	return id
}

// Block returns the block with the given ID, or nil if absent.
func (bs *BlockSet) Block(id ID) *Block { return bs.blocks[id] }

// RemoveBlock detaches id from the set. If id is not weak, every
// contained fragment is removed from the arena (spec §3: "Removing a
// fragment from its owning block destroys it").
func (bs *BlockSet) RemoveBlock(id ID) {
	b, ok := bs.blocks[id]
	if !ok {
		return
	}
	if !b.Weak {
		for _, fid := range b.Fragments {
			if bs.Fragments.Live(fid) {
				bs.Fragments.Remove(fid)
			}
		}
	}
	delete(bs.blocks, id)
}

// Blocks returns all block IDs currently in the set. Iteration order is
// unspecified per spec §5.
func (bs *BlockSet) Blocks() []ID {
	ids := make([]ID, 0, len(bs.blocks))
	for id := range bs.blocks {
		ids = append(ids, id)
	}
	return ids
}

// Size returns the number of blocks in the set.
func (bs *BlockSet) Size() int { return len(bs.blocks) }

// Clear discards every block, leaving the fragment arena, sequences and
// block-set alignments untouched. Processors that replace a set's blocks
// wholesale (such as OverlapsResolver2, spec §4.5) call this before
// repopulating it.
func (bs *BlockSet) Clear() {
	bs.blocks = map[ID]*Block{}
}

// BSARow is one sequence's row of a block-set alignment: gaps are nil
// Fragment entries.
type BSARow struct {
	Ori       int8
	Fragments []*frag.ID
}

// BSA is a named alignment of blocks along sequences (a "block-set
// alignment"), with explicit gap columns and equal row lengths.
type BSA struct {
	Name string
	Rows map[seq.Sequence]*BSARow
}

// AddBSA registers a new, empty block-set alignment under name,
// replacing any existing one with the same name.
func (bs *BlockSet) AddBSA(name string) *BSA {
	a := &BSA{Name: name, Rows: map[seq.Sequence]*BSARow{}}
	bs.bsas[name] = a
	return a
}

// BSA returns the named block-set alignment, or nil if absent.
func (bs *BlockSet) BSA(name string) *BSA { return bs.bsas[name] }

// BSANames returns the names of all registered block-set alignments.
func (bs *BlockSet) BSANames() []string {
	names := make([]string, 0, len(bs.bsas))
	for n := range bs.bsas {
		names = append(names, n)
	}
	return names
}
