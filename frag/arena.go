// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frag

// Arena owns a growable slice of Fragments addressed by ID. Algorithms
// that rewire neighbour pointers (Joiner, Split) must run single-threaded
// against a given Arena, per spec §5 Shared Resources.
type Arena struct {
	frags []Fragment
	// live marks whether the slot at the corresponding index is still
	// attached to the arena; removed slots are tombstoned rather than
	// compacted so existing IDs stay valid.
	live []bool
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add inserts f and returns its new ID.
func (a *Arena) Add(f Fragment) ID {
	id := ID(len(a.frags))
	a.frags = append(a.frags, f)
	a.live = append(a.live, true)
	return id
}

// Get returns the Fragment for id. Get panics if id is not live.
func (a *Arena) Get(id ID) Fragment {
	if id == None || !a.live[id] {
		panic("frag: use of removed or invalid fragment ID")
	}
	return a.frags[id]
}

// Set replaces the Fragment stored at id.
func (a *Arena) Set(id ID, f Fragment) {
	if id == None || !a.live[id] {
		panic("frag: use of removed or invalid fragment ID")
	}
	a.frags[id] = f
}

// Remove tombstones id, symmetrically detaching any neighbour that
// pointed at it.
func (a *Arena) Remove(id ID) {
	f := a.Get(id)
	if f.Prev != None && a.live[f.Prev] {
		p := a.frags[f.Prev]
		p.Next = None
		a.frags[f.Prev] = p
	}
	if f.Next != None && a.live[f.Next] {
		n := a.frags[f.Next]
		n.Prev = None
		a.frags[f.Next] = n
	}
	a.live[id] = false
}

// Live reports whether id still refers to an attached fragment.
func (a *Arena) Live(id ID) bool {
	return id != None && int(id) < len(a.live) && a.live[id]
}

// Link makes a.Next = b and b.Prev = a, maintaining the symmetric
// neighbour invariant of spec §3.
func (a *Arena) Link(prev, next ID) {
	p := a.Get(prev)
	p.Next = next
	a.frags[prev] = p
	n := a.Get(next)
	n.Prev = prev
	a.frags[next] = n
}

// Unlink clears the neighbour relationship between id and its current
// Next, if any, maintaining symmetry.
func (a *Arena) Unlink(id ID) {
	f := a.Get(id)
	if f.Next != None && a.live[f.Next] {
		n := a.frags[f.Next]
		n.Prev = None
		a.frags[f.Next] = n
	}
	f.Next = None
	a.frags[id] = f
}

// Split divides the fragment at id into two fragments at pos (the first
// sequence position belonging to the upper piece). Prev/Next always track
// adjacency in increasing sequence-position order, independent of Ori
// (per spec §3, neighbour pointers are a FragmentCollection-order
// relationship, not a read-direction one). Split replaces id's entry with
// the lower-position piece, appends the upper-position piece, links them
// as neighbours, and returns the upper piece's ID.
//
// Split panics if pos does not fall strictly inside the fragment.
func (a *Arena) Split(id ID, pos int) ID {
	f := a.Get(id)
	if pos <= f.MinPos || pos > f.MaxPos {
		panic("frag: split position outside fragment interior")
	}

	lower := New(f.Seq, f.MinPos, pos-1, f.Ori)
	upper := New(f.Seq, pos, f.MaxPos, f.Ori)
	lower.Block = f.Block
	upper.Block = f.Block

	oldNext := f.Next
	a.Set(id, lower)
	rid := a.Add(upper)
	a.Link(id, rid)
	if oldNext != None && a.live[oldNext] {
		a.Link(rid, oldNext)
	}
	return rid
}
