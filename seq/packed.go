// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seq

// base2bit and bit2base implement the 2-bit packing used by Packed.
// Encoding is little-endian within a byte: the letter at position i
// occupies bits [2*(i%4), 2*(i%4)+2) of byte i/4. This is asserted by
// the original test suite though undocumented in its own spec; treated
// as normative here (spec §9 Open Questions).
var base2bit = map[byte]byte{'A': 0, 'T': 1, 'G': 2, 'C': 3}
var bit2base = [4]byte{'A', 'T', 'G', 'C'}

// Packed is a Sequence storing 2 bits per nucleotide, four letters per
// byte, little-endian within a byte.
type Packed struct {
	name, desc, accession string
	size                  int
	data                  []byte
}

// NewPacked builds a Packed sequence from upper-cased ATGC bases.
func NewPacked(name, description, accessNumber string, bases []byte) (*Packed, error) {
	if err := validateBases(bases); err != nil {
		return nil, err
	}
	p := &Packed{
		name:      name,
		desc:      description,
		accession: accessNumber,
		size:      len(bases),
		data:      make([]byte, (len(bases)+3)/4),
	}
	for i, b := range bases {
		p.data[i/4] |= base2bit[b] << (uint(i%4) * 2)
	}
	return p, nil
}

func (p *Packed) Name() string         { return p.name }
func (p *Packed) Description() string  { return p.desc }
func (p *Packed) AccessNumber() string { return p.accession }
func (p *Packed) Size() int            { return p.size }

func (p *Packed) CharAt(i int) byte {
	if i < 0 || i >= p.size {
		panic("seq: index out of range")
	}
	bits := (p.data[i/4] >> (uint(i%4) * 2)) & 0x3
	return bit2base[bits]
}

func (p *Packed) Get(pos, length int) []byte {
	if pos < 0 || length < 0 || pos+length > p.size {
		panic("seq: range out of bounds")
	}
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = p.CharAt(pos + i)
	}
	return out
}
