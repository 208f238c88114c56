// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seq

import "bytes"

// Dense is a Sequence backed by one byte per nucleotide, analogous to
// biogo's linear.Seq byte storage.
type Dense struct {
	name, desc, accession string
	bases                 []byte
}

// NewDense builds a Dense sequence from an upper-cased copy of bases;
// after upper-casing, every byte must be one of A, T, G or C (the FASTA
// source filters out other characters before this point).
func NewDense(name, description, accessNumber string, bases []byte) (*Dense, error) {
	cp := bytes.ToUpper(bases)
	if err := validateBases(cp); err != nil {
		return nil, err
	}
	return &Dense{name: name, desc: description, accession: accessNumber, bases: cp}, nil
}

func (d *Dense) Name() string         { return d.name }
func (d *Dense) Description() string  { return d.desc }
func (d *Dense) AccessNumber() string { return d.accession }
func (d *Dense) Size() int            { return len(d.bases) }

func (d *Dense) CharAt(i int) byte {
	if i < 0 || i >= len(d.bases) {
		panic("seq: index out of range")
	}
	return d.bases[i]
}

func (d *Dense) Get(pos, length int) []byte {
	if pos < 0 || length < 0 || pos+length > len(d.bases) {
		panic("seq: range out of bounds")
	}
	out := make([]byte, length)
	copy(out, d.bases[pos:pos+length])
	return out
}
