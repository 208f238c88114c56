// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seq provides immutable nucleotide sequence storage with
// random-access letter lookup and canonical name parsing.
package seq

import (
	"fmt"
	"strings"
)

// Sequence is an immutable, stranded nucleotide sequence. Implementations
// are safe for concurrent reads.
type Sequence interface {
	Name() string
	Description() string
	AccessNumber() string
	Size() int

	// CharAt returns the base at i, one of 'A', 'T', 'G' or 'C'.
	// CharAt panics if i is outside [0, Size()).
	CharAt(i int) byte

	// Get returns a copy of length bytes starting at pos.
	Get(pos, length int) []byte
}

// complement maps a base to its Watson-Crick complement.
var complement = map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}

// Complement returns the Watson-Crick complement of b. Complement panics
// if b is not one of A, T, G, C.
func Complement(b byte) byte {
	c, ok := complement[b]
	if !ok {
		panic(fmt.Sprintf("seq: invalid base %q", b))
	}
	return c
}

func validateBases(bases []byte) error {
	for i, b := range bases {
		if _, ok := complement[b]; !ok {
			return &InvalidBaseError{Pos: i, Base: b}
		}
	}
	return nil
}

// InvalidBaseError reports a non-ATGC byte encountered while constructing
// a Sequence.
type InvalidBaseError struct {
	Pos  int
	Base byte
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("seq: invalid base %q at position %d", e.Base, e.Pos)
}

// ParseName splits a canonical sequence name of the form
// "genome&chromosome&c|l" into its components. ok is false if name does
// not have the three-part form.
func ParseName(name string) (genome, chromosome string, circular, ok bool) {
	parts := strings.Split(name, "&")
	if len(parts) != 3 {
		return "", "", false, false
	}
	switch parts[2] {
	case "c":
		circular = true
	case "l":
		circular = false
	default:
		return "", "", false, false
	}
	return parts[0], parts[1], circular, true
}

// Genome returns the genome part of a canonical sequence name, or "" if
// name is not in canonical form.
func Genome(name string) string {
	g, _, _, ok := ParseName(name)
	if !ok {
		return ""
	}
	return g
}

// Chromosome returns the chromosome part of a canonical sequence name, or
// "" if name is not in canonical form.
func Chromosome(name string) string {
	_, c, _, ok := ParseName(name)
	if !ok {
		return ""
	}
	return c
}

// Circular reports whether a canonical sequence name declares a circular
// chromosome. Circular panics if name is not in canonical form, matching
// the original's throwing behaviour on a malformed name.
func Circular(name string) bool {
	_, _, circ, ok := ParseName(name)
	if !ok {
		panic(fmt.Sprintf("seq: %q is not a canonical sequence name", name))
	}
	return circ
}
