// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bloom provides a bloom filter over rolling k-mer hashes, the
// prefilter behind anchor discovery (spec §4.1), grounded on biogo's
// index/kmerindex rolling-hash convention and generalized to a
// strand-aware canonical hash.
package bloom

// baseCode assigns A,G,C,T the values 0..3 used for base-4 hashing, chosen
// so that complementary bases sum to 3 (A+T=3, G+C=3): Complement's
// digit-swap d -> 3-d depends on this pairing to compute the true
// reverse complement's hash.
var baseCode = [256]int8{}

func init() {
	for i := range baseCode {
		baseCode[i] = -1
	}
	baseCode['A'] = 0
	baseCode['G'] = 1
	baseCode['C'] = 2
	baseCode['T'] = 3
}

// pow4 returns 4^n as a uint64. n is expected to be small (k-mer length).
func pow4(n int) uint64 {
	var v uint64 = 1
	for i := 0; i < n; i++ {
		v *= 4
	}
	return v
}

// Hash computes Σ base(seq[i])·4^i over a length-long window starting at
// start, read in direction ori (+1 forward, -1 backward), per spec §4.1
// make_hash. Hash panics if any base is not A, T, G or C.
func Hash(s []byte, start, length int, ori int8) uint64 {
	var h uint64
	var mult uint64 = 1
	for i := 0; i < length; i++ {
		pos := start
		if ori == 1 {
			pos = start + i
		} else {
			pos = start - i
		}
		code := baseCode[s[pos]]
		if code < 0 {
			panic("bloom: invalid base in k-mer window")
		}
		h += uint64(code) * mult
		mult *= 4
	}
	return h
}

// Reuse updates a rolling hash in O(1) for a sliding window of the given
// length: removed drops off the trailing end, added becomes the new
// leading base, per spec §4.1 reuse_hash.
//
// forward selects which end is "trailing": when forward is true the
// window slides in the +1 direction (removed was the lowest-order digit,
// added becomes the highest); when false it slides in the -1 direction.
func Reuse(old uint64, length int, removed, added byte, forward bool) uint64 {
	rc, ac := baseCode[removed], baseCode[added]
	if rc < 0 || ac < 0 {
		panic("bloom: invalid base in rolling update")
	}
	top := pow4(length - 1)
	if forward {
		h := (old - uint64(rc)) / 4
		return h + uint64(ac)*top
	}
	h := (old - uint64(rc)*top) * 4
	return h + uint64(ac)
}

// Complement returns the hash of the reverse complement of the length-mer
// whose forward hash is h: reverse the base-4 digit order and map each
// digit d -> 3-d.
func Complement(h uint64, length int) uint64 {
	var c uint64
	for i := 0; i < length; i++ {
		digit := (h / pow4(i)) % 4
		c += (3 - digit) * pow4(length-1-i)
	}
	return c
}

// Canonical returns the smaller of a k-mer's forward hash and its
// reverse-complement hash, used to make anchor discovery strand-agnostic.
func Canonical(s []byte, start, length int) uint64 {
	fwd := Hash(s, start, length, 1)
	rc := Complement(fwd, length)
	if rc < fwd {
		return rc
	}
	return fwd
}
