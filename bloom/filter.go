// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bloom

import "math"

// Filter is a multi-hash bloom filter over a fixed-size bit array, per
// spec §4.1: Add sets K bits, Test is their conjunction; there is no
// deletion.
type Filter struct {
	bits        []bool
	multipliers []uint64
}

// odd 64-bit constants used to spread a single hash across K independent
// bit positions; chosen arbitrarily but fixed so filters are reproducible.
var defaultMultipliers = []uint64{
	0x9E3779B97F4A7C15, 0xC2B2AE3D27D4EB4F, 0x165667B19E3779F9,
	0x27D4EB2F165667C5, 0x85EBCA77C2B2AE63, 0xFF51AFD7ED558CCD,
}

// New returns a Filter with the given number of bits and K hash
// functions. K must not exceed len(defaultMultipliers).
func New(bits int, k int) *Filter {
	if k <= 0 || k > len(defaultMultipliers) {
		panic("bloom: k out of supported range")
	}
	return &Filter{
		bits:        make([]bool, bits),
		multipliers: append([]uint64(nil), defaultMultipliers[:k]...),
	}
}

// EstimateParams derives (bits, k) for a target false-positive rate over
// an expected number of distinct elements n, using the standard bloom
// filter formulas referenced by spec §4.2.
func EstimateParams(n int, falsePositiveRate float64) (bits, k int) {
	if n <= 0 {
		n = 1
	}
	m := -float64(n) * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2)
	bits = int(math.Ceil(m))
	if bits < 8 {
		bits = 8
	}
	k = int(math.Round(float64(bits) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}
	if k > len(defaultMultipliers) {
		k = len(defaultMultipliers)
	}
	return bits, k
}

func (f *Filter) indices(hash uint64) []int {
	idx := make([]int, len(f.multipliers))
	for j, mul := range f.multipliers {
		idx[j] = int((hash * mul) % uint64(len(f.bits)))
	}
	return idx
}

// Add sets all K bits derived from hash.
func (f *Filter) Add(hash uint64) {
	for _, i := range f.indices(hash) {
		f.bits[i] = true
	}
}

// Test reports whether all K bits derived from hash are set. A true
// result may be a false positive; a false result is never wrong.
func (f *Filter) Test(hash uint64) bool {
	for _, i := range f.indices(hash) {
		if !f.bits[i] {
			return false
		}
	}
	return true
}

// Bits returns the size of the underlying bit array.
func (f *Filter) Bits() int { return len(f.bits) }

// K returns the number of hash functions in use.
func (f *Filter) K() int { return len(f.multipliers) }
