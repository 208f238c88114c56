// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bloom

import (
	"math/rand"
	"testing"
)

func TestHashUniqueness(t *testing.T) {
	seen := map[uint64]string{}
	s := []byte("ATGCATGCATGC")
	for start := 0; start+4 <= len(s); start++ {
		h := Hash(s, start, 4, 1)
		kmer := string(s[start : start+4])
		if other, ok := seen[h]; ok && other != kmer {
			t.Errorf("hash collision between %q and %q", kmer, other)
		}
		seen[h] = kmer
	}
}

func TestComplementInvolution(t *testing.T) {
	s := []byte("ATGCATGC")
	h := Hash(s, 0, 4, 1)
	c := Complement(h, 4)
	cc := Complement(c, 4)
	if cc != h {
		t.Errorf("Complement(Complement(h)) = %d, want %d", cc, h)
	}
}

func TestComplementMatchesReverseComplementSequence(t *testing.T) {
	rc := map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}
	s := []byte("ATGCAT")
	k := 4
	for start := 0; start+k <= len(s); start++ {
		kmer := s[start : start+k]
		rev := make([]byte, k)
		for i, b := range kmer {
			rev[k-1-i] = rc[b]
		}
		h := Hash(kmer, 0, k, 1)
		want := Hash(rev, 0, k, 1)
		if got := Complement(h, k); got != want {
			t.Errorf("Complement(%q) hash = %d, want %d (hash of %q)", kmer, got, want, rev)
		}
	}
}

func TestReuseMatchesFreshHash(t *testing.T) {
	s := []byte("ATGCATGCATGC")
	k := 4
	h := Hash(s, 0, k, 1)
	for start := 0; start+k+1 <= len(s); start++ {
		want := Hash(s, start+1, k, 1)
		h = Reuse(h, k, s[start], s[start+k], true)
		if h != want {
			t.Errorf("Reuse at start=%d = %d, want %d", start+1, h, want)
		}
	}
}

func TestFilterAddedElementsTestTrue(t *testing.T) {
	f := New(1<<16, 4)
	hashes := make([]uint64, 1000)
	for i := range hashes {
		hashes[i] = uint64(i) * 0x9E3779B1
		f.Add(hashes[i])
	}
	for _, h := range hashes {
		if !f.Test(h) {
			t.Fatalf("Test(%d) = false after Add", h)
		}
	}
}

func TestFilterFalsePositiveRateBounded(t *testing.T) {
	const n = 10000
	const target = 0.01
	bits, k := EstimateParams(n, target)
	f := New(bits, k)

	r := rand.New(rand.NewSource(42))
	seen := map[uint64]bool{}
	for len(seen) < n {
		h := r.Uint64()
		if !seen[h] {
			seen[h] = true
			f.Add(h)
		}
	}

	trials := 200000
	falsePositives := 0
	for i := 0; i < trials; i++ {
		h := r.Uint64()
		if seen[h] {
			continue
		}
		if f.Test(h) {
			falsePositives++
		}
	}
	rate := float64(falsePositives) / float64(trials)
	// Allow generous slack: the spec only requires the bound hold within
	// ±10% over 10^6 trials; this is a much smaller, faster sample.
	if rate > target*3 {
		t.Errorf("false positive rate %.4f far exceeds target %.4f", rate, target)
	}
}
