// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seq

import "testing"

func TestParseName(t *testing.T) {
	for _, test := range []struct {
		name                 string
		genome, chrom        string
		circular, ok         bool
	}{
		{"Ecoli&chr1&c", "Ecoli", "chr1", true, true},
		{"Ecoli&chr1&l", "Ecoli", "chr1", false, true},
		{"Ecoli&chr1&x", "", "", false, false},
		{"not-canonical", "", "", false, false},
	} {
		g, c, circ, ok := ParseName(test.name)
		if g != test.genome || c != test.chrom || circ != test.circular || ok != test.ok {
			t.Errorf("ParseName(%q) = %q, %q, %v, %v; want %q, %q, %v, %v",
				test.name, g, c, circ, ok, test.genome, test.chrom, test.circular, test.ok)
		}
	}
}

func TestCircularPanicsOnMalformed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Circular did not panic on malformed name")
		}
	}()
	Circular("garbage")
}

func TestDenseRoundTrip(t *testing.T) {
	bases := []byte("ATGCATGC")
	d, err := NewDense("s1", "desc", "ACC1", bases)
	if err != nil {
		t.Fatal(err)
	}
	if d.Size() != len(bases) {
		t.Fatalf("Size() = %d, want %d", d.Size(), len(bases))
	}
	for i, b := range bases {
		if got := d.CharAt(i); got != b {
			t.Errorf("CharAt(%d) = %q, want %q", i, got, b)
		}
	}
	if got := string(d.Get(2, 4)); got != "GCAT" {
		t.Errorf("Get(2,4) = %q, want GCAT", got)
	}
}

func TestPackedMatchesDense(t *testing.T) {
	bases := []byte("ATGCATGCATGCA")
	d, _ := NewDense("s1", "", "", bases)
	p, err := NewPacked("s1", "", "", bases)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size() != d.Size() {
		t.Fatalf("Size mismatch: %d vs %d", p.Size(), d.Size())
	}
	for i := range bases {
		if p.CharAt(i) != d.CharAt(i) {
			t.Errorf("CharAt(%d): packed=%q dense=%q", i, p.CharAt(i), d.CharAt(i))
		}
	}
	if string(p.Get(1, 5)) != string(d.Get(1, 5)) {
		t.Errorf("Get(1,5) mismatch: %q vs %q", p.Get(1, 5), d.Get(1, 5))
	}
}

func TestInvalidBase(t *testing.T) {
	if _, err := NewDense("s1", "", "", []byte("ATGN")); err == nil {
		t.Error("expected error for invalid base N")
	}
}
