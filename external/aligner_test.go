// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package external

import "testing"

// TestCommandAlignerPassthrough uses "cat" as a stand-in aligner: since
// the input rows are already equal length, a passthrough leaves them
// unchanged, letting this test exercise the plumbing (argument building,
// stdin feeding, stdout splitting, row-length validation) without a real
// alignment tool installed.
func TestCommandAlignerPassthrough(t *testing.T) {
	a := NewCommandAligner("cat")
	got, err := a.Align([]string{"AC-T", "ACGT"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"AC-T", "ACGT"}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCommandAlignerRejectsUnequalRowLengths(t *testing.T) {
	a := NewCommandAligner("printf", "%s", "ACGT\nAC\n")
	if _, err := a.Align([]string{"ACGT", "AC--"}); err == nil {
		t.Fatal("expected an error for unequal aligned-row lengths")
	}
}
