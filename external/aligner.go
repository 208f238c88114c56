// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package external wraps an external pairwise/multiple alignment tool
// as the `align(Vec<String>) -> Vec<String>` collaborator spec §1 and §6
// leave out of scope, following github.com/biogo/external's
// buildarg-tagged-struct command construction (as used for BLAST
// invocation in the example pack's blast package).
package external

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	bioext "github.com/biogo/external"

	"github.com/starius/npge/errs"
)

// Aligner is the spec's external alignment collaborator: given a set of
// raw (ungapped) sequences, it returns one gapped row per input, all of
// equal length, '-' marking a gap column, in the same order as the
// input.
type Aligner interface {
	Align(sequences []string) ([]string, error)
}

// CommandAligner invokes an external aligner subprocess: sequences go in
// one per line on stdin, gapped rows come back one per line on stdout,
// matching the plain line-oriented protocol the simplest command-line
// aligners (e.g. a MUSCLE/MAFFT wrapper script) support.
type CommandAligner struct {
	// Cmd is the executable name or path; Args are extra flags appended
	// after bioext.Build's own output (e.g. "-quiet").
	Cmd  string `buildarg:"{{.}}"`
	Args []string
}

// NewCommandAligner returns a CommandAligner invoking cmd with args.
func NewCommandAligner(cmd string, args ...string) *CommandAligner {
	return &CommandAligner{Cmd: cmd, Args: args}
}

// Align runs the aligner subprocess over sequences and returns its
// gapped output rows.
func (c *CommandAligner) Align(sequences []string) ([]string, error) {
	cl, err := bioext.Build(c)
	if err != nil {
		return nil, &errs.AlignerError{Cmd: c.Cmd, Err: err}
	}
	args := append(append([]string(nil), cl[1:]...), c.Args...)
	cmd := exec.Command(cl[0], args...)

	var stdin bytes.Buffer
	for _, s := range sequences {
		stdin.WriteString(s)
		stdin.WriteByte('\n')
	}
	cmd.Stdin = &stdin

	out, err := cmd.Output()
	if err != nil {
		return nil, &errs.AlignerError{Cmd: c.Cmd, Err: err}
	}

	text := strings.TrimRight(string(out), "\n")
	var rows []string
	if text != "" {
		rows = strings.Split(text, "\n")
	}
	if len(rows) != len(sequences) {
		return nil, &errs.AlignerError{Cmd: c.Cmd, Err: fmt.Errorf(
			"expected %d aligned rows, got %d", len(sequences), len(rows))}
	}
	if len(rows) > 0 {
		length := len(rows[0])
		for _, r := range rows {
			if len(r) != length {
				return nil, &errs.AlignerError{Cmd: c.Cmd, Err: fmt.Errorf("aligned rows have unequal length")}
			}
		}
	}
	return rows, nil
}
