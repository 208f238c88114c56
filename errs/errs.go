// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the error kinds of spec §7, as small typed
// structs wrapping an underlying cause, following the plain-typed-error
// style already visible across the example pack (no external errors
// package pulled in beyond stdlib errors/fmt.Errorf's "%w").
package errs

import "fmt"

// ValidationError reports a malformed sequence name, option parse
// failure, or bad mode string, surfaced at run start and fatal to the
// whole pipeline.
type ValidationError struct {
	What string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation error: %s: %v", e.What, e.Err)
	}
	return fmt.Sprintf("validation error: %s", e.What)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// InvariantViolation reports a broken internal contract (a fragment
// outside its sequence, an asymmetric neighbour link). Always fatal;
// there is no recovery path.
type InvariantViolation struct {
	What string
	Err  error
}

func (e *InvariantViolation) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invariant violation: %s: %v", e.What, e.Err)
	}
	return fmt.Sprintf("invariant violation: %s", e.What)
}

func (e *InvariantViolation) Unwrap() error { return e.Err }

// IOError reports a read/write failure on an external stream. Surfaced
// to the caller; partial output may already exist.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("io error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("io error: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// AlignerError reports an external aligner exiting non-zero or
// producing malformed output. Fatal for the current block; the pipeline
// policy is to propagate rather than skip.
type AlignerError struct {
	Cmd string
	Err error
}

func (e *AlignerError) Error() string {
	if e.Cmd != "" {
		return fmt.Sprintf("aligner error: %s: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("aligner error: %v", e.Err)
}

func (e *AlignerError) Unwrap() error { return e.Err }
