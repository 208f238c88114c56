// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging declares the Logger contract proc and pipeline code
// logs through, matching stdlib *log.Logger's shape so callers can pass
// one directly, or build a file+stderr io.MultiWriter logger the way
// krishna.initLog does.
package logging

import (
	"fmt"
	"io"
	"log"
)

// Logger is satisfied by *log.Logger.
type Logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
	Fatalln(v ...interface{})
}

// New returns a *log.Logger writing to w with prefix, matching
// krishna.initLog's construction (io.MultiWriter(os.Stderr, file) when
// logging to both console and a file).
func New(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.LstdFlags)
}

// discard is a Logger that does nothing, used as Base's default logger
// so processors may log unconditionally without a nil check.
type discard struct{}

func (discard) Print(v ...interface{})                 {}
func (discard) Printf(format string, v ...interface{}) {}
func (discard) Println(v ...interface{})               {}
func (discard) Fatal(v ...interface{})                 { panic(fmt.Sprint(v...)) }
func (discard) Fatalf(format string, v ...interface{}) { panic(fmt.Sprintf(format, v...)) }
func (discard) Fatalln(v ...interface{})               { panic(fmt.Sprintln(v...)) }

// Discard is a Logger whose Print family is a no-op; Fatal family
// panics rather than silently continuing, since a genuine fatal
// condition must not be swallowed just because no logger was set.
var Discard Logger = discard{}
