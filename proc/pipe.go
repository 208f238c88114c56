// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"fmt"
	"strings"

	"github.com/starius/npge/block"
)

// Pipe composes an ordered list of child Processors into one Processor,
// per spec §4.7: running Pipe runs each child in turn, first substituting
// any of the child's string-valued, non-Ignored options of the form
// "$VAR" with Pipe's own current option value named VAR.
type Pipe struct {
	*Base
	children []Processor
}

// NewPipe returns a Pipe that runs children, in order, when Run.
func NewPipe(name string, children ...Processor) *Pipe {
	return &Pipe{Base: NewBase(name), children: children}
}

// Add appends child to the end of the pipeline.
func (p *Pipe) Add(child Processor) { p.children = append(p.children, child) }

// Children returns the pipeline's child processors in run order.
func (p *Pipe) Children() []Processor {
	return append([]Processor(nil), p.children...)
}

// Run substitutes $VAR options and runs each child in order, stopping at
// the first error.
func (p *Pipe) Run() error {
	for _, child := range p.children {
		substituteOptions(p.Opts, child.Options())
		if err := child.Run(); err != nil {
			return fmt.Errorf("proc: %s: %s: %w", p.Name(), child.Name(), err)
		}
	}
	return nil
}

// substituteOptions rewrites every option of child whose current value is
// a non-Ignored string of the form "$NAME" to parent's current value for
// NAME, leaving the option untouched if parent has no such option.
func substituteOptions(parent *Options, child *Options) {
	for _, name := range child.Names() {
		opt := child.Get(name)
		if opt.Ignored {
			continue
		}
		s, ok := opt.Value.(string)
		if !ok || !strings.HasPrefix(s, "$") {
			continue
		}
		if v, ok := parent.Value(strings.TrimPrefix(s, "$")); ok {
			child.Set(name, v)
		}
	}
}

// Slot resolves name against Pipe's own slots first, then against every
// child in order, returning the first non-nil result.
func (p *Pipe) Slot(name string) *block.BlockSet {
	if bs := p.Base.Slot(name); bs != nil {
		return bs
	}
	for _, child := range p.children {
		if bs := child.Slot(name); bs != nil {
			return bs
		}
	}
	return nil
}
