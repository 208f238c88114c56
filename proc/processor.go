// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proc provides the processor framework of spec §4.7: a named
// unit of work with typed options, named block-set slots resolved
// lazily against other processors, a worker-pool per-block job loop
// (BlocksJobs), and ordered composition of child processors (Pipe).
package proc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starius/npge/block"
	"github.com/starius/npge/logging"
)

// Processor is the spec §4.7 contract every pipeline stage implements.
// Base provides a ready embeddable implementation of every method; its Run
// does nothing, and a concrete processor (BlocksJobs, Pipe, or a
// hand-written one-shot stage) supplies its own.
type Processor interface {
	Name() string

	// BeforeWork runs once before any block is processed.
	BeforeWork() error
	// BeforeThread returns fresh per-worker-goroutine state.
	BeforeThread() interface{}
	// ProcessBlock handles one block using tdata from BeforeThread.
	ProcessBlock(b *block.Block, tdata interface{}) error
	// AfterThread merges a worker's tdata into the processor's shared
	// state. Callers serialize calls to AfterThread (BlocksJobs does so
	// under a single mutex, per spec §4.7's "no shared mutable state"
	// contract for ProcessBlock).
	AfterThread(tdata interface{})
	// FinishWork runs once after every block has been processed.
	FinishWork() error

	Slot(name string) *block.BlockSet
	SetSlot(name string, bs *block.BlockSet)
	Options() *Options

	// Run executes the processor to completion.
	Run() error
}

// Option is one named, typed, validated setting (spec §4.7:
// "name → typed default → current value").
type Option struct {
	Name            string
	Default, Value  interface{}
	Validate        func(interface{}) error
	// Ignored marks an option set via a trailing ":=" override (spec
	// §4.7's set_options) as suppressed from further propagation, e.g.
	// by Pipe's $VAR substitution into child processors.
	Ignored bool
}

// Options is a processor's option registry.
type Options struct {
	byName map[string]*Option
	order  []string
}

// NewOptions returns an empty option registry.
func NewOptions() *Options {
	return &Options{byName: map[string]*Option{}}
}

// Add registers opt, defaulting its Value to its Default if unset.
func (o *Options) Add(opt *Option) {
	if opt.Value == nil {
		opt.Value = opt.Default
	}
	if _, exists := o.byName[opt.Name]; !exists {
		o.order = append(o.order, opt.Name)
	}
	o.byName[opt.Name] = opt
}

// Get returns the named option, or nil if it is not registered.
func (o *Options) Get(name string) *Option { return o.byName[name] }

// Value returns the named option's current value and whether it exists.
func (o *Options) Value(name string) (interface{}, bool) {
	opt, ok := o.byName[name]
	if !ok {
		return nil, false
	}
	return opt.Value, true
}

// Set validates and assigns value to the named option.
func (o *Options) Set(name string, value interface{}) error {
	opt, ok := o.byName[name]
	if !ok {
		return fmt.Errorf("proc: unknown option %q", name)
	}
	if opt.Validate != nil {
		if err := opt.Validate(value); err != nil {
			return fmt.Errorf("proc: option %q: %w", name, err)
		}
	}
	opt.Value = value
	return nil
}

// SetString parses s against the named option's current type (bool, int,
// float64, or string) and assigns the result, matching the command-line
// option-override syntax of spec §4.7's set_options.
func (o *Options) SetString(name, s string) error {
	opt, ok := o.byName[name]
	if !ok {
		return fmt.Errorf("proc: unknown option %q", name)
	}
	sample := opt.Value
	if sample == nil {
		sample = opt.Default
	}
	var v interface{}
	var err error
	switch sample.(type) {
	case bool:
		v, err = strconv.ParseBool(s)
	case int:
		var i int64
		i, err = strconv.ParseInt(s, 10, 64)
		v = int(i)
	case float64:
		v, err = strconv.ParseFloat(s, 64)
	default:
		v = s
	}
	if err != nil {
		return fmt.Errorf("proc: option %q: %w", name, err)
	}
	return o.Set(name, v)
}

// Ignore marks the named option Ignored, matching set_options' trailing
// ":=" suppression marker.
func (o *Options) Ignore(name string) {
	if opt, ok := o.byName[name]; ok {
		opt.Ignored = true
	}
}

// Names returns registered option names in registration order.
func (o *Options) Names() []string {
	return append([]string(nil), o.order...)
}

// lazySlot is a PointBS wiring: this processor's slot resolves, on
// demand, to another processor's named slot.
type lazySlot struct {
	other     Processor
	otherSlot string
}

// Base is an embeddable Processor implementation providing options,
// named slots (with lazy PointBS wiring) and no-op hooks; concrete
// processors embed Base and override whichever hooks and Run they need.
type Base struct {
	NameStr string
	Opts    *Options
	Workers int
	// Logger receives progress/diagnostic messages; defaults to
	// logging.Discard so ProcessBlock and friends never need a nil
	// check before logging.
	Logger logging.Logger

	slots map[string]*block.BlockSet
	lazy  map[string]lazySlot
}

// NewBase returns a Base with an empty option registry, no slots, and
// a discarding Logger.
func NewBase(name string) *Base {
	return &Base{
		NameStr: name,
		Opts:    NewOptions(),
		Workers: 1,
		Logger:  logging.Discard,
		slots:   map[string]*block.BlockSet{},
		lazy:    map[string]lazySlot{},
	}
}

func (b *Base) Name() string                 { return b.NameStr }
func (b *Base) BeforeWork() error             { return nil }
func (b *Base) BeforeThread() interface{}     { return nil }
func (b *Base) AfterThread(interface{})       {}
func (b *Base) FinishWork() error             { return nil }
func (b *Base) Options() *Options             { return b.Opts }
func (b *Base) Run() error                    { return nil }

// ProcessBlock is a placeholder; processors that work block-by-block
// (BlocksJobs subtypes) override it.
func (b *Base) ProcessBlock(*block.Block, interface{}) error { return nil }

// SetSlot explicitly assigns bs to the named slot, taking priority over
// any PointBS lazy wiring for that name.
func (b *Base) SetSlot(name string, bs *block.BlockSet) {
	b.slots[name] = bs
}

// Slot resolves the named slot: an explicit SetSlot assignment first,
// else a PointBS wiring resolved lazily against the other processor's
// current slot, else nil.
func (b *Base) Slot(name string) *block.BlockSet {
	if bs, ok := b.slots[name]; ok {
		return bs
	}
	if l, ok := b.lazy[name]; ok {
		return l.other.Slot(l.otherSlot)
	}
	return nil
}

// PointBS makes this processor's slot named by the left side of mapping
// ("lhs=rhs") resolve, lazily, to other's slot named by the right side,
// per spec §4.7.
func (b *Base) PointBS(mapping string, other Processor) error {
	lhs, rhs, ok := strings.Cut(mapping, "=")
	if !ok {
		return fmt.Errorf("proc: bad slot mapping %q", mapping)
	}
	b.lazy[lhs] = lazySlot{other: other, otherSlot: rhs}
	return nil
}

// SetOptions parses a spec §4.7 set_options line: whitespace-separated
// tokens, each either a slot mapping ("lhs=rhs", wired via PointBS
// against other) or an option override. An override is "--name=value"
// (or "--name:=value", which also marks the option Ignored), or a bare
// "--name" flag (equivalent to "--name=true").
func (b *Base) SetOptions(line string, other Processor) error {
	for _, tok := range strings.Fields(line) {
		if !strings.HasPrefix(tok, "--") {
			if err := b.PointBS(tok, other); err != nil {
				return err
			}
			continue
		}
		body := strings.TrimPrefix(tok, "--")
		name, value, ignore := body, "true", false
		if i := strings.Index(body, ":="); i >= 0 {
			name, value, ignore = body[:i], body[i+2:], true
		} else if i := strings.Index(body, "="); i >= 0 {
			name, value = body[:i], body[i+1:]
		}
		if err := b.Opts.SetString(name, value); err != nil {
			return err
		}
		if ignore {
			b.Opts.Ignore(name)
		}
	}
	return nil
}
