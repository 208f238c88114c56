// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"sync"
	"testing"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// counter is a minimal BlocksJobs-driven Processor: it counts how many
// fragments it sees across every block of its "target" slot.
type counter struct {
	*Base
	mu    sync.Mutex
	total int
}

func newCounter() *counter {
	c := &counter{Base: NewBase("counter")}
	return c
}

func (c *counter) BeforeThread() interface{} { return new(int) }

func (c *counter) ProcessBlock(b *block.Block, tdata interface{}) error {
	n := tdata.(*int)
	*n += b.Size()
	return nil
}

func (c *counter) AfterThread(tdata interface{}) {
	c.mu.Lock()
	c.total += *tdata.(*int)
	c.mu.Unlock()
}

func mustSeq(t *testing.T, name, s string) seq.Sequence {
	t.Helper()
	d, err := seq.NewDense(name, "", "", []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestBlocksJobsCountsEveryFragment(t *testing.T) {
	s := mustSeq(t, "s", "ACGTACGTAA")
	bs := block.NewBlockSet([]seq.Sequence{s})

	for i := 0; i < 4; i++ {
		b := block.NewNamed("b")
		b.Add(bs.Fragments.Add(frag.New(s, i, i, 1)))
		b.Add(bs.Fragments.Add(frag.New(s, i+1, i+1, 1)))
		bs.AddBlock(b)
	}

	c := newCounter()
	c.SetSlot("target", bs)
	c.Workers = 3

	jobs := NewBlocksJobs(c, c.Base)
	if err := jobs.Run(); err != nil {
		t.Fatal(err)
	}
	if c.total != 8 {
		t.Fatalf("got %d fragments counted, want 8", c.total)
	}
}

func TestPointBSResolvesLazily(t *testing.T) {
	s := mustSeq(t, "s", "ACGT")
	bs := block.NewBlockSet([]seq.Sequence{s})

	producer := NewBase("producer")
	producer.SetSlot("out", bs)

	consumer := NewBase("consumer")
	if err := consumer.PointBS("in=out", producer); err != nil {
		t.Fatal(err)
	}
	if consumer.Slot("in") != bs {
		t.Fatal("PointBS did not resolve to producer's slot")
	}

	// Rewiring the producer's slot is immediately visible (lazy, not
	// cached at PointBS time).
	bs2 := block.NewBlockSet([]seq.Sequence{s})
	producer.SetSlot("out", bs2)
	if consumer.Slot("in") != bs2 {
		t.Fatal("PointBS did not track producer's updated slot")
	}
}

func TestSetOptionsParsesOverridesAndMappings(t *testing.T) {
	producer := NewBase("producer")
	bs := block.NewBlockSet(nil)
	producer.SetSlot("out", bs)

	consumer := NewBase("consumer")
	consumer.Opts.Add(&Option{Name: "min-block", Default: 2})
	consumer.Opts.Add(&Option{Name: "timing", Default: false})

	if err := consumer.SetOptions("target=out --min-block:=5 --timing", producer); err != nil {
		t.Fatal(err)
	}
	if consumer.Slot("target") != bs {
		t.Fatal("slot mapping was not applied")
	}
	v, _ := consumer.Opts.Value("min-block")
	if v.(int) != 5 {
		t.Fatalf("got min-block=%v, want 5", v)
	}
	if !consumer.Opts.Get("min-block").Ignored {
		t.Fatal("min-block should be marked Ignored by the := form")
	}
	v, _ = consumer.Opts.Value("timing")
	if v.(bool) != true {
		t.Fatalf("got timing=%v, want true", v)
	}
}

// passthrough is a one-shot (non-BlocksJobs) Processor used to exercise
// Pipe's sequencing and $VAR substitution.
type passthrough struct {
	*Base
	ran bool
}

func (p *passthrough) Run() error {
	p.ran = true
	return nil
}

func TestPipeSubstitutesVarsAndRunsChildrenInOrder(t *testing.T) {
	pipe := NewPipe("pipe")
	pipe.Opts.Add(&Option{Name: "min-block", Default: 7})

	child := &passthrough{Base: NewBase("child")}
	child.Opts.Add(&Option{Name: "min-block", Default: "$min-block"})
	pipe.Add(child)

	if err := pipe.Run(); err != nil {
		t.Fatal(err)
	}
	if !child.ran {
		t.Fatal("child was never run")
	}
	v, _ := child.Opts.Value("min-block")
	if v.(int) != 7 {
		t.Fatalf("got min-block=%v, want 7 (substituted from pipe)", v)
	}
}
