// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proc

import (
	"fmt"
	"sort"
	"sync"

	"github.com/starius/npge/block"
)

// BlockSorter is implemented by a BlocksJobs processor that wants blocks
// dispatched to workers in a particular order instead of BlockSet's
// native iteration order.
type BlockSorter interface {
	SortBlocks(ids []block.ID, bs *block.BlockSet) []block.ID
}

// BlocksJobs is the worker-pool loop every per-block processor embeds:
// BeforeWork, then Workers goroutines each call BeforeThread once and
// ProcessBlock for every block of the "target" slot pulled off a shared
// job channel, then AfterThread (serialized under one mutex, so it may
// safely mutate the processor's shared state), then FinishWork.
//
// Grounded on ndaniels-MICA's cablastp-compress alignPool: a closed job
// channel feeding a fixed worker count, drained with a sync.WaitGroup.
// That teacher reduces per-worker results with a best-match comparison;
// here there is nothing to compare, so AfterThread's single mutex is the
// whole reduction step.
type BlocksJobs struct {
	*Base
	impl Processor
}

// NewBlocksJobs wraps impl (which must embed *Base and override
// ProcessBlock, and may override BeforeWork/BeforeThread/AfterThread/
// FinishWork/SortBlocks) with the worker-pool Run loop.
func NewBlocksJobs(impl Processor, base *Base) *BlocksJobs {
	return &BlocksJobs{Base: base, impl: impl}
}

// Run executes the worker-pool loop described above.
func (j *BlocksJobs) Run() error {
	if err := j.impl.BeforeWork(); err != nil {
		return fmt.Errorf("proc: %s: BeforeWork: %w", j.impl.Name(), err)
	}

	target := j.impl.Slot("target")
	if target == nil {
		return fmt.Errorf("proc: %s: no target slot set", j.impl.Name())
	}

	ids := target.Blocks()
	if so, ok := j.impl.(BlockSorter); ok {
		ids = so.SortBlocks(ids, target)
	} else {
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	}
	j.Logger.Printf("%s: processing %d blocks", j.impl.Name(), len(ids))

	workers := j.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan block.ID, len(ids))
	for _, id := range ids {
		jobs <- id
	}
	close(jobs)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	worker := func() {
		defer wg.Done()
		tdata := j.impl.BeforeThread()
		for id := range jobs {
			blk := target.Block(id)
			if blk == nil {
				continue
			}
			if err := j.impl.ProcessBlock(blk, tdata); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("proc: %s: block %v: %w", j.impl.Name(), id, err)
				}
				mu.Unlock()
			}
		}
		mu.Lock()
		j.impl.AfterThread(tdata)
		mu.Unlock()
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return j.impl.FinishWork()
}
