// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iosupport

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// fragmentID formats f per spec §6's output convention:
// "{seq.name}_{min_pos}_{max_pos}_{ori}".
func fragmentID(f frag.Fragment) string {
	return fmt.Sprintf("%s_%d_%d_%d", f.Seq.Name(), f.MinPos, f.MaxPos, f.Ori)
}

// rowString renders row as a gapped string over f's residues, '-' at
// every gap column.
func rowString(row block.AlignmentRow, f frag.Fragment) string {
	out := make([]byte, row.Length())
	for c := range out {
		pos, gap := row.MapToFragment(c)
		if gap {
			out[c] = '-'
		} else {
			out[c] = f.RawAt(pos)
		}
	}
	return string(out)
}

// WriteBlockFile writes bs's blocks in spec §6's block-file format:
// blocks separated by a blank line, one line per fragment,
// "id\tseq&min_pos&max_pos&ori\taligned_row". A block with no recorded
// alignment writes each fragment's raw (ungapped) sequence as its row.
func WriteBlockFile(w io.Writer, bs *block.BlockSet) error {
	bw := bufio.NewWriter(w)
	ids := bs.Blocks()
	for i, id := range ids {
		blk := bs.Block(id)
		for _, fid := range blk.Fragments {
			f := bs.Fragments.Get(fid)
			row := f.Str()
			if r := blk.Row(fid); r != nil {
				row = rowString(r, f)
			}
			if _, err := fmt.Fprintf(bw, "%s\t%s&%d&%d&%d\t%s\n",
				fragmentID(f), f.Seq.Name(), f.MinPos, f.MaxPos, f.Ori, row); err != nil {
				return err
			}
		}
		if i != len(ids)-1 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadBlockFile parses spec §6's block-file format, resolving each
// fragment's sequence by name against sequences, and recording each
// fragment's aligned row as its AlignmentRow.
func ReadBlockFile(r io.Reader, sequences map[string]seq.Sequence) (*block.BlockSet, error) {
	all := make([]seq.Sequence, 0, len(sequences))
	for _, s := range sequences {
		all = append(all, s)
	}
	bs := block.NewBlockSet(all)
	rnd := rand.New(rand.NewSource(1))

	sc := bufio.NewScanner(r)
	var blk *block.Block
	flush := func() {
		if blk != nil && blk.Size() > 0 {
			bs.AddBlock(blk)
		}
		blk = nil
	}
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("iosupport: malformed block-file line %q", line)
		}
		coords := strings.Split(fields[1], "&")
		if len(coords) != 4 {
			return nil, fmt.Errorf("iosupport: malformed coordinates %q", fields[1])
		}
		sName := coords[0]
		minPos, err := strconv.Atoi(coords[1])
		if err != nil {
			return nil, fmt.Errorf("iosupport: %w", err)
		}
		maxPos, err := strconv.Atoi(coords[2])
		if err != nil {
			return nil, fmt.Errorf("iosupport: %w", err)
		}
		ori, err := strconv.Atoi(coords[3])
		if err != nil {
			return nil, fmt.Errorf("iosupport: %w", err)
		}
		s, ok := sequences[sName]
		if !ok {
			return nil, fmt.Errorf("iosupport: unknown sequence %q", sName)
		}

		f := frag.New(s, minPos, maxPos, int8(ori))
		if blk == nil {
			blk = block.New(rnd)
		}
		fid := bs.Fragments.Add(f)
		blk.Add(fid)
		row := block.NewBitsetRow()
		row.Grow(fields[2])
		blk.SetRow(fid, row)
	}
	flush()
	return bs, sc.Err()
}
