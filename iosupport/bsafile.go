// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iosupport

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/starius/npge/block"
	"github.com/starius/npge/frag"
	"github.com/starius/npge/seq"
)

// WriteBSAFile writes every block-set alignment registered on bs in
// spec §6's format: one line per sequence row,
// "{bsa_name}\t{seq.name}\t{ori}\t{fragment_ids_space_separated}", with
// "-" marking a gap column.
func WriteBSAFile(w io.Writer, bs *block.BlockSet) error {
	bw := bufio.NewWriter(w)
	for _, name := range bs.BSANames() {
		a := bs.BSA(name)
		for s, row := range a.Rows {
			tokens := make([]string, len(row.Fragments))
			for i, fid := range row.Fragments {
				if fid == nil {
					tokens[i] = "-"
					continue
				}
				tokens[i] = fragmentID(bs.Fragments.Get(*fid))
			}
			if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\t%s\n",
				name, s.Name(), row.Ori, strings.Join(tokens, " ")); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadBSAFile parses spec §6's block-set alignment format, resolving
// fragment-id tokens against fragments already owned by one of bs's
// blocks.
func ReadBSAFile(r io.Reader, bs *block.BlockSet, sequences map[string]seq.Sequence) error {
	index := map[string]frag.ID{}
	for _, id := range bs.Blocks() {
		blk := bs.Block(id)
		for _, fid := range blk.Fragments {
			index[fragmentID(bs.Fragments.Get(fid))] = fid
		}
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) != 4 {
			return fmt.Errorf("iosupport: malformed BSA line %q", line)
		}
		bsaName, seqName, oriStr, tokensStr := fields[0], fields[1], fields[2], fields[3]
		s, ok := sequences[seqName]
		if !ok {
			return fmt.Errorf("iosupport: unknown sequence %q", seqName)
		}
		ori, err := strconv.Atoi(oriStr)
		if err != nil {
			return fmt.Errorf("iosupport: %w", err)
		}

		a := bs.BSA(bsaName)
		if a == nil {
			a = bs.AddBSA(bsaName)
		}
		var fids []*frag.ID
		for _, tok := range strings.Fields(tokensStr) {
			if tok == "-" {
				fids = append(fids, nil)
				continue
			}
			fid, ok := index[tok]
			if !ok {
				return fmt.Errorf("iosupport: unknown fragment id %q", tok)
			}
			id := fid
			fids = append(fids, &id)
		}
		a.Rows[s] = &block.BSARow{Ori: int8(ori), Fragments: fids}
	}
	return sc.Err()
}
