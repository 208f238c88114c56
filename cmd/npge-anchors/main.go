// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// npge-anchors reads a FASTA file, finds exact-match seed blocks of a
// fixed k-mer length, and writes them out in the spec §6 block-file
// format — a thin standalone driver over the anchor package, useful for
// inspecting seeds before running the full npge-pangenome pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/starius/npge/anchor"
	"github.com/starius/npge/block"
	"github.com/starius/npge/fragcol"
	"github.com/starius/npge/iosupport"
	"github.com/starius/npge/logging"
	"github.com/starius/npge/seq"
)

var (
	inFile  string
	outFile string
	k       int
	logger  *log.Logger
)

func init() {
	flag.StringVar(&inFile, "in", "", "Input FASTA file.")
	flag.StringVar(&outFile, "out", "", "Output block file (defaults to stdout).")
	flag.IntVar(&k, "k", 15, "Anchor k-mer length.")
}

func readSequences(path string) ([]seq.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src := iosupport.NewFastaSource(f)
	var sequences []seq.Sequence
	for {
		s, ok := src.Next()
		if !ok {
			break
		}
		sequences = append(sequences, s)
	}
	return sequences, src.Err()
}

func main() {
	flag.Parse()
	logger = logging.New(os.Stderr, "npge-anchors: ")

	if inFile == "" {
		logger.Fatalln("no -in FASTA file given")
	}

	sequences, err := readSequences(inFile)
	if err != nil {
		logger.Fatalf("reading %s: %v", inFile, err)
	}
	logger.Printf("read %d sequences from %s", len(sequences), inFile)

	fc := fragcol.NewVector()
	fc.Prepare()

	finder := anchor.NewFinder(k)
	found := finder.Find(sequences, fc)
	logger.Printf("found %d anchor blocks", found.Size())

	bs := block.NewBlockSet(sequences)
	for _, id := range found.Blocks() {
		blk := found.Block(id)
		nb := block.NewNamed(blk.Name)
		for _, fid := range blk.Fragments {
			newFid := bs.Fragments.Add(found.Fragments.Get(fid))
			nb.Add(newFid)
			nb.SetRow(newFid, blk.Row(fid))
		}
		bs.AddBlock(nb)
	}

	w := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			logger.Fatalf("creating %s: %v", outFile, err)
		}
		defer f.Close()
		w = f
	}
	if err := iosupport.WriteBlockFile(w, bs); err != nil {
		logger.Fatalf("writing block file: %v", err)
	}
	fmt.Fprintln(os.Stderr, "done")
}
