// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// npge-pangenome reads a FASTA file of genome sequences, runs the full
// AnchorFinder → Expander → OverlapsResolver2 → Filter → CutGaps →
// MoveGaps → Rest pipeline over it, and writes the resulting block set
// out as a block file plus a summary report, matching
// original_source's main pangenome-building driver.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/starius/npge/block"
	"github.com/starius/npge/blockops"
	"github.com/starius/npge/iosupport"
	"github.com/starius/npge/logging"
	"github.com/starius/npge/pipeline"
	"github.com/starius/npge/report"
	"github.com/starius/npge/seq"
)

var (
	inFile      string
	outFile     string
	bsaFile     string
	k           int
	minDistance int
	maxTail     int
	cutMode     string
	verbose     bool
	logger      *log.Logger
)

func init() {
	flag.StringVar(&inFile, "in", "", "Input FASTA file.")
	flag.StringVar(&outFile, "out", "", "Output block file (defaults to stdout).")
	flag.StringVar(&bsaFile, "bsa", "", "Output block-set-alignment file (optional).")
	flag.IntVar(&k, "k", 15, "Anchor k-mer length.")
	flag.IntVar(&minDistance, "min-distance", 100, "Minimum distance between resolved overlaps.")
	flag.IntVar(&maxTail, "max-tail", 10, "Longest terminal run of residues before a gap that MoveGaps will clip.")
	flag.StringVar(&cutMode, "cut-mode", "strict", `CutGaps boundary mode: "strict" or "permissive".`)
	flag.BoolVar(&verbose, "v", false, "Print per-block mutation listings in addition to the summary.")
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

func parseCutMode(s string) (blockops.CutMode, error) {
	switch s {
	case "strict":
		return blockops.Strict, nil
	case "permissive":
		return blockops.Permissive, nil
	default:
		return 0, fmt.Errorf("unknown cut mode %q", s)
	}
}

func main() {
	flag.Parse()
	logger = logging.New(os.Stderr, "npge-pangenome: ")

	if inFile == "" {
		logger.Fatalln("no -in FASTA file given")
	}
	mode, err := parseCutMode(cutMode)
	if err != nil {
		logger.Fatalf("-cut-mode: %v", err)
	}

	sequences, err := readSequences(inFile)
	if err != nil {
		logger.Fatalf("reading %s: %v", inFile, err)
	}
	logger.Printf("read %d sequences from %s", len(sequences), inFile)

	bs := block.NewBlockSet(sequences)
	opts := pipeline.DefaultOptions()
	opts.K = k
	opts.MinDistance = minDistance
	opts.MaxTail = maxTail
	opts.CutMode = mode

	p := pipeline.MakePrePangenome(bs, opts)
	if err := p.Run(); err != nil {
		logger.Fatalf("pipeline: %v", err)
	}
	logger.Printf("pangenome complete: %d blocks", bs.Size())

	summary := report.SummaryStats(bs, []float64{0.5, 0.9, 0.99})
	fmt.Fprintf(os.Stderr, "blocks=%d meanIdentity=%.4f meanLength=%.1f\n",
		summary.NumBlocks, summary.MeanIdentity, summary.MeanLength)

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

	if bsaFile != "" {
		f, err := os.Create(bsaFile)
		if err != nil {
			logger.Fatalf("creating %s: %v", bsaFile, err)
		}
		defer f.Close()
		if err := iosupport.WriteBSAFile(f, bs); err != nil {
			logger.Fatalf("writing BSA file: %v", err)
		}
	}

	if verbose {
		for _, id := range bs.Blocks() {
			blk := bs.Block(id)
			if err := report.PrintMutations(blk, bs.Fragments, os.Stderr); err != nil {
				logger.Fatalf("printing mutations for block %s: %v", blk.Name, err)
			}
		}
	}
}
