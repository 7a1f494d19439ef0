/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Author: Sendu Bala <sb10@sanger.ac.uk>
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

// package analysis turns collections of raw DNA sequences into per-sequence
// records and corpus-wide statistics, analysing sequences concurrently.

package analysis

import (
	"runtime"

	"github.com/wtsi-hgi/seqstats/kmers"
	"github.com/wtsi-hgi/seqstats/seq"
)

type Error string

func (e Error) Error() string { return string(e) }

// Options configure an Analyzer. Use DefaultOptions() as a starting point.
type Options struct {
	// Alphabet is the set of bases a valid sequence may contain.
	Alphabet string

	// MinSequenceLength is the length a sequence must strictly exceed to be
	// analysed.
	MinSequenceLength int

	// MinPalindromeLength is the minimum length of reported
	// reverse-complement palindromes.
	MinPalindromeLength int

	// Top is the number of entries kept in each k-mer table, per sequence
	// and corpus-wide.
	Top int

	// KMerSizes are the window widths counted for each sequence.
	KMerSizes []int

	// Motifs are the motifs whose longest contiguous runs are measured for
	// each sequence.
	Motifs []string

	// Workers is the fixed size of the pool used to analyse sequences
	// concurrently. It is set once at construction; there is no dynamic
	// rescaling.
	Workers int
}

// DefaultOptions returns the Options used for the standard statistics report:
// the ATGC alphabet, minimum sequence length 2, minimum palindrome length 20,
// top 5 k-mers for k of 2 through 5, the CG and AT motifs, and half the
// detected cores (minimum 1) as workers, to reduce load on the system.
func DefaultOptions() Options {
	return Options{
		Alphabet:            seq.Alphabet,
		MinSequenceLength:   seq.MinLength,
		MinPalindromeLength: seq.MinPalindromeLength,
		Top:                 kmers.DefaultTop,
		KMerSizes:           []int{2, 3, 4, 5},
		Motifs:              []string{seq.MotifCG, seq.MotifAT},
		Workers:             defaultWorkers(),
	}
}

func defaultWorkers() int {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}

	return workers
}

// Record holds the analysis results for one sequence. Records are created
// once by Analyzer.Sequence() and not modified afterwards; the maps inside
// are freshly constructed per record, never shared.
type Record struct {
	ID          int
	Sequence    string
	Nucleotides seq.NucleotideCounts
	Palindrome  seq.Palindrome
	MotifRuns   map[string]int
	KMers       map[int][]kmers.Entry
}

// Analyzer analyses DNA sequences according to its Options.
type Analyzer struct {
	opts Options
}

// New returns an Analyzer that will analyse sequences according to the given
// Options.
func New(opts Options) *Analyzer {
	return &Analyzer{opts: opts}
}

// Sequence analyses one validated, normalized sequence, producing its Record:
// nucleotide counts, the longest reverse-complement palindrome, the longest
// run of each configured motif, and a local top-K k-mer table per configured
// k. It is a pure function of the sequence and our Options.
func (a *Analyzer) Sequence(id int, sequence string) *Record {
	record := &Record{
		ID:          id,
		Sequence:    sequence,
		Nucleotides: seq.CountNucleotides(sequence),
		Palindrome:  seq.LongestPalindrome(sequence, a.opts.MinPalindromeLength),
		MotifRuns:   make(map[string]int, len(a.opts.Motifs)),
		KMers:       make(map[int][]kmers.Entry, len(a.opts.KMerSizes)),
	}

	for _, motif := range a.opts.Motifs {
		record.MotifRuns[motif] = seq.LongestMotifRun(sequence, motif)
	}

	for _, k := range a.opts.KMerSizes {
		record.KMers[k] = kmers.Count(sequence, k).Top(a.opts.Top)
	}

	return record
}
