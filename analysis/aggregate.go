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

package analysis

import (
	"github.com/wtsi-hgi/seqstats/dataset"
	"github.com/wtsi-hgi/seqstats/kmers"
	"github.com/wtsi-hgi/seqstats/seq"
)

// Stats are the corpus-wide statistics handed to the report generator. They
// are built once per run and should be treated as read-only afterwards.
type Stats struct {
	TotalSequences   int
	InvalidSequences int
	Nucleotides      seq.NucleotideCounts
	KMers            map[int][]kmers.Entry
	Palindromes      []seq.Palindrome
	Records          []*Record
}

// LongestPalindrome returns the single longest collected palindrome, for the
// report's summary line. The zero value is returned if none were collected.
func (s *Stats) LongestPalindrome() seq.Palindrome {
	var longest seq.Palindrome

	for _, p := range s.Palindromes {
		if p.Length > longest.Length {
			longest = p
		}
	}

	return longest
}

// Aggregate folds the given records, in order, into corpus-wide statistics.
// numSequences is the declared total before validation, so the invalid count
// is numSequences minus the number of records.
//
// Nucleotide totals are plain sums and do not depend on fold order. The
// global k-mer tables are built by additively merging each record's local
// top-K table and then reducing to the global top-K with the same first-seen
// tie-break, so tables are only reproducible when records are folded in a
// stable order; callers should pass records in input order, as returned by
// All(). A k-mer that is frequent in many sequences but never in any single
// sequence's local top-K cannot surface globally: the global figures are
// computed from the union of local winners, not from exact corpus-wide
// counts, which is the statistic our reports are defined against.
//
// Palindromes whose length strictly exceeds MinPalindromeLength are collected
// unreduced, and the record list is retained verbatim.
func (a *Analyzer) Aggregate(numSequences int, records []*Record) *Stats {
	stats := &Stats{
		TotalSequences:   numSequences,
		InvalidSequences: numSequences - len(records),
		KMers:            make(map[int][]kmers.Entry, len(a.opts.KMerSizes)),
		Records:          records,
	}

	tables := make(map[int]*kmers.Table, len(a.opts.KMerSizes))
	for _, k := range a.opts.KMerSizes {
		tables[k] = kmers.NewTable()
	}

	for _, record := range records {
		stats.Nucleotides.Add(record.Nucleotides)

		for _, k := range a.opts.KMerSizes {
			tables[k].Merge(record.KMers[k])
		}

		if record.Palindrome.Length > a.opts.MinPalindromeLength {
			stats.Palindromes = append(stats.Palindromes, record.Palindrome)
		}
	}

	for _, k := range a.opts.KMerSizes {
		stats.KMers[k] = tables[k].Top(a.opts.Top)
	}

	return stats
}

// Analyse validates the dataset's raw sequences, analyses the valid ones in
// parallel with All() and aggregates the resulting records. The dataset's
// declared num_sequences is the baseline for the invalid count; if it is 0,
// the actual number of raw sequences is used instead.
func (a *Analyzer) Analyse(ds *dataset.Dataset) (*Stats, error) {
	clean := seq.Clean(ds.Sequences, a.opts.Alphabet, a.opts.MinSequenceLength)

	records, err := a.All(clean)
	if err != nil {
		return nil, err
	}

	total := ds.NumSequences
	if total == 0 {
		total = len(ds.Sequences)
	}

	return a.Aggregate(total, records), nil
}
