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

// package kmers counts fixed-length substrings of DNA sequences and reduces
// the resulting frequency tables to their top entries.

package kmers

import "sort"

// DefaultTop is the number of entries kept when reducing a Table, both per
// sequence and corpus-wide.
const DefaultTop = 5

// Entry is a k-mer together with its occurrence count.
type Entry struct {
	KMer  string
	Count int
}

// Table is a k-mer frequency table. It remembers the order in which k-mers
// were first added, which is what breaks ties during top-K selection.
type Table struct {
	counts map[string]int
	order  []string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add increments the count for the given k-mer by n, recording the k-mer's
// first-seen position if it is new to the table.
func (t *Table) Add(kmer string, n int) {
	if _, seen := t.counts[kmer]; !seen {
		t.order = append(t.order, kmer)
	}

	t.counts[kmer] += n
}

// Merge adds the given entries into the table, summing counts for k-mers
// already present.
func (t *Table) Merge(entries []Entry) {
	for _, entry := range entries {
		t.Add(entry.KMer, entry.Count)
	}
}

// Count returns the count recorded for the given k-mer, 0 if absent.
func (t *Table) Count(kmer string) int {
	return t.counts[kmer]
}

// Len returns the number of distinct k-mers in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts in the table.
func (t *Table) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}

	return total
}

// Top reduces the table to its n highest-count entries, sorted by count
// descending. Entries with equal counts keep their first-seen order (a stable
// sort over insertion order, not alphabetical).
func (t *Table) Top(n int) []Entry {
	entries := make([]Entry, 0, len(t.order))

	for _, kmer := range t.order {
		entries = append(entries, Entry{KMer: kmer, Count: t.counts[kmer]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

// Count slides a window of width k across the normalized sequence in steps of
// 1, counting each distinct k-length substring observed. A sequence shorter
// than k yields an empty table, not an error.
func Count(sequence string, k int) *Table {
	t := NewTable()

	if k < 1 || len(sequence) < k {
		return t
	}

	for i := 0; i+k <= len(sequence); i++ {
		t.Add(sequence[i:i+k], 1)
	}

	return t
}
