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

// package report renders corpus statistics as a human-readable markdown
// document. It is a read-only consumer of analysis.Stats.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/wtsi-hgi/seqstats/analysis"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Markdown incrementally builds a markdown document.
type Markdown struct {
	content strings.Builder
}

// AddHeader adds a top-level header block.
func (m *Markdown) AddHeader(text string) *Markdown {
	m.content.WriteString("# " + text + "\n\n")

	return m
}

// AddText adds a paragraph of text.
func (m *Markdown) AddText(text string) *Markdown {
	m.content.WriteString(text + "\n\n")

	return m
}

// AddLineBreak adds a single blank line.
func (m *Markdown) AddLineBreak() *Markdown {
	m.content.WriteString("\n")

	return m
}

// AddTable adds a table, treating the first row as the header row.
func (m *Markdown) AddTable(rows [][]string) *Markdown {
	for i, cells := range rows {
		m.content.WriteString("| " + strings.Join(cells, " | ") + " |\n")

		if i == 0 {
			seps := make([]string, len(cells))
			for j, cell := range cells {
				seps[j] = strings.Repeat("-", len(cell))
			}

			m.content.WriteString("| " + strings.Join(seps, " | ") + " |\n")
		}
	}

	m.content.WriteString("\n")

	return m
}

// String returns the document built so far.
func (m *Markdown) String() string {
	return m.content.String()
}

// Save writes the document to the given path, creating parent directories as
// needed.
func (m *Markdown) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}

	return os.WriteFile(path, []byte(m.String()), filePerm)
}

// Generate renders the given corpus statistics as a markdown statistics
// report: sequence and nucleotide totals, a top k-mer table per k, and the
// collected palindromes with a summary line for the longest one.
func Generate(stats *analysis.Stats) *Markdown {
	md := &Markdown{}

	md.AddHeader("DNA Statistics Report").AddLineBreak()

	md.AddText(fmt.Sprintf("Total number sequences = %d", stats.TotalSequences))
	md.AddText(fmt.Sprintf("Total number invalid sequences = %d", stats.InvalidSequences))

	md.AddText("Total nucleotide counts:")
	md.AddText(fmt.Sprintf("Adenine = %d", stats.Nucleotides.A))
	md.AddText(fmt.Sprintf("Thymine = %d", stats.Nucleotides.T))
	md.AddText(fmt.Sprintf("Guanine = %d", stats.Nucleotides.G))
	md.AddText(fmt.Sprintf("Cytosine = %d", stats.Nucleotides.C))

	addKMerTables(md, stats)
	addPalindromes(md, stats)

	return md
}

// Write renders the given corpus statistics and saves them to the given path.
func Write(stats *analysis.Stats, path string) error {
	return Generate(stats).Save(path)
}

func addKMerTables(md *Markdown, stats *analysis.Stats) {
	ks := make([]int, 0, len(stats.KMers))
	for k := range stats.KMers {
		ks = append(ks, k)
	}

	sort.Ints(ks)

	for _, k := range ks {
		rows := [][]string{{fmt.Sprintf("k-mer (k%d)", k), "count"}}

		for _, entry := range stats.KMers[k] {
			rows = append(rows, []string{entry.KMer, strconv.Itoa(entry.Count)})
		}

		md.AddTable(rows)
	}
}

func addPalindromes(md *Markdown, stats *analysis.Stats) {
	if len(stats.Palindromes) == 0 {
		md.AddText("No palindromes over 20 base pairs were detected")

		return
	}

	md.AddText(fmt.Sprintf("Total palindromes over 20 base pairs = %d",
		len(stats.Palindromes)))

	longest := stats.LongestPalindrome()
	md.AddText(fmt.Sprintf("The longest palindrome was %d(bp) and had a sequence of %s",
		longest.Length, longest.Sequence))

	rows := [][]string{{"Palindrome sequence", "length(bp)"}}
	for _, p := range stats.Palindromes {
		rows = append(rows, []string{p.Sequence, strconv.Itoa(p.Length)})
	}

	md.AddTable(rows)
}
