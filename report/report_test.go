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

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/seqstats/analysis"
	"github.com/wtsi-hgi/seqstats/dataset"
)

func TestMarkdown(t *testing.T) {
	Convey("Markdown builds document blocks in order", t, func() {
		md := &Markdown{}
		md.AddHeader("Title").AddText("some text").AddLineBreak()
		md.AddTable([][]string{{"col", "n"}, {"AT", "2"}})

		doc := md.String()
		So(doc, ShouldStartWith, "# Title\n\n")
		So(doc, ShouldContainSubstring, "some text\n\n")
		So(doc, ShouldContainSubstring, "| col | n |\n| --- | - |\n| AT | 2 |\n")
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given analysed corpus statistics", t, func() {
		a := analysis.New(analysis.DefaultOptions())

		stats, err := a.Analyse(dataset.New([]string{
			strings.Repeat("AATT", 6),
			"ACGT",
			"not dna",
		}))
		So(err, ShouldBeNil)

		Convey("Generate renders the totals and tables", func() {
			doc := Generate(stats).String()

			So(doc, ShouldStartWith, "# DNA Statistics Report\n")
			So(doc, ShouldContainSubstring, "Total number sequences = 3")
			So(doc, ShouldContainSubstring, "Total number invalid sequences = 1")
			So(doc, ShouldContainSubstring, "Adenine = 13")
			So(doc, ShouldContainSubstring, "Thymine = 13")
			So(doc, ShouldContainSubstring, "Guanine = 1")
			So(doc, ShouldContainSubstring, "Cytosine = 1")

			for _, k := range []string{"k2", "k3", "k4", "k5"} {
				So(doc, ShouldContainSubstring, "k-mer ("+k+")")
			}

			So(doc, ShouldContainSubstring, "Total palindromes over 20 base pairs = 1")
			So(doc, ShouldContainSubstring,
				"The longest palindrome was 24(bp) and had a sequence of "+
					strings.Repeat("AATT", 6))
		})

		Convey("an empty palindrome list is reported as such", func() {
			empty, err := a.Analyse(dataset.New([]string{"ACGT"}))
			So(err, ShouldBeNil)

			doc := Generate(empty).String()
			So(doc, ShouldContainSubstring,
				"No palindromes over 20 base pairs were detected")
		})

		Convey("Write saves the report, creating parent directories", func() {
			path := filepath.Join(t.TempDir(), "report", "dna_statistics_report.md")
			So(Write(stats, path), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, Generate(stats).String())
		})
	})
}
