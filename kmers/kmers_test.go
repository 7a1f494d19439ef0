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

package kmers

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCount(t *testing.T) {
	Convey("Count slides a window of width k across a sequence", t, func() {
		sequence := "ACGTACGT"

		for _, k := range []int{2, 3, 4, 5} {
			table := Count(sequence, k)
			So(table.Total(), ShouldEqual, len(sequence)-k+1)

			for _, entry := range table.Top(table.Len()) {
				So(len(entry.KMer), ShouldEqual, k)
			}
		}

		So(Count(sequence, 2).Count("AC"), ShouldEqual, 2)
		So(Count(sequence, 2).Count("TA"), ShouldEqual, 1)
		So(Count(sequence, 2).Count("TT"), ShouldEqual, 0)

		Convey("a sequence shorter than k yields an empty table", func() {
			So(Count("ACG", 5).Len(), ShouldEqual, 0)
			So(Count("", 2).Len(), ShouldEqual, 0)
		})
	})
}

func TestTop(t *testing.T) {
	Convey("Given a populated table", t, func() {
		// AC, CG and GG twice each, GT, TA, GA and AA once each
		table := Count("ACGTACGGGAA", 2)

		Convey("Top sorts by count descending and truncates", func() {
			top := table.Top(DefaultTop)
			So(top, ShouldHaveLength, DefaultTop)
			So(top[0], ShouldResemble, Entry{KMer: "AC", Count: 2})
			So(top[1], ShouldResemble, Entry{KMer: "CG", Count: 2})
			So(top[2], ShouldResemble, Entry{KMer: "GG", Count: 2})

			for i := 1; i < len(top); i++ {
				So(top[i].Count, ShouldBeLessThanOrEqualTo, top[i-1].Count)
			}
		})

		Convey("ties keep first-seen order, not alphabetical", func() {
			top := Count("TTGGAATT", 2).Top(DefaultTop)
			So(top[0], ShouldResemble, Entry{KMer: "TT", Count: 2})
			So(top[1], ShouldResemble, Entry{KMer: "TG", Count: 1})
			So(top[2], ShouldResemble, Entry{KMer: "GG", Count: 1})
		})

		Convey("Top of fewer entries than n returns them all", func() {
			So(Count("AAA", 2).Top(DefaultTop), ShouldResemble,
				[]Entry{{KMer: "AA", Count: 2}})
		})
	})
}

func TestMerge(t *testing.T) {
	Convey("Merge sums counts additively, preserving first-seen order", t, func() {
		table := NewTable()
		table.Merge([]Entry{{KMer: "AT", Count: 3}, {KMer: "CG", Count: 3}})
		table.Merge([]Entry{{KMer: "CG", Count: 2}, {KMer: "GG", Count: 5}})

		So(table.Count("AT"), ShouldEqual, 3)
		So(table.Count("CG"), ShouldEqual, 5)
		So(table.Count("GG"), ShouldEqual, 5)
		So(table.Total(), ShouldEqual, 13)

		Convey("so equal-count entries rank by which merged first", func() {
			So(table.Top(2), ShouldResemble,
				[]Entry{{KMer: "CG", Count: 5}, {KMer: "GG", Count: 5}})
		})
	})

	Convey("Counts of long sequences survive a merge cycle", t, func() {
		table := NewTable()
		table.Merge(Count(strings.Repeat("ACGT", 10), 4).Top(DefaultTop))
		So(table.Count("ACGT"), ShouldEqual, 10)
	})
}
