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

package seq

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Normalize upper-cases and strips surrounding whitespace", t, func() {
		So(Normalize(" acgt \n"), ShouldEqual, "ACGT")
		So(Normalize("AcGt"), ShouldEqual, "ACGT")
		So(Normalize(""), ShouldEqual, "")
	})
}

func TestReverseComplement(t *testing.T) {
	Convey("ReverseComplement reverses and swaps pairing partners", t, func() {
		So(ReverseComplement("A"), ShouldEqual, "T")
		So(ReverseComplement("ACGT"), ShouldEqual, "ACGT")
		So(ReverseComplement("AATT"), ShouldEqual, "AATT")
		So(ReverseComplement("GGGAA"), ShouldEqual, "TTCCC")
		So(ReverseComplement(""), ShouldEqual, "")

		Convey("and leaves non-alphabet bytes unchanged", func() {
			So(ReverseComplement("ANT"), ShouldEqual, "ANT")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Valid accepts sequences longer than the minimum over the alphabet", t, func() {
		So(Valid("AATT", Alphabet, MinLength), ShouldBeTrue)
		So(Valid("ACG", Alphabet, MinLength), ShouldBeTrue)

		Convey("and rejects sequences at or below the minimum length", func() {
			So(Valid("AT", Alphabet, MinLength), ShouldBeFalse)
			So(Valid("", Alphabet, MinLength), ShouldBeFalse)
		})

		Convey("and rejects sequences with bytes outside the alphabet", func() {
			So(Valid("XYZ", Alphabet, MinLength), ShouldBeFalse)
			So(Valid("ACGTN", Alphabet, MinLength), ShouldBeFalse)
		})
	})

	Convey("Clean normalizes, filters and preserves order and duplicates", t, func() {
		raw := []string{"aatt", "XYZ", " ACGT ", "AT", "aatt"}
		So(Clean(raw, Alphabet, MinLength), ShouldResemble,
			[]string{"AATT", "ACGT", "AATT"})

		So(Clean(nil, Alphabet, MinLength), ShouldBeEmpty)
	})
}

func TestNucleotides(t *testing.T) {
	Convey("CountNucleotides counts each canonical base", t, func() {
		nc := CountNucleotides("AATTGC")
		So(nc, ShouldResemble, NucleotideCounts{A: 2, T: 2, G: 1, C: 1})

		Convey("with the total equal to the length for pure sequences", func() {
			sequence := strings.Repeat("ACGT", 25)
			So(CountNucleotides(sequence).Total(), ShouldEqual, len(sequence))
		})

		Convey("with non-alphabet bytes counted nowhere", func() {
			So(CountNucleotides("AANN").Total(), ShouldEqual, 2)
		})

		Convey("and absent bases count 0, not an error", func() {
			So(CountNucleotides("AAA"), ShouldResemble, NucleotideCounts{A: 3})
		})
	})

	Convey("Add accumulates counts", t, func() {
		nc := NucleotideCounts{A: 1}
		nc.Add(NucleotideCounts{A: 2, T: 3, G: 4, C: 5})
		So(nc, ShouldResemble, NucleotideCounts{A: 3, T: 3, G: 4, C: 5})
	})
}
