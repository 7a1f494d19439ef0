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

const (
	// MotifCG is the CpG island motif measured for every sequence.
	MotifCG = "CG"

	// MotifAT is the AT run motif measured for every sequence.
	MotifAT = "AT"
)

// LongestMotifRun returns the length in bases of the longest contiguous run
// of the given motif within the sequence, or 0 if the motif never occurs.
//
// A run is back-to-back repeats of the motif: once a match is found the scan
// continues in motif-width strides, accumulating while consecutive windows
// still match and resetting on a mismatch. Independent occurrences separated
// by other bases belong to separate runs.
func LongestMotifRun(sequence, motif string) int {
	width := len(motif)
	if width == 0 || len(sequence) < width {
		return 0
	}

	longest, current := 0, 0

	for i := 0; i+width <= len(sequence); {
		if sequence[i:i+width] == motif {
			current += width
			i += width
		} else {
			current = 0
			i++
		}

		if current > longest {
			longest = current
		}
	}

	return longest
}
