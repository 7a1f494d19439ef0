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

// NucleotideCounts holds the number of occurrences of each canonical base
// within a sequence, or cumulatively across many sequences.
type NucleotideCounts struct {
	A, T, G, C int
}

// CountNucleotides counts the canonical bases in a normalized sequence. Bytes
// outside the alphabet contribute to no bucket; a base that never occurs
// simply counts 0.
func CountNucleotides(sequence string) NucleotideCounts {
	var nc NucleotideCounts

	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'A':
			nc.A++
		case 'T':
			nc.T++
		case 'G':
			nc.G++
		case 'C':
			nc.C++
		}
	}

	return nc
}

// Add accumulates the given counts into ours.
func (nc *NucleotideCounts) Add(other NucleotideCounts) {
	nc.A += other.A
	nc.T += other.T
	nc.G += other.G
	nc.C += other.C
}

// Total returns the sum of the four base counts.
func (nc NucleotideCounts) Total() int {
	return nc.A + nc.T + nc.G + nc.C
}
