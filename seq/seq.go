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

// package seq provides the per-sequence DNA analyses: validation, nucleotide
// counting, reverse-complement palindrome search and motif run measurement.

package seq

import "strings"

const (
	// Alphabet is the set of canonical bases a sequence may contain.
	Alphabet = "ATGC"

	// MinLength is the default length a sequence must strictly exceed to be
	// considered valid.
	MinLength = 2
)

// Normalize upper-cases the given raw sequence and strips surrounding
// whitespace, making validation and counting case-insensitive.
func Normalize(sequence string) string {
	return strings.ToUpper(strings.TrimSpace(sequence))
}

var complements = [256]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}

// ReverseComplement returns the sequence reversed with each base substituted
// for its pairing partner (A<->T, C<->G). Bytes outside the alphabet are
// carried through unchanged.
func ReverseComplement(sequence string) string {
	n := len(sequence)
	rc := make([]byte, n)

	for i := 0; i < n; i++ {
		b := sequence[i]
		if c := complements[b]; c != 0 {
			b = c
		}

		rc[n-1-i] = b
	}

	return string(rc)
}
