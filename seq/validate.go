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

import "strings"

// Valid returns true if the given normalized sequence is strictly longer than
// minLength and every byte belongs to alphabet. It is a pure per-sequence
// predicate: duplicate sequences are not tracked and pass through unchanged.
func Valid(sequence, alphabet string, minLength int) bool {
	if len(sequence) <= minLength {
		return false
	}

	for i := 0; i < len(sequence); i++ {
		if strings.IndexByte(alphabet, sequence[i]) < 0 {
			return false
		}
	}

	return true
}

// Clean normalizes the given raw sequences and returns those that are Valid,
// preserving their input order. Invalid sequences are dropped silently; the
// caller can derive how many were dropped from the difference in lengths.
func Clean(sequences []string, alphabet string, minLength int) []string {
	clean := make([]string, 0, len(sequences))

	for _, sequence := range sequences {
		if normalized := Normalize(sequence); Valid(normalized, alphabet, minLength) {
			clean = append(clean, normalized)
		}
	}

	return clean
}
