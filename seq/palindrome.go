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

// MinPalindromeLength is the default minimum length a reverse-complement
// palindrome must reach to be reported.
const MinPalindromeLength = 20

// Palindrome records a substring of a sequence that is equal to its own
// reverse complement. The zero value means no qualifying palindrome was
// found.
type Palindrome struct {
	Sequence string
	Length   int
}

// LongestPalindrome finds the longest substring of the given normalized
// sequence, of at least minLength bases, that equals its own reverse
// complement under A<->T, C<->G pairing.
//
// The reverse complement of the whole sequence is computed once; a substring
// starting at offset i with the given length is a palindrome iff it equals
// the correspondingly positioned slice of that precomputed string. Candidate
// lengths are tried in increasing order with offsets scanned left to right,
// and only a strictly longer match replaces the current best, so the first
// substring to reach the maximum length is the one reported.
func LongestPalindrome(sequence string, minLength int) Palindrome {
	var longest Palindrome

	seqLen := len(sequence)
	rc := ReverseComplement(sequence)

	for length := minLength; length <= seqLen; length++ {
		for i := 0; i+length <= seqLen; i++ {
			subseq := sequence[i : i+length]
			rcSubseq := rc[seqLen-i-length : seqLen-i]

			if subseq == rcSubseq && length > longest.Length {
				longest = Palindrome{Sequence: subseq, Length: length}
			}
		}
	}

	return longest
}
