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

package analysis

import (
	"github.com/pbenner/threadpool"
	"github.com/wtsi-hgi/seqstats/seq"
)

const (
	ErrInvalidSequence = Error("sequence failed validation during analysis")

	poolQueueFactor = 100
)

// All analyses every given sequence using a fixed pool of Workers goroutines
// and returns the records in input order, regardless of which worker finished
// first. Each unit of work is independent and shares nothing; results land in
// an indexed slice, so no locking is needed. The call blocks until every
// sequence has been analysed.
//
// The sequences must already have been normalized and validated with
// seq.Clean(). A sequence that fails validation here makes the whole batch
// return an error with no records, since aggregates over a partial record
// list would be misleading.
func (a *Analyzer) All(sequences []string) ([]*Record, error) {
	records := make([]*Record, len(sequences))

	pool := threadpool.New(a.opts.Workers, poolQueueFactor*a.opts.Workers)

	err := pool.RangeJob(0, len(sequences),
		func(i int, pool threadpool.ThreadPool, erf func() error) error {
			if !seq.Valid(sequences[i], a.opts.Alphabet, a.opts.MinSequenceLength) {
				return ErrInvalidSequence
			}

			records[i] = a.Sequence(i+1, sequences[i])

			return nil
		})
	if err != nil {
		return nil, err
	}

	return records, nil
}
