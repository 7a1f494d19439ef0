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

// package dataset loads raw DNA sequence collections from their JSON
// container format.

package dataset

import (
	"encoding/json"
	"io"
	"os"
)

// Dataset is a raw sequence collection as produced by our sequence generation
// scripts: a declared sequence count, the nominal per-sequence length
// (informational, not authoritative) and the raw sequence strings in order.
type Dataset struct {
	NumSequences   int      `json:"num_sequences"`
	SequenceLength int      `json:"sequence_length"`
	Sequences      []string `json:"sequences"`
}

// New returns a Dataset for the given raw sequences, declaring their count.
func New(sequences []string) *Dataset {
	return &Dataset{
		NumSequences: len(sequences),
		Sequences:    sequences,
	}
}

// FromReader decodes a JSON Dataset from the given reader.
func FromReader(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}

	if err := json.NewDecoder(r).Decode(ds); err != nil {
		return nil, err
	}

	return ds, nil
}

// FromFile reads and decodes the JSON dataset at the given path.
func FromFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return FromReader(f)
}
