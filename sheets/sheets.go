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

// package sheets reads raw DNA sequences from Google sheets, for labs that
// keep their sequence collections in a spreadsheet rather than dataset files.

package sheets

import (
	"context"
	"fmt"

	"github.com/wtsi-hgi/seqstats/dataset"
	"google.golang.org/api/option"
	googleSheets "google.golang.org/api/sheets/v4"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrMissingColumn = Error("column not found in sheet")

// SequenceColumn is the header of the sheet column our sequences live in.
const SequenceColumn = "sequence"

// Sheets allows the retrieval of sheets from Google docs.
type Sheets struct {
	srv *googleSheets.Service
}

// New returns a Sheets that you can Read() sheets from Google docs with.
func New(sc *ServiceCredentials) (*Sheets, error) {
	ctx := context.Background()
	client := sc.toJWTConfig().Client(ctx)

	srv, err := googleSheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	return &Sheets{srv: srv}, nil
}

// Sheet contains the retrieved cells in a Google sheet.
type Sheet struct {
	ColumnHeaders []string
	Rows          [][]string
}

// Read retrieves the contents of a given document and sheet within that
// document. The id of a Google sheet is the long string of characters in the
// URL when viewing that document.
func (s *Sheets) Read(docID, sheetName string) (*Sheet, error) {
	valRange, err := s.srv.Spreadsheets.Values.Get(docID, sheetName).Do()
	if err != nil {
		return nil, err
	}

	if len(valRange.Values) == 0 {
		return nil, nil
	}

	var header []string

	rows := make([][]string, len(valRange.Values)-1)

	for i, row := range valRange.Values {
		if i == 0 {
			header = rowToStringSlice(row)
		} else {
			rows[i-1] = rowToStringSlice(row)
		}
	}

	return &Sheet{
		ColumnHeaders: header,
		Rows:          rows,
	}, nil
}

func rowToStringSlice(in []any) []string {
	out := make([]string, len(in))

	for i, cols := range in {
		out[i] = fmt.Sprint(cols)
	}

	return out
}

// Column returns the cells of the named column, in row order. Rows too short
// to reach the column contribute an empty string.
func (sh *Sheet) Column(name string) ([]string, error) {
	index := -1

	for i, header := range sh.ColumnHeaders {
		if header == name {
			index = i

			break
		}
	}

	if index == -1 {
		return nil, ErrMissingColumn
	}

	cells := make([]string, len(sh.Rows))

	for i, row := range sh.Rows {
		if index < len(row) {
			cells[i] = row[index]
		}
	}

	return cells, nil
}

// Sequences reads the sheet with the given name from the given document and
// returns the contents of its "sequence" column as a Dataset ready for
// analysis. The sequences are returned as stored, ie. unvalidated.
func (s *Sheets) Sequences(docID, sheetName string) (*dataset.Dataset, error) {
	sheet, err := s.Read(docID, sheetName)
	if err != nil {
		return nil, err
	}

	if sheet == nil {
		return dataset.New(nil), nil
	}

	sequences, err := sheet.Column(SequenceColumn)
	if err != nil {
		return nil, err
	}

	return dataset.New(sequences), nil
}
