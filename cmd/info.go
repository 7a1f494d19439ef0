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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/seqstats/analysis"
	"github.com/wtsi-hgi/seqstats/dataset"
	"github.com/wtsi-hgi/seqstats/seq"
)

// options for this cmd.
var infoInput string

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarise a JSON dataset without analysing it.",
	Long: `Summarise a JSON dataset without analysing it.

Loads the dataset at the -i path and says how many sequences it holds and how
many of those would survive validation, without doing the (potentially slow)
full analysis. Useful as a sanity check on freshly generated datasets.
`,
	Run: func(_ *cobra.Command, _ []string) {
		ds, err := dataset.FromFile(infoInput)
		if err != nil {
			die("%s", err.Error())
		}

		if ds.NumSequences != len(ds.Sequences) {
			warn("dataset declares %d sequences but holds %d", ds.NumSequences, len(ds.Sequences))
		}

		opts := analysis.DefaultOptions()
		valid := seq.Clean(ds.Sequences, opts.Alphabet, opts.MinSequenceLength)

		cliPrint("sequences: %d\n", len(ds.Sequences))
		cliPrint("nominal length: %d\n", ds.SequenceLength)
		cliPrint("valid: %d\n", len(valid))
		cliPrint("invalid: %d\n", len(ds.Sequences)-len(valid))
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)

	// flags specific to this sub-command
	infoCmd.Flags().StringVarP(&infoInput, "input", "i", "",
		"path to a JSON dataset of sequences")
	markFlagRequired(infoCmd, "input")
}
