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
	"time"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/seqstats/analysis"
	"github.com/wtsi-hgi/seqstats/config"
	"github.com/wtsi-hgi/seqstats/dataset"
	"github.com/wtsi-hgi/seqstats/report"
	"github.com/wtsi-hgi/seqstats/sheets"
	"github.com/wtsi-hgi/seqstats/warehouse"
)

const (
	ErrNoSource = Error("one of --input, --study or --sheet is required")

	outputFlag = "output"
)

type Error string

func (e Error) Error() string { return string(e) }

// options for this cmd.
var (
	analyseInput   string
	analyseOutput  string
	analyseWorkers int
	analyseStudy   string
	analyseSheet   string
)

// analyseCmd represents the analyse command.
var analyseCmd = &cobra.Command{
	Use:   "analyse",
	Short: "Analyse a DNA sequence collection and generate a report.",
	Long: `Analyse a DNA sequence collection and generate a report.

Sequences come from one of three sources: a JSON dataset file (-i), the
sequence warehouse (--study, with SEQSTATS_SQL_* set), or a Google sheet
(--sheet, with SEQSTATS_SPREADSHEET_ID and SEQSTATS_CREDENTIALS_FILE set).
Environment variables can also be defined in a .env file in the current
directory.

Sequences that are too short or contain bases outside of ATGC are dropped and
counted as invalid. The valid ones are analysed in parallel; use -w to change
how many sequences are analysed at once (defaulting to half the machine's
cores, to reduce load on the system).

The markdown statistics report is written to the -o path, with parent
directories created as needed. An example command line could look like this:
$ seqstats analyse -i data/dna_sequences.json -o report/dna_statistics_report.md
`,
	Run: func(_ *cobra.Command, _ []string) {
		ds, err := loadDataset()
		if err != nil {
			die("%s", err.Error())
		}

		opts := analysis.DefaultOptions()
		if analyseWorkers > 0 {
			opts.Workers = analyseWorkers
		}

		info("analysing %d sequences with %d workers", len(ds.Sequences), opts.Workers)

		start := time.Now()

		stats, err := analysis.New(opts).Analyse(ds)
		if err != nil {
			die("analysis failed: %s", err.Error())
		}

		info("analysed %d sequences (%d invalid) in %s",
			stats.TotalSequences, stats.InvalidSequences, time.Since(start))

		if err = report.Write(stats, analyseOutput); err != nil {
			die("failed to write report: %s", err.Error())
		}

		info("wrote report to %s", analyseOutput)
	},
}

// loadDataset gets raw sequences from whichever source was selected on the
// command line.
func loadDataset() (*dataset.Dataset, error) {
	switch {
	case analyseStudy != "":
		return datasetFromWarehouse(analyseStudy)
	case analyseSheet != "":
		return datasetFromSheet(analyseSheet)
	case analyseInput != "":
		return dataset.FromFile(analyseInput)
	default:
		return nil, ErrNoSource
	}
}

func datasetFromWarehouse(studyID string) (*dataset.Dataset, error) {
	c, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	wh, err := warehouse.New(warehouse.MySQLConfigFromConfig(c))
	if err != nil {
		return nil, err
	}

	defer wh.Close()

	return wh.SequencesForStudy(studyID)
}

func datasetFromSheet(sheetName string) (*dataset.Dataset, error) {
	c, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	sc, err := sheets.ServiceCredentialsFromConfig(c)
	if err != nil {
		return nil, err
	}

	s, err := sheets.New(sc)
	if err != nil {
		return nil, err
	}

	return s.Sequences(c.SheetID, sheetName)
}

func init() {
	RootCmd.AddCommand(analyseCmd)

	// flags specific to this sub-command
	analyseCmd.Flags().StringVarP(&analyseInput, "input", "i", "",
		"path to a JSON dataset of sequences")
	analyseCmd.Flags().StringVarP(&analyseOutput, outputFlag, "o", "",
		"path to write the markdown report to")
	markFlagRequired(analyseCmd, outputFlag)
	analyseCmd.Flags().IntVarP(&analyseWorkers, "workers", "w", 0,
		"number of sequences to analyse at once (0 = half the cores)")
	analyseCmd.Flags().StringVar(&analyseStudy, "study", "",
		"analyse the sequences stored in the warehouse for this study")
	analyseCmd.Flags().StringVar(&analyseSheet, "sheet", "",
		"analyse the sequences in this sheet of our Google doc")
}

func markFlagRequired(cmd *cobra.Command, flagName string) {
	if err := cmd.MarkFlagRequired(flagName); err != nil {
		die("%s", err.Error())
	}
}
