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

// package warehouse reads raw DNA sequences from our sequence warehouse
// database, as an alternative to JSON dataset files.

package warehouse

import (
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/wtsi-hgi/seqstats/config"
	"github.com/wtsi-hgi/seqstats/dataset"
)

const (
	sqlDriverName   = "mysql"
	sqlNetwork      = "tcp"
	connMaxLifetime = time.Minute * 3
	maxOpenConns    = 10
	maxIdleConns    = 10
)

// Warehouse is a connection to the sequence warehouse database.
type Warehouse struct {
	pool *sql.DB
}

// MySQLConfigFromConfig converts our config to the driver's, for passing to
// New().
func MySQLConfigFromConfig(c *config.Config) *mysql.Config {
	return &mysql.Config{
		User:                 c.User,
		Passwd:               c.Password,
		Net:                  sqlNetwork,
		Addr:                 net.JoinHostPort(c.Host, c.Port),
		DBName:               c.DBName,
		AllowNativePasswords: true,
	}
}

// New returns a new Warehouse connection using mysql.Config that you can get
// from MySQLConfigFromConfig(config.FromEnv()).
func New(c *mysql.Config) (*Warehouse, error) {
	pool, err := sql.Open(sqlDriverName, c.FormatDSN())
	if err != nil {
		return nil, err
	}

	pool.SetConnMaxLifetime(connMaxLifetime)
	pool.SetMaxOpenConns(maxOpenConns)
	pool.SetMaxIdleConns(maxIdleConns)

	return &Warehouse{pool: pool}, pool.Ping()
}

const getSequences = `
SELECT sq.sequence
FROM sequence sq
JOIN study st ON st.id_study_tmp = sq.id_study_tmp
WHERE st.id_study_lims = ?
ORDER BY sq.id_sequence_tmp
`

// SequencesForStudy returns the raw sequence strings stored for the given
// study, in insertion order, wrapped as a Dataset ready for analysis. The
// sequences are returned as stored, ie. unvalidated.
func (w *Warehouse) SequencesForStudy(studyID string) (*dataset.Dataset, error) {
	rows, err := w.pool.Query(getSequences, studyID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var sequences []string

	for rows.Next() {
		var sequence string

		if err := rows.Scan(&sequence); err != nil {
			return nil, err
		}

		sequences = append(sequences, sequence)
	}

	if err := rows.Close(); err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dataset.New(sequences), nil
}

// Close closes the connection to the warehouse.
func (w *Warehouse) Close() error {
	return w.pool.Close()
}
