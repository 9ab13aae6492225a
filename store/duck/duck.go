package duck

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "datagrid/entity"
	"datagrid/store"
)

// ErrFormat is returned for a file duckdb is not asked to read.
var ErrFormat = errors.New("unsupported file format")

const table = "grid_rows"

// Duck is an in-memory duckdb holding the rows of one file.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filename string
}

// New opens an in-memory database.
// The duckdb driver is registered by importing github.com/marcboeker/go-duckdb in main.
func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load a json, ndjson, csv or parquet file, replacing anything loaded before.
func (dk *Duck) Load(path string) (err error) {

	query, err := loadQuery(path)
	if err != nil {
		return
	}

	_, err = dk.db.Exec(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.filename = path
	return
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return filepath.Base(dk.filename)
}

// Fields returns the loaded table's columns in file order.
func (dk *Duck) Fields() (fields []nt.Field, err error) {

	rows, err := dk.db.Query(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position
	`, table)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field nt.Field
		err = rows.Scan(&field.Name, &field.Type)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating fields")
	return
}

// Rows returns up to limit rows in file order, all of them when limit is not positive.
func (dk *Duck) Rows(limit int) (out []nt.Row, err error) {

	rows, err := dk.db.Query(selectQuery(limit))
	if err != nil {
		err = errors.Wrapf(err, "failed to query rows")
		return
	}
	defer rows.Close()

	out, err = store.ReadRows(rows)
	if err != nil {
		return
	}

	dk.logger.Info(context.Background(), "read rows", "count", len(out), "file", dk.filename)
	return
}

// unexported

// loadQuery builds the statement reading path into the rows table.
func loadQuery(path string) (query string, err error) {

	reader, err := readerFor(path)
	if err != nil {
		return
	}

	query = fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM %s", table, reader)
	return
}

func readerFor(path string) (reader string, err error) {

	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		reader = fmt.Sprintf("read_json_auto(%s)", quoted)
	case ".ndjson", ".jsonl", ".log":
		reader = fmt.Sprintf("read_json_auto(%s, format='newline_delimited')", quoted)
	case ".csv", ".tsv":
		reader = fmt.Sprintf("read_csv_auto(%s)", quoted)
	case ".parquet":
		reader = fmt.Sprintf("read_parquet(%s)", quoted)
	default:
		err = errors.Wrapf(ErrFormat, "cannot load %s", path)
	}
	return
}

func selectQuery(limit int) string {
	return store.Limit("SELECT * FROM "+table, limit)
}
