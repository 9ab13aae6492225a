package lite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "datagrid/entity"
	"datagrid/store"
)

// ErrNoTable is returned when a database has no table to show.
var ErrNoTable = errors.New("no table")

// Lite reads one table of a sqlite database.
// The sqlite3 driver is registered by importing github.com/mattn/go-sqlite3 in main.
type Lite struct {
	db       *sql.DB
	table    string
	filename string
	logger   nt.Logger
}

func New(lgr nt.Logger) *Lite {
	return &Lite{logger: lgr}
}

func (lt *Lite) Close() {
	if lt.db != nil {
		lt.db.Close()
	}
}

// Load opens a database read only, path optionally naming a table after a '#'.
// Without one, the first table by name is shown.
func (lt *Lite) Load(path string) (err error) {

	file, table, _ := strings.Cut(path, "#")

	db, err := sql.Open("sqlite3", "file:"+file+"?mode=ro")
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", file)
		return
	}

	if table == "" {
		table, err = firstTable(db)
		if err != nil {
			db.Close()
			err = errors.Wrapf(err, "cannot load %s", file)
			return
		}
	}

	lt.Close()
	lt.db = db
	lt.table = table
	lt.filename = file
	return
}

// Name returns the file and table shown
func (lt *Lite) Name() string {
	return filepath.Base(lt.filename) + "#" + lt.table
}

// Fields returns the table's columns in declaration order.
func (lt *Lite) Fields() (fields []nt.Field, err error) {

	rows, err := lt.db.Query("SELECT name, type FROM pragma_table_info(?) ORDER BY cid", lt.table)
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

// Rows returns up to limit rows in rowid order, all of them when limit is not positive.
func (lt *Lite) Rows(limit int) (out []nt.Row, err error) {

	rows, err := lt.db.Query(selectQuery(lt.table, limit))
	if err != nil {
		err = errors.Wrapf(err, "failed to query %s", lt.table)
		return
	}
	defer rows.Close()

	out, err = store.ReadRows(rows)
	if err != nil {
		return
	}

	lt.logger.Info(context.Background(), "read rows", "count", len(out), "table", lt.table)
	return
}

// unexported

func firstTable(db *sql.DB) (table string, err error) {

	err = db.QueryRow(`
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name LIMIT 1
	`).Scan(&table)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNoTable
	}
	return
}

func selectQuery(table string, limit int) string {

	quoted := `"` + strings.ReplaceAll(table, `"`, `""`) + `"`
	return store.Limit("SELECT * FROM "+quoted, limit)
}
