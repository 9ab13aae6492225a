// Package store holds what the database/sql backed row sources share.
package store

import (
	"database/sql"
	"strconv"

	"github.com/pkg/errors"

	nt "datagrid/entity"
)

// ReadRows drains rows into grid rows keyed by column name.
// Text that comes back as bytes is turned into a string.
func ReadRows(rows *sql.Rows) (out []nt.Row, err error) {

	names, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, len(names))
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		row := make(nt.Row, len(names))
		for i, name := range names {
			if raw, ok := vals[i].([]byte); ok {
				vals[i] = string(raw)
			}
			row[name] = vals[i]
		}
		out = append(out, row)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// Limit appends a limit clause when limit is positive.
func Limit(query string, limit int) string {

	if limit > 0 {
		return query + " LIMIT " + strconv.Itoa(limit)
	}
	return query
}

// unexported

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}
