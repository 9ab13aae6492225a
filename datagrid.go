// Package datagrid is a terminal data grid with resizable, reorderable columns and rows.
package datagrid

import (
	nt "datagrid/entity"
)

// Store specifies a backing row source.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Load a file
	Load(path string) (err error)
	// Fields in source order
	Fields() (fields []nt.Field, err error)
	// Rows up to limit, all when limit is not positive
	Rows(limit int) (rows []nt.Row, err error)
}

// Config is the app's configuration, bound to cli flags.
type Config struct {
	Layout string // path to layout yaml
	Limit  int    // most rows to read
}
