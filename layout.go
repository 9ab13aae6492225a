package datagrid

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"

	"datagrid/capability"
	nt "datagrid/entity"
	"datagrid/grid"
	"datagrid/util"
)

// Layout is the yaml or toml description of a grid's columns and capabilities.
type Layout struct {
	Columns      []nt.Column    `yaml:"columns" toml:"columns"`
	Capabilities capability.Set `yaml:"capabilities,omitempty" toml:"capabilities,omitempty"`
}

// LoadLayout reads a layout, returning an empty one when path does not exist.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	if path == "" {
		return
	}

	err = util.LoadConfig(layout, path)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	}
	return
}

// Grid builds the grid config for rows with fields.
// Columns come from the layout, or from fields when it names none.
func (layout *Layout) Grid(fields []nt.Field, rows []nt.Row) grid.Config {

	columns := layout.Columns
	if len(columns) == 0 {
		columns = ColumnsFor(fields)
	}

	return grid.Config{
		Columns:      columns,
		Rows:         rows,
		Capabilities: layout.Capabilities,
	}
}

// ColumnsFor derives a column per field, end aligning numbers.
func ColumnsFor(fields []nt.Field) (columns []nt.Column) {

	columns = make([]nt.Column, len(fields))
	for i, field := range fields {
		columns[i] = nt.Column{
			Field:       field.Name,
			Label:       field.Name,
			Description: strings.ToLower(field.Type),
			Align:       alignFor(field.Type),
		}
	}
	return
}

// unexported

func alignFor(typ string) nt.Align {

	typ = strings.ToUpper(typ)
	if strings.HasPrefix(typ, "INTERVAL") {
		return nt.AlignStart
	}
	for _, numeric := range []string{"INT", "DOUBLE", "FLOAT", "DECIMAL", "REAL", "NUMERIC"} {
		if strings.Contains(typ, numeric) {
			return nt.AlignEnd
		}
	}
	return nt.AlignStart
}
