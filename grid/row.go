package grid

import (
	"datagrid/entity"
)

// Cell is one cell of a row, laid out on its column's track.
type Cell struct {
	Column *Column
	Text   string
}

// Row is a row's cells in column order.
// Rows own no widths, they adopt the grid's tracks.
type Row struct {
	Index int
	Cells []Cell
}

// Row returns the cells of the row at index.
func (grd *Grid) Row(index int) (row Row, ok bool) {

	if index < 0 || index >= len(grd.rows) {
		return
	}

	row = Row{Index: index, Cells: make([]Cell, len(grd.columns))}
	for i, col := range grd.columns {
		row.Cells[i] = Cell{Column: col, Text: CellText(col.spec, grd.rows[index])}
	}
	return row, true
}

// Header returns the header cells, one per column.
func (grd *Grid) Header() []Cell {

	cells := make([]Cell, len(grd.columns))
	for i, col := range grd.columns {
		cells[i] = Cell{Column: col, Text: col.spec.Title()}
	}
	return cells
}

// CellText renders a cell with the column's hook, else the field's value.
func CellText(col entity.Column, row entity.Row) string {

	if col.Render != nil {
		return col.Render(row)
	}
	return row.Value(col.Field).String()
}
