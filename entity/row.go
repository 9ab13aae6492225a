package entity

// Row maps field names to values.
// A row has no identity beyond its position in the grid.
type Row map[string]any

// Value returns the value of field wrapped for formatting.
func (row Row) Value(field string) Value {
	return Value{Raw: row[field]}
}

// Field names a field offered by a row source.
type Field struct {
	Name string
	Type string
}
