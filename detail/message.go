package detail

import nt "datagrid/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg() {}
func (RowMsg) isDetailMsg()  {}

type SizeMsg struct {
	Width  int
	Height int
}

// RowMsg shows a row, fields in column order
type RowMsg struct {
	Columns []nt.Column
	Row     nt.Row
}
