package message

import (
	"datagrid/capability"
	"datagrid/entity"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// SelectedMsg signals the selected cell changed
type SelectedMsg struct {
	Row    int // 1-indexed for display
	Total  int
	Column entity.Column
}

// LayoutMsg applies a reloaded layout, an empty Columns keeps the current ones
type LayoutMsg struct {
	Columns      []entity.Column
	Capabilities capability.Set
}

// RowsMsg replaces the grid's rows
type RowsMsg struct {
	Rows []entity.Row
}
