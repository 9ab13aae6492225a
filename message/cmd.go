package message

import (
	tea "charm.land/bubbletea/v2"

	"datagrid/capability"
	"datagrid/entity"
)

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// LayoutCmd returns a command applying a reloaded layout
func LayoutCmd(columns []entity.Column, caps capability.Set) tea.Cmd {
	return func() tea.Msg {
		return LayoutMsg{
			Columns:      columns,
			Capabilities: caps,
		}
	}
}

// SelectedCmd returns a command announcing the selected cell
func SelectedCmd(row, total int, column entity.Column) tea.Cmd {
	return func() tea.Msg {
		return SelectedMsg{
			Row:    row,
			Total:  total,
			Column: column,
		}
	}
}
