package style

import (
	"charm.land/lipgloss/v2"

	"datagrid/entity"
)

const (
	ReorderGlyph = "⠿"
	ResizeGlyph  = "│"
	Ellipsis     = "…"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HeaderStyle      = lipgloss.NewStyle().Bold(true)
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	HlColStyle       = lipgloss.NewStyle().Background(lipgloss.Color("234")) // Twice as subtle - barely visible
	HlCellStyle      = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer cell
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	ReorderStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	ResizeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ResizingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	DraggingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	FooterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	UnStyle          = lipgloss.NewStyle()
)

// CellStyler returns a StyleFunc that highlights the selected cell, row, and column
func CellStyler(selectedRow, selectedCol int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		rowMatch := row == selectedRow
		colMatch := col == selectedCol

		if rowMatch && colMatch {
			return HlCellStyle // Brightest - the selected cell
		} else if rowMatch {
			return HlRowStyle // Medium - selected row
		} else if colMatch {
			return HlColStyle // Medium - selected column
		}
		return UnStyle
	}
}

// Position maps a column alignment onto lipgloss.
func Position(align entity.Align) lipgloss.Position {
	switch align {
	case entity.AlignCenter:
		return lipgloss.Center
	case entity.AlignEnd:
		return lipgloss.Right
	}
	return lipgloss.Left
}
