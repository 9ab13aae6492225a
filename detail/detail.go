package detail

import (
	"encoding/json"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	nt "datagrid/entity"
	"datagrid/style"
)

// DetailPanel shows every field of one row, one per line
type DetailPanel struct {
	columns []nt.Column
	row     nt.Row

	contentLines []string // cached, rebuilt on RowMsg and SizeMsg

	Width        int
	height       int
	ScrollOffset int
}

func NewDetailPanel() DetailPanel {
	return DetailPanel{}
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case RowMsg:
		pnl.columns = msg.Columns
		pnl.row = msg.Row
		pnl.ScrollOffset = 0
		pnl.computeContentLines()

	case SizeMsg:
		pnl.Width = msg.Width
		pnl.height = msg.Height
		pnl.ScrollOffset = 0
		pnl.computeContentLines()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pnl.ScrollOffset > 0 {
				pnl.ScrollOffset--
			}

		case "down", "j":
			if pnl.height > 0 && len(pnl.contentLines) > pnl.height {
				maxScroll := len(pnl.contentLines) - pnl.height
				if pnl.ScrollOffset < maxScroll {
					pnl.ScrollOffset++
				}
			}
		}
	}

	return pnl, nil
}

// View renders the detail view
func (pnl DetailPanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render renders the visible fields
func (pnl DetailPanel) Render() string {

	if pnl.row == nil {
		return "No row selected"
	}

	visibleLines := pnl.contentLines[pnl.ScrollOffset:]
	if pnl.height > 0 && len(visibleLines) > pnl.height {
		visibleLines = visibleLines[:pnl.height]
	}

	return strings.Join(visibleLines, "\n")
}

// unexported

// computeContentLines lays the row out as label, value lines.
// Columns come first, in grid order, then any fields the grid doesn't show.
func (pnl *DetailPanel) computeContentLines() {

	if pnl.row == nil {
		pnl.contentLines = nil
		return
	}

	labels := []string{}
	fields := []string{}
	shown := map[string]bool{}
	for _, col := range pnl.columns {
		labels = append(labels, col.Title())
		fields = append(fields, col.Field)
		shown[col.Field] = true
	}

	var extra []string
	for field := range pnl.row {
		if !shown[field] {
			extra = append(extra, field)
		}
	}
	slices.Sort(extra)
	labels = append(labels, extra...)
	fields = append(fields, extra...)

	labelWidth := 0
	for _, label := range labels {
		labelWidth = max(labelWidth, ansi.StringWidth(label))
	}
	labelStyle := style.HeaderStyle.Width(labelWidth + 2)

	pnl.contentLines = []string{}
	for i, field := range fields {
		label := labelStyle.Render(labels[i])
		value := formatValue(pnl.row[field])

		for j, line := range strings.Split(value, "\n") {
			if j > 0 {
				label = strings.Repeat(" ", lipgloss.Width(label))
			}
			if pnl.Width > 0 {
				line = ansi.Truncate(line, pnl.Width-lipgloss.Width(label), style.Ellipsis)
			}
			pnl.contentLines = append(pnl.contentLines, label+line)
		}
	}
}

// formatValue renders nested values as indented json, scalars as text
func formatValue(raw any) string {

	switch raw.(type) {
	case map[string]any, []any:
	default:
		return nt.Value{Raw: raw}.String()
	}

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(raw)
	if err != nil {
		return nt.Value{Raw: raw}.String()
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
