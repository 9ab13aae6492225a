package table

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"datagrid/capability"
	"datagrid/dnd"
	nt "datagrid/entity"
	"datagrid/grid"
	"datagrid/message"
	"datagrid/pointer"
	"datagrid/style"
	"datagrid/track"
)

// Todo: horizontal scroll when the tracks overflow the panel

const (
	headerHeight = 2 // Header row + separator line
	resizeStep   = 2 // Cells per +/- keypress

	// CellPixels is the width of a terminal cell in the grid's pixel units
	CellPixels = 8
)

// TablePanel renders a grid and feeds it pointer and key input
type TablePanel struct {
	grid *grid.Grid

	selected int // Absolute position of selected row
	column   int // Position of selected column
	offset   int // First row shown

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

func NewTablePanel(ctx context.Context, grd *grid.Grid, lgr nt.Logger) TablePanel {

	pnl := TablePanel{
		grid:   grd,
		ctx:    ctx,
		logger: lgr,
	}

	// a drag starts on the reorder glyph of a sortable column
	header := grd.HeaderContainer()
	header.Handle = func(index int, evt pointer.Event) bool {
		keys := header.Keys()
		if index >= len(keys) {
			return false
		}
		col, ok := grd.Column(keys[index])
		if !ok || !col.Sortable() {
			return false
		}
		start, _ := header.Span(index)
		return evt.X == start
	}

	return pnl
}

func (pnl TablePanel) Init() tea.Cmd {
	return nil
}

// Grid returns the grid shown by the panel
func (pnl TablePanel) Grid() *grid.Grid {
	return pnl.grid
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {

	var cmd tea.Cmd

	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.grid.Layout(px(pnl.width))

	case message.LayoutMsg:
		for _, flag := range capability.Flags {
			if value, ok := msg.Capabilities.Lookup(flag); ok {
				pnl.grid.SetCapability(flag, value)
			}
		}
		if len(msg.Columns) > 0 {
			pnl.grid.SetColumns(msg.Columns)
			pnl.column = 0
		}

	case message.RowsMsg:
		pnl.grid.SetRows(msg.Rows)
		pnl.selected = 0
		pnl.offset = 0

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button != tea.MouseLeft {
			return pnl, nil
		}
		pnl, cmd = pnl.press(mouse.X, mouse.Y)

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		pnl.grid.Scope().Dispatch(pointer.Event{Kind: pointer.Move, X: px(mouse.X), Y: float64(mouse.Y)})

	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		pnl = pnl.release(px(mouse.X), float64(mouse.Y))

	case tea.KeyPressMsg:
		pnl, cmd = pnl.key(msg.String())
	}

	pnl.place()
	return pnl, cmd
}

// View renders the panel
func (pnl TablePanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Render renders the header, separator and visible rows
func (pnl TablePanel) Render() string {

	cells := pnl.cells()
	cols := pnl.grid.Columns()

	lines := []string{pnl.renderHeader(cols, cells)}
	lines = append(lines, style.TableBorderStyle.Render(strings.Repeat("─", pnl.width)))

	styler := style.CellStyler(pnl.selected, pnl.column)
	rows := pnl.grid.BodyContainer().Keys()
	for vis := pnl.offset; vis < len(rows) && vis < pnl.offset+pnl.PageSize(); vis++ {
		row, ok := pnl.grid.Row(rows[vis])
		if !ok {
			continue
		}

		parts := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			stl := styler(vis, i).
				Width(cells[i]).
				MaxWidth(cells[i]).
				Align(style.Position(cell.Column.Spec().Align))
			parts[i] = stl.Render(truncate(cell.Text, cells[i]))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	return strings.Join(lines, "\n")
}

// Selected returns the selected row and column positions
func (pnl TablePanel) Selected() (row, column int) {
	return pnl.selected, pnl.column
}

// PageSize returns the number of rows that fit on panel
func (pnl TablePanel) PageSize() int {
	size := pnl.height - headerHeight
	if size < 0 {
		return 0
	}
	return size
}

// unexported

// press routes a left click to the resize affordance under it, then to the
// reorder sessions, then selects the cell.
func (pnl TablePanel) press(x, y int) (TablePanel, tea.Cmd) {

	evt := pointer.Event{Kind: pointer.Down, X: px(x), Y: float64(y)}

	if y == 0 {
		if col, ok := pnl.resizeHandleAt(x); ok {
			col.PointerDown(evt.X)
			return pnl, nil
		}
	}

	pnl.grid.Scope().Dispatch(evt)

	if idx, ok := pnl.grid.HeaderContainer().ChildAt(evt.X, 0); ok {
		pnl.column = idx
	}
	if y >= headerHeight {
		row := pnl.offset + y - headerHeight
		if row < len(pnl.grid.Rows()) {
			pnl.selected = row
		}
	}

	return pnl, pnl.selectedCmd()
}

// release ends any gesture, the selection following a dragged row or column
func (pnl TablePanel) release(x, y float64) TablePanel {

	var dragged *grid.Column
	if key, ok := pnl.grid.DraggedColumn(); ok {
		dragged, _ = pnl.grid.Column(key)
	}
	row, rowDrag := pnl.grid.DraggedRow()
	if rowDrag {
		row = pnl.grid.BodyContainer().IndexOf(row)
	}

	pnl.grid.Scope().Dispatch(pointer.Event{Kind: pointer.Up, X: x, Y: y})

	if dragged != nil {
		pnl.column = dragged.Index()
	}
	if rowDrag && row >= 0 {
		pnl.selected = row
	}
	return pnl.clamp()
}

func (pnl TablePanel) key(key string) (TablePanel, tea.Cmd) {

	total := len(pnl.grid.Rows())
	pageSize := pnl.PageSize()

	switch key {
	case "up", "k":
		if pnl.selected > 0 {
			pnl.selected--
		}

	case "down", "j":
		if pnl.selected < total-1 {
			pnl.selected++
		}

	case "left", "h":
		if pnl.column > 0 {
			pnl.column--
		}

	case "right", "l":
		if pnl.column < len(pnl.grid.Columns())-1 {
			pnl.column++
		}

	case "pgup", "ctrl+u":
		pnl.selected -= pageSize

	case "pgdown", "ctrl+d":
		pnl.selected += pageSize

	case "g":
		pnl.selected = 0

	case "G":
		pnl.selected = total - 1

	case "shift+left":
		return pnl.moveColumn(-1)

	case "shift+right":
		return pnl.moveColumn(1)

	case "shift+up", "K":
		return pnl.moveRow(-1)

	case "shift+down", "J":
		return pnl.moveRow(1)

	case "+", "=":
		pnl.resize(resizeStep)

	case "-":
		pnl.resize(-resizeStep)

	case "s":
		pnl.toggle(capability.Sortable)

	case "r":
		pnl.toggle(capability.Resizable)

	default:
		return pnl, nil
	}

	pnl = pnl.clamp()
	return pnl, pnl.selectedCmd()
}

func (pnl TablePanel) moveColumn(delta int) (TablePanel, tea.Cmd) {

	col, ok := pnl.grid.Column(pnl.column)
	if !ok || !pnl.grid.Capability(capability.Sortable) || !col.Sortable() {
		return pnl, nil
	}

	err := pnl.grid.MoveColumn(pnl.column, pnl.column+delta)
	if err != nil {
		return pnl, nil
	}
	pnl.column += delta
	return pnl, pnl.selectedCmd()
}

func (pnl TablePanel) moveRow(delta int) (TablePanel, tea.Cmd) {

	if !pnl.grid.Capability(capability.Sortable) {
		return pnl, nil
	}

	err := pnl.grid.MoveRow(pnl.selected, pnl.selected+delta)
	if err != nil {
		return pnl, nil
	}
	pnl.selected += delta
	pnl = pnl.clamp()
	return pnl, pnl.selectedCmd()
}

func (pnl TablePanel) resize(delta float64) {

	col, ok := pnl.grid.Column(pnl.column)
	if !ok {
		return
	}
	col.ResizeBy(delta * CellPixels)
}

func (pnl TablePanel) toggle(flag capability.Flag) {

	value := !pnl.grid.Capability(flag)
	pnl.grid.SetCapability(flag, value)
	pnl.logger.Info(pnl.ctx, "toggled capability", "flag", flag.String(), "value", value)
}

// clamp keeps the selection in range and visible
func (pnl TablePanel) clamp() TablePanel {

	total := len(pnl.grid.Rows())
	if pnl.selected >= total {
		pnl.selected = total - 1
	}
	if pnl.selected < 0 {
		pnl.selected = 0
	}

	cols := len(pnl.grid.Columns())
	if pnl.column >= cols {
		pnl.column = cols - 1
	}
	if pnl.column < 0 {
		pnl.column = 0
	}

	pageSize := pnl.PageSize()
	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pageSize > 0 && pnl.selected >= pnl.offset+pageSize {
		pnl.offset = pnl.selected - pageSize + 1
	}
	return pnl
}

func (pnl TablePanel) selectedCmd() tea.Cmd {

	col, ok := pnl.grid.Column(pnl.column)
	if !ok {
		return nil
	}
	return message.SelectedCmd(pnl.selected+1, len(pnl.grid.Rows()), col.Spec())
}

// cells sizes the columns in terminal cells from the grid's published
// declaration, the same tracks every row lays out along.
func (pnl TablePanel) cells() []int {

	count := len(pnl.grid.Columns())

	tracks, err := track.Parse(pnl.grid.Template())
	if err != nil {
		pnl.logger.Error(pnl.ctx, "falling back to resolved widths", err)
		return toCells(pnl.grid.TrackWidths())
	}

	// an "auto" declaration is one track repeated implicitly
	for len(tracks) < count {
		tracks = append(tracks, track.Track{Auto: true})
	}
	tracks = tracks[:count]

	return toCells(track.Resolve(tracks, px(pnl.width)))
}

// place positions the drag containers where the current frame draws them
func (pnl TablePanel) place() {

	cells := pnl.cells()
	extents := make([]float64, len(cells))
	for i, cell := range cells {
		extents[i] = px(cell)
	}
	pnl.grid.HeaderContainer().Place(0, extents, dnd.Rect{W: px(pnl.width), H: 1})

	rows := make([]float64, len(pnl.grid.Rows()))
	for i := range rows {
		rows[i] = 1
	}
	pnl.grid.BodyContainer().Place(
		float64(headerHeight-pnl.offset),
		rows,
		dnd.Rect{Y: headerHeight, W: px(pnl.width), H: float64(pnl.PageSize())},
	)
}

// resizeHandleAt returns the column whose resize affordance is at x
func (pnl TablePanel) resizeHandleAt(x int) (*grid.Column, bool) {

	header := pnl.grid.HeaderContainer()
	for vis, key := range header.Keys() {
		col, ok := pnl.grid.Column(key)
		if !ok || !col.Resizable() {
			continue
		}
		start, end := header.Span(vis)
		if end-start >= px(2) && px(x) == end-CellPixels {
			return col, true
		}
	}
	return nil, false
}

func (pnl TablePanel) renderHeader(cols []*grid.Column, cells []int) string {

	sortable := pnl.grid.Capability(capability.Sortable)
	header := pnl.grid.HeaderContainer()
	dragged, dragging := pnl.grid.DraggedColumn()

	var parts []string
	for _, key := range header.Keys() {
		if key >= len(cols) || key >= len(cells) {
			continue
		}
		col := cols[key]
		width := cells[key]
		if width <= 0 {
			continue
		}

		var lead, trail string
		inner := width
		labelStyle := style.HeaderStyle
		grip := style.ReorderStyle
		if dragging && key == dragged {
			labelStyle = labelStyle.Inherit(style.DraggingStyle)
			grip = style.DraggingStyle
		}
		if sortable && col.Sortable() && inner >= 2 {
			lead = grip.Render(style.ReorderGlyph)
			inner--
		}
		if col.Resizable() && inner >= 2 {
			glyph := style.ResizeStyle
			if col.State() == grid.Resizing {
				glyph = style.ResizingStyle
			}
			trail = glyph.Render(style.ResizeGlyph)
			inner--
		}

		label := labelStyle.
			Width(inner).
			MaxWidth(inner).
			Align(style.Position(col.Spec().Align)).
			Render(truncate(col.Spec().Title(), inner))

		parts = append(parts, lead+label+trail)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// help

func px(cells int) float64 {
	return float64(cells * CellPixels)
}

func toCells(sizes []float64) []int {

	scaled := make([]float64, len(sizes))
	for i, size := range sizes {
		scaled[i] = size / CellPixels
	}
	return track.Cells(scaled)
}

func truncate(in string, width int) string {

	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(in) <= width {
		return in
	}

	truncated := ansi.Truncate(in, width-1, "")
	ellipsis := style.MutedStyle.Render(style.Ellipsis)
	return truncated + ellipsis
}
