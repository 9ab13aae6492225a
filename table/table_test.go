package table

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datagrid/capability"
	nt "datagrid/entity"
	"datagrid/grid"
	"datagrid/message"
	"datagrid/style"
)

func newPanel(t *testing.T, sortable bool) TablePanel {
	t.Helper()

	return newPanelWith(t, sortable, []nt.Column{
		{Field: "a", Label: "a"},
		{Field: "b", Label: "b", Align: nt.AlignEnd},
	})
}

func newPanelWith(t *testing.T, sortable bool, cols []nt.Column) TablePanel {
	t.Helper()

	rows := make([]nt.Row, 3)
	for i := range rows {
		rows[i] = nt.Row{"a": fmt.Sprintf("a%d", i), "b": fmt.Sprintf("b%d", i)}
	}

	cfg := grid.Config{
		Columns:      cols,
		Rows:         rows,
		Capabilities: capability.Set{Sortable: capability.Bool(sortable)},
	}
	grd := cfg.New(context.Background(), nil, nt.NopLogger{})
	t.Cleanup(grd.Destroy)

	pnl := NewTablePanel(context.Background(), grd, nt.NopLogger{})
	pnl, _ = pnl.Update(SizeMsg{Width: 40, Height: 10})
	return pnl
}

func click(pnl TablePanel, x, y int) (TablePanel, tea.Cmd) {
	return pnl.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func drag(pnl TablePanel, x, y int) TablePanel {
	pnl, _ = pnl.Update(tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft})
	return pnl
}

func release(pnl TablePanel, x, y int) TablePanel {
	pnl, _ = pnl.Update(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft})
	return pnl
}

func lines(pnl TablePanel) []string {
	return strings.Split(ansi.Strip(pnl.Render()), "\n")
}

func TestRender(t *testing.T) {

	pnl := newPanel(t, false)
	out := lines(pnl)

	require.Len(t, out, 5)
	assert.True(t, strings.HasPrefix(out[0], "a"))
	assert.Contains(t, out[0], "│")
	assert.NotContains(t, out[0], "⠿")
	assert.Equal(t, strings.Repeat("─", 40), out[1])
	assert.True(t, strings.HasPrefix(out[2], "a0"))
	assert.True(t, strings.HasSuffix(out[2], "b0"))
	assert.Equal(t, 40, ansi.StringWidth(out[2]))
}

func TestRenderSortableShowsHandles(t *testing.T) {

	pnl := newPanel(t, true)
	assert.True(t, strings.HasPrefix(lines(pnl)[0], "⠿a"))
}

func TestMouseResize(t *testing.T) {

	pnl := newPanel(t, false)
	grd := pnl.Grid()

	// two 49% tracks share the free space, 20 cells each, handle on the last cell
	pnl, _ = click(pnl, 19, 0)
	col, _ := grd.Column(0)
	require.Equal(t, grid.Resizing, col.State())

	pnl = drag(pnl, 24, 0)
	assert.Equal(t, 62.5, grd.Widths()[0])
	assert.Contains(t, grd.Template(), "minmax(62.5%, auto)")

	pnl = release(pnl, 70, 30)
	assert.Equal(t, grid.Idle, col.State())
	assert.Equal(t, 0, grd.Scope().Listeners())

	pnl = drag(pnl, 0, 0)
	assert.Equal(t, 62.5, grd.Widths()[0])

	// the handle follows the wider track
	pnl, _ = click(pnl, 24, 0)
	require.Equal(t, grid.Resizing, col.State())
	pnl = drag(pnl, -50, 0)
	assert.Equal(t, 18.75, grd.Widths()[0])
	release(pnl, 0, 0)
}

func TestMouseReorderColumn(t *testing.T) {

	pnl := newPanel(t, true)
	grd := pnl.Grid()

	pnl, _ = click(pnl, 20, 0)
	pnl = drag(pnl, 2, 0)
	pnl = release(pnl, 2, 0)

	specs := grd.Specs()
	assert.Equal(t, "b", specs[0].Field)
	assert.Equal(t, "a", specs[1].Field)
	_, col := pnl.Selected()
	assert.Equal(t, 0, col)
	row := lines(pnl)[2]
	assert.Less(t, strings.Index(row, "b0"), strings.Index(row, "a0"))
	header := lines(pnl)[0]
	assert.Less(t, strings.Index(header, "b"), strings.Index(header, "a"))
}

func TestMouseReorderRow(t *testing.T) {

	pnl := newPanel(t, true)
	grd := pnl.Grid()

	pnl, _ = click(pnl, 5, 4)
	row, _ := pnl.Selected()
	require.Equal(t, 2, row)

	pnl = drag(pnl, 5, 2)
	pnl = release(pnl, 5, 2)

	var got []any
	for _, row := range grd.Rows() {
		got = append(got, row["a"])
	}
	assert.Equal(t, []any{"a2", "a0", "a1"}, got)

	row, _ = pnl.Selected()
	assert.Equal(t, 0, row)
	assert.Equal(t, "a2", grd.Rows()[row]["a"])
}

func TestDraggedHeaderStyled(t *testing.T) {

	pnl := newPanel(t, true)
	grd := pnl.Grid()

	pnl, _ = click(pnl, 20, 0)
	key, ok := grd.DraggedColumn()
	require.True(t, ok)
	assert.Equal(t, 1, key)

	pnl = drag(pnl, 2, 0)
	header := pnl.Render()
	assert.Contains(t, header, style.DraggingStyle.Render(style.ReorderGlyph))
	assert.Equal(t, 2, strings.Count(ansi.Strip(header), style.ReorderGlyph))

	pnl = release(pnl, 2, 0)
	_, ok = grd.DraggedColumn()
	assert.False(t, ok)
}

func TestPinnedColumnStaysPut(t *testing.T) {

	pinned := nt.Column{Field: "b", Label: "b"}
	pinned.Sortable = capability.Bool(false)
	pnl := newPanelWith(t, true, []nt.Column{{Field: "a", Label: "a"}, pinned})
	grd := pnl.Grid()

	header := lines(pnl)[0]
	assert.True(t, strings.HasPrefix(header, "⠿a"))
	assert.Equal(t, 1, strings.Count(header, "⠿"))

	// no grab on the pinned column
	pnl, _ = click(pnl, 20, 0)
	_, ok := grd.DraggedColumn()
	assert.False(t, ok)
	pnl = drag(pnl, 2, 0)
	pnl = release(pnl, 2, 0)
	assert.Equal(t, []string{"a", "b"}, []string{grd.Specs()[0].Field, grd.Specs()[1].Field})

	// a sortable column cannot be dropped across it
	pnl, _ = click(pnl, 0, 0)
	_, ok = grd.DraggedColumn()
	require.True(t, ok)
	pnl = drag(pnl, 30, 0)
	pnl = release(pnl, 30, 0)
	assert.Equal(t, []string{"a", "b"}, []string{grd.Specs()[0].Field, grd.Specs()[1].Field})
	_, col := pnl.Selected()
	assert.Equal(t, 0, col)

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift})
	assert.Equal(t, []string{"a", "b"}, []string{grd.Specs()[0].Field, grd.Specs()[1].Field})

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift})
	assert.Equal(t, []string{"a", "b"}, []string{grd.Specs()[0].Field, grd.Specs()[1].Field})
	_, col = pnl.Selected()
	assert.Equal(t, 1, col)
}

func TestClickSelects(t *testing.T) {

	pnl := newPanel(t, false)

	pnl, cmd := click(pnl, 25, 3)
	row, col := pnl.Selected()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	require.NotNil(t, cmd)
	msg, ok := cmd().(message.SelectedMsg)
	require.True(t, ok)
	assert.Equal(t, 2, msg.Row)
	assert.Equal(t, 3, msg.Total)
	assert.Equal(t, "b", msg.Column.Field)
}

func TestKeys(t *testing.T) {

	pnl := newPanel(t, false)
	grd := pnl.Grid()

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.True(t, grd.Capability(capability.Sortable))
	assert.True(t, grd.Reordering())

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: 'J', Text: "J"})
	row, _ := pnl.Selected()
	assert.Equal(t, 2, row)
	assert.Equal(t, "a1", grd.Rows()[2]["a"])

	before := grd.Widths()[0]
	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: '+', Text: "+"})
	assert.Greater(t, grd.Widths()[0], before)

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.False(t, grd.Capability(capability.Resizable))
	resized := grd.Widths()[0]
	pnl.Update(tea.KeyPressMsg{Code: '-', Text: "-"})
	assert.Equal(t, resized, grd.Widths()[0])
}

func TestColumnsAndRowsMsgs(t *testing.T) {

	pnl := newPanel(t, false)
	grd := pnl.Grid()

	pnl, _ = pnl.Update(message.LayoutMsg{Columns: []nt.Column{{Field: "b"}, {Field: "a"}, {Field: "c"}}})
	assert.Len(t, grd.Widths(), 3)
	assert.InDelta(t, 100.0/3-1, grd.Widths()[0], 1e-9)

	pnl, _ = pnl.Update(message.LayoutMsg{Capabilities: capability.Set{Sortable: capability.Bool(true)}})
	assert.Len(t, grd.Columns(), 3)
	assert.True(t, grd.Capability(capability.Sortable))

	pnl, _ = pnl.Update(message.RowsMsg{Rows: []nt.Row{{"a": "x"}}})
	out := lines(pnl)
	require.Len(t, out, 3)
	assert.Contains(t, out[2], "x")
}

func TestTruncate(t *testing.T) {

	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", ansi.Strip(truncate("abcdef", 3)))
	assert.Equal(t, "", truncate("abc", 0))
}
