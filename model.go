package datagrid

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"datagrid/detail"
	nt "datagrid/entity"
	"datagrid/grid"
	"datagrid/message"
	"datagrid/style"
	"datagrid/table"
)

// Model is the bubbletea model for the data grid TUI.
type Model struct {
	store  Store
	layout string
	grid   *grid.Grid

	CurrentScreen Screen

	TablePanel  table.TablePanel
	DetailPanel detail.DetailPanel

	status      message.SelectedMsg
	errorString string

	Width  int
	Height int

	ctx    context.Context
	logger nt.Logger
}

// NewModel loads the layout and rows, and builds the grid.
func (cfg *Config) NewModel(ctx context.Context, store Store, lgr nt.Logger) (model Model, err error) {

	layout, err := LoadLayout(cfg.Layout)
	if err != nil {
		return
	}

	fields, err := store.Fields()
	if err != nil {
		return
	}

	rows, err := store.Rows(cfg.Limit)
	if err != nil {
		return
	}

	gridCfg := layout.Grid(fields, rows)
	grd := gridCfg.New(ctx, nil, lgr)

	model = Model{
		store:       store,
		layout:      cfg.Layout,
		grid:        grd,
		TablePanel:  table.NewTablePanel(ctx, grd, lgr),
		DetailPanel: detail.NewDetailPanel(),
		status:      message.SelectedMsg{Row: 1, Total: len(rows)},
		ctx:         ctx,
		logger:      lgr,
	}
	if col, ok := grd.Column(0); ok {
		model.status.Column = col.Spec()
	}

	lgr.Info(ctx, "loaded grid", "columns", len(gridCfg.Columns), "rows", len(rows), "source", store.Name())
	return
}

// Grid returns the model's grid.
func (m Model) Grid() *grid.Grid {
	return m.grid
}

// Close tears the grid down, detaching any listeners.
func (m Model) Close() {
	m.grid.Destroy()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.SelectedMsg:
		m.status = msg
		return m, nil

	case tea.KeyPressMsg:
		m.errorString = ""

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "R":
			return m, m.reloadLayout()

		case "enter":
			if m.CurrentScreen == TableScreen {
				return m.switchToDetail()
			}

		case "esc":
			if m.CurrentScreen == DetailScreen {
				m.CurrentScreen = TableScreen
				return m, nil
			}
		}

		if m.CurrentScreen == DetailScreen {
			var cmd tea.Cmd
			m.DetailPanel, cmd = m.DetailPanel.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd tea.Cmd
		m.TablePanel, cmd = m.TablePanel.Update(table.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
		m.DetailPanel, _ = m.DetailPanel.Update(detail.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
		return m, cmd

	case tea.MouseMsg:
		if m.CurrentScreen == DetailScreen {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.TablePanel, cmd = m.TablePanel.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {

	view := tea.NewView(m.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}

// Render renders the grid above the footer.
func (m Model) Render() string {

	if m.Width == 0 {
		return "Loading..."
	}

	content := m.TablePanel.Render()
	if m.CurrentScreen == DetailScreen {
		content = m.DetailPanel.Render()
	}

	panel := style.UnStyle.Height(m.Height - footerHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, panel, m.footer())
}

// unexported

func (m Model) footer() string {

	if m.errorString != "" {
		return RenderError(m.errorString, m.Width)
	}
	return RenderFooter(m.status.Row, m.status.Total, m.status.Column.Description, m.store.Name(), m.Width)
}

// switchToDetail shows the selected row
func (m Model) switchToDetail() (Model, tea.Cmd) {

	selected, _ := m.TablePanel.Selected()
	rows := m.grid.Rows()
	if selected < 0 || selected >= len(rows) {
		return m, nil
	}

	m.DetailPanel, _ = m.DetailPanel.Update(detail.RowMsg{
		Columns: m.grid.Specs(),
		Row:     rows[selected],
	})
	m.CurrentScreen = DetailScreen
	return m, nil
}

// reloadLayout rereads the layout's columns and capabilities, keeping the
// loaded rows.
func (m Model) reloadLayout() tea.Cmd {

	layout, err := LoadLayout(m.layout)
	if err != nil {
		return message.ErrorCmd(err)
	}
	return message.LayoutCmd(layout.Columns, layout.Capabilities)
}
