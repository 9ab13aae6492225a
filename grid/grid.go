// Package grid is the layout and ordering engine of the data grid.
//
// The Grid owns the ordered columns and rows and the width vector, one
// percentage of the grid's rendered width per column. Every change to the vector
// is republished as a track-sizing declaration that rows and cells lay out along.
// Columns own their resize gesture but only ever ask the grid to write their own
// entry. Column and row reordering run through drag and drop sessions that live
// while the grid is sortable.
package grid

import (
	"context"
	"slices"

	"github.com/pkg/errors"

	"datagrid/capability"
	"datagrid/dnd"
	"datagrid/entity"
	"datagrid/geom"
	"datagrid/pointer"
	"datagrid/track"
)

var (
	// ErrNoGrid is reported when a column is used without an owning grid.
	ErrNoGrid = errors.New("column must be a child of a grid")
	// ErrBadIndex is returned for reorders with a missing or out of range index.
	ErrBadIndex = errors.New("reorder index out of range")
	// ErrPinned is returned for a column move that would shift a column whose
	// own sortable is off.
	ErrPinned = errors.New("column is not sortable")
)

// Config is the construction input of a grid.
type Config struct {
	Columns      []entity.Column `yaml:"columns"`
	Rows         []entity.Row    `yaml:"-"`
	Capabilities capability.Set  `yaml:"capabilities,omitempty"`
}

// Grid is the grid root.
type Grid struct {
	columns []*Column
	rows    []entity.Row
	widths  []float64
	width   float64
	sized   bool

	caps  *capability.Provider
	props map[string]string

	scope      *pointer.Scope
	header     *dnd.Container
	body       *dnd.Container
	colSession *dnd.Session
	rowSession *dnd.Session
	colAnchor  anchor
	rowAnchor  anchor

	templateSubs   []func(string)
	redrawSubs     []func()
	cancelSortable func()
	destroyed      bool

	ctx    context.Context
	logger entity.Logger
}

// anchor is the scratch a reorder session keeps between drag start and end.
type anchor struct {
	armed bool
	first bool
	key   int
}

// New creates a grid listening for pointer events on scope.
func (cfg *Config) New(ctx context.Context, scope *pointer.Scope, lgr entity.Logger) *Grid {

	if scope == nil {
		scope = pointer.NewScope()
	}
	if lgr == nil {
		lgr = entity.NopLogger{}
	}

	grd := &Grid{
		rows:   slices.Clone(cfg.Rows),
		caps:   capability.NewProvider(cfg.Capabilities),
		props:  map[string]string{track.Property: track.Initial},
		scope:  scope,
		header: dnd.NewContainer(dnd.Horizontal, 0),
		body:   dnd.NewContainer(dnd.Vertical, 0),
		ctx:    ctx,
		logger: lgr,
	}
	grd.columns = grd.newColumns(cfg.Columns)

	grd.cancelSortable = grd.caps.Subscribe(capability.Sortable, grd.sortableChanged)
	if grd.caps.Value(capability.Sortable) {
		grd.startSessions()
	}

	grd.RequestRedraw()
	return grd
}

// Columns returns the column units in order.
func (grd *Grid) Columns() []*Column {
	return slices.Clone(grd.columns)
}

// Column returns the column unit at index.
func (grd *Grid) Column(index int) (col *Column, ok bool) {

	if index < 0 || index >= len(grd.columns) {
		return nil, false
	}
	return grd.columns[index], true
}

// Specs returns the column descriptions in order.
func (grd *Grid) Specs() []entity.Column {

	specs := make([]entity.Column, len(grd.columns))
	for i, col := range grd.columns {
		specs[i] = col.spec
	}
	return specs
}

// Rows returns the rows in order.
func (grd *Grid) Rows() []entity.Row {
	return slices.Clone(grd.rows)
}

// SetColumns replaces the columns wholesale.
// The width vector is derived again when the grid has already been sized.
func (grd *Grid) SetColumns(specs []entity.Column) {

	for _, col := range grd.columns {
		col.Cancel()
		col.owner = nil
	}
	grd.columns = grd.newColumns(specs)

	grd.widths = nil
	if grd.sized {
		grd.InitializeWidths()
	} else {
		grd.publish()
	}
	grd.RequestRedraw()
}

// SetRows replaces the rows wholesale.
func (grd *Grid) SetRows(rows []entity.Row) {

	grd.rows = slices.Clone(rows)
	grd.RequestRedraw()
}

// Layout records the grid's rendered pixel width once a render pass completes.
// The first positive width derives the width vector.
func (grd *Grid) Layout(width float64) {

	grd.width = width
	if !grd.sized && width > 0 {
		grd.sized = true
		grd.InitializeWidths()
	}
}

// Width returns the rendered pixel width from the last layout.
func (grd *Grid) Width() float64 {
	return grd.width
}

// InitializeWidths derives the width vector from the column constraints.
// A column with a minimum width starts at that width, the others get an equal
// share less one point.
func (grd *Grid) InitializeWidths() {

	count := float64(len(grd.columns))
	widths := make([]float64, len(grd.columns))

	for i, col := range grd.columns {
		if col.spec.MinWidth != 0 {
			widths[i] = geom.PercentOfWidth(col.spec.MinWidth, grd.width)
			continue
		}
		widths[i] = 100/count - 1
	}

	grd.widths = widths
	grd.publish()
}

// Widths returns a copy of the width vector.
func (grd *Grid) Widths() []float64 {
	return slices.Clone(grd.widths)
}

// Template returns the current track-sizing declaration.
func (grd *Grid) Template() string {
	return grd.props[track.Property]
}

// Property returns a published custom property.
func (grd *Grid) Property(name string) string {
	return grd.props[name]
}

// OnTemplate calls fn with each newly published declaration.
func (grd *Grid) OnTemplate(fn func(decl string)) {
	grd.templateSubs = append(grd.templateSubs, fn)
}

// OnRedraw calls fn whenever the grid asks to be rendered again.
func (grd *Grid) OnRedraw(fn func()) {
	grd.redrawSubs = append(grd.redrawSubs, fn)
}

// RequestRedraw rebuilds the containers and stamps column indices from data,
// then notifies redraw subscribers.
func (grd *Grid) RequestRedraw() {

	for i, col := range grd.columns {
		col.index = i
	}
	grd.header.Reset(len(grd.columns))
	grd.body.Reset(len(grd.rows))

	for _, fn := range grd.redrawSubs {
		fn()
	}
}

// TrackWidths resolves the declaration against the rendered width.
func (grd *Grid) TrackWidths() []float64 {

	tracks := make([]track.Track, len(grd.columns))
	for i := range tracks {
		if i < len(grd.widths) {
			tracks[i] = track.Track{Percent: grd.widths[i]}
			continue
		}
		tracks[i] = track.Track{Auto: true}
	}
	return track.Resolve(tracks, grd.width)
}

// Capability returns the grid level value of flag.
func (grd *Grid) Capability(flag capability.Flag) bool {
	return grd.caps.Value(flag)
}

// Capabilities returns a read only view of the grid level values.
func (grd *Grid) Capabilities() capability.Reader {
	return grd.caps
}

// SetCapability changes the grid level value of flag.
// Columns without an override follow; toggling sortable starts or destroys the
// reorder sessions.
func (grd *Grid) SetCapability(flag capability.Flag, value bool) {

	if grd.destroyed {
		return
	}
	if grd.caps.Set(flag, value) {
		grd.RequestRedraw()
	}
}

// HeaderContainer is the visual parent of the column headers.
func (grd *Grid) HeaderContainer() *dnd.Container {
	return grd.header
}

// BodyContainer is the visual parent of the rows.
func (grd *Grid) BodyContainer() *dnd.Container {
	return grd.body
}

// Scope returns the pointer scope the grid listens on.
func (grd *Grid) Scope() *pointer.Scope {
	return grd.scope
}

// Destroy tears the grid down, releasing sessions and in flight gestures.
func (grd *Grid) Destroy() {

	if grd.destroyed {
		return
	}
	grd.destroyed = true

	grd.stopSessions()
	for _, col := range grd.columns {
		col.Cancel()
	}
	if grd.cancelSortable != nil {
		grd.cancelSortable()
	}
	grd.templateSubs = nil
	grd.redrawSubs = nil
}

// unexported

func (grd *Grid) newColumns(specs []entity.Column) []*Column {

	cols := make([]*Column, len(specs))
	for i, spec := range specs {
		col := NewColumn(grd.ctx, spec, grd.scope, grd.logger)
		col.owner = grd
		col.caps.Parent = grd.caps
		col.index = i
		cols[i] = col
	}
	return cols
}

// requestWidth writes pct into the entry of col.
func (grd *Grid) requestWidth(col *Column, pct float64) {

	idx := slices.Index(grd.columns, col)
	if idx < 0 || idx >= len(grd.widths) {
		grd.logger.Info(grd.ctx, "ignoring width for unsized column", "field", col.spec.Field)
		return
	}

	grd.widths[idx] = pct
	grd.publish()
}

// trackWidth returns the rendered pixel width of col.
func (grd *Grid) trackWidth(col *Column) float64 {

	idx := slices.Index(grd.columns, col)
	sizes := grd.TrackWidths()
	if idx < 0 || idx >= len(sizes) {
		return 0
	}
	return sizes[idx]
}

func (grd *Grid) publish() {

	decl := track.Initial
	if len(grd.widths) > 0 {
		decl = track.Format(grd.widths)
	}
	grd.props[track.Property] = decl

	for _, fn := range grd.templateSubs {
		fn(decl)
	}
}
