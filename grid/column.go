package grid

import (
	"context"

	"datagrid/capability"
	"datagrid/entity"
	"datagrid/geom"
	"datagrid/pointer"
)

// DefaultMinWidth is the narrowest a column without a minimum can be dragged, in pixels.
const DefaultMinWidth = 60

// ResizeState is the state of a column's resize gesture.
type ResizeState int

const (
	Idle ResizeState = iota
	Resizing
)

func (state ResizeState) String() string {
	if state == Resizing {
		return "resizing"
	}
	return "idle"
}

// Column is one column of a grid.
type Column struct {
	spec  entity.Column
	owner *Grid
	caps  capability.Resolver
	index int

	state      ResizeState
	startX     float64
	startWidth float64
	detach     []func()

	scope  *pointer.Scope
	ctx    context.Context
	logger entity.Logger
}

// NewColumn creates a column without an owning grid.
// Such a column resolves capabilities against the defaults and cannot be resized.
func NewColumn(ctx context.Context, spec entity.Column, scope *pointer.Scope, lgr entity.Logger) *Column {

	if scope == nil {
		scope = pointer.NewScope()
	}
	if lgr == nil {
		lgr = entity.NopLogger{}
	}

	return &Column{
		spec:   spec,
		caps:   capability.Resolver{Override: spec.Set},
		scope:  scope,
		ctx:    ctx,
		logger: lgr,
	}
}

// Spec returns the column's description.
func (col *Column) Spec() entity.Column {
	return col.spec
}

// Index returns the column's position as of the last render.
func (col *Column) Index() int {
	return col.index
}

// State returns the resize state.
func (col *Column) State() ResizeState {
	return col.state
}

// Effective returns the column's effective value of flag.
func (col *Column) Effective(flag capability.Flag) bool {
	return col.caps.Effective(flag)
}

// Resizable reports whether the resize affordance is shown.
func (col *Column) Resizable() bool {
	return col.Effective(capability.Resizable)
}

// Sortable reports whether the column can be reordered.
func (col *Column) Sortable() bool {
	return col.Effective(capability.Sortable)
}

// PointerDown starts a resize gesture at x, reporting whether one started.
// Move and up listeners go on the document scope so the gesture follows the
// pointer off the affordance.
func (col *Column) PointerDown(x float64) bool {

	if !col.Resizable() {
		return false
	}
	if col.state == Resizing {
		col.release()
	}
	if col.owner == nil {
		col.logger.Error(col.ctx, "cannot resize column", ErrNoGrid, "field", col.spec.Field)
		return false
	}

	col.startX = x
	col.startWidth = col.owner.trackWidth(col)
	col.state = Resizing
	col.detach = []func(){
		col.scope.Listen(pointer.Move, col.onMove),
		col.scope.Listen(pointer.Up, col.onUp),
	}
	return true
}

// ResizeBy widens the column by delta pixels outside of a gesture.
func (col *Column) ResizeBy(delta float64) bool {

	if !col.Resizable() || col.state == Resizing || col.owner == nil {
		return false
	}

	col.apply(col.owner.trackWidth(col) + delta)
	return true
}

// Cancel abandons a gesture in progress.
func (col *Column) Cancel() {
	col.release()
}

// Clamp limits a proposed pixel width to the column's bounds.
// The minimum wins over a smaller maximum.
func (col *Column) Clamp(px float64) float64 {

	lo := col.spec.MinWidth
	if lo == 0 {
		lo = DefaultMinWidth
	}

	if col.spec.MaxWidth != 0 && px > col.spec.MaxWidth {
		px = col.spec.MaxWidth
	}
	if px < lo {
		px = lo
	}
	return px
}

// unexported

func (col *Column) onMove(evt pointer.Event) {

	if col.state != Resizing {
		return
	}
	col.apply(col.startWidth + (evt.X - col.startX))
}

func (col *Column) onUp(evt pointer.Event) {
	col.release()
}

func (col *Column) apply(px float64) {

	pct := geom.PercentOfWidth(col.Clamp(px), col.gridWidth())
	if col.owner == nil {
		return
	}
	col.owner.requestWidth(col, pct)
}

func (col *Column) gridWidth() float64 {

	if col.owner == nil {
		col.logger.Error(col.ctx, "no grid width", ErrNoGrid, "field", col.spec.Field)
		return 0
	}
	return col.owner.width
}

func (col *Column) release() {

	for _, detach := range col.detach {
		detach()
	}
	col.detach = nil
	col.state = Idle
}
