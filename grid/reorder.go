package grid

import (
	"slices"

	"github.com/pkg/errors"

	"datagrid/capability"
	"datagrid/dnd"
)

// MoveColumn moves the column at from to to, permuting the width vector in
// lockstep. Columns whose own sortable is off keep their position.
func (grd *Grid) MoveColumn(from, to int) (err error) {

	err = checkMove(from, to, len(grd.columns))
	if err != nil {
		err = errors.Wrapf(err, "cannot move column")
		return
	}

	err = grd.checkPinned(from, to)
	if err != nil {
		err = errors.Wrapf(err, "cannot move column")
		return
	}

	grd.columns = move(grd.columns, from, to)
	if len(grd.widths) == len(grd.columns) {
		grd.widths = move(grd.widths, from, to)
		grd.publish()
	}

	grd.logger.Info(grd.ctx, "moved column", "from", from, "to", to)
	grd.RequestRedraw()
	return
}

// MoveRow moves the row at from to to.
func (grd *Grid) MoveRow(from, to int) (err error) {

	err = checkMove(from, to, len(grd.rows))
	if err != nil {
		err = errors.Wrapf(err, "cannot move row")
		return
	}

	grd.rows = move(grd.rows, from, to)

	grd.logger.Info(grd.ctx, "moved row", "from", from, "to", to)
	grd.RequestRedraw()
	return
}

// Reordering reports whether the reorder sessions are live.
func (grd *Grid) Reordering() bool {
	return grd.colSession != nil && grd.colSession.Active()
}

// DraggedColumn returns the index of the column being dragged.
func (grd *Grid) DraggedColumn() (index int, ok bool) {
	return dragged(grd.colSession)
}

// DraggedRow returns the index the row being dragged had when the drag began.
func (grd *Grid) DraggedRow() (index int, ok bool) {
	return dragged(grd.rowSession)
}

// unexported

func (grd *Grid) sortableChanged(sortable bool) {

	if sortable {
		grd.startSessions()
		return
	}
	grd.stopSessions()
}

func (grd *Grid) startSessions() {

	if grd.colSession != nil || grd.destroyed {
		return
	}

	grd.colSession = dnd.New(grd.scope, grd.header, dnd.Options{
		OnStart: func(evt dnd.Event) {
			grd.colAnchor = arm(grd.header, evt.Item)
		},
		OnEnd: func(evt dnd.Event) {
			grd.reanchor(grd.header, &grd.colAnchor, evt.Item)
			grd.finish(grd.MoveColumn(evt.OldIndex, evt.NewIndex))
		},
	})

	grd.rowSession = dnd.New(grd.scope, grd.body, dnd.Options{
		OnStart: func(evt dnd.Event) {
			grd.rowAnchor = arm(grd.body, evt.Item)
		},
		OnEnd: func(evt dnd.Event) {
			grd.reanchor(grd.body, &grd.rowAnchor, evt.Item)
			grd.finish(grd.MoveRow(evt.OldIndex, evt.NewIndex))
		},
	})

	grd.colSession.Start()
	grd.rowSession.Start()
}

func (grd *Grid) stopSessions() {

	if grd.colSession != nil {
		grd.colSession.Destroy()
		grd.colSession = nil
	}
	if grd.rowSession != nil {
		grd.rowSession.Destroy()
		grd.rowSession = nil
	}

	grd.colAnchor = anchor{}
	grd.rowAnchor = anchor{}
}

// arm records the sibling the dragged child sat after before the drag.
func arm(ctr *dnd.Container, item int) anchor {

	prev, ok := ctr.PrevSibling(item)
	return anchor{armed: true, first: !ok, key: prev}
}

// reanchor puts the dragged child back where it was before the drag so the data
// move that follows is the only reorder the next render sees.
func (grd *Grid) reanchor(ctr *dnd.Container, anc *anchor, item int) {

	if !anc.armed {
		return
	}
	if anc.first {
		ctr.Prepend(item)
	} else {
		ctr.After(anc.key, item)
	}
	*anc = anchor{}
}

// finish renders from data after a drag, logging a rejected move.
func (grd *Grid) finish(err error) {

	if err == nil {
		return
	}
	grd.logger.Error(grd.ctx, "rejected reorder", err)
	grd.RequestRedraw()
}

// checkPinned rejects a move shifting a column whose own sortable is false.
// Every column from from through to shifts.
func (grd *Grid) checkPinned(from, to int) error {

	for _, col := range grd.columns[min(from, to) : max(from, to)+1] {
		if sortable, ok := col.caps.Override.Lookup(capability.Sortable); ok && !sortable {
			return errors.Wrapf(ErrPinned, "field %s", col.spec.Field)
		}
	}
	return nil
}

func dragged(ssn *dnd.Session) (int, bool) {

	if ssn == nil {
		return 0, false
	}
	return ssn.Item()
}

func checkMove(from, to, count int) error {

	if from < 0 || from >= count || to < 0 || to >= count {
		return errors.Wrapf(ErrBadIndex, "from %d to %d of %d", from, to, count)
	}
	return nil
}

func move[T any](items []T, from, to int) []T {

	item := items[from]
	items = slices.Delete(items, from, from+1)
	return slices.Insert(items, to, item)
}
