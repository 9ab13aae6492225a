// Package dnd turns drag gestures over a container's children into reorder events.
//
// A Session is the drag and drop capability the grid builds on: once started it
// listens for presses on the container, moves the grabbed child live while the
// pointer moves, and reports the old and new index when the pointer is released
// anywhere on the surface.
package dnd

import (
	"datagrid/pointer"
)

// NoIndex marks a missing index in an Event.
const NoIndex = -1

// Event describes a drag of the child keyed Item.
type Event struct {
	Item     int
	OldIndex int
	NewIndex int
}

// Options are the session callbacks.
type Options struct {
	OnStart func(Event)
	OnEnd   func(Event)
}

// Session is a drag and drop session over a container.
type Session struct {
	scope     *pointer.Scope
	container *Container
	opts      Options

	detachDown func()
	detachDrag []func()

	dragging bool
	item     int
	from     int
}

// New creates a session, call Start to begin listening.
func New(scope *pointer.Scope, container *Container, opts Options) *Session {
	return &Session{
		scope:     scope,
		container: container,
		opts:      opts,
	}
}

// Start attaches the press listener, starting an active session is a no-op.
func (ssn *Session) Start() {

	if ssn.detachDown != nil {
		return
	}
	ssn.detachDown = ssn.scope.Listen(pointer.Down, ssn.onDown)
}

// Destroy releases every listener. A drag in progress is abandoned and its
// child returned to where it was grabbed, OnEnd is not called.
func (ssn *Session) Destroy() {

	if ssn.dragging {
		ssn.container.Move(ssn.container.IndexOf(ssn.item), ssn.from)
		ssn.endDrag()
	}

	if ssn.detachDown != nil {
		ssn.detachDown()
		ssn.detachDown = nil
	}
}

// Active reports whether the session is listening.
func (ssn *Session) Active() bool {
	return ssn.detachDown != nil
}

// Dragging reports whether a drag is in progress.
func (ssn *Session) Dragging() bool {
	return ssn.dragging
}

// Item returns the key of the child being dragged, ok is false between drags.
func (ssn *Session) Item() (item int, ok bool) {
	return ssn.item, ssn.dragging
}

// unexported

func (ssn *Session) onDown(evt pointer.Event) {

	if ssn.dragging {
		return
	}

	idx, ok := ssn.container.ChildAt(evt.X, evt.Y)
	if !ok {
		return
	}
	if ssn.container.Handle != nil && !ssn.container.Handle(idx, evt) {
		return
	}

	ssn.dragging = true
	ssn.item = ssn.container.keys[idx]
	ssn.from = idx
	ssn.detachDrag = []func(){
		ssn.scope.Listen(pointer.Move, ssn.onMove),
		ssn.scope.Listen(pointer.Up, ssn.onUp),
	}

	if ssn.opts.OnStart != nil {
		ssn.opts.OnStart(Event{Item: ssn.item, OldIndex: ssn.from, NewIndex: ssn.from})
	}
}

func (ssn *Session) onMove(evt pointer.Event) {

	if !ssn.dragging {
		return
	}

	cur := ssn.container.IndexOf(ssn.item)
	to := ssn.container.slot(ssn.container.along(evt.X, evt.Y))
	ssn.container.Move(cur, to)
}

func (ssn *Session) onUp(evt pointer.Event) {

	if !ssn.dragging {
		return
	}

	end := Event{
		Item:     ssn.item,
		OldIndex: ssn.from,
		NewIndex: ssn.container.IndexOf(ssn.item),
	}
	ssn.endDrag()

	if ssn.opts.OnEnd != nil {
		ssn.opts.OnEnd(end)
	}
}

func (ssn *Session) endDrag() {

	for _, detach := range ssn.detachDrag {
		detach()
	}
	ssn.detachDrag = nil
	ssn.dragging = false
}
