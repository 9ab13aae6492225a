// Package pointer is a document wide scope for pointer listeners.
//
// Gestures that start on one element attach their move and up listeners here so
// they keep receiving events after the pointer leaves that element.
package pointer

import "slices"

// Kind is the kind of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
)

func (kind Kind) String() string {
	switch kind {
	case Down:
		return "pointerdown"
	case Move:
		return "pointermove"
	case Up:
		return "pointerup"
	}
	return "unknown"
}

// Event is a pointer event in surface coordinates.
type Event struct {
	Kind Kind
	X    float64
	Y    float64
}

// Handler handles a pointer event.
type Handler func(Event)

type listener struct {
	kind    Kind
	handler Handler
}

// Scope dispatches pointer events to listeners.
type Scope struct {
	listeners []*listener
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Listen attaches handler for kind, returning a func that detaches it.
// Detaching more than once is harmless.
func (scope *Scope) Listen(kind Kind, handler Handler) (detach func()) {

	lsn := &listener{kind: kind, handler: handler}
	scope.listeners = append(scope.listeners, lsn)

	return func() {
		scope.listeners = slices.DeleteFunc(scope.listeners, func(other *listener) bool {
			return other == lsn
		})
	}
}

// Dispatch delivers evt to the listeners attached when dispatch began.
// Handlers may attach or detach listeners while being called.
func (scope *Scope) Dispatch(evt Event) {

	for _, lsn := range slices.Clone(scope.listeners) {
		if lsn.kind != evt.Kind || !scope.attached(lsn) {
			continue
		}
		lsn.handler(evt)
	}
}

// Listeners returns the number of attached listeners.
func (scope *Scope) Listeners() int {
	return len(scope.listeners)
}

func (scope *Scope) attached(lsn *listener) bool {
	return slices.Contains(scope.listeners, lsn)
}
