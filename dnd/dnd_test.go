package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datagrid/pointer"
)

func header(n int) *Container {

	ctr := NewContainer(Horizontal, n)
	extents := make([]float64, n)
	for i := range extents {
		extents[i] = 10
	}
	ctr.Place(0, extents, Rect{X: 0, Y: 0, W: float64(n * 10), H: 1})
	return ctr
}

func TestContainerChildAt(t *testing.T) {

	ctr := header(3)

	idx, ok := ctr.ChildAt(15, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = ctr.ChildAt(15, 1)
	assert.False(t, ok)

	_, ok = ctr.ChildAt(30, 0)
	assert.False(t, ok)
}

func TestContainerMoves(t *testing.T) {

	ctr := header(4)

	ctr.Move(2, 0)
	assert.Equal(t, []int{2, 0, 1, 3}, ctr.Keys())

	prev, ok := ctr.PrevSibling(1)
	assert.True(t, ok)
	assert.Equal(t, 0, prev)

	_, ok = ctr.PrevSibling(2)
	assert.False(t, ok)

	ctr.After(1, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, ctr.Keys())

	ctr.Move(0, 3)
	ctr.Prepend(0)
	assert.Equal(t, []int{0, 1, 2, 3}, ctr.Keys())

	start, end := ctr.Span(2)
	assert.Equal(t, 20.0, start)
	assert.Equal(t, 30.0, end)
}

func TestSessionDrag(t *testing.T) {

	scope := pointer.NewScope()
	ctr := header(4)

	var started, ended []Event
	ssn := New(scope, ctr, Options{
		OnStart: func(evt Event) { started = append(started, evt) },
		OnEnd:   func(evt Event) { ended = append(ended, evt) },
	})
	ssn.Start()
	ssn.Start()
	assert.Equal(t, 1, scope.Listeners())

	_, ok := ssn.Item()
	assert.False(t, ok)

	scope.Dispatch(pointer.Event{Kind: pointer.Down, X: 25})
	require.True(t, ssn.Dragging())
	assert.Equal(t, 3, scope.Listeners())
	item, ok := ssn.Item()
	assert.True(t, ok)
	assert.Equal(t, 2, item)
	assert.Equal(t, []Event{{Item: 2, OldIndex: 2, NewIndex: 2}}, started)

	scope.Dispatch(pointer.Event{Kind: pointer.Move, X: 12})
	assert.Equal(t, []int{0, 2, 1, 3}, ctr.Keys())

	scope.Dispatch(pointer.Event{Kind: pointer.Move, X: -40, Y: 9})
	assert.Equal(t, []int{2, 0, 1, 3}, ctr.Keys())

	scope.Dispatch(pointer.Event{Kind: pointer.Up, X: 500, Y: 500})
	assert.False(t, ssn.Dragging())
	assert.Equal(t, 1, scope.Listeners())
	assert.Equal(t, []Event{{Item: 2, OldIndex: 2, NewIndex: 0}}, ended)
	_, ok = ssn.Item()
	assert.False(t, ok)
}

func TestSessionHandle(t *testing.T) {

	scope := pointer.NewScope()
	ctr := header(3)
	ctr.Handle = func(index int, evt pointer.Event) bool {
		start, _ := ctr.Span(index)
		return evt.X == start
	}

	ssn := New(scope, ctr, Options{})
	ssn.Start()

	scope.Dispatch(pointer.Event{Kind: pointer.Down, X: 15})
	assert.False(t, ssn.Dragging())

	scope.Dispatch(pointer.Event{Kind: pointer.Down, X: 10})
	assert.True(t, ssn.Dragging())
}

func TestSessionDestroy(t *testing.T) {

	scope := pointer.NewScope()
	ctr := header(3)

	var ended int
	ssn := New(scope, ctr, Options{OnEnd: func(Event) { ended++ }})
	ssn.Start()

	scope.Dispatch(pointer.Event{Kind: pointer.Down, X: 5})
	scope.Dispatch(pointer.Event{Kind: pointer.Move, X: 25})
	assert.Equal(t, []int{1, 2, 0}, ctr.Keys())

	ssn.Destroy()
	assert.False(t, ssn.Active())
	assert.False(t, ssn.Dragging())
	assert.Equal(t, 0, scope.Listeners())
	assert.Equal(t, []int{0, 1, 2}, ctr.Keys())

	scope.Dispatch(pointer.Event{Kind: pointer.Up})
	assert.Equal(t, 0, ended)
}
