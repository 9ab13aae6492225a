package dnd

import (
	"slices"

	"datagrid/pointer"
)

// Axis is the direction children are laid out along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Rect is an area of the surface.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether the point lies within rect.
func (rect Rect) Contains(x, y float64) bool {
	return x >= rect.X && x < rect.X+rect.W && y >= rect.Y && y < rect.Y+rect.H
}

// Container is the visual parent of draggable children.
//
// Children are identified by keys, which are their data positions as of the
// last Reset. Keys keep their extent when a drag moves them around.
type Container struct {
	Axis Axis

	// Handle reports whether a press on child index grabs it, nil meaning anywhere.
	Handle func(index int, evt pointer.Event) bool

	keys    []int
	extents []float64
	origin  float64
	bounds  Rect
}

// NewContainer creates a container with n children.
func NewContainer(axis Axis, n int) *Container {

	ctr := &Container{Axis: axis}
	ctr.Reset(n)
	return ctr
}

// Reset rebuilds the children from data, keys 0 through n-1 in order.
func (ctr *Container) Reset(n int) {

	ctr.keys = make([]int, n)
	for i := range ctr.keys {
		ctr.keys[i] = i
	}
}

// Place positions the container. Extents are indexed by key and measured along
// the axis from origin, bounds clip hit testing.
func (ctr *Container) Place(origin float64, extents []float64, bounds Rect) {

	ctr.origin = origin
	ctr.extents = slices.Clone(extents)
	ctr.bounds = bounds
}

// Keys returns child keys in visual order.
func (ctr *Container) Keys() []int {
	return slices.Clone(ctr.keys)
}

// Len returns the number of children.
func (ctr *Container) Len() int {
	return len(ctr.keys)
}

// IndexOf returns the visual index of key, or -1.
func (ctr *Container) IndexOf(key int) int {
	return slices.Index(ctr.keys, key)
}

// ChildAt returns the visual index of the child under the point.
func (ctr *Container) ChildAt(x, y float64) (index int, ok bool) {

	if !ctr.bounds.Contains(x, y) {
		return 0, false
	}

	pos := ctr.along(x, y)
	for i := range ctr.keys {
		start, end := ctr.Span(i)
		if pos >= start && pos < end {
			return i, true
		}
	}
	return 0, false
}

// Span returns the start and end of the child at visual index along the axis.
func (ctr *Container) Span(index int) (start, end float64) {

	start = ctr.origin
	for i, key := range ctr.keys {
		end = start + ctr.extent(key)
		if i == index {
			return
		}
		start = end
	}
	return start, start
}

// PrevSibling returns the key before key, ok is false when key comes first.
func (ctr *Container) PrevSibling(key int) (prev int, ok bool) {

	idx := ctr.IndexOf(key)
	if idx <= 0 {
		return 0, false
	}
	return ctr.keys[idx-1], true
}

// After moves key to just after anchor.
func (ctr *Container) After(anchor, key int) {

	if anchor == key || ctr.IndexOf(anchor) < 0 || ctr.IndexOf(key) < 0 {
		return
	}

	ctr.remove(key)
	at := ctr.IndexOf(anchor) + 1
	ctr.keys = slices.Insert(ctr.keys, at, key)
}

// Prepend moves key to the front.
func (ctr *Container) Prepend(key int) {

	if ctr.IndexOf(key) < 0 {
		return
	}

	ctr.remove(key)
	ctr.keys = slices.Insert(ctr.keys, 0, key)
}

// Move moves the child at visual index from to index to.
func (ctr *Container) Move(from, to int) {

	if from < 0 || from >= len(ctr.keys) || to < 0 || to >= len(ctr.keys) || from == to {
		return
	}

	key := ctr.keys[from]
	ctr.keys = slices.Delete(ctr.keys, from, from+1)
	ctr.keys = slices.Insert(ctr.keys, to, key)
}

// unexported

func (ctr *Container) remove(key int) {
	ctr.keys = slices.DeleteFunc(ctr.keys, func(other int) bool {
		return other == key
	})
}

func (ctr *Container) extent(key int) float64 {
	if key < 0 || key >= len(ctr.extents) {
		return 0
	}
	return ctr.extents[key]
}

func (ctr *Container) along(x, y float64) float64 {
	if ctr.Axis == Vertical {
		return y
	}
	return x
}

// slot returns the visual index a drag at pos lands on, clamped to the ends.
func (ctr *Container) slot(pos float64) int {

	if len(ctr.keys) == 0 {
		return 0
	}
	if pos < ctr.origin {
		return 0
	}

	for i := range ctr.keys {
		_, end := ctr.Span(i)
		if pos < end {
			return i
		}
	}
	return len(ctr.keys) - 1
}
