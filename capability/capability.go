// Package capability broadcasts the grid level boolean capabilities to columns.
//
// The grid root owns a Provider. Columns hold a Resolver whose parent is the
// provider's read only view, so an explicit column override wins and everything
// else tracks the root's current value.
package capability

import "slices"

// Flag names a capability.
type Flag int

const (
	Editable Flag = iota
	Filterable
	Sortable
	Hideable
	Resizable
)

// Flags lists every capability in declaration order.
var Flags = []Flag{Editable, Filterable, Sortable, Hideable, Resizable}

var names = [...]string{"editable", "filterable", "sortable", "hideable", "resizable"}

func (flag Flag) String() string {
	if flag < 0 || int(flag) >= len(names) {
		return "unknown"
	}
	return names[flag]
}

// Default returns the hard default of a capability.
func Default(flag Flag) bool {
	return flag == Hideable || flag == Resizable
}

// Reader reads capability values.
type Reader interface {
	Value(flag Flag) bool
}

// Set holds optional values for each capability, nil meaning unset.
type Set struct {
	Editable   *bool `yaml:"editable,omitempty" toml:"editable,omitempty"`
	Filterable *bool `yaml:"filterable,omitempty" toml:"filterable,omitempty"`
	Sortable   *bool `yaml:"sortable,omitempty" toml:"sortable,omitempty"`
	Hideable   *bool `yaml:"hideable,omitempty" toml:"hideable,omitempty"`
	Resizable  *bool `yaml:"resizable,omitempty" toml:"resizable,omitempty"`
}

// Lookup returns the value of flag and whether it is set.
func (set Set) Lookup(flag Flag) (value, ok bool) {

	ptr := set.field(flag)
	if ptr == nil {
		return false, false
	}
	return *ptr, true
}

// With returns a copy of set with flag set to value.
func (set Set) With(flag Flag, value bool) Set {

	switch flag {
	case Editable:
		set.Editable = &value
	case Filterable:
		set.Filterable = &value
	case Sortable:
		set.Sortable = &value
	case Hideable:
		set.Hideable = &value
	case Resizable:
		set.Resizable = &value
	}
	return set
}

func (set Set) field(flag Flag) *bool {

	switch flag {
	case Editable:
		return set.Editable
	case Filterable:
		return set.Filterable
	case Sortable:
		return set.Sortable
	case Hideable:
		return set.Hideable
	case Resizable:
		return set.Resizable
	}
	return nil
}

// Bool is a convenience for building a Set literal.
func Bool(value bool) *bool {
	return &value
}

// Provider is the root owned broadcast of capability values.
type Provider struct {
	values map[Flag]bool
	subs   map[Flag][]*subscription
}

type subscription struct {
	fn func(bool)
}

// NewProvider establishes each channel from set, falling back to defaults.
func NewProvider(set Set) *Provider {

	pvd := &Provider{
		values: map[Flag]bool{},
		subs:   map[Flag][]*subscription{},
	}

	for _, flag := range Flags {
		value, ok := set.Lookup(flag)
		if !ok {
			value = Default(flag)
		}
		pvd.values[flag] = value
	}

	return pvd
}

// Value returns the broadcast value of flag.
func (pvd *Provider) Value(flag Flag) bool {
	return pvd.values[flag]
}

// Set changes the broadcast value of flag, notifying subscribers when it differs.
func (pvd *Provider) Set(flag Flag, value bool) (changed bool) {

	if pvd.values[flag] == value {
		return false
	}
	pvd.values[flag] = value

	for _, sub := range slices.Clone(pvd.subs[flag]) {
		sub.fn(value)
	}
	return true
}

// Subscribe calls fn whenever the value of flag changes.
func (pvd *Provider) Subscribe(flag Flag, fn func(bool)) (cancel func()) {

	sub := &subscription{fn: fn}
	pvd.subs[flag] = append(pvd.subs[flag], sub)

	return func() {
		pvd.subs[flag] = slices.DeleteFunc(pvd.subs[flag], func(other *subscription) bool {
			return other == sub
		})
	}
}

// Subscribers returns the number of subscriptions on flag.
func (pvd *Provider) Subscribers(flag Flag) int {
	return len(pvd.subs[flag])
}

// Resolver resolves a column's effective capabilities.
type Resolver struct {
	Override Set
	Parent   Reader
}

// Effective returns the override if set, else the parent's value, else the default.
func (rsv Resolver) Effective(flag Flag) bool {

	if value, ok := rsv.Override.Lookup(flag); ok {
		return value
	}
	if rsv.Parent != nil {
		return rsv.Parent.Value(flag)
	}
	return Default(flag)
}
