package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {

	pvd := NewProvider(Set{})

	assert.False(t, pvd.Value(Editable))
	assert.False(t, pvd.Value(Filterable))
	assert.False(t, pvd.Value(Sortable))
	assert.True(t, pvd.Value(Hideable))
	assert.True(t, pvd.Value(Resizable))
}

func TestProviderSetNotifiesOnChange(t *testing.T) {

	pvd := NewProvider(Set{Sortable: Bool(true)})

	var got []bool
	cancel := pvd.Subscribe(Sortable, func(value bool) {
		got = append(got, value)
	})

	assert.False(t, pvd.Set(Sortable, true))
	assert.True(t, pvd.Set(Sortable, false))
	assert.True(t, pvd.Set(Sortable, true))
	assert.Equal(t, []bool{false, true}, got)

	cancel()
	assert.Equal(t, 0, pvd.Subscribers(Sortable))

	pvd.Set(Sortable, false)
	assert.Equal(t, []bool{false, true}, got)
}

func TestResolver(t *testing.T) {

	pvd := NewProvider(Set{Resizable: Bool(false)})

	inherit := Resolver{Parent: pvd}
	override := Resolver{Override: Set{Resizable: Bool(true)}, Parent: pvd}
	orphan := Resolver{}

	assert.False(t, inherit.Effective(Resizable))
	assert.True(t, override.Effective(Resizable))
	assert.True(t, orphan.Effective(Resizable))

	pvd.Set(Resizable, true)
	assert.True(t, inherit.Effective(Resizable))

	pvd.Set(Resizable, false)
	assert.False(t, inherit.Effective(Resizable))
	assert.True(t, override.Effective(Resizable))
}

func TestSetWithAndLookup(t *testing.T) {

	set := Set{}.With(Editable, true).With(Hideable, false)

	value, ok := set.Lookup(Editable)
	assert.True(t, ok)
	assert.True(t, value)

	value, ok = set.Lookup(Hideable)
	assert.True(t, ok)
	assert.False(t, value)

	_, ok = set.Lookup(Sortable)
	assert.False(t, ok)
}

func TestSetYaml(t *testing.T) {

	var set Set
	err := yaml.Unmarshal([]byte("sortable: true\nresizable: false\n"), &set)
	assert.NoError(t, err)

	value, ok := set.Lookup(Sortable)
	assert.True(t, ok && value)
	value, ok = set.Lookup(Resizable)
	assert.True(t, ok && !value)
	_, ok = set.Lookup(Editable)
	assert.False(t, ok)
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "resizable", Resizable.String())
	assert.Equal(t, "unknown", Flag(42).String())
}
