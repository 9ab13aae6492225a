package track

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {

	assert.Equal(t, "auto", Format(nil))
	assert.Equal(t, "minmax(20%, auto)", Format([]float64{20}))
	assert.Equal(t,
		"minmax(24%, auto) minmax(12.5%, auto) minmax(33.333333333333336%, auto)",
		Format([]float64{24, 12.5, 100.0 / 3}),
	)
}

func TestParseRoundTrip(t *testing.T) {

	widths := []float64{24, 12.5, 100.0 / 3, 0}

	tracks, err := Parse(Format(widths))
	require.NoError(t, err)
	require.Len(t, tracks, len(widths))

	for i, trk := range tracks {
		assert.False(t, trk.Auto)
		assert.Equal(t, widths[i], trk.Percent)
	}
}

func TestParseAuto(t *testing.T) {

	tracks, err := Parse("auto minmax(auto, auto) minmax(10%, auto)")
	require.NoError(t, err)
	assert.Equal(t, []Track{{Auto: true}, {Auto: true}, {Percent: 10}}, tracks)
}

func TestParseErrors(t *testing.T) {

	for _, decl := range []string{
		"minmax(10%, auto",
		"minmax(10%)",
		"minmax(10%, 20%)",
		"minmax(10px, auto)",
		"minmax(ten%, auto)",
		"1fr",
	} {
		t.Run(decl, func(t *testing.T) {
			_, err := Parse(decl)
			assert.True(t, errors.Is(err, ErrDeclaration), "got %v", err)
		})
	}
}

func TestResolve(t *testing.T) {

	t.Run("free space shared", func(t *testing.T) {
		sizes := Resolve([]Track{{Percent: 20}, {Percent: 30}}, 100)
		assert.Equal(t, []float64{45, 55}, sizes)
	})

	t.Run("overflow keeps floors", func(t *testing.T) {
		sizes := Resolve([]Track{{Percent: 80}, {Percent: 40}}, 100)
		assert.Equal(t, []float64{80, 40}, sizes)
	})

	t.Run("auto tracks", func(t *testing.T) {
		sizes := Resolve([]Track{{Auto: true}, {Auto: true}}, 90)
		assert.Equal(t, []float64{45, 45}, sizes)
	})

	t.Run("no width", func(t *testing.T) {
		sizes := Resolve([]Track{{Percent: 20}}, 0)
		assert.Equal(t, []float64{0}, sizes)
	})
}

func TestCells(t *testing.T) {

	assert.Equal(t, []int{3, 3, 4}, Cells([]float64{10.0 / 3, 10.0 / 3, 10.0 / 3}))
	assert.Equal(t, []int{45, 55}, Cells([]float64{45, 55}))
	assert.Equal(t, []int{}, Cells(nil))
}
