// Package track formats, parses and resolves column track-sizing declarations.
//
// A declaration lists one track per column, each "minmax(<p>%, auto)", joined by
// spaces, or the single keyword "auto".
package track

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Property is the custom property that carries the declaration.
const Property = "--grid-template-columns"

// Initial is the declaration in effect before any widths are known.
const Initial = "auto"

// ErrDeclaration is returned for declarations that cannot be parsed.
var ErrDeclaration = errors.New("malformed track declaration")

// Track is one column track.
// An Auto track has no percentage floor.
type Track struct {
	Percent float64
	Auto    bool
}

// Format renders widths as a declaration.
func Format(widths []float64) string {

	if len(widths) == 0 {
		return Initial
	}

	tracks := make([]string, len(widths))
	for i, width := range widths {
		tracks[i] = "minmax(" + strconv.FormatFloat(width, 'f', -1, 64) + "%, auto)"
	}
	return strings.Join(tracks, " ")
}

// Parse reads a declaration produced by Format or a bare list of auto tracks.
func Parse(decl string) (tracks []Track, err error) {

	rest := strings.TrimSpace(decl)
	for rest != "" {
		var trk Track

		switch {
		case strings.HasPrefix(rest, "auto"):
			trk = Track{Auto: true}
			rest = rest[len("auto"):]

		case strings.HasPrefix(rest, "minmax("):
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				err = errors.Wrapf(ErrDeclaration, "unclosed minmax in %q", decl)
				return
			}
			trk, err = parseMinmax(rest[len("minmax("):end])
			if err != nil {
				err = errors.Wrapf(err, "failed to parse %q", decl)
				return
			}
			rest = rest[end+1:]

		default:
			err = errors.Wrapf(ErrDeclaration, "unexpected %q", rest)
			return
		}

		tracks = append(tracks, trk)
		rest = strings.TrimLeft(rest, " ")
	}

	return
}

// Resolve sizes tracks against width.
// Each track gets its percentage floor and the auto maxima share what is left
// equally. When the floors overflow width they are kept as is.
func Resolve(tracks []Track, width float64) []float64 {

	sizes := make([]float64, len(tracks))
	if len(tracks) == 0 || width <= 0 {
		return sizes
	}

	used := 0.0
	for i, trk := range tracks {
		if trk.Auto {
			continue
		}
		sizes[i] = trk.Percent * width / 100
		used += sizes[i]
	}

	free := width - used
	if free <= 0 {
		return sizes
	}

	share := free / float64(len(tracks))
	for i := range sizes {
		sizes[i] += share
	}
	return sizes
}

// Cells rounds resolved sizes to whole cells, carrying remainders forward so the
// cells add up to the floor of the total.
func Cells(sizes []float64) []int {

	cells := make([]int, len(sizes))

	sum := 0.0
	prev := 0
	for i, size := range sizes {
		sum += size
		edge := int(math.Floor(sum + 1e-9))
		cells[i] = edge - prev
		prev = edge
	}
	return cells
}

// unexported

func parseMinmax(inner string) (trk Track, err error) {

	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		err = errors.Wrapf(ErrDeclaration, "minmax needs two arguments, got %q", inner)
		return
	}

	lo := strings.TrimSpace(parts[0])
	hi := strings.TrimSpace(parts[1])
	if hi != "auto" {
		err = errors.Wrapf(ErrDeclaration, "unsupported maximum %q", hi)
		return
	}

	if lo == "auto" {
		trk.Auto = true
		return
	}

	if !strings.HasSuffix(lo, "%") {
		err = errors.Wrapf(ErrDeclaration, "minimum %q is not a percentage", lo)
		return
	}

	trk.Percent, err = strconv.ParseFloat(strings.TrimSuffix(lo, "%"), 64)
	if err != nil {
		err = errors.Wrapf(ErrDeclaration, "minimum %q: %s", lo, err)
	}
	return
}
