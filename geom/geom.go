// Package geom converts pixel measurements into percentages of a reference width.
package geom

import "math"

// PercentOfWidth returns pixels as a percentage of width.
// An absent (NaN) input, a zero width or a non-finite result yields 0.
func PercentOfWidth(pixels, width float64) float64 {

	if math.IsNaN(pixels) || math.IsNaN(width) || width == 0 {
		return 0
	}

	pct := (pixels / width) * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return pct
}

// Absent stands in for an undefined measurement.
var Absent = math.NaN()
