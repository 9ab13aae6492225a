package entity

import "datagrid/capability"

// Align is the horizontal alignment of a column's header and cells.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Column describes one column of a grid.
// Zero valued pixel hints are treated as absent.
type Column struct {
	Field       string  `yaml:"field" toml:"field"`
	Label       string  `yaml:"label" toml:"label,omitempty"`
	Align       Align   `yaml:"align,omitempty" toml:"align,omitempty"`
	Description string  `yaml:"description,omitempty" toml:"description,omitempty"`
	Width       float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	MinWidth    float64 `yaml:"min_width,omitempty" toml:"min_width,omitempty"`
	MaxWidth    float64 `yaml:"max_width,omitempty" toml:"max_width,omitempty"`

	// Overrides of the grid level capabilities, nil means inherit
	capability.Set `yaml:",inline"`

	// Render formats a cell, resolved in code only
	Render func(Row) string `yaml:"-" toml:"-"`
}

// Title returns the label, falling back to the field name.
func (col Column) Title() string {
	if col.Label != "" {
		return col.Label
	}
	return col.Field
}
