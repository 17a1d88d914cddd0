package entity

import "strings"

// Align is the horizontal alignment of a column's cells.
type Align string

const (
	Left   Align = "left"
	Center Align = "center"
	Right  Align = "right"
)

// Column describes one data column of a resource entity.
type Column struct {
	Name      string  `yaml:"name" json:"name"`
	GridWidth int     `yaml:"gridWidth" json:"gridWidth"`
	GridAlign Align   `yaml:"gridAlign" json:"gridAlign"`
	Term      string  `yaml:"term" json:"term"`
	ColType   string  `yaml:"colType" json:"colType"`
	RefType   string  `yaml:"refType,omitempty" json:"refType,omitempty"`
	SortRank  float64 `yaml:"sortRank,omitempty" json:"sortRank,omitempty"`

	// Descending sets the direction of the default sort, ascending when unset.
	Descending bool `yaml:"descending,omitempty" json:"descending,omitempty"`
}

// Sorted reports whether the column takes part in default sorting, any
// non-zero rank counts.
func (col Column) Sorted() bool {
	return col.SortRank != 0
}

// IsReference reports whether the column points at another entity or menu.
func (col Column) IsReference() bool {
	ref := strings.ToLower(col.RefType)
	return ref == "entity" || ref == "menu"
}

// Sort orders records by one field.
type Sort struct {
	Field string
	Desc  bool
}
