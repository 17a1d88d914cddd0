// Package grid is a terminal grid widget driven by a column configuration
// and a page of records.
package grid

import (
	"maps"
	"slices"

	"github.com/goccy/go-json"

	"datalist/entity"
)

const (
	// GutterType marks structural columns not backed by record data.
	GutterType = "gutter"
	// ObjectType is the column type for references to other entities.
	ObjectType = "object"

	SequenceGutter = "sequence"
	SelectorGutter = "row-selector"
	ButtonGutter   = "button"
)

// Events dispatched by the widget.
const (
	EventSortersChanged = "sorters-changed"
	EventPageChanged    = "page-changed"
	EventRecordEdit     = "record-edit"
)

// PageSizes are the page sizes offered by the pager.
var PageSizes = []int{20, 30, 50, 100, 200}

// Config is the full configuration of the widget.
type Config struct {
	Columns    []Column   `json:"columns"`
	Pagination Pagination `json:"pagination"`
	Sorters    []Sorter   `json:"sorters"`
}

// Column is either a gutter or a data column.
type Column struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Icon      string      `json:"icon,omitempty"`
	Hidden    bool        `json:"hidden"`
	Width     int         `json:"width,omitempty"`
	Resizable bool        `json:"resizable"`
	Sortable  bool        `json:"sortable"`
	Header    string      `json:"header,omitempty"`
	Record    *RecordSpec `json:"record,omitempty"`
}

// IsGutter reports whether the column is structural.
func (col Column) IsGutter() bool {
	return col.Type == GutterType
}

type gutterJson struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type columnJson Column

// MarshalJSON writes gutters with only their type, name and icon.
func (col Column) MarshalJSON() ([]byte, error) {

	if col.IsGutter() {
		return json.Marshal(gutterJson{
			Type: col.Type,
			Name: col.Name,
			Icon: col.Icon,
		})
	}
	return json.Marshal(columnJson(col))
}

// RecordSpec holds per-cell presentation of a column.
type RecordSpec struct {
	Align entity.Align `json:"align"`
}

// Pagination configures the pager.
type Pagination struct {
	Pages    []int `json:"pages"`
	Infinite bool  `json:"infinite"`
}

// Clone returns a copy sharing nothing with cfg.
func (cfg Config) Clone() Config {

	columns := slices.Clone(cfg.Columns)
	for i, col := range columns {
		if col.Record != nil {
			record := *col.Record
			columns[i].Record = &record
		}
	}

	return Config{
		Columns: columns,
		Pagination: Pagination{
			Pages:    slices.Clone(cfg.Pagination.Pages),
			Infinite: cfg.Pagination.Infinite,
		},
		Sorters: slices.Clone(cfg.Sorters),
	}
}

// Sorter is a sort directive as configured on the widget.
type Sorter struct {
	Name        string `json:"name"`
	ReverseSort bool   `json:"reverseSort"`
}

// SortChange is a sort directive as reported by the widget's sort event.
type SortChange struct {
	Name       string `json:"name"`
	Descending bool   `json:"descending"`
}

// PageChange is the payload of a page-changed event.
type PageChange struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// RecordEdit is the payload of a record-edit event.
type RecordEdit struct {
	Row    int           `json:"row"`
	Record entity.Record `json:"record"`
}

// Data is a page of records with its position.
type Data struct {
	Records []entity.Record `json:"records"`
	Limit   int             `json:"limit"`
	Page    int             `json:"page"`
	Total   int             `json:"total"`
}

// Clone returns a copy sharing nothing with data.
func (data Data) Clone() Data {

	records := slices.Clone(data.Records)
	for i, rec := range records {
		records[i] = maps.Clone(rec)
	}

	data.Records = records
	return data
}

// Gutters returns the structural columns leading every configuration.
func Gutters() []Column {
	return []Column{
		{Type: GutterType, Name: SequenceGutter},
		{Type: GutterType, Name: SelectorGutter},
		{Type: GutterType, Name: ButtonGutter, Icon: "edit"},
	}
}

// DefaultPagination returns the fixed pager settings.
func DefaultPagination() Pagination {
	pages := make([]int, len(PageSizes))
	copy(pages, PageSizes)

	return Pagination{
		Pages:    pages,
		Infinite: false,
	}
}
