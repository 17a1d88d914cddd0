package adapter

import (
	nt "datalist/entity"
	"datalist/grid"
)

// BuildConfig derives the grid configuration from column descriptors.
// Gutters lead, followed by one column per descriptor in order.
func BuildConfig(columns []nt.Column) grid.Config {

	derived := make([]grid.Column, len(columns))
	for i, col := range columns {
		derived[i] = buildColumn(col)
	}

	sorted := []nt.Column{}
	for _, col := range columns {
		if col.Sorted() {
			sorted = append(sorted, col)
		}
	}

	return grid.Config{
		Columns:    append(grid.Gutters(), derived...),
		Pagination: grid.DefaultPagination(),
		Sorters:    SortersFromColumns(sorted),
	}
}

// SortersFromColumns converts descriptors to sorters, ascending unless the
// descriptor says descending.
func SortersFromColumns(columns []nt.Column) []grid.Sorter {

	sorters := make([]grid.Sorter, len(columns))
	for i, col := range columns {
		sorters[i] = grid.Sorter{
			Name:        col.Name,
			ReverseSort: col.Descending,
		}
	}
	return sorters
}

// SortersFromWidget converts the widget's sort event payload to sorters.
func SortersFromWidget(changes []grid.SortChange) []grid.Sorter {

	sorters := make([]grid.Sorter, len(changes))
	for i, change := range changes {
		sorters[i] = grid.Sorter{
			Name:        change.Name,
			ReverseSort: change.Descending,
		}
	}
	return sorters
}

func buildColumn(col nt.Column) grid.Column {

	typ := col.ColType
	if col.IsReference() {
		typ = grid.ObjectType
	}

	return grid.Column{
		Name:      col.Name,
		Type:      typ,
		Hidden:    false,
		Width:     col.GridWidth,
		Resizable: true,
		Sortable:  true,
		Header:    col.Term,
		Record: &grid.RecordSpec{
			Align: col.GridAlign,
		},
	}
}
