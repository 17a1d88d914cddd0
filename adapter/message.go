package adapter

import (
	nt "datalist/entity"
)

// AdapterMsg is a marker interface for messages destined for the Adapter.
type AdapterMsg interface {
	isAdapterMsg()
}

func (SizeMsg) isAdapterMsg()    {}
func (ModeMsg) isAdapterMsg()    {}
func (ColumnsMsg) isAdapterMsg() {}
func (PageMsg) isAdapterMsg()    {}

// SizeMsg tells the adapter its display size.
type SizeMsg struct {
	Width  int
	Height int
}

// ModeMsg assigns the display mode.
type ModeMsg struct {
	Mode string
}

// ColumnsMsg assigns the column descriptors, optionally with the mode.
type ColumnsMsg struct {
	Columns []nt.Column
	Mode    *string
}

// PageMsg assigns a page of records and its position in one batch.
type PageMsg struct {
	Records []nt.Record
	Limit   int
	Page    int
	Total   int
}
