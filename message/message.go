package message

import nt "datalist/entity"

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// GetPageMsg signals to load a page of records
type GetPageMsg struct {
	Limit int
	Page  int
}

// SortMsg signals that records should be ordered by Sorts
type SortMsg struct {
	Sorts []nt.Sort
}
