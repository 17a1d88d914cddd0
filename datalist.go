// Package datalist hosts the column adapter in a terminal app backed by a
// paging record store.
package datalist

import (
	"context"

	nt "datalist/entity"
)

// Store specifies a backing source of record pages.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// SetSorts orders subsequent pages
	SetSorts(sorts []nt.Sort) (err error)
	// GetPage of records, page is 1-based
	GetPage(ctx context.Context, limit, page int) (records []nt.Record, total int, err error)
}
