package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	nt "datalist/entity"
)

const table = "records"

// Field is a column of the loaded table.
type Field struct {
	Name string
	Type string
}

// Duck serves pages of records from an in-memory duckdb.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	sorts    []nt.Sort
	fields   []Field
	filename string
}

// New opens an in-memory duckdb, the driver must be registered by the caller.
func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		sorts:  []nt.Sort{},
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load newline delimited json records from a file
func (dk *Duck) Load(ctx context.Context, path string) (err error) {

	create := fmt.Sprintf(`
		CREATE OR REPLACE TABLE %s AS
		SELECT * FROM read_json_auto('%s', format='newline_delimited')
	`, table, strings.ReplaceAll(path, "'", "''"))

	_, err = dk.db.ExecContext(ctx, create)
	if err != nil {
		err = errors.Wrapf(err, "failed to load records from %s", path)
		return
	}

	dk.fields, err = getFields(ctx, dk.db)
	if err != nil {
		return
	}

	dk.filename = path
	dk.sorts = []nt.Sort{}
	dk.logger.Info(ctx, "loaded records", "path", path, "fields", len(dk.fields))
	return
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Fields returns the columns of the loaded table
func (dk *Duck) Fields() []Field {
	return dk.fields
}

// Columns suggests descriptors for the loaded table
func (dk *Duck) Columns() (columns []nt.Column) {

	for _, field := range dk.fields {
		colType, align := describe(field.Type)
		columns = append(columns, nt.Column{
			Name:      field.Name,
			GridWidth: 120,
			GridAlign: align,
			Term:      field.Name,
			ColType:   colType,
		})
	}
	return
}

// SetSorts sets the order of subsequent pages
func (dk *Duck) SetSorts(sorts []nt.Sort) (err error) {

	known := map[string]bool{}
	for _, field := range dk.fields {
		known[field.Name] = true
	}

	for _, sort := range sorts {
		if !known[sort.Field] {
			err = errors.Errorf("cannot sort by unknown field %q", sort.Field)
			return
		}
	}

	dk.sorts = sorts
	return
}

// GetPage of records, page is 1-based
func (dk *Duck) GetPage(ctx context.Context, limit, page int) (records []nt.Record, total int, err error) {

	if limit <= 0 {
		err = errors.Errorf("invalid page size %d", limit)
		return
	}
	if page < 1 {
		page = 1
	}

	err = dk.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&total)
	if err != nil {
		err = errors.Wrapf(err, "failed to count records")
		return
	}

	query := fmt.Sprintf("SELECT * FROM %s %s LIMIT %d OFFSET %d",
		table, dk.orderBy(), limit, (page-1)*limit)

	rows, err := dk.db.QueryContext(ctx, query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query records")
		return
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	records = []nt.Record{}
	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, len(names))
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		record := nt.Record{}
		for i, name := range names {
			record[name] = vals[i]
		}
		records = append(records, record)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func (dk *Duck) orderBy() string {

	if len(dk.sorts) == 0 {
		return ""
	}

	terms := make([]string, len(dk.sorts))
	for i, sort := range dk.sorts {
		dir := "ASC"
		if sort.Desc {
			dir = "DESC"
		}
		terms[i] = fmt.Sprintf("%s %s", quote(sort.Field), dir)
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func describe(duckType string) (colType string, align nt.Align) {

	switch {
	case strings.Contains(duckType, "INT"), duckType == "DOUBLE", duckType == "FLOAT",
		strings.HasPrefix(duckType, "DECIMAL"):
		return "number", nt.Right
	case duckType == "BOOLEAN":
		return "boolean", nt.Center
	case duckType == "DATE":
		return "date", nt.Center
	case strings.HasPrefix(duckType, "TIMESTAMP"):
		return "datetime", nt.Center
	case strings.HasPrefix(duckType, "STRUCT"), strings.HasPrefix(duckType, "MAP"):
		return "object", nt.Left
	default:
		return "string", nt.Left
	}
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func getFields(ctx context.Context, db *sql.DB) (fields []Field, err error) {

	rows, err := db.QueryContext(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position
	`, table)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field Field
		if err = rows.Scan(&field.Name, &field.Type); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating fields")
	return
}
