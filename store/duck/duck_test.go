package duck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "datalist/entity"
	"datalist/logger"
)

const itemsJson = `{"id":"A","qty":3,"name":"anvil"}
{"id":"B","qty":1,"name":"bolt"}
{"id":"C","qty":2,"name":"cog"}
`

func loaded(t *testing.T) *Duck {
	t.Helper()

	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(itemsJson), 0644))

	dk, err := New(logger.Nop())
	require.NoError(t, err)
	t.Cleanup(dk.Close)

	require.NoError(t, dk.Load(context.Background(), path))
	return dk
}

func ids(records []nt.Record) (out []string) {
	for _, rec := range records {
		out = append(out, rec.Value("id").String())
	}
	return
}

func TestLoadFields(t *testing.T) {

	dk := loaded(t)

	names := []string{}
	for _, field := range dk.Fields() {
		names = append(names, field.Name)
	}
	assert.Equal(t, []string{"id", "qty", "name"}, names)

	columns := dk.Columns()
	require.Len(t, columns, 3)
	assert.Equal(t, "string", columns[0].ColType)
	assert.Equal(t, "number", columns[1].ColType)
	assert.Equal(t, nt.Right, columns[1].GridAlign)
}

func TestGetPage(t *testing.T) {

	dk := loaded(t)
	ctx := context.Background()

	records, total, err := dk.GetPage(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"A", "B"}, ids(records))

	records, _, err = dk.GetPage(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ids(records))

	records, _, err = dk.GetPage(ctx, 2, 3)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, _, err = dk.GetPage(ctx, 0, 1)
	assert.Error(t, err)
}

func TestSetSorts(t *testing.T) {

	dk := loaded(t)
	ctx := context.Background()

	require.NoError(t, dk.SetSorts([]nt.Sort{{Field: "qty", Desc: true}}))
	records, _, err := dk.GetPage(ctx, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, ids(records))

	require.NoError(t, dk.SetSorts([]nt.Sort{{Field: "name"}}))
	records, _, err = dk.GetPage(ctx, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(records))

	err = dk.SetSorts([]nt.Sort{{Field: "nope"}})
	assert.ErrorContains(t, err, "unknown field")
}

func TestDescribe(t *testing.T) {

	tests := []struct {
		duckType string
		colType  string
	}{
		{"BIGINT", "number"},
		{"DOUBLE", "number"},
		{"DECIMAL(10,2)", "number"},
		{"BOOLEAN", "boolean"},
		{"DATE", "date"},
		{"TIMESTAMP WITH TIME ZONE", "datetime"},
		{"STRUCT(name VARCHAR)", "object"},
		{"VARCHAR", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.duckType, func(t *testing.T) {
			colType, _ := describe(tt.duckType)
			assert.Equal(t, tt.colType, colType)
		})
	}
}
