package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "datalist/entity"
)

const itemsYaml = `
mode: edit
columns:
  - name: id
    gridWidth: 80
    gridAlign: left
    term: ID
    colType: string
    sortRank: 1
    descending: true
  - name: owner
    gridWidth: 120
    gridAlign: center
    term: Owner
    colType: string
    refType: Entity
  - name: qty
    gridWidth: 60
    gridAlign: right
    term: Qty
    colType: number
    sortRank: 0.5
`

func TestLoad(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(itemsYaml), 0644))

	layout, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "edit", layout.Mode)
	assert.Equal(t, 20, layout.Limit)
	assert.Equal(t, []nt.Column{
		{Name: "id", GridWidth: 80, GridAlign: nt.Left, Term: "ID", ColType: "string", SortRank: 1, Descending: true},
		{Name: "owner", GridWidth: 120, GridAlign: nt.Center, Term: "Owner", ColType: "string", RefType: "Entity"},
		{Name: "qty", GridWidth: 60, GridAlign: nt.Right, Term: "Qty", ColType: "number", SortRank: 0.5},
	}, layout.Columns)

	assert.True(t, layout.Columns[0].Sorted())
	assert.False(t, layout.Columns[1].Sorted())
	assert.True(t, layout.Columns[2].Sorted())
}

func TestLoadErrors(t *testing.T) {

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read layout")

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: {nope"), 0644))

	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to unmarshal layout")
}

func TestSampleRoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")

	require.NoError(t, Default().Sample(path, 0644))

	layout, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), layout)

	err = Default().Sample(path, 0644)
	assert.ErrorContains(t, err, "refusing to overwrite")
}
