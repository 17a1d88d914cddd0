// Package layout loads the yaml file describing a data list.
package layout

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "datalist/entity"
	"datalist/grid"
)

// Layout is the host-side description of a data list.
type Layout struct {
	Mode    string      `yaml:"mode,omitempty"`
	Limit   int         `yaml:"limit,omitempty"`
	Columns []nt.Column `yaml:"columns"`
}

// Load reads a layout from path.
func Load(path string) (layout *Layout, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read layout from %s", path)
		return
	}

	layout = &Layout{}
	err = yaml.Unmarshal(data, layout)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal layout from %s", path)
		return
	}

	if layout.Limit == 0 {
		layout.Limit = grid.PageSizes[0]
	}
	return
}

// Write saves a layout to path.
func (layout *Layout) Write(path string, mode os.FileMode) (err error) {

	data, err := yaml.Marshal(layout)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal layout")
		return
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// Sample writes layout to path unless a file is already there.
func (layout *Layout) Sample(path string, mode os.FileMode) (err error) {

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("refusing to overwrite %s", path)
		return
	}

	err = layout.Write(path, mode)
	return
}

// Default is a layout for the sample records shipped with the tool.
func Default() *Layout {
	return &Layout{
		Mode:  "list",
		Limit: grid.PageSizes[0],
		Columns: []nt.Column{
			{Name: "id", GridWidth: 80, GridAlign: nt.Left, Term: "ID", ColType: "string", SortRank: 1},
			{Name: "name", GridWidth: 160, GridAlign: nt.Left, Term: "Name", ColType: "string"},
			{Name: "qty", GridWidth: 64, GridAlign: nt.Right, Term: "Qty", ColType: "number"},
			{Name: "owner", GridWidth: 120, GridAlign: nt.Left, Term: "Owner", ColType: "string", RefType: "Entity"},
			{Name: "updated_at", GridWidth: 160, GridAlign: nt.Center, Term: "Updated", ColType: "datetime"},
		},
	}
}
