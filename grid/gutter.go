package grid

import "fmt"

// gutterCell renders a structural column.
type gutterCell interface {
	Header() string
	Render(row int) string
}

// sequence numbers rows across pages
type sequence struct {
	first int
}

func (seq sequence) Header() string {
	return "#"
}

func (seq sequence) Render(row int) string {
	return fmt.Sprintf("%d", seq.first+row)
}

// checkbox marks selected rows
type checkbox struct {
	checked map[int]bool
}

func (cb checkbox) Header() string {
	return " "
}

func (cb checkbox) Render(row int) string {
	if cb.checked[row] {
		return "[x]"
	}
	return "[ ]"
}

// button shows an action icon on every row
type button struct {
	label string
}

func newButton(icon string) button {
	switch icon {
	case "edit":
		return button{label: "✎"}
	case "":
		return button{label: " "}
	default:
		return button{label: icon}
	}
}

func (btn button) Header() string {
	return " "
}

func (btn button) Render(row int) string {
	return btn.label
}

// gutter returns the renderer for a gutter column, nil for unknown gutters
func (wgt *Widget) gutter(col Column) gutterCell {

	switch col.Name {
	case SequenceGutter:
		page := max(wgt.data.Page, 1)
		return sequence{first: (page-1)*wgt.data.Limit + 1}
	case SelectorGutter:
		return checkbox{checked: wgt.selected}
	case ButtonGutter:
		return newButton(col.Icon)
	}
	return nil
}
