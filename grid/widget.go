package grid

import (
	"context"
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"datalist/entity"
	"datalist/event"
	"datalist/style"
)

const (
	headerHeight  = 2 // Header row + separator line
	pagerHeight   = 1
	pixelsPerChar = 8
	minCellWidth  = 4

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Widget renders a page of records according to a Config and reports
// sort, page and edit requests as events on its Target.
type Widget struct {
	mode   string
	config Config
	data   Data

	sorters  []SortChange
	selected map[int]bool

	row    int // Cursor row within the page
	col    int // Cursor index into data columns
	offset int // First row shown

	width  int
	height int

	target *event.Target
	table  *table.Table

	ctx    context.Context
	logger entity.Logger
}

// New creates an empty widget.
func New(ctx context.Context, lgr entity.Logger) *Widget {

	tbl := table.New()
	style.StyleTable(tbl)

	return &Widget{
		selected: map[int]bool{},
		target:   event.NewTarget("grid", nil),
		table:    tbl,
		ctx:      ctx,
		logger:   lgr,
	}
}

// Target returns the widget's event target.
func (wgt *Widget) Target() *event.Target {
	return wgt.target
}

// SetMode sets the display mode.
func (wgt *Widget) SetMode(mode string) {
	wgt.mode = mode
}

// SetConfig replaces the configuration, sort state follows its sorters.
func (wgt *Widget) SetConfig(cfg Config) {

	wgt.config = cfg

	wgt.sorters = make([]SortChange, len(cfg.Sorters))
	for i, sorter := range cfg.Sorters {
		wgt.sorters[i] = SortChange{
			Name:       sorter.Name,
			Descending: sorter.ReverseSort,
		}
	}

	wgt.col = clamp(wgt.col, len(wgt.dataColumns()))
}

// SetData replaces the page shown.
func (wgt *Widget) SetData(data Data) {

	wgt.data = data
	wgt.selected = map[int]bool{}
	wgt.row = clamp(wgt.row, len(data.Records))
	wgt.scroll()
}

// Mode returns the display mode.
func (wgt *Widget) Mode() string {
	return wgt.mode
}

// Config returns a copy of the current configuration.
func (wgt *Widget) Config() Config {
	return wgt.config.Clone()
}

// Data returns a copy of the current page.
func (wgt *Widget) Data() Data {
	return wgt.data.Clone()
}

// Sorters returns the widget's current sort state.
func (wgt *Widget) Sorters() []SortChange {
	return wgt.sorters
}

// Selected returns the page rows marked by the row selector, in order.
func (wgt *Widget) Selected() (rows []int) {
	for i := range wgt.data.Records {
		if wgt.selected[i] {
			rows = append(rows, i)
		}
	}
	return
}

// Update handles sizing and keys.
func (wgt *Widget) Update(msg tea.Msg) (*Widget, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		wgt.width = msg.Width
		wgt.height = msg.Height
		wgt.scroll()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if wgt.row > 0 {
				wgt.row--
			}

		case "down", "j":
			if wgt.row < len(wgt.data.Records)-1 {
				wgt.row++
			}

		case "left", "h":
			if wgt.col > 0 {
				wgt.col--
			}

		case "right", "l":
			if wgt.col < len(wgt.dataColumns())-1 {
				wgt.col++
			}

		case "space":
			if wgt.row < len(wgt.data.Records) {
				wgt.selected[wgt.row] = !wgt.selected[wgt.row]
			}

		case "s":
			return wgt, wgt.toggleSort()

		case "S":
			if len(wgt.sorters) == 0 {
				return wgt, nil
			}
			wgt.sorters = []SortChange{}
			return wgt, wgt.dispatchSorters()

		case "e", "enter":
			if wgt.row >= len(wgt.data.Records) {
				return wgt, nil
			}
			return wgt, wgt.target.Dispatch(event.NewBubbling(EventRecordEdit, RecordEdit{
				Row:    wgt.row,
				Record: wgt.data.Records[wgt.row],
			}))

		case "n", "pgdown":
			if wgt.data.Page < wgt.lastPage() {
				return wgt, wgt.dispatchPage(wgt.data.Page+1, wgt.data.Limit)
			}

		case "p", "pgup":
			if wgt.data.Page > 1 {
				return wgt, wgt.dispatchPage(wgt.data.Page-1, wgt.data.Limit)
			}

		case "+":
			if limit, ok := wgt.nextLimit(1); ok {
				return wgt, wgt.dispatchPage(1, limit)
			}

		case "-":
			if limit, ok := wgt.nextLimit(-1); ok {
				return wgt, wgt.dispatchPage(1, limit)
			}
		}
		wgt.scroll()
	}

	return wgt, nil
}

// Render renders the widget at its current size.
func (wgt *Widget) Render() string {

	columns := wgt.visibleColumns()
	if len(columns) == 0 {
		return ""
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = wgt.header(col)
	}
	wgt.table.Headers(headers...)

	cursorCol := -1
	dataIdx := 0
	for i, col := range columns {
		if col.IsGutter() {
			continue
		}
		if dataIdx == wgt.col {
			cursorCol = i
		}
		dataIdx++
	}
	wgt.table.StyleFunc(cellStyler(columns, wgt.row-wgt.offset, cursorCol))

	wgt.table.ClearRows()
	end := min(wgt.offset+wgt.pageRows(), len(wgt.data.Records))
	for i := wgt.offset; i < end; i++ {
		wgt.table.Row(wgt.cells(columns, i)...)
	}

	if wgt.width > 0 {
		wgt.table.Width(wgt.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, wgt.table.String(), wgt.pager())
}

// unexported

func (wgt *Widget) toggleSort() tea.Cmd {

	cols := wgt.dataColumns()
	if wgt.col >= len(cols) || !cols[wgt.col].Sortable {
		return nil
	}
	name := cols[wgt.col].Name

	// unsorted -> ascending -> descending -> unsorted
	for i, sorter := range wgt.sorters {
		if sorter.Name != name {
			continue
		}
		if sorter.Descending {
			wgt.sorters = append(wgt.sorters[:i:i], wgt.sorters[i+1:]...)
		} else {
			wgt.sorters[i].Descending = true
		}
		return wgt.dispatchSorters()
	}

	wgt.sorters = append(wgt.sorters, SortChange{Name: name})
	return wgt.dispatchSorters()
}

func (wgt *Widget) dispatchSorters() tea.Cmd {

	detail := make([]SortChange, len(wgt.sorters))
	copy(detail, wgt.sorters)

	wgt.logger.Debug(wgt.ctx, "sorters changed", "sorters", detail)
	return wgt.target.Dispatch(event.NewBubbling(EventSortersChanged, detail))
}

func (wgt *Widget) dispatchPage(page, limit int) tea.Cmd {
	return wgt.target.Dispatch(event.NewBubbling(EventPageChanged, PageChange{
		Page:  page,
		Limit: limit,
	}))
}

func (wgt *Widget) nextLimit(step int) (limit int, ok bool) {

	pages := wgt.config.Pagination.Pages
	for i, size := range pages {
		if size != wgt.data.Limit {
			continue
		}
		next := i + step
		if next < 0 || next >= len(pages) {
			return
		}
		return pages[next], true
	}

	if len(pages) > 0 {
		return pages[0], true
	}
	return
}

func (wgt *Widget) lastPage() int {
	if wgt.data.Limit <= 0 {
		return 1
	}
	return max(1, (wgt.data.Total+wgt.data.Limit-1)/wgt.data.Limit)
}

func (wgt *Widget) pageRows() int {
	if wgt.height == 0 {
		return max(1, len(wgt.data.Records))
	}
	return max(1, wgt.height-headerHeight-pagerHeight)
}

// scroll keeps the cursor row visible
func (wgt *Widget) scroll() {

	rows := wgt.pageRows()
	if wgt.row < wgt.offset {
		wgt.offset = wgt.row
	} else if wgt.row >= wgt.offset+rows {
		wgt.offset = wgt.row - rows + 1
	}
	if wgt.offset < 0 {
		wgt.offset = 0
	}
}

func (wgt *Widget) visibleColumns() (cols []Column) {
	for _, col := range wgt.config.Columns {
		if !col.Hidden {
			cols = append(cols, col)
		}
	}
	return
}

func (wgt *Widget) dataColumns() (cols []Column) {
	for _, col := range wgt.visibleColumns() {
		if !col.IsGutter() {
			cols = append(cols, col)
		}
	}
	return
}

func (wgt *Widget) header(col Column) string {

	if col.IsGutter() {
		if cell := wgt.gutter(col); cell != nil {
			return cell.Header()
		}
		return " "
	}

	label := col.Header
	if label == "" {
		label = col.Name
	}

	for i, sorter := range wgt.sorters {
		if sorter.Name != col.Name {
			continue
		}
		arrow := "▲"
		if sorter.Descending {
			arrow = "▼"
		}
		if len(wgt.sorters) > 1 {
			arrow = fmt.Sprintf("%s%d", arrow, i+1)
		}
		label = label + " " + arrow
	}

	return fmt.Sprintf("%-*s", cellWidth(col), label)
}

func (wgt *Widget) cells(columns []Column, idx int) []string {

	rec := wgt.data.Records[idx]
	cells := make([]string, len(columns))

	for i, col := range columns {
		if !col.IsGutter() {
			cells[i] = truncate(format(col, rec.Value(col.Name)), cellWidth(col))
			continue
		}
		if cell := wgt.gutter(col); cell != nil {
			cells[i] = cell.Render(idx)
		}
	}

	return cells
}

func (wgt *Widget) pager() string {

	info := fmt.Sprintf("page %d/%d · %d per page · %d records",
		max(wgt.data.Page, 1), wgt.lastPage(), wgt.data.Limit, wgt.data.Total)
	if wgt.mode != "" {
		info = wgt.mode + " · " + info
	}

	return style.MutedStyle.Render(info)
}

// help

func cellStyler(columns []Column, cursorRow, cursorCol int) func(row, col int) lipgloss.Style {

	base := style.CellStyler(cursorRow, cursorCol)

	return func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return style.HeaderStyle
		}
		st := base(row, col)
		if col < len(columns) && columns[col].Record != nil {
			st = st.Align(style.Position(columns[col].Record.Align))
		}
		return st.PaddingRight(1)
	}
}

// format renders a value by column type, falling back to its plain form
// when the value does not hold the expected type
func format(col Column, val entity.Value) string {

	switch col.Type {
	case "number", "integer":
		if i, err := val.Int(); err == nil {
			return strconv.Itoa(i)
		}
		if f, err := val.Float(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}

	case "date":
		if t, err := val.Time(); err == nil {
			return t.Format(dateLayout)
		}

	case "datetime":
		if t, err := val.Time(); err == nil {
			return t.Format(dateTimeLayout)
		}

	case "boolean":
		if b, err := val.Bool(); err == nil {
			if b {
				return "✓"
			}
			return "✗"
		}
	}

	return val.String()
}

func cellWidth(col Column) int {
	if col.IsGutter() {
		return 0
	}
	return max(col.Width/pixelsPerChar, minCellWidth)
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if width <= 0 || len(runes) <= width {
		return in
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}

func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
