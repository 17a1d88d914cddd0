// Package adapter translates resource entity column descriptors into grid
// widget configuration and translates the widget's sort events back.
package adapter

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "datalist/entity"
	"datalist/event"
	"datalist/grid"
)

// EventSortersChanged is raised with a []grid.Sorter payload when the user
// changes sorting in the grid.
const EventSortersChanged = grid.EventSortersChanged

// Adapter owns the inputs supplied by a host and derives the widget's
// configuration and data from them.
type Adapter struct {
	mode    string
	columns []nt.Column
	records []nt.Record
	limit   int
	page    int
	total   int

	config grid.Config
	data   grid.Data

	pending Changes

	width  int
	height int

	widget *grid.Widget
	target *event.Target

	ctx    context.Context
	logger nt.Logger
}

// New creates an adapter rendering a fresh grid widget.
func New(ctx context.Context, lgr nt.Logger) *Adapter {

	adp := &Adapter{
		records: []nt.Record{},
		pending: Changes{},
		target:  event.NewTarget("adapter", nil),
		ctx:     ctx,
		logger:  lgr,
	}

	adp.widget = grid.New(ctx, lgr)
	adp.widget.Target().SetParent(adp.target)
	adp.widget.Target().On(grid.EventSortersChanged, adp.HandleSortersChanged)

	return adp
}

// Target returns the adapter's event target, listen here for sorters-changed
// and for widget events bubbling past the adapter.
func (adp *Adapter) Target() *event.Target {
	return adp.target
}

// On subscribes to events raised on or bubbling through the adapter.
func (adp *Adapter) On(typ string, listener event.Listener) {
	adp.target.On(typ, listener)
}

// Widget returns the rendered grid widget.
func (adp *Adapter) Widget() *grid.Widget {
	return adp.widget
}

// setters record the change for the next Flush

// SetMode assigns the display mode.
func (adp *Adapter) SetMode(mode string) {
	if mode != adp.mode {
		adp.mode = mode
		adp.pending[Mode] = true
	}
}

// SetColumns assigns the column descriptors.
func (adp *Adapter) SetColumns(columns []nt.Column) {
	adp.columns = columns
	adp.pending[Columns] = true
}

// SetRecords assigns the current page's records.
func (adp *Adapter) SetRecords(records []nt.Record) {
	adp.records = records
	adp.pending[Records] = true
}

// SetLimit assigns the page size.
func (adp *Adapter) SetLimit(limit int) {
	if limit != adp.limit {
		adp.limit = limit
		adp.pending[Limit] = true
	}
}

// SetPage assigns the current page index.
func (adp *Adapter) SetPage(page int) {
	if page != adp.page {
		adp.page = page
		adp.pending[Page] = true
	}
}

// SetTotal assigns the total record count across pages.
func (adp *Adapter) SetTotal(total int) {
	if total != adp.total {
		adp.total = total
		adp.pending[Total] = true
	}
}

// Flush applies the changes recorded by setters as one batch.
func (adp *Adapter) Flush() {

	if len(adp.pending) == 0 {
		return
	}

	changes := adp.pending
	adp.pending = Changes{}
	adp.Updated(changes)
}

// Updated derives config and data after a batch of input changes.
// A change of columns clears the records before data is derived so
// the widget never shows rows under a schema they were not fetched for.
func (adp *Adapter) Updated(changes Changes) {

	changes = changes.clone()
	adp.logger.Debug(adp.ctx, "adapter updated", "changes", changes.names())

	if changes.Has(Columns) {
		adp.records = []nt.Record{}
		changes[Records] = true
		adp.config = BuildConfig(adp.columns)
	}

	if changes.HasAny(Records, Page, Limit, Total) {
		adp.data = grid.Data{
			Records: adp.records,
			Limit:   adp.limit,
			Page:    adp.page,
			Total:   adp.total,
		}
	}

	adp.render(changes)
}

// Mode returns the display mode.
func (adp *Adapter) Mode() string {
	return adp.mode
}

// Columns returns the column descriptors.
func (adp *Adapter) Columns() []nt.Column {
	return adp.columns
}

// Records returns the current records.
func (adp *Adapter) Records() []nt.Record {
	return adp.records
}

// Config returns a copy of the derived grid configuration.
func (adp *Adapter) Config() grid.Config {
	return adp.config.Clone()
}

// Data returns a copy of the derived grid data.
func (adp *Adapter) Data() grid.Data {
	return adp.data.Clone()
}

// HandleSortersChanged intercepts the widget's native sort event and
// raises a translated one from the adapter in its place.
func (adp *Adapter) HandleSortersChanged(ev *event.Event) tea.Cmd {

	ev.StopPropagation()

	changes, _ := ev.Detail.([]grid.SortChange)
	sorters := SortersFromWidget(changes)

	adp.logger.Info(adp.ctx, "sorters changed", "sorters", sorters)
	return adp.target.Dispatch(event.New(EventSortersChanged, sorters))
}

// Update applies one batch per message and forwards the rest to the widget.
func (adp *Adapter) Update(msg tea.Msg) (*Adapter, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		adp.width = msg.Width
		adp.height = msg.Height
		var cmd tea.Cmd
		adp.widget, cmd = adp.widget.Update(grid.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height,
		})
		return adp, cmd

	case ModeMsg:
		adp.SetMode(msg.Mode)
		adp.Flush()
		return adp, nil

	case ColumnsMsg:
		if msg.Mode != nil {
			adp.SetMode(*msg.Mode)
		}
		adp.SetColumns(msg.Columns)
		adp.Flush()
		return adp, nil

	case PageMsg:
		adp.SetRecords(msg.Records)
		adp.SetLimit(msg.Limit)
		adp.SetPage(msg.Page)
		adp.SetTotal(msg.Total)
		adp.Flush()
		return adp, nil
	}

	var cmd tea.Cmd
	adp.widget, cmd = adp.widget.Update(msg)
	return adp, cmd
}

// Render lays the widget out as the single child of a row filling the
// adapter's width.
func (adp *Adapter) Render() string {

	content := adp.widget.Render()
	if adp.width == 0 {
		return content
	}

	return lipgloss.NewStyle().
		Width(adp.width).
		MaxHeight(adp.height).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, content))
}

// unexported

// render pushes derived state down to the widget
func (adp *Adapter) render(changes Changes) {

	if changes.Has(Mode) {
		adp.widget.SetMode(adp.mode)
	}
	if changes.Has(Columns) {
		adp.widget.SetConfig(adp.config.Clone())
	}
	if changes.HasAny(Records, Page, Limit, Total) {
		adp.widget.SetData(adp.data.Clone())
	}
}
