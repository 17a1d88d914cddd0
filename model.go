package datalist

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"datalist/adapter"
	nt "datalist/entity"
	"datalist/event"
	"datalist/grid"
	"datalist/layout"
	"datalist/message"
)

const (
	footerHeight = 1
)

// pageMsg contains a loaded page of records
type pageMsg struct {
	records   []nt.Record
	total     int
	limit     int
	page      int
	layoutGen int // Layout generation the page was requested under
}

// editMsg reports a record picked for editing
type editMsg struct {
	row    int
	record nt.Record
}

// App is the bubbletea model hosting the adapter.
type App struct {
	Store      Store
	LayoutPath string

	adapter   *adapter.Adapter
	layoutGen int // Bumped on each layout reload
	limit     int
	page      int
	status    string
	failed    bool

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// NewApp loads the layout and hands its columns to a new adapter.
func NewApp(ctx context.Context, store Store, layoutPath string, lgr nt.Logger) (app App, err error) {

	lo, err := layout.Load(layoutPath)
	if err != nil {
		return
	}

	app = App{
		Store:      store,
		LayoutPath: layoutPath,
		adapter:    adapter.New(ctx, lgr),
		limit:      lo.Limit,
		page:       1,
		ctx:        ctx,
		logger:     lgr,
	}
	app.listen()

	err = app.applyLayout(lo)
	return
}

// Adapter returns the hosted adapter.
func (app App) Adapter() *adapter.Adapter {
	return app.adapter
}

func (app App) Init() tea.Cmd {
	return app.getPage(app.limit, app.page)
}

func (app App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case pageMsg:
		if msg.layoutGen != app.layoutGen {
			app.logger.Debug(app.ctx, "dropping page loaded for previous layout", "page", msg.page)
			return app, nil
		}
		app.limit = msg.limit
		app.page = msg.page
		app.adapter, _ = app.adapter.Update(adapter.PageMsg{
			Records: msg.records,
			Limit:   msg.limit,
			Page:    msg.page,
			Total:   msg.total,
		})
		return app, nil

	case message.GetPageMsg:
		return app, app.getPage(msg.Limit, msg.Page)

	case message.SortMsg:
		err := app.Store.SetSorts(msg.Sorts)
		if err != nil {
			return app, message.ErrorCmd(err)
		}
		app.setStatus(fmt.Sprintf("sorted by %s", describeSorts(msg.Sorts)))
		return app, app.getPage(app.limit, 1)

	case editMsg:
		app.setStatus(fmt.Sprintf("edit row %d: %s", msg.row+1, msg.record.Value("id")))
		return app, nil

	case message.ErrorMsg:
		app.logger.Error(app.ctx, "error msg", msg.Err)
		app.status = msg.Err.Error()
		app.failed = true
		return app, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return app, tea.Quit

		case "r":
			return app.reloadLayout()
		}

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

		var cmd tea.Cmd
		app.adapter, cmd = app.adapter.Update(adapter.SizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		})
		return app, cmd
	}

	var cmd tea.Cmd
	app.adapter, cmd = app.adapter.Update(msg)
	return app, cmd
}

func (app App) View() tea.View {
	if app.width == 0 {
		return tea.NewView("Loading...")
	}

	screenLayer := lipgloss.NewLayer("screen", app.adapter.Render())

	footerContent := RenderFooter(app.status, app.Store.Name(), app.width, app.failed)
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(app.height - footerHeight)

	canvas := lipgloss.NewCanvas(app.width, app.height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

// listen subscribes to events the adapter raises or lets through
func (app App) listen() {

	app.adapter.On(adapter.EventSortersChanged, func(ev *event.Event) tea.Cmd {
		sorters, _ := ev.Detail.([]grid.Sorter)
		return message.SortCmd(sortsFrom(sorters))
	})

	app.adapter.On(grid.EventPageChanged, func(ev *event.Event) tea.Cmd {
		change, _ := ev.Detail.(grid.PageChange)
		return message.GetPageCmd(change.Limit, change.Page)
	})

	app.adapter.On(grid.EventRecordEdit, func(ev *event.Event) tea.Cmd {
		edit, _ := ev.Detail.(grid.RecordEdit)
		return func() tea.Msg {
			return editMsg{row: edit.Row, record: edit.Record}
		}
	})
}

// applyLayout hands columns and mode to the adapter as one batch and
// orders the store by the default sorters
func (app *App) applyLayout(lo *layout.Layout) (err error) {

	app.adapter, _ = app.adapter.Update(adapter.ColumnsMsg{
		Columns: lo.Columns,
		Mode:    &lo.Mode,
	})

	err = app.Store.SetSorts(sortsFrom(app.adapter.Config().Sorters))
	return
}

// reloadLayout reloads columns from the layout file, records are cleared
// until the next page arrives
func (app App) reloadLayout() (tea.Model, tea.Cmd) {

	lo, err := layout.Load(app.LayoutPath)
	if err != nil {
		return app, message.ErrorCmd(err)
	}

	err = app.applyLayout(lo)
	if err != nil {
		return app, message.ErrorCmd(err)
	}

	app.layoutGen++
	app.limit = lo.Limit
	app.setStatus("layout reloaded")
	return app, app.getPage(app.limit, 1)
}

// getPage gets a page of records from the store
func (app App) getPage(limit, page int) tea.Cmd {

	layoutGen := app.layoutGen
	return func() tea.Msg {

		records, total, err := app.Store.GetPage(app.ctx, limit, page)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return pageMsg{
			records:   records,
			total:     total,
			limit:     limit,
			page:      page,
			layoutGen: layoutGen,
		}
	}
}

func (app *App) setStatus(status string) {
	app.status = status
	app.failed = false
}

// help

func sortsFrom(sorters []grid.Sorter) []nt.Sort {

	sorts := make([]nt.Sort, len(sorters))
	for i, sorter := range sorters {
		sorts[i] = nt.Sort{
			Field: sorter.Name,
			Desc:  sorter.ReverseSort,
		}
	}
	return sorts
}

func describeSorts(sorts []nt.Sort) string {

	if len(sorts) == 0 {
		return "nothing"
	}

	out := ""
	for i, sort := range sorts {
		if i > 0 {
			out += ", "
		}
		dir := "asc"
		if sort.Desc {
			dir = "desc"
		}
		out += sort.Field + " " + dir
	}
	return out
}
