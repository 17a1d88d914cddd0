package datalist

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "datalist/entity"
	"datalist/layout"
	"datalist/logger"
	"datalist/message"
)

type fakeStore struct {
	records []nt.Record
	sorts   [][]nt.Sort
	pages   [][2]int
	err     error
}

func (fs *fakeStore) Name() string {
	return "fake"
}

func (fs *fakeStore) SetSorts(sorts []nt.Sort) error {
	fs.sorts = append(fs.sorts, sorts)
	return fs.err
}

func (fs *fakeStore) GetPage(ctx context.Context, limit, page int) ([]nt.Record, int, error) {
	fs.pages = append(fs.pages, [2]int{limit, page})
	if fs.err != nil {
		return nil, 0, fs.err
	}
	return fs.records, len(fs.records), nil
}

func writeLayout(t *testing.T) string {
	t.Helper()

	lo := &layout.Layout{
		Mode:  "list",
		Limit: 30,
		Columns: []nt.Column{
			{Name: "id", GridWidth: 80, GridAlign: nt.Left, Term: "ID", ColType: "string", SortRank: 1, Descending: true},
			{Name: "qty", GridWidth: 64, GridAlign: nt.Right, Term: "Qty", ColType: "number"},
		},
	}

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, lo.Write(path, 0644))
	return path
}

func newApp(t *testing.T) (App, *fakeStore) {
	t.Helper()

	store := &fakeStore{records: []nt.Record{{"id": "A", "qty": 1}, {"id": "B", "qty": 2}}}
	app, err := NewApp(context.Background(), store, writeLayout(t), logger.Nop())
	require.NoError(t, err)
	return app, store
}

// run feeds msg to app, following commands until they are exhausted
func run(t *testing.T, app App, msg tea.Msg) App {
	t.Helper()

	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		model, cmd := app.Update(next)
		app = model.(App)
		if cmd == nil {
			continue
		}

		out := cmd()
		if batch, ok := out.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c != nil {
					queue = append(queue, c())
				}
			}
			continue
		}
		if out != nil {
			queue = append(queue, out)
		}
	}
	return app
}

func TestNewAppAppliesLayout(t *testing.T) {

	app, store := newApp(t)

	cfg := app.Adapter().Config()
	assert.Len(t, cfg.Columns, 5)
	assert.Equal(t, "list", app.Adapter().Mode())
	assert.Equal(t, [][]nt.Sort{{{Field: "id", Desc: true}}}, store.sorts)
}

func TestInitLoadsFirstPage(t *testing.T) {

	app, store := newApp(t)

	app = run(t, app, app.Init()())

	assert.Equal(t, [][2]int{{30, 1}}, store.pages)
	data := app.Adapter().Data()
	assert.Equal(t, 30, data.Limit)
	assert.Equal(t, 1, data.Page)
	assert.Equal(t, 2, data.Total)
	assert.Len(t, data.Records, 2)
}

func TestSortKeyReordersStore(t *testing.T) {

	app, store := newApp(t)
	app = run(t, app, app.Init()())

	// id starts descending, one more press clears it
	app = run(t, app, tea.KeyPressMsg{Code: 's', Text: "s"})

	require.Len(t, store.sorts, 2)
	assert.Equal(t, []nt.Sort{}, store.sorts[1])
	assert.Equal(t, [2]int{30, 1}, store.pages[len(store.pages)-1])
	assert.Equal(t, "sorted by nothing", app.status)
}

func TestPageKeyLoadsNextPage(t *testing.T) {

	app, store := newApp(t)
	store.records = make([]nt.Record, 45)
	for i := range store.records {
		store.records[i] = nt.Record{"id": i}
	}
	app = run(t, app, app.Init()())

	app = run(t, app, tea.KeyPressMsg{Code: 'n', Text: "n"})

	assert.Equal(t, [2]int{30, 2}, store.pages[len(store.pages)-1])
	assert.Equal(t, 2, app.Adapter().Data().Page)
}

func TestReloadClearsRecords(t *testing.T) {

	app, store := newApp(t)
	app = run(t, app, app.Init()())

	model, cmd := app.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	app = model.(App)

	assert.Empty(t, app.Adapter().Data().Records)
	require.NotNil(t, cmd)

	app = run(t, app, cmd())
	assert.Len(t, app.Adapter().Data().Records, 2)
	assert.Len(t, store.sorts, 2)
}

func TestPageFromPreviousLayoutDropped(t *testing.T) {

	app, _ := newApp(t)

	// requested before the reload, arrives after it
	stale := app.Init()

	model, cmd := app.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	app = model.(App)
	require.NotNil(t, cmd)

	app = run(t, app, stale())
	assert.Empty(t, app.Adapter().Data().Records)

	app = run(t, app, cmd())
	assert.Len(t, app.Adapter().Data().Records, 2)
}

func TestStoreErrorShown(t *testing.T) {

	app, store := newApp(t)
	store.err = errors.New("disk on fire")

	app = run(t, app, message.GetPageMsg{Limit: 20, Page: 1})

	assert.Equal(t, "disk on fire", app.status)
	assert.True(t, app.failed)
}

func TestNewAppMissingLayout(t *testing.T) {

	_, err := NewApp(context.Background(), &fakeStore{}, filepath.Join(t.TempDir(), "nope.yaml"), logger.Nop())
	assert.Error(t, err)
}

func TestRenderFooter(t *testing.T) {

	out := RenderFooter("ok", "items.json", 30, false)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "items.json")
}
