package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(t *testing.T, buf *bytes.Buffer) (out []map[string]any) {
	t.Helper()

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return
}

func TestInfoWritesJson(t *testing.T) {

	buf := &bytes.Buffer{}
	lgr := New(buf, InfoLevel)

	lgr.Info(context.Background(), "page loaded", "page", 2)

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "page loaded", got[0][MessageKey])
	assert.Equal(t, float64(2), got[0]["page"])
	assert.Contains(t, got[0], TimeStampKey)
}

func TestErrorCarriesError(t *testing.T) {

	buf := &bytes.Buffer{}
	lgr := New(buf, InfoLevel)

	lgr.Error(context.Background(), "load failed", errors.New("oops"))

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "oops", got[0][ErrorKey])
}

func TestDebugFollowsLevel(t *testing.T) {

	buf := &bytes.Buffer{}
	New(buf, InfoLevel).Debug(context.Background(), "hidden")
	assert.Empty(t, entries(t, buf))

	New(buf, DebugLevel).Debug(context.Background(), "shown")
	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "shown", got[0][MessageKey])
}

func TestWithValuesFromContext(t *testing.T) {

	buf := &bytes.Buffer{}
	lgr := New(buf, InfoLevel)

	ctx := lgr.WithValues(context.Background(), "layout", "items.yaml")
	lgr.Info(ctx, "columns loaded")

	got := entries(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "items.yaml", got[0]["layout"])
}

func TestNopDiscards(t *testing.T) {

	lgr := Nop()
	assert.NotPanics(t, func() {
		lgr.Info(context.Background(), "nothing")
		lgr.Error(context.Background(), "nothing", errors.New("oops"))
		lgr.Sync()
	})
}

func TestOpenLog(t *testing.T) {

	path := filepath.Join(t.TempDir(), "datalist.log")

	file := OpenLog(path, 0644)
	lgr := New(file, InfoLevel)
	lgr.Info(context.Background(), "hello")
	CloseLog(file)

	assert.FileExists(t, path)
}
