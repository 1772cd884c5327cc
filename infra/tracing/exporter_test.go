package tracing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/genfactory/core/factory"
	"github.com/kilianp07/genfactory/infra/logger"
)

func TestLogExporter_WritesFinishedSpans(t *testing.T) {
	var buf bytes.Buffer
	tp := NewProvider(NewLogExporter(logger.NewWithWriter("tracing", &buf)))

	f, err := factory.New(Entries(Tracer(tp), []factory.Entry[string, int]{
		{Key: "one", Create: func() (int, error) { return 1, nil }},
		{Key: "bad", Create: func() (int, error) { return 0, errors.New("boom") }},
	}))
	require.NoError(t, err)
	_, _, err = f.Get("one")
	require.NoError(t, err)
	_, _, err = f.Get("bad")
	require.Error(t, err)

	require.NoError(t, tp.Shutdown(context.Background()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "span finished", rec["message"])
	assert.Equal(t, "factory.create", rec["span"])
	assert.Equal(t, "one", rec["factory.key"])
	assert.Equal(t, "Ok", rec["status"])
	assert.NotEmpty(t, rec["trace_id"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "bad", rec["factory.key"])
	assert.Equal(t, "Error", rec["status"])
	assert.Equal(t, "boom", rec["error"])
}

func TestLogExporter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exporter, tp := setupTracingTest(t)
	_, span := Tracer(tp).Start(context.Background(), "x")
	span.End()
	spans := exporter.GetSpans().Snapshots()
	assert.ErrorIs(t, NewLogExporter(nil).ExportSpans(ctx, spans), context.Canceled)
	assert.NoError(t, NewLogExporter(nil).ExportSpans(context.Background(), spans))
}
