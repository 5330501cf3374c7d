package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jereport/internal/config"
)

func TestInitializeTracing_Disabled(t *testing.T) {
	var out bytes.Buffer
	providers, err := InitializeTracing(config.TracingConfig{Enabled: false}, &out, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, providers.Tracer)
	assert.Nil(t, providers.TracerProvider)

	ctx, span := providers.Tracer.Start(context.Background(), "load")
	assert.False(t, span.IsRecording())
	assert.Empty(t, TraceIDFromContext(ctx))
	span.End()

	assert.NoError(t, providers.Shutdown(context.Background()))
	assert.Empty(t, out.String())
}

func TestInitializeTracing_EnabledExportsSpans(t *testing.T) {
	var out bytes.Buffer
	providers, err := InitializeTracing(config.TracingConfig{Enabled: true}, &out, slog.Default())
	require.NoError(t, err)
	require.NotNil(t, providers.TracerProvider)

	ctx, span := providers.Tracer.Start(context.Background(), "compute")
	assert.True(t, span.IsRecording())
	assert.Len(t, TraceIDFromContext(ctx), 32)

	SetSpanAttributes(ctx, map[string]interface{}{
		"rows":    3,
		"sheet":   "Sheet1",
		"dropped": int64(1),
		"mean":    200.0,
		"traced":  true,
		"other":   []int{1},
	})
	RecordError(ctx, errors.New("boom"))
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))

	raw := out.String()
	assert.Contains(t, raw, "boom")

	var exported map[string]interface{}
	require.NoError(t, json.NewDecoder(strings.NewReader(raw)).Decode(&exported))
	assert.Equal(t, "compute", exported["Name"])
}

func TestTraceIDFromContext_NoSpan(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func TestTracingProviders_NilShutdown(t *testing.T) {
	var providers *TracingProviders
	assert.NoError(t, providers.Shutdown(context.Background()))
}
