package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"jereport/internal/config"
	"jereport/internal/errors"
	"jereport/internal/shared/testutil"
)

func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("JEREPORT_INPUT_FILE", filepath.Join(dir, config.DefaultInputFile))
	t.Setenv("JEREPORT_OUTPUT_DIR", filepath.Join(dir, config.DefaultOutputDir))

	cfg, err := config.LoadFrom("")
	require.NoError(t, err)
	return cfg, dir
}

func scenarioWorkbook(t *testing.T, dir string) {
	t.Helper()
	testutil.WriteJournalWorkbook(t, dir,
		testutil.JournalRow(1, "2024-01-15", "2024-01-16", 0, 0, 100),
		testutil.JournalRow(1, "2024-01-20", "2024-01-21", 0, 0, 200),
		testutil.JournalRow(2, "2024-02-01", "2024-02-02", 0, 0, 300),
	)
}

func TestApplication_Run(t *testing.T) {
	cfg, dir := testConfig(t)
	scenarioWorkbook(t, dir)

	logger, handler := testutil.NewTestLogger(t)
	path, err := NewApplication(cfg, logger, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cfg.ReportPath(), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "JE Samples Analysis Report\n==========================\n"))
	assert.Contains(t, text, "Total Row Count: 3\n")
	assert.Contains(t, text, "Unique JE Numbers: 2\n")
	assert.Contains(t, text, "  EffectiveDate: 2024-01-15 00:00:00 to 2024-02-01 00:00:00\n")
	assert.Contains(t, text, "  EntryDate:     2024-01-16 00:00:00 to 2024-02-02 00:00:00\n")
	assert.Contains(t, text, "  Total Debit:   0.00\n")
	assert.Contains(t, text, "  Total Amount:  600.00\n")
	assert.Contains(t, text, "  Count: 3\n")
	assert.Contains(t, text, "  Mean:  200.00\n")

	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Report run complete")
	testutil.AssertNoErrors(t, handler)
}

func TestApplication_Run_Idempotent(t *testing.T) {
	cfg, dir := testConfig(t)
	scenarioWorkbook(t, dir)
	application := NewApplication(cfg, nil, nil)

	path, err := application.Run(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = application.Run(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApplication_Run_Failures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string)
		wantType errors.ErrorType
		contains string
	}{
		{
			name:     "missing input",
			setup:    func(t *testing.T, dir string) {},
			wantType: errors.ErrTypeNotFound,
			contains: config.DefaultInputFile,
		},
		{
			name: "not a workbook",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultInputFile), []byte("plain text"), 0644))
			},
			wantType: errors.ErrTypeParsing,
			contains: "failed to open workbook",
		},
		{
			name: "missing column",
			setup: func(t *testing.T, dir string) {
				testutil.WriteWorkbook(t, filepath.Join(dir, config.DefaultInputFile), "", [][]interface{}{
					{"JENumber", "EffectiveDate", "EntryDate", "Credit", "Amount"},
					{1, "2024-01-15", "2024-01-15", 0, 100},
				})
			},
			wantType: errors.ErrTypeSchema,
			contains: "Debit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, dir := testConfig(t)
			tt.setup(t, dir)

			logger, handler := testutil.NewTestLogger(t)
			path, err := NewApplication(cfg, logger, nil).Run(context.Background())

			require.Error(t, err)
			assert.Empty(t, path)
			assert.True(t, errors.IsType(err, tt.wantType), "got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.NoDirExists(t, cfg.Output.Dir, "no output directory on failure")
			assert.True(t, handler.ContainsMessage("Report run failed"))
		})
	}
}

func TestApplication_Run_Spans(t *testing.T) {
	cfg, dir := testConfig(t)
	scenarioWorkbook(t, dir)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, err := NewApplication(cfg, nil, tp.Tracer("test")).Run(context.Background())
	require.NoError(t, err)

	var names []string
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"load", "compute", "render", "persist", "report.run"}, names)
}

func TestApplication_Run_FailedSpanStatus(t *testing.T) {
	cfg, _ := testConfig(t)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, err := NewApplication(cfg, nil, tp.Tracer("test")).Run(context.Background())
	require.Error(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "load", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "report.run", ended[1].Name())
	assert.Equal(t, codes.Error, ended[1].Status().Code)
}
