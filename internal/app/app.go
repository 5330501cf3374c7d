package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"jereport/internal/config"
	"jereport/internal/dataprocessing"
	"jereport/internal/exporter"
	"jereport/internal/files"
	"jereport/internal/infrastructure"
	"jereport/pkg/contracts/domain"
)

// Application runs the report pipeline: load, compute, render, persist
type Application struct {
	Config   *config.Config
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Analyzer *dataprocessing.Analyzer
	Files    *files.Manager
}

// NewApplication wires the pipeline components. A nil logger uses slog.Default
// and a nil tracer records nothing.
func NewApplication(cfg *config.Config, logger *slog.Logger, tracer trace.Tracer) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(infrastructure.TracerName)
	}

	return &Application{
		Config:   cfg,
		Logger:   infrastructure.WithComponent(logger, "app"),
		Tracer:   tracer,
		Analyzer: dataprocessing.NewAnalyzer(logger),
		Files:    files.NewManager("", logger),
	}
}

// Run executes the pipeline once and returns the path of the written report.
// Any failure aborts the run before the report is written; the error is an
// AppError whose type identifies the failing step.
func (a *Application) Run(ctx context.Context) (string, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	ctx, span := a.Tracer.Start(ctx, "report.run")
	defer span.End()

	a.Logger.InfoContext(ctx, "Report run starting",
		slog.String("input", a.Config.Input.File),
		slog.String("output", a.Config.ReportPath()))

	table, err := a.load(ctx)
	if err != nil {
		return "", a.fail(ctx, "load", err)
	}

	report, err := a.compute(ctx, table)
	if err != nil {
		return "", a.fail(ctx, "compute", err)
	}

	text := a.render(ctx, report)

	path, err := a.persist(ctx, text)
	if err != nil {
		return "", a.fail(ctx, "persist", err)
	}

	a.Logger.InfoContext(ctx, "Report run complete", slog.String("path", path))
	return path, nil
}

func (a *Application) load(ctx context.Context) (*dataprocessing.Table, error) {
	ctx, span := a.Tracer.Start(ctx, "load",
		trace.WithAttributes(attribute.String("input.file", a.Config.Input.File)))
	defer span.End()

	table, err := dataprocessing.LoadWorkbook(a.Config.Input.File, dataprocessing.LoadOptions{
		Sheet: a.Config.Input.Sheet,
	})
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"input.sheet": table.Sheet,
		"input.rows":  len(table.Rows),
	})
	return table, nil
}

func (a *Application) compute(ctx context.Context, table *dataprocessing.Table) (*domain.AnalysisReport, error) {
	ctx, span := a.Tracer.Start(ctx, "compute")
	defer span.End()

	report, err := a.Analyzer.ComputeStatistics(ctx, table)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"report.rows":           report.TotalRows,
		"report.unique_je":      report.UniqueJENumbers,
		"report.dropped_values": report.TotalDropped(),
	})
	return report, nil
}

func (a *Application) render(ctx context.Context, report *domain.AnalysisReport) string {
	_, span := a.Tracer.Start(ctx, "render")
	defer span.End()

	return exporter.RenderReport(report)
}

func (a *Application) persist(ctx context.Context, text string) (string, error) {
	ctx, span := a.Tracer.Start(ctx, "persist",
		trace.WithAttributes(attribute.String("output.path", a.Config.ReportPath())))
	defer span.End()

	path, err := a.Files.Persist(text, a.Config.Output.Dir, a.Config.Output.Filename)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return "", err
	}
	return path, nil
}

func (a *Application) fail(ctx context.Context, step string, err error) error {
	infrastructure.RecordError(ctx, err)
	a.Logger.ErrorContext(ctx, "Report run failed",
		slog.String("step", step),
		slog.String("error", err.Error()))
	return err
}
