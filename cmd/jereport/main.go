package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"jereport/internal/app"
	"jereport/internal/config"
	"jereport/internal/errors"
	"jereport/internal/infrastructure"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr))
}

// run executes one report job and returns the process exit status. stdout
// receives exactly one line; logs and spans go to stderr.
func run(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stdout, consoleError(err))
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintln(stdout, consoleError(errors.NewConfigError("failed to initialize logger", err)))
		return 1
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.WithRunID(ctx, infrastructure.GenerateRunID())

	tracing, err := infrastructure.InitializeTracing(cfg.Tracing, stderr, logger)
	if err != nil {
		fmt.Fprintln(stdout, consoleError(errors.NewConfigError("failed to initialize tracing", err)))
		return 1
	}
	defer func() {
		if err := tracing.Shutdown(ctx); err != nil {
			logger.WarnContext(ctx, "Tracing shutdown failed", slog.String("error", err.Error()))
		}
	}()

	logger.DebugContext(ctx, "Starting report job",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion))

	path, err := app.NewApplication(cfg, logger, tracing.Tracer).Run(ctx)
	if err != nil {
		fmt.Fprintln(stdout, consoleError(err))
		return 1
	}

	fmt.Fprintf(stdout, "Analysis complete. Report saved to %s\n", path)
	return 0
}

// consoleError maps err to the single console line printed on failure
func consoleError(err error) string {
	appErr, ok := errors.As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	switch appErr.Type {
	case errors.ErrTypeNotFound:
		return fmt.Sprintf("Error: %s.", appErr.Detail())
	case errors.ErrTypeParsing, errors.ErrTypeSchema:
		return fmt.Sprintf("Error reading Excel file: %s", appErr.Detail())
	default:
		return fmt.Sprintf("Error: %s", appErr.Detail())
	}
}
