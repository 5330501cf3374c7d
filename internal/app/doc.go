// Package app wires and runs the journal-entry report pipeline.
//
// # Pipeline
//
// One run executes four steps in order, each in its own tracing span:
//
//  1. load: read the configured sheet of the input workbook
//  2. compute: coerce cells and derive the AnalysisReport
//  3. render: produce the fixed-layout report text
//  4. persist: create the output directory and replace the report file
//
// A failing step aborts the run. Nothing is written to the output location
// unless every earlier step succeeded.
//
// # Usage
//
//	application := app.NewApplication(cfg, logger, tracing.Tracer)
//	path, err := application.Run(ctx)
//
// # Error Handling
//
// Run returns the AppError of the failing step unchanged so the caller can
// pick the console message and exit status. The app does not call os.Exit().
package app
