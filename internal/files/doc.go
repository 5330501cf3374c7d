// Package files provides file system operations for the report job.
//
// Manager writes the analysis report: it creates the output directory
// (parents included) and replaces the report file atomically by staging
// the content in a temporary file in the same directory and renaming it
// into place. All relative paths are resolved against a base directory.
//
// Example usage:
//
//	manager := files.NewManager("", logger)
//
//	path, err := manager.Persist(text, "output", "analysis_report.txt")
//	if err != nil {
//	    // err is a STORAGE AppError
//	}
package files
