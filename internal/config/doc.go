// Package config provides configuration management for the JE report job.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (jereport.yaml or configs/jereport.yaml)
//	3. Default values (lowest priority)
//
// With nothing set, the job reads je_samples.xlsx from the working directory
// and writes output/analysis_report.txt.
//
// # Environment Variables
//
// All environment variables follow the pattern JEREPORT_* for namespacing:
//
//	JEREPORT_INPUT_FILE=je_samples.xlsx
//	JEREPORT_INPUT_SHEET=Sheet1
//	JEREPORT_OUTPUT_DIR=output
//	JEREPORT_OUTPUT_FILENAME=analysis_report.txt
//	JEREPORT_LOGGING_LEVEL=warn
//	JEREPORT_LOGGING_OUTPUT=stderr
//	JEREPORT_TRACING_ENABLED=false
//
// # Validation
//
// Configuration is validated at load time with struct tags: required fields
// are present, the report filename has no directory component and the
// logging level and output are known values.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
