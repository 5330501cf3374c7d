package config

// Application constants
const (
	// Application Info
	AppName    = "jereport"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. JEREPORT_INPUT_FILE
	EnvPrefix = "JEREPORT"

	// Defaults reproduce the fixed input/output locations of the report job
	DefaultInputFile      = "je_samples.xlsx"
	DefaultOutputDir      = "output"
	DefaultOutputFilename = "analysis_report.txt"
	DefaultLogFilePath    = "logs/jereport.log"

	// File permissions
	DirPermission  = 0755
	FilePermission = 0644
)

// ConfigFileLocations are searched in order; the first existing file wins
var ConfigFileLocations = []string{
	"jereport.yaml",
	"configs/jereport.yaml",
}
