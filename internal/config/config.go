package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
}

// InputConfig locates the journal-entry workbook
type InputConfig struct {
	File  string `yaml:"file" envconfig:"FILE" default:"je_samples.xlsx" validate:"required"`
	Sheet string `yaml:"sheet" envconfig:"SHEET"`
}

// OutputConfig locates the generated report
type OutputConfig struct {
	Dir      string `yaml:"dir" envconfig:"DIR" default:"output" validate:"required"`
	Filename string `yaml:"filename" envconfig:"FILENAME" default:"analysis_report.txt" validate:"required,basename"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"warn" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stderr" validate:"oneof=stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/jereport.log" validate:"required_unless=Output stderr"`
}

// TracingConfig toggles span export for the pipeline steps
type TracingConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"ENABLED" default:"false"`
}

// ReportPath returns the full path of the report file
func (c *Config) ReportPath() string {
	return filepath.Join(c.Output.Dir, c.Output.Filename)
}

// Load loads configuration from environment variables and the first config
// file found in ConfigFileLocations
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom loads configuration from environment variables and the given YAML
// file. An empty path skips the file. Environment variables take precedence.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configFile, err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config. A file value is used
// only when the matching environment variable is unset; env takes precedence.
func mergeConfigs(fileConfig, envConfig Config) Config {
	mergeString(envKey("INPUT", "FILE"), &envConfig.Input.File, fileConfig.Input.File)
	mergeString(envKey("INPUT", "SHEET"), &envConfig.Input.Sheet, fileConfig.Input.Sheet)
	mergeString(envKey("OUTPUT", "DIR"), &envConfig.Output.Dir, fileConfig.Output.Dir)
	mergeString(envKey("OUTPUT", "FILENAME"), &envConfig.Output.Filename, fileConfig.Output.Filename)
	mergeString(envKey("LOGGING", "LEVEL"), &envConfig.Logging.Level, fileConfig.Logging.Level)
	mergeString(envKey("LOGGING", "OUTPUT"), &envConfig.Logging.Output, fileConfig.Logging.Output)
	mergeString(envKey("LOGGING", "FILE_PATH"), &envConfig.Logging.FilePath, fileConfig.Logging.FilePath)

	if _, set := os.LookupEnv(envKey("TRACING", "ENABLED")); !set && fileConfig.Tracing.Enabled {
		envConfig.Tracing.Enabled = true
	}

	return envConfig
}

func mergeString(key string, dst *string, fileValue string) {
	if _, set := os.LookupEnv(key); set || fileValue == "" {
		return
	}
	*dst = fileValue
}

func envKey(parts ...string) string {
	return EnvPrefix + "_" + strings.Join(parts, "_")
}

// validate validates the configuration
func (c *Config) validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Output = strings.ToLower(c.Logging.Output)

	v := validator.New()
	v.RegisterValidation("basename", isBasename)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("invalid %s: failed %q check (value %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value()))
		}
		return err
	}

	return nil
}

// isBasename rejects values carrying a directory component
func isBasename(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	for _, location := range ConfigFileLocations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}
