// Package config loads command line defaults from environment variables.
// Flags given on the command line take precedence over these values.
package config

// Config holds all tool configuration.
type Config struct {
	Logging LoggingConfig
	Import  ImportConfig
	Export  ExportConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"SIMAPRO_LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"SIMAPRO_LOG_FORMAT" default:"text"`
}

// ImportConfig holds import settings.
type ImportConfig struct {
	// Sheet is the workbook sheet to read (default: first sheet)
	Sheet string `env:"SIMAPRO_SHEET"`
}

// ExportConfig holds export settings.
type ExportConfig struct {
	// ToolVersion is written to the preamble of exported files
	ToolVersion string `env:"SIMAPRO_TOOL_VERSION" default:"SimaPro 9.6.0.1"`

	// Project is written to the preamble of exported files
	Project string `env:"SIMAPRO_PROJECT"`

	// Extensions embeds extension fields into comments (default: false)
	Extensions bool `env:"SIMAPRO_EXTENSIONS" default:"false"`
}
