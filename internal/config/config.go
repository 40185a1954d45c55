// Package config defines tool configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Output format names accepted by OutputFormat.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Input is the path of the wide-format CSV dataset.
	Input string `koanf:"input"`

	// IDColumn names the participant-id column in the wide table.
	IDColumn string `koanf:"id_column"`

	// MissingTokens lists cell values treated as missing observations.
	MissingTokens []string `koanf:"missing_tokens"`

	// CorrelationMethod selects the rank-discrimination statistic:
	// "spearman" (default) or "pearson".
	CorrelationMethod string `koanf:"correlation_method"`

	// OutputFormat selects report rendering: table, csv or json.
	OutputFormat string `koanf:"output_format"`

	// OutputPath writes reports to a file instead of stdout when set.
	OutputPath string `koanf:"output_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		IDColumn:          "id",
		MissingTokens:     []string{"", "NA"},
		CorrelationMethod: "spearman",
		OutputFormat:      FormatTable,
	}
}
