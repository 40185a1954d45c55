package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if METACOG_CONFIG is set
//  3. env (prefix METACOG_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future remote providers

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("METACOG_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: METACOG_INPUT, METACOG_OUTPUT_FORMAT, ...
	// Map env keys like METACOG_ID_COLUMN -> id_column (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("METACOG_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "metacog_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.IDColumn == "" {
		return fmt.Errorf("%w: id_column must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(cfg.CorrelationMethod) {
	case "spearman", "pearson":
	default:
		return fmt.Errorf("%w: unknown correlation_method %q", ErrInvalidConfig, cfg.CorrelationMethod)
	}
	switch cfg.OutputFormat {
	case FormatTable, FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown output_format %q", ErrInvalidConfig, cfg.OutputFormat)
	}
	return nil
}
