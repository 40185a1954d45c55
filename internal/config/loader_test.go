package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/metacog/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.IDColumn, convey.ShouldEqual, "id")
				convey.So(cfg.CorrelationMethod, convey.ShouldEqual, "spearman")
				convey.So(cfg.OutputFormat, convey.ShouldEqual, config.FormatTable)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("METACOG_INPUT", "data/confidence.csv")
			_ = os.Setenv("METACOG_ID_COLUMN", "subject")
			_ = os.Setenv("METACOG_CORRELATION_METHOD", "pearson")
			_ = os.Setenv("METACOG_OUTPUT_FORMAT", "json")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Input, convey.ShouldEqual, "data/confidence.csv")
				convey.So(cfg.IDColumn, convey.ShouldEqual, "subject")
				convey.So(cfg.CorrelationMethod, convey.ShouldEqual, "pearson")
				convey.So(cfg.OutputFormat, convey.ShouldEqual, config.FormatJSON)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
input: "exp1.csv"
id_column: "pid"
correlation_method: "spearman"
output_format: "csv"
output_path: "out/metrics.csv"
`
			tmpFile := createTempConfigFile(t, yamlContent)

			_ = os.Setenv("METACOG_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Input, convey.ShouldEqual, "exp1.csv")
				convey.So(cfg.IDColumn, convey.ShouldEqual, "pid")
				convey.So(cfg.OutputFormat, convey.ShouldEqual, config.FormatCSV)
				convey.So(cfg.OutputPath, convey.ShouldEqual, "out/metrics.csv")
			})
		})

		convey.Convey("When the correlation method is unknown", func() {
			_ = os.Setenv("METACOG_CORRELATION_METHOD", "kendall")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the output format is unknown", func() {
			_ = os.Setenv("METACOG_OUTPUT_FORMAT", "xml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("METACOG_CONFIG", "/nonexistent/metacog.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrLoadConfig", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"METACOG_CONFIG",
		"METACOG_INPUT",
		"METACOG_ID_COLUMN",
		"METACOG_CORRELATION_METHOD",
		"METACOG_OUTPUT_FORMAT",
		"METACOG_OUTPUT_PATH",
		"METACOG_LOG_LEVEL",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}
