// Command metacog computes confidence-rating metrics (accuracy, confidence,
// bias, two discrimination forms) per participant and per item from a
// wide-format experiment dataset, then renders the resulting tables.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/metacog/internal/adapters/dataset"
	"github.com/okian/metacog/internal/adapters/report"
	service "github.com/okian/metacog/internal/app"
	"github.com/okian/metacog/internal/config"
	"github.com/okian/metacog/internal/domain/stats"
	"github.com/okian/metacog/pkg/logger"
)

// Output file permission for -output / output_path.
const outFilePermission = 0o600

func main() {
	os.Exit(run())
}

func run() int {
	var (
		input       = flag.String("input", "", "Wide CSV dataset path (overrides config)")
		format      = flag.String("format", "", "Output format: table, csv or json (overrides config)")
		method      = flag.String("method", "", "Correlation method: spearman or pearson (overrides config)")
		by          = flag.String("by", "both", "Grouping to report: participant, item or both")
		participant = flag.String("participant", "", "Report a single participant id")
		item        = flag.String("item", "", "Report a single item id")
		output      = flag.String("output", "", "Write reports to a file instead of stdout (overrides config)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env), then apply
	// flag overrides.
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		return 1
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *format != "" {
		cfg.OutputFormat = *format
	}
	if *method != "" {
		cfg.CorrelationMethod = *method
	}
	if *output != "" {
		cfg.OutputPath = *output
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Error(ctx, "invalid log level", logger.Error(err))
		return 1
	}
	if cfg.Input == "" {
		log.Error(ctx, "no input dataset; pass -input or set METACOG_INPUT")
		return 1
	}

	corr, err := stats.ParseMethod(cfg.CorrelationMethod)
	if err != nil {
		log.Error(ctx, "invalid correlation method", logger.Error(err))
		return 1
	}
	fmtSel, err := report.ParseFormat(cfg.OutputFormat)
	if err != nil {
		log.Error(ctx, "invalid output format", logger.Error(err))
		return 1
	}

	svc := service.New(
		service.WithLoader(dataset.NewLoader(
			dataset.WithIDColumn(cfg.IDColumn),
			dataset.WithMissingTokens(cfg.MissingTokens),
		)),
		service.WithRenderer(report.NewRenderer(report.WithFormat(fmtSel))),
		service.WithMethod(corr),
		service.WithLogger(log),
	)

	if err := svc.Analyze(ctx, cfg.Input); err != nil {
		log.Error(ctx, "analysis failed", logger.Error(err))
		return 1
	}

	out, closeOut, err := openOutput(cfg.OutputPath)
	if err != nil {
		log.Error(ctx, "failed to open output", logger.Error(err))
		return 1
	}
	defer closeOut()

	if err := writeReports(ctx, svc, out, *by, *participant, *item); err != nil {
		log.Error(ctx, "failed to render reports", logger.Error(err))
		return 1
	}
	return 0
}

// openOutput returns stdout or the configured file.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outFilePermission)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// writeReports renders the requested grouping(s), or a single row when a
// participant or item id is given.
func writeReports(ctx context.Context, svc *service.Service, w io.Writer, by, participant, item string) error {
	if participant != "" {
		return svc.ReportParticipant(ctx, w, participant)
	}
	if item != "" {
		return svc.ReportItem(ctx, w, item)
	}

	switch by {
	case "participant":
		return svc.ReportParticipants(ctx, w)
	case "item":
		return svc.ReportItems(ctx, w)
	default:
		if err := svc.ReportParticipants(ctx, w); err != nil {
			return err
		}
		return svc.ReportItems(ctx, w)
	}
}
