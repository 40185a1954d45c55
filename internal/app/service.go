// Package service wires the dataset loader, the aggregation pass and the
// report renderer into one analysis run.
package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/okian/metacog/internal/adapters/dataset"
	"github.com/okian/metacog/internal/adapters/report"
	"github.com/okian/metacog/internal/adapters/repository"
	"github.com/okian/metacog/internal/domain/aggregate"
	"github.com/okian/metacog/internal/domain/stats"
	"github.com/okian/metacog/internal/domain/types"
	"github.com/okian/metacog/pkg/logger"
)

// Report titles.
const (
	participantTitle = "Participant metrics"
	itemTitle        = "Item metrics"
)

// Service runs the confidence-metrics analysis.
type Service struct {
	loader   *dataset.Loader
	renderer *report.Renderer
	method   stats.Method

	participants repository.Store
	items        repository.Store

	runID  string
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLoader sets a configured dataset loader.
func WithLoader(l *dataset.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithRenderer sets a configured report renderer.
func WithRenderer(r *report.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithMethod selects the correlation statistic for rank discrimination.
func WithMethod(m stats.Method) Option {
	return func(s *Service) {
		s.method = m
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		loader:       dataset.NewLoader(),
		renderer:     report.NewRenderer(),
		method:       stats.Spearman,
		participants: repository.NewInMemoryStore(),
		items:        repository.NewInMemoryStore(),
		runID:        uuid.NewString(),
		logger:       logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunID returns the identifier attached to this analysis run.
func (s *Service) RunID() string { return s.runID }

// Analyze loads the wide dataset at input, reshapes it and computes both
// metrics tables. It must run before any report or lookup.
func (s *Service) Analyze(ctx context.Context, input string) error {
	records, err := s.loader.Load(ctx, input)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	obs, err := dataset.Reshape(records)
	if err != nil {
		return fmt.Errorf("reshape dataset: %w", err)
	}
	s.logger.Info(ctx, "dataset reshaped",
		logger.String("run_id", s.runID),
		logger.String("input", input),
		logger.Int("participants", len(records)),
		logger.Int("observations", len(obs)))

	byParticipant := aggregate.Metrics(obs, aggregate.ByParticipant, aggregate.WithMethod(s.method))
	if err := s.participants.Put(ctx, byParticipant); err != nil {
		return fmt.Errorf("store participant metrics: %w", err)
	}

	byItem := aggregate.Metrics(obs, aggregate.ByItem, aggregate.WithMethod(s.method))
	if err := s.items.Put(ctx, byItem); err != nil {
		return fmt.Errorf("store item metrics: %w", err)
	}

	s.logger.Info(ctx, "metrics computed",
		logger.String("run_id", s.runID),
		logger.String("method", s.method.String()),
		logger.Int("participant_rows", len(byParticipant)),
		logger.Int("item_rows", len(byItem)))
	return nil
}

// Participants returns the participant metrics table, key-sorted.
func (s *Service) Participants(ctx context.Context) []types.MetricsRow {
	return s.participants.All(ctx)
}

// Items returns the item metrics table, key-sorted.
func (s *Service) Items(ctx context.Context) []types.MetricsRow {
	return s.items.All(ctx)
}

// Participant returns the metrics row for one participant id.
func (s *Service) Participant(ctx context.Context, key string) (types.MetricsRow, error) {
	return s.participants.Row(ctx, key)
}

// Item returns the metrics row for one item id.
func (s *Service) Item(ctx context.Context, key string) (types.MetricsRow, error) {
	return s.items.Row(ctx, key)
}

// ReportParticipants renders the participant metrics table to w.
func (s *Service) ReportParticipants(ctx context.Context, w io.Writer) error {
	return s.renderer.Render(w, report.Report{
		Title: participantTitle,
		RunID: s.runID,
		Rows:  s.participants.All(ctx),
	})
}

// ReportItems renders the item metrics table to w.
func (s *Service) ReportItems(ctx context.Context, w io.Writer) error {
	return s.renderer.Render(w, report.Report{
		Title: itemTitle,
		RunID: s.runID,
		Rows:  s.items.All(ctx),
	})
}

// ReportParticipant renders the single-row report for one participant.
func (s *Service) ReportParticipant(ctx context.Context, w io.Writer, key string) error {
	row, err := s.participants.Row(ctx, key)
	if err != nil {
		return err
	}
	return s.renderer.Render(w, report.Report{
		Title: participantTitle,
		RunID: s.runID,
		Rows:  []types.MetricsRow{row},
	})
}

// ReportItem renders the single-row report for one item.
func (s *Service) ReportItem(ctx context.Context, w io.Writer, key string) error {
	row, err := s.items.Row(ctx, key)
	if err != nil {
		return err
	}
	return s.renderer.Render(w, report.Report{
		Title: itemTitle,
		RunID: s.runID,
		Rows:  []types.MetricsRow{row},
	})
}
